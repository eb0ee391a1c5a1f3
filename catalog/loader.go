package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/reelsearch/core"
)

// File loads movies from a CSV dataset on disk.
// The file must have a header row containing "title" and "plot" columns
// (matched case-insensitively). Rows with a missing or short plot cell are
// loaded with an empty plot rather than rejected.
type File struct {
	path   string
	logger *slog.Logger
}

// FileOption configures a File source.
type FileOption func(*File)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// NewFile creates a CSV-backed movie source for the given path.
// The file is not opened until Movies is called.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path:   path,
		logger: slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Movies reads and parses the full dataset.
// All failures wrap ErrDataUnavailable. A dataset with a valid header but no
// data rows is not an error; it yields an empty catalog.
func (f *File) Movies(ctx context.Context) ([]core.Movie, error) {
	file, err := os.Open(f.path)
	if err != nil {
		f.logger.Error("failed to open dataset", "path", f.path, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells become empty plots

	header, err := reader.Read()
	if err != nil {
		// io.EOF here means a completely empty file, which has no header to validate
		f.logger.Error("failed to read dataset header", "path", f.path, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	titleCol, plotCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			titleCol = i
		case "plot":
			plotCol = i
		}
	}
	if titleCol < 0 || plotCol < 0 {
		f.logger.Error("dataset header missing required columns", "path", f.path, "header", header)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, ErrMissingColumns)
	}

	var movies []core.Movie
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			f.logger.Error("failed to parse dataset row", "path", f.path, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}

		movies = append(movies, core.Movie{
			Title: cell(row, titleCol),
			Plot:  cell(row, plotCol),
		})
	}

	f.logger.Debug("loaded movie dataset", "path", f.path, "count", len(movies))
	return movies, nil
}

// cell returns the column value, or an empty string when the row is too short.
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
