package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/reelsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("loads all rows in dataset order", func(t *testing.T) {
		source := NewFile(filepath.Join("testdata", "movies.csv"))

		movies, err := source.Movies(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 4)

		assert.Equal(t, "Spy Movie", movies[0].Title)
		assert.Equal(t, "A secret agent uncovers a terrorist plot while spying in Paris.", movies[0].Plot)
		assert.Equal(t, "Romance in Paris", movies[1].Title)
		assert.Equal(t, "Action Flick", movies[2].Title)
	})

	t.Run("missing plot cell becomes empty string", func(t *testing.T) {
		source := NewFile(filepath.Join("testdata", "movies.csv"))

		movies, err := source.Movies(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Silent Film", movies[3].Title)
		assert.Equal(t, "", movies[3].Plot)
	})

	t.Run("missing file wraps ErrDataUnavailable", func(t *testing.T) {
		source := NewFile(filepath.Join("testdata", "no_such_file.csv"))

		_, err := source.Movies(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDataUnavailable))
	})

	t.Run("missing required columns", func(t *testing.T) {
		source := NewFile(filepath.Join("testdata", "missing_columns.csv"))

		_, err := source.Movies(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDataUnavailable))
		assert.True(t, errors.Is(err, ErrMissingColumns))
	})

	t.Run("completely empty file is unavailable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		source := NewFile(path)
		_, err := source.Movies(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDataUnavailable))
	})

	t.Run("header with no rows yields empty catalog", func(t *testing.T) {
		source := NewFile(filepath.Join("testdata", "header_only.csv"))

		movies, err := source.Movies(ctx)
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("header match is case-insensitive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "upper.csv")
		require.NoError(t, os.WriteFile(path, []byte("Title,Plot\nSpy Movie,A spy in Paris.\n"), 0644))

		source := NewFile(path)
		movies, err := source.Movies(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Spy Movie", movies[0].Title)
	})
}

func TestStaticMovies(t *testing.T) {
	ctx := context.Background()

	original := []core.Movie{
		{Title: "Spy Movie", Plot: "A spy in Paris."},
		{Title: "Romance in Paris", Plot: "Love in Paris."},
	}
	source := NewStatic(original)

	t.Run("returns movies in original order", func(t *testing.T) {
		movies, err := source.Movies(ctx)
		require.NoError(t, err)
		assert.Equal(t, original, movies)
	})

	t.Run("caller mutation does not change catalog", func(t *testing.T) {
		movies, err := source.Movies(ctx)
		require.NoError(t, err)
		movies[0].Title = "Changed"

		again, err := source.Movies(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Spy Movie", again[0].Title)
	})
}
