// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/reelsearch"
	"github.com/poiesic/reelsearch/ai"
	"github.com/poiesic/reelsearch/core"
	"github.com/poiesic/reelsearch/search"
	"github.com/urfave/cli/v2"
)

// plotPreviewLength bounds how much plot text a result line shows.
const plotPreviewLength = 150

func main() {
	app := &cli.App{
		Name:  "reelsearch",
		Usage: "Semantic search over movie plot summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank the movie catalog against a query",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append(engineFlags(), &cli.IntFlag{
					Name:    "top",
					Aliases: []string{"n"},
					Usage:   "Number of results to return",
					Value:   search.DefaultTopN,
				}),
			},
			{
				Name:   "demo",
				Usage:  "Run the example queries against the catalog",
				Action: demoCommand,
				Flags:  engineFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "Path to the movie dataset CSV",
			Value:   "movies.csv",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Directory for the persistent embedding cache (disabled when empty)",
		},
	}
}

func newEngine(c *cli.Context) (*reelsearch.Engine, error) {
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	opts := []reelsearch.EngineOption{reelsearch.WithAIConfig(cfg)}
	if dir := c.String("cache"); dir != "" {
		opts = append(opts, reelsearch.WithCacheDir(dir))
	}

	return reelsearch.NewEngine(c.String("data"), opts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a query is required, e.g.: reelsearch search spy thriller in Paris")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	results, err := engine.Search(context.Background(), query, c.Int("top"))
	if err != nil {
		return err
	}

	printResults(query, results)
	return nil
}

func demoCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()

	query := "spy thriller in Paris"
	fmt.Printf("Searching for: %q\n", query)
	fmt.Println(strings.Repeat("-", 50))

	results, err := engine.Search(ctx, query, search.DefaultTopN)
	if err != nil {
		return err
	}
	printResults(query, results)

	additionalQueries := []string{
		"romantic comedy in New York",
		"space adventure with aliens",
		"horror movie in a haunted house",
	}

	fmt.Println("\nAdditional example searches:")
	fmt.Println(strings.Repeat("-", 30))

	for _, query := range additionalQueries {
		results, err := engine.Search(ctx, query, 3)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("\n%q - no matches\n", query)
			continue
		}
		top := results[0]
		fmt.Printf("\n%q - top match: %s (score: %.4f)\n", query, top.Movie.Title, top.Similarity)
	}

	return nil
}

func printResults(query string, results []core.SearchResult) {
	fmt.Printf("Top %d movies matching %q:\n\n", len(results), query)
	for i, result := range results {
		fmt.Printf("%d. %s\n", i+1, result.Movie.Title)
		fmt.Printf("   Similarity Score: %.4f\n", result.Similarity)
		fmt.Printf("   Plot: %s\n\n", truncatePlot(result.Movie.Plot, plotPreviewLength))
	}
}

// truncatePlot shortens a plot to at most limit runes, appending an ellipsis
// when text was cut.
func truncatePlot(plot string, limit int) string {
	runes := []rune(plot)
	if len(runes) <= limit {
		return plot
	}
	return string(runes[:limit]) + "..."
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
