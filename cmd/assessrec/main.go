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
	"time"

	"github.com/poiesic/assessrec"
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/eval"
	"github.com/urfave/cli/v2"
)

func main() {
	embeddingFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.StringFlag{
			Name:    "embedding-token",
			Usage:   "Embedding service API token",
			EnvVars: []string{"ASSESSREC_EMBEDDING_TOKEN"},
		},
		&cli.DurationFlag{
			Name:  "embedding-timeout",
			Usage: "Embedding request timeout",
			Value: 10 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "no-fallback",
			Usage: "Disable the lexical fallback embedder",
		},
	}
	catalogFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to catalog file (.json or .csv); uses the built-in sample when omitted",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB snapshot directory for warm starts",
		},
	}

	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment recommendation engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the recommendation HTTP API",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8000",
					},
					&cli.BoolFlag{
						Name:  "rebuild",
						Usage: "Re-embed the catalog even when a stored snapshot exists",
					},
				}, append(catalogFlags, embeddingFlags...)...),
			},
			{
				Name:      "recommend",
				Usage:     "Recommend assessments for a single query",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of recommendations to return",
						Value:   10,
					},
				}, append(catalogFlags, embeddingFlags...)...),
			},
			{
				Name:      "analyze",
				Usage:     "Show the intent extracted from a query",
				ArgsUsage: "<query>",
				Action:    analyzeCommand,
			},
			{
				Name:   "batch",
				Usage:  "Run recommendations for a file of queries and write predictions CSV",
				Action: batchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "Path to queries file (.json, .csv, or .txt)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to write the predictions CSV",
						Value:   "predictions.csv",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of recommendations per query",
						Value:   10,
					},
				}, append(catalogFlags, embeddingFlags...)...),
			},
			{
				Name:   "seed",
				Usage:  "Embed a catalog and persist the snapshot",
				Action: seedCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB snapshot directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to catalog file (.json or .csv); uses the built-in sample when omitted",
					},
				}, embeddingFlags...),
			},
			{
				Name:   "eval",
				Usage:  "Evaluate recommendation quality against a labeled test set",
				Action: evalCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "test-set",
						Aliases:  []string{"t"},
						Usage:    "Path to test set file (.json, .csv, or .txt)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to write the predictions CSV",
						Value:   "predictions.csv",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Recall cutoff",
						Value:   10,
					},
				}, append(catalogFlags, embeddingFlags...)...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newSystem builds a System from the shared embedding and catalog flags.
func newSystem(c *cli.Context) (*assessrec.System, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
		ai.WithToken(c.String("embedding-token")),
		ai.WithTimeout(c.Duration("embedding-timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	opts := []assessrec.SystemOption{assessrec.WithAIConfig(aiConfig)}
	if c.Bool("no-fallback") {
		opts = append(opts, assessrec.WithoutFallback())
	}
	if dbPath := c.String("db"); dbPath != "" {
		opts = append(opts, assessrec.WithSnapshotPath(dbPath))
	}

	return assessrec.NewSystem(opts...)
}

// loadCatalog reads the catalog file named by the flag, or falls back to
// the built-in sample.
func loadCatalog(c *cli.Context) ([]core.Assessment, error) {
	if path := c.String("catalog"); path != "" {
		return catalog.Load(path)
	}
	return catalog.Sample(), nil
}

// ensureCatalog makes the system ready, embedding the catalog unless a
// warm-started snapshot already covers it.
func ensureCatalog(ctx context.Context, c *cli.Context, sys *assessrec.System, rebuild bool) error {
	if sys.Ready() && !rebuild {
		return nil
	}
	assessments, err := loadCatalog(c)
	if err != nil {
		return err
	}
	return sys.LoadCatalog(ctx, assessments)
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	sys, err := newSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := ensureCatalog(ctx, c, sys, false); err != nil {
		return err
	}

	results, err := sys.Recommend(ctx, query, c.Int("top-k"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d recommendations\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s [%0.3f]\n   %s\n", i+1, hit.Assessment.Name, hit.Score, hit.Assessment.URL)
	}
	return nil
}

func analyzeCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	sys, err := assessrec.NewSystem()
	if err != nil {
		return err
	}
	defer sys.Close()

	it := sys.Analyze(query)
	fmt.Printf("Job level:           %s\n", it.JobLevel)
	fmt.Printf("Technical skills:    %s\n", strings.Join(it.TechnicalSkills, ", "))
	fmt.Printf("Soft skills:         %s\n", strings.Join(it.SoftSkills, ", "))
	fmt.Printf("Cognitive abilities: %s\n", strings.Join(it.CognitiveAbilities, ", "))
	fmt.Printf("Assessment types:    %s\n", strings.Join(it.AssessmentTypes, ", "))
	return nil
}

func batchCommand(c *cli.Context) error {
	ctx := context.Background()

	testSet, err := eval.LoadTestSet(c.String("queries"))
	if err != nil {
		return err
	}
	if len(testSet.Queries) == 0 {
		return fmt.Errorf("no queries found in %s", c.String("queries"))
	}

	sys, err := newSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := ensureCatalog(ctx, c, sys, false); err != nil {
		return err
	}

	predictions, err := runQueries(ctx, sys, testSet.Queries, c.Int("top-k"))
	if err != nil {
		return err
	}

	if err := writePredictions(c.String("output"), predictions); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote predictions for %d queries to %s\n", len(predictions), c.String("output"))
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	sys, err := newSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	assessments, err := loadCatalog(c)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sys.LoadCatalog(ctx, assessments); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Embedded %d assessments in %s, snapshot saved to %s\n",
		len(assessments), time.Since(start).Round(time.Millisecond), c.String("db"))
	return nil
}

func evalCommand(c *cli.Context) error {
	ctx := context.Background()

	testSet, err := eval.LoadTestSet(c.String("test-set"))
	if err != nil {
		return err
	}
	if len(testSet.Queries) == 0 {
		return fmt.Errorf("no queries found in %s", c.String("test-set"))
	}

	sys, err := newSystem(c)
	if err != nil {
		return err
	}
	defer sys.Close()

	if err := ensureCatalog(ctx, c, sys, false); err != nil {
		return err
	}

	k := c.Int("top-k")
	predictions, err := runQueries(ctx, sys, testSet.Queries, k)
	if err != nil {
		return err
	}

	if err := writePredictions(c.String("output"), predictions); err != nil {
		return err
	}

	fmt.Printf("Queries evaluated: %d\n", len(predictions))
	if len(testSet.GroundTruth) > 0 {
		meanRecall := eval.MeanRecallAtK(predictions, testSet.GroundTruth, k)
		fmt.Printf("Mean Recall@%d:     %.3f\n", k, meanRecall)
	} else {
		fmt.Println("No ground truth labels; skipping recall computation")
	}
	return nil
}

func runQueries(ctx context.Context, sys *assessrec.System, queries []string, topK int) ([]eval.Prediction, error) {
	predictions := make([]eval.Prediction, 0, len(queries))
	for _, query := range queries {
		results, err := sys.Recommend(ctx, query, topK)
		if err != nil {
			return nil, fmt.Errorf("recommend %q: %w", query, err)
		}
		urls := make([]string, len(results))
		for i, hit := range results {
			urls[i] = hit.Assessment.URL
		}
		predictions = append(predictions, eval.Prediction{Query: query, URLs: urls})
	}
	return predictions, nil
}

func writePredictions(path string, predictions []eval.Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create predictions file: %w", err)
	}
	defer f.Close()
	return eval.WritePredictionsCSV(f, predictions)
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
