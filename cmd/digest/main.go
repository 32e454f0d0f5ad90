// Command digest generates one recipient's newsletter summary for today and
// prints it as JSON. Summaries are cached per (keywords, day), so rerunning
// for the same keywords is cheap.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tailoredscoops/scoop/internal/ai"
	"github.com/tailoredscoops/scoop/internal/config"
	"github.com/tailoredscoops/scoop/internal/db"
	"github.com/tailoredscoops/scoop/internal/models"
	"github.com/tailoredscoops/scoop/internal/news"
	"github.com/tailoredscoops/scoop/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	email := flag.String("email", "", "recipient email address")
	keywords := flag.String("keywords", "", "comma-separated keywords, empty for the general digest")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	if *email == "" {
		slog.Error("digest: -email is required")
		os.Exit(2)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("digest: database connection failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	storageClient, err := storage.NewClient(ctx, cfg.S3)
	if err != nil {
		slog.Error("digest: storage client creation failed", "err", err)
		os.Exit(1)
	}

	aiClient := ai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	pipeline := news.NewPipeline(
		models.NewArticleStore(pool),
		news.NewFeedClient(30*time.Second),
		news.NewContentExtractor(cfg.Pipeline.ExtractTimeout),
		news.NewResolver(),
		aiClient,
		storageClient,
		news.PipelineOptions{
			MaxFeedEntries:  cfg.Pipeline.MaxFeedEntries,
			ExcludedSources: cfg.Pipeline.ExcludedSources,
		},
	)

	digest := news.NewDigest(
		pipeline,
		news.NewDedup(models.NewShownLogStore(pool)),
		news.NewSummaryCache(models.NewSummaryStore(pool)),
		aiClient,
	)

	rec, err := digest.SummaryFor(ctx, *email, *keywords)
	if err != nil {
		if errors.Is(err, news.ErrNotEnoughContent) {
			slog.Warn("digest: not enough fresh articles, skipping", "email", *email)
			os.Exit(0)
		}
		slog.Error("digest: summary generation failed", "err", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		slog.Error("digest: encode summary", "err", err)
		os.Exit(1)
	}
}
