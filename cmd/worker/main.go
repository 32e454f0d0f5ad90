// Command worker runs the Scoop background ingestion pipeline. On a schedule
// it resolves the configured queries to feeds, fetches and extracts fresh
// articles, and warms the query cache so digest generation later in the day
// hits stored results instead of the network.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/tailoredscoops/scoop/internal/ai"
	"github.com/tailoredscoops/scoop/internal/config"
	"github.com/tailoredscoops/scoop/internal/db"
	"github.com/tailoredscoops/scoop/internal/metrics"
	"github.com/tailoredscoops/scoop/internal/models"
	"github.com/tailoredscoops/scoop/internal/news"
	"github.com/tailoredscoops/scoop/internal/storage"
)

func main() {
	// Local overrides; absence is fine in production.
	_ = godotenv.Load()

	// Structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("worker: starting scoop worker")

	cfg := config.Load()

	// Root context cancelled on shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("worker: database connection failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	articleStore := models.NewArticleStore(pool)

	storageClient, err := storage.NewClient(ctx, cfg.S3)
	if err != nil {
		slog.Error("worker: storage client creation failed", "err", err)
		os.Exit(1)
	}

	aiClient := ai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	pipeline := news.NewPipeline(
		articleStore,
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

	metrics.MustRegister(prometheus.DefaultRegisterer)
	if cfg.Metrics.Addr != "" {
		metrics.StartServer(ctx, cfg.Metrics.Addr)
	}

	runIngestion := func(jobCtx context.Context) {
		runID := uuid.New().String()
		start := time.Now()
		slog.Info("ingestion started", "run_id", runID, "queries", cfg.Pipeline.Queries)

		articles, usedQuery, err := pipeline.FetchArticles(jobCtx, cfg.Pipeline.Queries)
		if err != nil {
			slog.Error("ingestion failed", "run_id", runID, "err", err)
			return
		}

		slog.Info("ingestion complete",
			"run_id", runID,
			"articles", len(articles),
			"used_query", usedQuery,
			"duration", time.Since(start).String(),
		)
	}

	// Track in-flight jobs for graceful shutdown.
	var wg sync.WaitGroup

	c := cron.New()

	// Warm the query cache every hour to match the cache window.
	_, err = c.AddFunc("0 * * * *", func() {
		wg.Add(1)
		defer wg.Done()

		jobCtx, jobCancel := context.WithTimeout(ctx, 45*time.Minute)
		defer jobCancel()

		runIngestion(jobCtx)
	})
	if err != nil {
		slog.Error("worker: add ingestion cron", "err", err)
		os.Exit(1)
	}

	c.Start()
	slog.Info("worker: cron scheduler started", "jobs", len(c.Entries()))

	// Initial run on startup so the cache is warm before the first tick.
	wg.Add(1)
	go func() {
		defer wg.Done()

		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
			return
		}

		jobCtx, jobCancel := context.WithTimeout(ctx, 45*time.Minute)
		defer jobCancel()

		runIngestion(jobCtx)
	}()

	// ── Graceful Shutdown ──────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	slog.Info("worker: received shutdown signal", "signal", sig.String())

	slog.Info("worker: stopping cron scheduler")
	cronCtx := c.Stop()

	cancel()

	select {
	case <-cronCtx.Done():
		slog.Info("worker: cron scheduler stopped")
	case <-time.After(30 * time.Second):
		slog.Warn("worker: cron scheduler stop timed out")
	}

	// Wait for in-flight jobs, bounded.
	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()
	select {
	case <-doneCh:
		slog.Info("worker: all jobs finished")
	case <-time.After(30 * time.Second):
		slog.Warn("worker: job wait timed out")
	}

	slog.Info("worker: shutdown complete")
}
