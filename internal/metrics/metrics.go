// Package metrics exposes Prometheus counters for the ingestion pipeline and
// an optional /metrics server.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	// FeedFetchesTotal counts feed listing fetches by outcome.
	FeedFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scoop_feed_fetches_total",
		Help: "Feed listing fetches, labelled by result.",
	}, []string{"result"})

	// QueryCacheHitsTotal counts feed fetches avoided by the query cache.
	QueryCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoop_query_cache_hits_total",
		Help: "Feed fetches served from the query fingerprint cache.",
	})

	// ArticlesIngestedTotal counts articles stored with extracted content.
	ArticlesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoop_articles_ingested_total",
		Help: "Articles ingested with extracted content.",
	})

	// ExtractionFailuresTotal counts pages that yielded no usable content.
	ExtractionFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoop_extraction_failures_total",
		Help: "Article pages that failed content extraction.",
	})

	// KeywordExpansionsTotal counts fallback keyword expansions.
	KeywordExpansionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoop_keyword_expansions_total",
		Help: "Sparse keywords expanded through the similar-keywords service.",
	})

	// SummaryCacheHitsTotal counts summaries served from the cache.
	SummaryCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scoop_summary_cache_hits_total",
		Help: "Summaries served from the summary cache.",
	})
)

// MustRegister registers the package's collectors with the given registerer.
// Safe to call more than once.
func MustRegister(registerer prometheus.Registerer) {
	registerOnce.Do(func() {
		registerer.MustRegister(
			FeedFetchesTotal,
			QueryCacheHitsTotal,
			ArticlesIngestedTotal,
			ExtractionFailuresTotal,
			KeywordExpansionsTotal,
			SummaryCacheHitsTotal,
		)
	})
}

// StartServer serves /metrics on addr until ctx is cancelled.
func StartServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server shutdown failed", "error", err)
		}
	}()

	go func() {
		slog.Info("metrics server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()
}
