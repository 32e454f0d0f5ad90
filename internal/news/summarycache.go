package news

import (
	"context"
	"log/slog"

	"github.com/tailoredscoops/scoop/internal/metrics"
	"github.com/tailoredscoops/scoop/internal/models"
)

// SummaryCache is a read-through cache over the summary store. There is no
// cross-process lock: two processes racing on the same fingerprint may both
// produce, and the later write wins. That duplicate work is accepted because
// the stored rows are interchangeable.
type SummaryCache struct {
	store SummaryStore
}

// NewSummaryCache creates a SummaryCache.
func NewSummaryCache(store SummaryStore) *SummaryCache {
	return &SummaryCache{store: store}
}

// GetOrCreate returns the summary stored under summaryID, or runs produce and
// persists its result. A failed cache lookup falls through to produce; a
// failed persist still returns the produced record.
func (c *SummaryCache) GetOrCreate(ctx context.Context, summaryID string, produce func(context.Context) (*models.SummaryRecord, error)) (*models.SummaryRecord, error) {
	rec, err := c.store.Get(ctx, summaryID)
	if err != nil {
		slog.Error("summary cache lookup failed", "summary_id", summaryID, "error", err)
	} else if rec != nil {
		metrics.SummaryCacheHitsTotal.Inc()
		slog.Info("serving cached summary", "summary_id", summaryID)
		return rec, nil
	}

	rec, err = produce(ctx)
	if err != nil {
		return nil, err
	}
	rec.SummaryID = summaryID

	if err := c.store.Upsert(ctx, rec); err != nil {
		slog.Error("summary cache write failed", "summary_id", summaryID, "error", err)
	}
	return rec, nil
}
