package news

import (
	"context"
	"errors"
	"testing"

	"github.com/tailoredscoops/scoop/internal/models"
)

type fakeSummaryStore struct {
	records map[string]*models.SummaryRecord
	getErr  error
	putErr  error
	puts    int
}

func newFakeSummaryStore() *fakeSummaryStore {
	return &fakeSummaryStore{records: make(map[string]*models.SummaryRecord)}
}

func (f *fakeSummaryStore) Get(_ context.Context, id string) (*models.SummaryRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records[id], nil
}

func (f *fakeSummaryStore) Upsert(_ context.Context, rec *models.SummaryRecord) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.records[rec.SummaryID] = rec
	return nil
}

func TestGetOrCreateProducesOncePerFingerprint(t *testing.T) {
	store := newFakeSummaryStore()
	cache := NewSummaryCache(store)
	ctx := context.Background()

	produced := 0
	produce := func(context.Context) (*models.SummaryRecord, error) {
		produced++
		return &models.SummaryRecord{Summary: "today's scoops"}, nil
	}

	first, err := cache.GetOrCreate(ctx, "fp-1", produce)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.SummaryID != "fp-1" {
		t.Errorf("record should carry the fingerprint, got %q", first.SummaryID)
	}

	second, err := cache.GetOrCreate(ctx, "fp-1", produce)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if produced != 1 {
		t.Errorf("producer ran %d times, want 1", produced)
	}
	if second.Summary != first.Summary {
		t.Error("cached record should match the produced one")
	}
}

func TestGetOrCreateDistinctFingerprints(t *testing.T) {
	store := newFakeSummaryStore()
	cache := NewSummaryCache(store)
	ctx := context.Background()

	produced := 0
	produce := func(context.Context) (*models.SummaryRecord, error) {
		produced++
		return &models.SummaryRecord{Summary: "s"}, nil
	}

	cache.GetOrCreate(ctx, "fp-1", produce)
	cache.GetOrCreate(ctx, "fp-2", produce)
	if produced != 2 {
		t.Errorf("distinct fingerprints should each produce, got %d runs", produced)
	}
}

func TestGetOrCreateProducerErrorPropagates(t *testing.T) {
	cache := NewSummaryCache(newFakeSummaryStore())

	wantErr := errors.New("summarizer down")
	_, err := cache.GetOrCreate(context.Background(), "fp-1", func(context.Context) (*models.SummaryRecord, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected producer error, got %v", err)
	}
}

func TestGetOrCreateLookupFailureFallsThrough(t *testing.T) {
	store := newFakeSummaryStore()
	store.getErr = errors.New("db down")
	cache := NewSummaryCache(store)

	rec, err := cache.GetOrCreate(context.Background(), "fp-1", func(context.Context) (*models.SummaryRecord, error) {
		return &models.SummaryRecord{Summary: "fresh"}, nil
	})
	if err != nil {
		t.Fatalf("lookup failure should fall through to produce: %v", err)
	}
	if rec.Summary != "fresh" {
		t.Error("produced record should be returned")
	}
}

func TestGetOrCreateWriteFailureStillReturns(t *testing.T) {
	store := newFakeSummaryStore()
	store.putErr = errors.New("db down")
	cache := NewSummaryCache(store)

	rec, err := cache.GetOrCreate(context.Background(), "fp-1", func(context.Context) (*models.SummaryRecord, error) {
		return &models.SummaryRecord{Summary: "fresh"}, nil
	})
	if err != nil {
		t.Fatalf("a failed cache write should not fail the call: %v", err)
	}
	if rec == nil || rec.Summary != "fresh" {
		t.Error("produced record should be returned despite the write failure")
	}
	if store.puts != 1 {
		t.Error("the write should have been attempted")
	}
}
