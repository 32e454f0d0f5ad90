package news

import (
	"context"
	"errors"
	"testing"

	"github.com/tailoredscoops/scoop/internal/models"
)

type fakeShownLog struct {
	shown    map[string]map[string]bool
	listErr  error
	markErr  error
	markUrls []string
}

func newFakeShownLog() *fakeShownLog {
	return &fakeShownLog{shown: make(map[string]map[string]bool)}
}

func (f *fakeShownLog) ShownURLs(_ context.Context, email string) (map[string]bool, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make(map[string]bool, len(f.shown[email]))
	for url := range f.shown[email] {
		out[url] = true
	}
	return out, nil
}

func (f *fakeShownLog) MarkShown(_ context.Context, email string, urls []string) error {
	f.markUrls = append(f.markUrls, urls...)
	if f.markErr != nil {
		return f.markErr
	}
	set := f.shown[email]
	if set == nil {
		set = make(map[string]bool)
		f.shown[email] = set
	}
	for _, u := range urls {
		set[u] = true
	}
	return nil
}

func articlesWithURLs(urls ...string) []models.Article {
	out := make([]models.Article, len(urls))
	for i, u := range urls {
		out[i] = models.Article{URL: u, Content: "body"}
	}
	return out
}

func TestFilterUnseenNeverRepeats(t *testing.T) {
	log := newFakeShownLog()
	d := NewDedup(log)
	ctx := context.Background()

	first := d.FilterUnseen(ctx, "u@example.com", articlesWithURLs("a", "b", "c"))
	if len(first) != 3 {
		t.Fatalf("fresh recipient should see all 3, got %d", len(first))
	}

	// Second digest overlaps on "b" and "c".
	second := d.FilterUnseen(ctx, "u@example.com", articlesWithURLs("b", "c", "d"))
	if len(second) != 1 || second[0].URL != "d" {
		t.Fatalf("only the new article should remain, got %v", second)
	}

	// The shown-set only grows.
	third := d.FilterUnseen(ctx, "u@example.com", articlesWithURLs("a", "d"))
	if len(third) != 0 {
		t.Errorf("everything was already shown, got %d", len(third))
	}
}

func TestFilterUnseenIsPerRecipient(t *testing.T) {
	log := newFakeShownLog()
	d := NewDedup(log)
	ctx := context.Background()

	d.FilterUnseen(ctx, "one@example.com", articlesWithURLs("a", "b"))

	other := d.FilterUnseen(ctx, "two@example.com", articlesWithURLs("a", "b"))
	if len(other) != 2 {
		t.Errorf("another recipient's log should not apply, got %d", len(other))
	}
}

func TestFilterUnseenPreservesOrder(t *testing.T) {
	log := newFakeShownLog()
	log.shown["u@example.com"] = map[string]bool{"b": true}
	d := NewDedup(log)

	unseen := d.FilterUnseen(context.Background(), "u@example.com", articlesWithURLs("a", "b", "c"))
	if len(unseen) != 2 || unseen[0].URL != "a" || unseen[1].URL != "c" {
		t.Errorf("input order should be preserved, got %v", unseen)
	}
}

func TestFilterUnseenLookupFailureFiltersNothing(t *testing.T) {
	log := newFakeShownLog()
	log.listErr = errors.New("db down")
	d := NewDedup(log)

	unseen := d.FilterUnseen(context.Background(), "u@example.com", articlesWithURLs("a", "b"))
	if len(unseen) != 2 {
		t.Errorf("a failed lookup should filter nothing, got %d", len(unseen))
	}
}

func TestFilterUnseenMarkFailureStillReturns(t *testing.T) {
	log := newFakeShownLog()
	log.markErr = errors.New("db down")
	d := NewDedup(log)

	unseen := d.FilterUnseen(context.Background(), "u@example.com", articlesWithURLs("a"))
	if len(unseen) != 1 {
		t.Errorf("a failed mark should not drop results, got %d", len(unseen))
	}
	if len(log.markUrls) != 1 {
		t.Error("mark should still have been attempted")
	}
}

func TestFilterUnseenMarksAllCandidates(t *testing.T) {
	log := newFakeShownLog()
	log.shown["u@example.com"] = map[string]bool{"a": true}
	d := NewDedup(log)

	d.FilterUnseen(context.Background(), "u@example.com", articlesWithURLs("a", "b"))
	// Already-seen candidates are marked again; the write is idempotent.
	if len(log.markUrls) != 2 {
		t.Errorf("all candidates should be marked, got %v", log.markUrls)
	}
}
