package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tailoredscoops/scoop/internal/models"
)

var testClock = func() time.Time {
	return time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC)
}

type fakeStore struct {
	mu           sync.Mutex
	byQuery      map[string][]models.Article
	bySourceLink map[string]models.Article
	failures     map[string]int
	upserts      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byQuery:      make(map[string][]models.Article),
		bySourceLink: make(map[string]models.Article),
		failures:     make(map[string]int),
	}
}

func (s *fakeStore) FindByQuery(_ context.Context, queryID string) ([]models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Article(nil), s.byQuery[queryID]...), nil
}

func (s *fakeStore) FindBySourceLink(_ context.Context, link string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.bySourceLink[link]; ok {
		copied := a
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeStore) Upsert(_ context.Context, a *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	s.byQuery[a.QueryID] = append(s.byQuery[a.QueryID], *a)
	s.bySourceLink[a.SourceLink] = *a
	return nil
}

func (s *fakeStore) RecordFailure(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[url]++
	return nil
}

type fakeFeed struct {
	mu    sync.Mutex
	feeds map[string][]FeedEntry
	errs  map[string]error
	calls map[string]int
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{
		feeds: make(map[string][]FeedEntry),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (f *fakeFeed) Fetch(_ context.Context, feedURL string, limit int) ([]FeedEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[feedURL]++
	if err := f.errs[feedURL]; err != nil {
		return nil, err
	}
	entries := f.feeds[feedURL]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *fakeFeed) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type fakeExtractor struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls int
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{fail: make(map[string]bool)}
}

func (e *fakeExtractor) Extract(_ context.Context, link string) (*Extraction, error) {
	e.mu.Lock()
	e.calls++
	fail := e.fail[link]
	e.mu.Unlock()
	if fail {
		return nil, ErrNoContent
	}
	return &Extraction{
		Content:     "body of " + link,
		ResolvedURL: link + "?final",
		RawHTML:     []byte("<html></html>"),
	}, nil
}

type fakeExpander struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (x *fakeExpander) SimilarKeywords(_ context.Context, _ string) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls++
	return x.response, x.err
}

func makeEntries(n int, prefix string) []FeedEntry {
	entries := make([]FeedEntry, n)
	for i := range entries {
		entries[i] = FeedEntry{
			Link:   fmt.Sprintf("https://%s.example.com/%d", prefix, i),
			Title:  fmt.Sprintf("story %d - The Post", i),
			Source: "The Post",
		}
	}
	return entries
}

func newTestPipeline(store *fakeStore, feed *fakeFeed, extractor *fakeExtractor, expander *fakeExpander, opts PipelineOptions) *Pipeline {
	opts.Now = testClock
	return NewPipeline(store, feed, extractor, NewResolver(), expander, nil, opts)
}

func TestFetchArticlesRanksAndIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{}

	feedURL := NewResolver().Resolve("us")
	entries := makeEntries(7, "us")
	feed.feeds[feedURL] = entries
	extractor.fail[entries[2].Link] = true

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, usedQuery, err := p.FetchArticles(context.Background(), "us")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if usedQuery != "us" {
		t.Errorf("unexpected used query: %q", usedQuery)
	}
	if len(articles) != 6 {
		t.Fatalf("got %d articles, want 6", len(articles))
	}

	// Rank reflects the listing position, not completion order, and the
	// failed entry's slot stays empty.
	wantRanks := []int{0, 1, 3, 4, 5, 6}
	for i, a := range articles {
		if a.Rank != wantRanks[i] {
			t.Errorf("article %d: rank %d, want %d", i, a.Rank, wantRanks[i])
		}
		if a.Content == "" {
			t.Errorf("article %d has no content", i)
		}
		if !strings.HasSuffix(a.URL, "?final") {
			t.Errorf("article %d should carry the resolved URL, got %s", i, a.URL)
		}
	}

	if store.failures[entries[2].Link] != 1 {
		t.Error("extraction failure should be recorded against the feed link")
	}
	if expander.calls != 0 {
		t.Error("expansion should not run when enough articles were found")
	}
}

func TestFetchArticlesServedFromQueryCache(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{}

	feedURL := NewResolver().Resolve("us")
	queryID := QueryFingerprint(feedURL, testClock())
	for i := 0; i < 6; i++ {
		store.byQuery[queryID] = append(store.byQuery[queryID], models.Article{
			URL:     fmt.Sprintf("https://cached.example.com/%d", i),
			Content: "cached body",
			QueryID: queryID,
			Rank:    i,
		})
	}

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, _, err := p.FetchArticles(context.Background(), "us")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 6 {
		t.Fatalf("got %d articles, want 6 from cache", len(articles))
	}
	if feed.totalCalls() != 0 {
		t.Error("cached query should not refetch the feed")
	}
	if extractor.calls != 0 {
		t.Error("cached query should not extract pages")
	}
}

func TestFetchArticlesReusesExtractedContent(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{}

	feedURL := NewResolver().Resolve("us")
	entries := makeEntries(6, "us")
	feed.feeds[feedURL] = entries

	// The first entry's page was already extracted under an older query.
	store.bySourceLink[entries[0].Link] = models.Article{
		URL:        entries[0].Link + "?final",
		SourceLink: entries[0].Link,
		Title:      entries[0].Title,
		Content:    "previously extracted body",
		QueryID:    "old-query",
		Rank:       9,
	}

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, _, err := p.FetchArticles(context.Background(), "us")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 6 {
		t.Fatalf("got %d articles, want 6", len(articles))
	}
	if extractor.calls != 5 {
		t.Errorf("extractor ran %d times, want 5 (one page reused)", extractor.calls)
	}

	reused := articles[0]
	if reused.Content != "previously extracted body" {
		t.Error("stored content should be reused")
	}
	if reused.Rank != 0 {
		t.Errorf("reused article should take the new rank, got %d", reused.Rank)
	}
	queryID := QueryFingerprint(feedURL, testClock())
	if reused.QueryID != queryID {
		t.Error("reused article should be rekeyed to the current query")
	}
}

func TestFetchArticlesFallbackExpansion(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{response: "SCOTUS, judiciary"}

	resolver := NewResolver()
	primaryURL := resolver.Resolve("niche topic")
	primary := makeEntries(2, "niche")
	feed.feeds[primaryURL] = primary

	expandedURL, expandedQuery := resolver.ResolveExpanded([]string{"SCOTUS", "judiciary"})
	expanded := makeEntries(6, "expanded")
	// One expanded entry points at a page already seen in the primary fetch.
	expanded[5].Link = primary[0].Link
	feed.feeds[expandedURL] = expanded

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, usedQuery, err := p.FetchArticles(context.Background(), "niche topic")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if expander.calls != 1 {
		t.Errorf("expansion ran %d times, want exactly 1", expander.calls)
	}
	if usedQuery != expandedQuery {
		t.Errorf("used query should be the expansion, got %q", usedQuery)
	}
	// 2 primary + 6 expanded, one shared page deduplicated.
	if len(articles) != 7 {
		t.Errorf("got %d articles, want 7 after merge and dedup", len(articles))
	}
	if feed.calls[expandedURL] != 1 {
		t.Error("expanded feed should be fetched once")
	}
}

func TestFetchArticlesExpansionExhausted(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{response: ""}

	resolver := NewResolver()
	primaryURL := resolver.Resolve("niche topic")
	feed.feeds[primaryURL] = makeEntries(2, "niche")

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, usedQuery, err := p.FetchArticles(context.Background(), "niche topic")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("exhausted expansion should yield an empty result, got %d", len(articles))
	}
	if usedQuery != "niche topic" {
		t.Errorf("unexpected used query: %q", usedQuery)
	}
	if expander.calls != 1 {
		t.Errorf("expansion ran %d times, want exactly 1", expander.calls)
	}
}

func TestFetchArticlesTokenIsolation(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{response: ""}

	resolver := NewResolver()
	feed.errs[resolver.Resolve("us")] = errors.New("upstream down")
	feed.feeds[resolver.Resolve("business")] = makeEntries(6, "biz")

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{})

	articles, usedQuery, err := p.FetchArticles(context.Background(), "us, business")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 6 {
		t.Fatalf("got %d articles, want 6 from the healthy token", len(articles))
	}
	if !strings.Contains(usedQuery, "business") {
		t.Errorf("unexpected used query: %q", usedQuery)
	}

	// Token order holds: all results belong to the second token's query.
	queryID := QueryFingerprint(resolver.Resolve("business"), testClock())
	for i, a := range articles {
		if a.QueryID != queryID {
			t.Errorf("article %d belongs to the wrong query", i)
		}
	}
}

func TestFetchArticlesExcludesSources(t *testing.T) {
	store := newFakeStore()
	feed := newFakeFeed()
	extractor := newFakeExtractor()
	expander := &fakeExpander{}

	feedURL := NewResolver().Resolve("us")
	entries := makeEntries(8, "us")
	entries[1].Source = "Tabloid Daily"
	entries[4].Source = "TABLOID DAILY"
	feed.feeds[feedURL] = entries

	p := newTestPipeline(store, feed, extractor, expander, PipelineOptions{
		ExcludedSources: []string{"Tabloid Daily"},
	})

	articles, _, err := p.FetchArticles(context.Background(), "us")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 6 {
		t.Fatalf("got %d articles, want 6 after exclusion", len(articles))
	}
	for _, a := range articles {
		if strings.EqualFold(a.Source, "Tabloid Daily") {
			t.Errorf("excluded source leaked through: %s", a.URL)
		}
	}
}
