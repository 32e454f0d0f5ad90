package news

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tailoredscoops/scoop/internal/metrics"
	"github.com/tailoredscoops/scoop/internal/models"
)

const (
	// defaultMaxFeedEntries bounds how many listing entries are processed
	// per feed fetch.
	defaultMaxFeedEntries = 15
	// fallbackThreshold is the article count at or below which a keyword is
	// considered sparse and expanded through the similar-keywords service.
	fallbackThreshold = 5
)

// PipelineOptions tunes a Pipeline. Zero values fall back to defaults.
type PipelineOptions struct {
	// MaxFeedEntries caps entries taken from each feed listing.
	MaxFeedEntries int
	// ExcludedSources lists publisher names to drop, matched
	// case-insensitively.
	ExcludedSources []string
	// Now supplies the clock; tests override it.
	Now func() time.Time
}

// Pipeline turns a comma-separated keyword query into stored, ranked,
// content-bearing articles. Each feed is fetched at most once per cache
// window; article pages are extracted concurrently.
type Pipeline struct {
	store      ArticleStore
	feeds      FeedFetcher
	extractor  Extractor
	resolver   *Resolver
	expander   KeywordExpander
	archive    PageArchiver
	maxEntries int
	excluded   map[string]bool
	now        func() time.Time
}

// NewPipeline wires a Pipeline. archive may be nil to skip page archiving.
func NewPipeline(store ArticleStore, feeds FeedFetcher, extractor Extractor, resolver *Resolver, expander KeywordExpander, archive PageArchiver, opts PipelineOptions) *Pipeline {
	maxEntries := opts.MaxFeedEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxFeedEntries
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	excluded := make(map[string]bool, len(opts.ExcludedSources))
	for _, src := range opts.ExcludedSources {
		if src = strings.TrimSpace(src); src != "" {
			excluded[strings.ToLower(src)] = true
		}
	}
	return &Pipeline{
		store:      store,
		feeds:      feeds,
		extractor:  extractor,
		resolver:   resolver,
		expander:   expander,
		archive:    archive,
		maxEntries: maxEntries,
		excluded:   excluded,
		now:        now,
	}
}

// FetchArticles resolves each comma-separated keyword to a feed, fetches and
// extracts its articles, and returns the combined result in token order. A
// failing token contributes nothing but never aborts the others. The second
// return value is the query actually used, with sparse keywords replaced by
// their expansions.
func (p *Pipeline) FetchArticles(ctx context.Context, query string) ([]models.Article, string, error) {
	tokens := SplitQuery(query)

	var (
		results   []models.Article
		usedParts []string
	)
	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		articles, used := p.fetchToken(ctx, token)
		results = append(results, articles...)
		usedParts = append(usedParts, used)
	}
	return results, strings.Join(usedParts, ", "), nil
}

// fetchToken handles one keyword: primary feed fetch plus at most one
// fallback expansion when the keyword turns out sparse.
func (p *Pipeline) fetchToken(ctx context.Context, token string) ([]models.Article, string) {
	feedURL := p.resolver.Resolve(token)

	articles, err := p.fetchFeed(ctx, feedURL)
	if err != nil {
		slog.Error("feed fetch failed", "keyword", token, "error", err)
		articles = nil
	}
	if len(articles) > fallbackThreshold {
		return articles, token
	}

	expanded, err := p.expander.SimilarKeywords(ctx, token)
	if err != nil {
		slog.Error("keyword expansion failed", "keyword", token, "error", err)
		return articles, token
	}
	keywords := SplitQuery(expanded)
	if len(keywords) == 0 {
		slog.Info("keyword expansion exhausted", "keyword", token)
		return nil, token
	}
	metrics.KeywordExpansionsTotal.Inc()

	expandedURL, expandedQuery := p.resolver.ResolveExpanded(keywords)
	slog.Info("retrying sparse keyword with expansion", "keyword", token, "expanded", expandedQuery)

	more, err := p.fetchFeed(ctx, expandedURL)
	if err != nil {
		slog.Error("expanded feed fetch failed", "keyword", token, "error", err)
		return articles, token
	}
	return mergeByURL(articles, more), expandedQuery
}

// fetchFeed returns the articles for one feed URL, serving from the query
// cache when the feed was already fetched in the current window.
func (p *Pipeline) fetchFeed(ctx context.Context, feedURL string) ([]models.Article, error) {
	queryID := QueryFingerprint(feedURL, p.now())

	cached, err := p.store.FindByQuery(ctx, queryID)
	if err != nil {
		slog.Error("query cache lookup failed", "query_id", queryID, "error", err)
	}
	if len(cached) > 0 {
		metrics.QueryCacheHitsTotal.Inc()
		slog.Info("serving feed from query cache", "query_id", queryID, "articles", len(cached))
		return cached, nil
	}

	entries, err := p.feeds.Fetch(ctx, feedURL, p.maxEntries)
	if err != nil {
		metrics.FeedFetchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.FeedFetchesTotal.WithLabelValues("ok").Inc()

	usable := entries[:0:0]
	for _, e := range entries {
		if p.excluded[strings.ToLower(e.Source)] {
			continue
		}
		usable = append(usable, e)
	}

	// Rank is the entry's position in the listing, fixed before dispatch so
	// concurrent completion order cannot reorder results.
	results := make([]*models.Article, len(usable))
	var wg sync.WaitGroup
	for i, entry := range usable {
		wg.Add(1)
		go func(rank int, entry FeedEntry) {
			defer wg.Done()
			results[rank] = p.processEntry(ctx, entry, queryID, rank)
		}(i, entry)
	}
	wg.Wait()

	articles := make([]models.Article, 0, len(usable))
	for _, a := range results {
		if a != nil {
			articles = append(articles, *a)
		}
	}
	return articles, nil
}

// processEntry turns one feed entry into a stored article, reusing previously
// extracted content when the same feed link has been seen before. Returns nil
// when the page yields no content; the failure is logged for later analysis.
func (p *Pipeline) processEntry(ctx context.Context, entry FeedEntry, queryID string, rank int) *models.Article {
	now := p.now().UTC()

	if existing, err := p.store.FindBySourceLink(ctx, entry.Link); err != nil {
		slog.Error("source link lookup failed", "link", entry.Link, "error", err)
	} else if existing != nil && existing.Content != "" {
		a := *existing
		a.QueryID = queryID
		a.Rank = rank
		a.CreatedAt = now
		if err := p.store.Upsert(ctx, &a); err != nil {
			slog.Error("article upsert failed", "url", a.URL, "error", err)
		}
		return &a
	}

	ext, err := p.extractor.Extract(ctx, entry.Link)
	if err != nil || ext.Content == "" {
		metrics.ExtractionFailuresTotal.Inc()
		slog.Warn("content extraction failed", "link", entry.Link, "error", err)
		if err := p.store.RecordFailure(ctx, entry.Link); err != nil {
			slog.Error("failure record write failed", "link", entry.Link, "error", err)
		}
		return nil
	}

	if p.archive != nil {
		if err := p.archive.ArchivePage(ctx, ext.ResolvedURL, ext.RawHTML); err != nil {
			slog.Warn("page archive failed", "url", ext.ResolvedURL, "error", err)
		}
	}

	a := &models.Article{
		URL:        ext.ResolvedURL,
		SourceLink: entry.Link,
		Title:      entry.Title,
		Source:     entry.Source,
		Content:    ext.Content,
		CreatedAt:  now,
		QueryID:    queryID,
		Rank:       rank,
	}
	if !entry.PublishedAt.IsZero() {
		published := entry.PublishedAt
		a.PublishedAt = &published
	}

	// Persistence is best-effort: a failed write costs a refetch later, not
	// the current run's result.
	if err := p.store.Upsert(ctx, a); err != nil {
		slog.Error("article upsert failed", "url", a.URL, "error", err)
	}
	metrics.ArticlesIngestedTotal.Inc()
	return a
}

// mergeByURL concatenates two result sets, dropping later duplicates of the
// same canonical URL.
func mergeByURL(a, b []models.Article) []models.Article {
	seen := make(map[string]bool, len(a)+len(b))
	merged := make([]models.Article, 0, len(a)+len(b))
	for _, list := range [][]models.Article{a, b} {
		for _, article := range list {
			if seen[article.URL] {
				continue
			}
			seen[article.URL] = true
			merged = append(merged, article)
		}
	}
	return merged
}
