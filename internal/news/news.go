// Package news implements the Scoop ingestion pipeline: keyword-to-feed
// resolution, per-query result caching, concurrent article content
// extraction, per-recipient dedup, and the daily summary cache.
//
// The pipeline is assembled from small collaborators injected through the
// interfaces below, so every stage can be exercised in isolation.
package news

import (
	"context"
	"errors"
	"time"

	"github.com/tailoredscoops/scoop/internal/models"
)

// ErrNoContent is returned by an Extractor when the page yields no article
// paragraphs.
var ErrNoContent = errors.New("news: no article content found")

// ErrNotEnoughContent is returned when too few fresh articles remain to build
// a summary worth sending.
var ErrNotEnoughContent = errors.New("news: not enough fresh articles to summarize")

// FeedEntry is one item of an upstream feed listing, either RSS/Atom or a
// provider JSON listing.
type FeedEntry struct {
	Link        string
	Title       string
	Source      string
	PublishedAt time.Time
}

// Extraction is the result of fetching and isolating one article page.
type Extraction struct {
	// Content is the concatenated paragraph text of the article body.
	Content string
	// ResolvedURL is the final URL after redirects; aggregator feeds link
	// through interstitial hosts, so this usually differs from the feed link.
	ResolvedURL string
	// RawHTML is the page as fetched, for optional archiving.
	RawHTML []byte
}

// ArticleStore is the narrow persistence surface the pipeline needs.
type ArticleStore interface {
	FindByQuery(ctx context.Context, queryID string) ([]models.Article, error)
	FindBySourceLink(ctx context.Context, link string) (*models.Article, error)
	Upsert(ctx context.Context, a *models.Article) error
	RecordFailure(ctx context.Context, url string) error
}

// FeedFetcher retrieves a bounded feed listing.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]FeedEntry, error)
}

// Extractor fetches one article page and isolates its body text.
type Extractor interface {
	Extract(ctx context.Context, url string) (*Extraction, error)
}

// KeywordExpander generates similar keywords for a sparse search term. An
// empty result is a valid terminal outcome, not an error.
type KeywordExpander interface {
	SimilarKeywords(ctx context.Context, keyword string) (string, error)
}

// PageArchiver stores raw fetched pages. Implementations are best-effort and
// must never be required for ingestion to succeed.
type PageArchiver interface {
	ArchivePage(ctx context.Context, pageURL string, html []byte) error
}

// ShownLog is the persistence surface of the per-recipient dedup ledger.
type ShownLog interface {
	ShownURLs(ctx context.Context, email string) (map[string]bool, error)
	MarkShown(ctx context.Context, email string, urls []string) error
}

// SummaryStore is the persistence surface of the summary cache.
type SummaryStore interface {
	Get(ctx context.Context, summaryID string) (*models.SummaryRecord, error)
	Upsert(ctx context.Context, rec *models.SummaryRecord) error
}

// Summarizer turns a ranked article set into newsletter prose with one title
// per article used. Summarization runs out of process; this is its contract.
type Summarizer interface {
	Summarize(ctx context.Context, articles []models.Article) (summary string, titles []string, err error)
}
