package news

import (
	"context"
	"sort"
	"time"

	"github.com/tailoredscoops/scoop/internal/models"
)

const (
	// defaultQuery feeds the general digest when a recipient has no
	// keywords of their own.
	defaultQuery = "us, business"
	// minUsableArticles is the smallest fresh article count worth
	// summarizing; at or below it the digest is skipped.
	minUsableArticles = 4
	// maxSummaryArticles caps how many articles feed one summary.
	maxSummaryArticles = 8
)

// Digest assembles one recipient's daily newsletter: fetch, rank, dedup,
// summarize, cache.
type Digest struct {
	pipeline   *Pipeline
	dedup      *Dedup
	cache      *SummaryCache
	summarizer Summarizer
	now        func() time.Time
}

// NewDigest wires a Digest service.
func NewDigest(pipeline *Pipeline, dedup *Dedup, cache *SummaryCache, summarizer Summarizer) *Digest {
	return &Digest{
		pipeline:   pipeline,
		dedup:      dedup,
		cache:      cache,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// SummaryFor returns the recipient's summary for today, producing and caching
// it on first request. keywords may be empty, selecting the general digest.
// Returns ErrNotEnoughContent when too few fresh articles remain after dedup.
func (d *Digest) SummaryFor(ctx context.Context, email, keywords string) (*models.SummaryRecord, error) {
	summaryID := SummaryFingerprint(keywords, d.now())

	return d.cache.GetOrCreate(ctx, summaryID, func(ctx context.Context) (*models.SummaryRecord, error) {
		query := keywords
		if query == "" {
			query = defaultQuery
		}

		articles, usedQuery, err := d.pipeline.FetchArticles(ctx, query)
		if err != nil {
			return nil, err
		}

		// Stable rank sort interleaves the keyword blocks so the top story
		// of every feed leads the digest.
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Rank < articles[j].Rank
		})

		unseen := d.dedup.FilterUnseen(ctx, email, articles)
		if len(unseen) <= minUsableArticles {
			return nil, ErrNotEnoughContent
		}
		if len(unseen) > maxSummaryArticles {
			unseen = unseen[:maxSummaryArticles]
		}

		summary, titles, err := d.summarizer.Summarize(ctx, unseen)
		if err != nil {
			return nil, err
		}

		encoded := make([]string, len(unseen))
		for i, a := range unseen {
			encoded[i] = EncodeArticleURL(a.URL)
		}

		return &models.SummaryRecord{
			CreatedAt:   d.now().UTC(),
			Summary:     summary,
			Titles:      titles,
			EncodedURLs: encoded,
			Keywords:    usedQuery,
		}, nil
	})
}
