package models

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Article represents one fetched news item. URL is the canonical,
// redirect-resolved address and is globally unique; SourceLink is the link the
// feed listing carried, which may differ for aggregator feeds.
type Article struct {
	URL         string     `json:"url"`
	SourceLink  string     `json:"source_link"`
	Title       string     `json:"title"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Content     string     `json:"content,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	QueryID     string     `json:"query_id"`
	Rank        int        `json:"rank"`
}

// ArticleStore provides data access methods for articles and the download
// failure log.
type ArticleStore struct {
	pool *pgxpool.Pool
}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore(pool *pgxpool.Pool) *ArticleStore {
	return &ArticleStore{pool: pool}
}

const articleColumns = `url, source_link, title, source, published_at, content, created_at, query_id, rank`

// scannable is an interface for pgx Row and Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanArticle(row scannable) (*Article, error) {
	var a Article
	var content *string
	if err := row.Scan(
		&a.URL, &a.SourceLink, &a.Title, &a.Source, &a.PublishedAt,
		&content, &a.CreatedAt, &a.QueryID, &a.Rank,
	); err != nil {
		return nil, err
	}
	if content != nil {
		a.Content = *content
	}
	return &a, nil
}

// FindByQuery returns every article stored under the given query fingerprint,
// most recently created first. An empty result means the query has not been
// run in the current cache window.
func (s *ArticleStore) FindByQuery(ctx context.Context, queryID string) ([]Article, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE query_id = $1
		ORDER BY created_at DESC
	`, queryID)
	if err != nil {
		return nil, fmt.Errorf("article find by query: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("article find by query scan: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// FindBySourceLink returns the stored article whose feed link matches, or nil
// if none exists. Used to reuse extracted content across queries without
// refetching the page.
func (s *ArticleStore) FindBySourceLink(ctx context.Context, link string) (*Article, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE source_link = $1
		ORDER BY published_at DESC NULLS LAST
		LIMIT 1
	`, link)
	a, err := scanArticle(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("article find by source link: %w", err)
	}
	return a, nil
}

// FindByURL returns the stored article with the given canonical URL, or nil.
func (s *ArticleStore) FindByURL(ctx context.Context, url string) (*Article, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE url = $1
	`, url)
	a, err := scanArticle(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("article find by url: %w", err)
	}
	return a, nil
}

// Upsert inserts or replaces the article keyed by URL. The later write wins
// wholesale; there are no merge semantics. Concurrent upserts for distinct
// URLs never conflict.
func (s *ArticleStore) Upsert(ctx context.Context, a *Article) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	var content *string
	if a.Content != "" {
		content = &a.Content
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO articles (url, source_link, title, source, published_at,
		                      content, created_at, query_id, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (url) DO UPDATE SET
			source_link  = EXCLUDED.source_link,
			title        = EXCLUDED.title,
			source       = EXCLUDED.source,
			published_at = EXCLUDED.published_at,
			content      = EXCLUDED.content,
			created_at   = EXCLUDED.created_at,
			query_id     = EXCLUDED.query_id,
			rank         = EXCLUDED.rank
	`, a.URL, a.SourceLink, a.Title, a.Source, a.PublishedAt,
		content, a.CreatedAt, a.QueryID, a.Rank)
	if err != nil {
		return fmt.Errorf("article upsert: %w", err)
	}
	return nil
}

// RecordFailure notes that content extraction failed for the given URL.
// Repeat failures overwrite the previous record, so the log never grows per
// retry.
func (s *ArticleStore) RecordFailure(ctx context.Context, url string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO article_download_fails (url, attempted_at)
		VALUES ($1, now())
		ON CONFLICT (url) DO UPDATE SET attempted_at = now()
	`, url)
	if err != nil {
		return fmt.Errorf("article record failure: %w", err)
	}
	return nil
}

// FailureExists reports whether a download failure is on record for the URL.
func (s *ArticleStore) FailureExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM article_download_fails WHERE url = $1)`, url,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("article failure exists: %w", err)
	}
	return exists, nil
}
