package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SummaryRecord is one generated newsletter summary, keyed by the fingerprint
// of (keywords, calendar day). Titles and EncodedURLs are parallel lists.
type SummaryRecord struct {
	SummaryID   string    `json:"summary_id"`
	CreatedAt   time.Time `json:"created_at"`
	Summary     string    `json:"summary"`
	Titles      []string  `json:"titles"`
	EncodedURLs []string  `json:"encoded_urls"`
	Keywords    string    `json:"kw"`
}

// SummaryStore provides data access methods for cached summaries.
type SummaryStore struct {
	pool *pgxpool.Pool
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(pool *pgxpool.Pool) *SummaryStore {
	return &SummaryStore{pool: pool}
}

// Get returns the summary stored under the fingerprint, or nil if none exists.
func (s *SummaryStore) Get(ctx context.Context, summaryID string) (*SummaryRecord, error) {
	var rec SummaryRecord
	var titlesRaw, urlsRaw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT summary_id, created_at, summary, titles, encoded_urls, kw
		FROM summaries
		WHERE summary_id = $1
	`, summaryID).Scan(&rec.SummaryID, &rec.CreatedAt, &rec.Summary, &titlesRaw, &urlsRaw, &rec.Keywords)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("summary get: %w", err)
	}
	if err := json.Unmarshal(titlesRaw, &rec.Titles); err != nil {
		return nil, fmt.Errorf("summary get: unmarshal titles: %w", err)
	}
	if err := json.Unmarshal(urlsRaw, &rec.EncodedURLs); err != nil {
		return nil, fmt.Errorf("summary get: unmarshal urls: %w", err)
	}
	return &rec, nil
}

// Upsert stores the record under its fingerprint, replacing any existing row.
// Concurrent writers for the same fingerprint resolve last-writer-wins.
func (s *SummaryStore) Upsert(ctx context.Context, rec *SummaryRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	titles, err := json.Marshal(emptyIfNil(rec.Titles))
	if err != nil {
		return fmt.Errorf("summary upsert: marshal titles: %w", err)
	}
	urls, err := json.Marshal(emptyIfNil(rec.EncodedURLs))
	if err != nil {
		return fmt.Errorf("summary upsert: marshal urls: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO summaries (summary_id, created_at, summary, titles, encoded_urls, kw)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (summary_id) DO UPDATE SET
			created_at   = EXCLUDED.created_at,
			summary      = EXCLUDED.summary,
			titles       = EXCLUDED.titles,
			encoded_urls = EXCLUDED.encoded_urls,
			kw           = EXCLUDED.kw
	`, rec.SummaryID, rec.CreatedAt, rec.Summary, titles, urls, rec.Keywords)
	if err != nil {
		return fmt.Errorf("summary upsert: %w", err)
	}
	return nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
