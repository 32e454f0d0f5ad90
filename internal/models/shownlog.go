package models

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ShownLogStore records which article URLs have already been delivered to a
// recipient. The set only ever grows; there is no eviction.
type ShownLogStore struct {
	pool *pgxpool.Pool
}

// NewShownLogStore creates a new ShownLogStore.
func NewShownLogStore(pool *pgxpool.Pool) *ShownLogStore {
	return &ShownLogStore{pool: pool}
}

// ShownURLs returns the recipient's shown-set. A recipient with no log yet
// yields an empty map.
func (s *ShownLogStore) ShownURLs(ctx context.Context, email string) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT url FROM email_article_log WHERE email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("shown log list: %w", err)
	}
	defer rows.Close()

	shown := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("shown log scan: %w", err)
		}
		shown[url] = true
	}
	return shown, rows.Err()
}

// MarkShown appends the given URLs to the recipient's shown-set. URLs already
// present are left untouched, so the call is idempotent.
func (s *ShownLogStore) MarkShown(ctx context.Context, email string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO email_article_log (email, url)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (email, url) DO NOTHING
	`, email, urls)
	if err != nil {
		return fmt.Errorf("shown log mark: %w", err)
	}
	return nil
}
