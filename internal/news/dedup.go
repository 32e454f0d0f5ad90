package news

import (
	"context"
	"log/slog"

	"github.com/tailoredscoops/scoop/internal/models"
)

// Dedup filters candidate articles against a recipient's shown-log so the
// same article is never delivered to the same recipient twice.
type Dedup struct {
	log ShownLog
}

// NewDedup creates a Dedup backed by the given shown-log.
func NewDedup(log ShownLog) *Dedup {
	return &Dedup{log: log}
}

// FilterUnseen returns the candidates the recipient has not been shown yet,
// preserving input order, and marks every candidate as shown. Both the lookup
// and the mark are best-effort: a failed lookup filters nothing, and a failed
// mark still returns the filtered set. The shown-log only ever grows.
func (d *Dedup) FilterUnseen(ctx context.Context, email string, candidates []models.Article) []models.Article {
	shown, err := d.log.ShownURLs(ctx, email)
	if err != nil {
		slog.Error("shown log lookup failed", "email", email, "error", err)
		shown = map[string]bool{}
	}

	unseen := make([]models.Article, 0, len(candidates))
	urls := make([]string, 0, len(candidates))
	for _, a := range candidates {
		urls = append(urls, a.URL)
		if !shown[a.URL] {
			unseen = append(unseen, a)
		}
	}

	if err := d.log.MarkShown(ctx, email, urls); err != nil {
		slog.Error("shown log write failed", "email", email, "error", err)
	}
	return unseen
}
