package news

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// ContentExtractor fetches article pages with browser-like headers and
// isolates the body text. Pages without a recognizable article container are
// treated as failed extractions.
type ContentExtractor struct {
	userAgent string
	timeout   time.Duration
}

// NewContentExtractor creates an extractor with the given per-page fetch
// timeout.
func NewContentExtractor(timeout time.Duration) *ContentExtractor {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &ContentExtractor{
		userAgent: feedUserAgent,
		timeout:   timeout,
	}
}

// newCollector creates a fresh collector per page to avoid state leakage
// between extractions.
func (e *ContentExtractor) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(e.userAgent),
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(e.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.5")
	})

	return c
}

// Extract fetches the page at pageURL, following redirects, and returns its
// article text together with the final post-redirect URL and the raw body.
// Returns ErrNoContent when the page has no article container or the
// container holds no paragraph text.
func (e *ContentExtractor) Extract(ctx context.Context, pageURL string) (*Extraction, error) {
	c := e.newCollector()

	var (
		mu       sync.Mutex
		body     []byte
		resolved string
		fetchErr error
	)

	c.OnResponse(func(r *colly.Response) {
		mu.Lock()
		body = r.Body
		resolved = r.Request.URL.String()
		mu.Unlock()
	})

	c.OnError(func(r *colly.Response, err error) {
		mu.Lock()
		fetchErr = fmt.Errorf("extractor: fetch %s: %w", pageURL, err)
		mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.Visit(pageURL); err != nil {
			mu.Lock()
			if fetchErr == nil {
				fetchErr = fmt.Errorf("extractor: visit %s: %w", pageURL, err)
			}
			mu.Unlock()
		}
		c.Wait()
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	if fetchErr != nil {
		return nil, fetchErr
	}

	content, err := articleText(body)
	if err != nil {
		return nil, err
	}

	slog.Debug("extracted article", "url", pageURL, "resolved", resolved, "content_len", len(content))

	return &Extraction{
		Content:     content,
		ResolvedURL: resolved,
		RawHTML:     body,
	}, nil
}

// articleText isolates the article body from a fetched page. It prefers
// semantic <article> containers, falling back to any element whose class
// mentions "article", and concatenates the paragraph text found inside.
func articleText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("extractor: parse html: %w", err)
	}

	containers := doc.Find("article")
	if containers.Length() == 0 {
		containers = doc.Find("[class*=article]")
	}
	if containers.Length() == 0 {
		return "", ErrNoContent
	}

	var parts []string
	containers.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return "", ErrNoContent
	}

	return strings.Join(parts, "\n"), nil
}
