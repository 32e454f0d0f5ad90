package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	feedUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	maxFeedBodySize = 10 << 20
)

// FeedClient fetches feed listings over HTTP. It handles both RSS/Atom
// documents and provider JSON listings, sniffing the format from the body.
type FeedClient struct {
	httpClient *http.Client
}

// NewFeedClient creates a FeedClient with a bounded request timeout.
func NewFeedClient(timeout time.Duration) *FeedClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the listing at feedURL and returns at most limit entries in
// listing order. Entries without a link are dropped.
func (c *FeedClient) Fetch(ctx context.Context, feedURL string, limit int) ([]FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: new request: %w", err)
	}
	req.Header.Set("User-Agent", feedUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, application/json, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: fetch %s: status %d", feedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodySize))
	if err != nil {
		return nil, fmt.Errorf("feed: read body: %w", err)
	}

	var entries []FeedEntry
	if isJSONListing(body) {
		entries, err = parseProviderListing(body)
	} else {
		entries, err = parseSyndicationFeed(body)
	}
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func isJSONListing(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func parseSyndicationFeed(body []byte) ([]FeedEntry, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("feed: parse: %w", err)
	}

	entries := make([]FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		e := FeedEntry{
			Link:   item.Link,
			Title:  item.Title,
			Source: publisherOf(item.Title, item.Link),
		}
		if item.PublishedParsed != nil {
			e.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			e.PublishedAt = *item.UpdatedParsed
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// providerListing is the JSON shape served by article listing providers.
type providerListing struct {
	Articles []struct {
		URL         string    `json:"url"`
		Title       string    `json:"title"`
		PublishedAt time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func parseProviderListing(body []byte) ([]FeedEntry, error) {
	var listing providerListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("feed: parse listing: %w", err)
	}

	entries := make([]FeedEntry, 0, len(listing.Articles))
	for _, a := range listing.Articles {
		if a.URL == "" {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = hostOf(a.URL)
		}
		entries = append(entries, FeedEntry{
			Link:        a.URL,
			Title:       a.Title,
			Source:      source,
			PublishedAt: a.PublishedAt,
		})
	}
	return entries, nil
}

// publisherOf derives the publisher name from an aggregator item. Aggregator
// titles carry the publisher as a " - Publisher" suffix; when absent, the
// link host stands in.
func publisherOf(title, link string) string {
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		if pub := strings.TrimSpace(title[idx+3:]); pub != "" {
			return pub
		}
	}
	return hostOf(link)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
