package news

import (
	"net/url"
	"strings"
)

const (
	topicFeedBase  = "https://news.google.com/rss/topics/"
	searchFeedBase = "https://news.google.com/rss/search?q="
	// Search feeds are time-boxed to the last day so stale results never
	// pad out a digest.
	searchWindow = "%20when%3A1d"
)

// Resolver maps a single keyword to the feed URL that should be fetched for
// it. Curated subjects resolve to a topic feed; everything else becomes an
// exact-phrase search feed.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the feed URL for one keyword. Topic lookup is
// case-insensitive on the trimmed keyword.
func (r *Resolver) Resolve(keyword string) string {
	kw := strings.TrimSpace(keyword)
	if id, ok := googleTopics[strings.ToLower(kw)]; ok {
		return topicFeedBase + id
	}
	return searchFeedBase + url.QueryEscape(`"`+kw+`"`) + searchWindow
}

// ResolveExpanded returns the search feed URL for a set of fallback keywords.
// Each keyword is quoted for exact-phrase matching and the phrases are
// OR-joined into one query, so a single fetch covers every alternative.
func (r *Resolver) ResolveExpanded(keywords []string) (feedURL, query string) {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		quoted = append(quoted, `"`+kw+`"`)
	}
	if len(quoted) == 0 {
		return "", ""
	}
	query = strings.Join(quoted, "OR")
	return searchFeedBase + url.QueryEscape(query) + searchWindow, query
}

// SplitQuery breaks a comma-separated query string into its keyword tokens,
// dropping empties.
func SplitQuery(query string) []string {
	var tokens []string
	for _, t := range strings.Split(query, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
