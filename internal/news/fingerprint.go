package news

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"
)

// QueryFingerprint derives the cache key for one feed fetch. The key covers
// the feed URL and the clock hour, so a feed is fetched at most once per hour
// and every run within that hour reuses the stored result set.
func QueryFingerprint(feedURL string, now time.Time) string {
	sum := sha256.Sum256([]byte(feedURL + now.UTC().Format("2006-01-02 15")))
	return hex.EncodeToString(sum[:])
}

// SummaryFingerprint derives the cache key for a generated summary. Keys
// cover the keyword string and the calendar day, so each (keywords, day) pair
// produces at most one summary. The empty keyword string keys the default
// digest for the day.
func SummaryFingerprint(keywords string, now time.Time) string {
	day := now.UTC().Format("2006-01-02")
	var sum [32]byte
	if keywords != "" {
		sum = sha256.Sum256([]byte(keywords + day))
	} else {
		sum = sha256.Sum256([]byte(day))
	}
	return hex.EncodeToString(sum[:])
}

// EncodeArticleURL encodes a canonical article URL for embedding in outbound
// newsletter links.
func EncodeArticleURL(url string) string {
	return base64.URLEncoding.EncodeToString([]byte(url))
}

// DecodeArticleURL reverses EncodeArticleURL.
func DecodeArticleURL(encoded string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
