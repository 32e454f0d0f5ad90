package news

import (
	"strings"
	"testing"
)

func TestResolveTopicKeyword(t *testing.T) {
	r := NewResolver()

	url := r.Resolve("business")
	if !strings.HasPrefix(url, topicFeedBase) {
		t.Errorf("expected topic feed, got %s", url)
	}

	// Topic lookup ignores case and surrounding whitespace.
	if r.Resolve(" Business ") != url {
		t.Error("topic lookup should be case-insensitive")
	}
}

func TestResolveSearchKeyword(t *testing.T) {
	r := NewResolver()

	url := r.Resolve("supreme court")
	if !strings.HasPrefix(url, searchFeedBase) {
		t.Errorf("expected search feed, got %s", url)
	}
	if !strings.Contains(url, "%22supreme+court%22") {
		t.Errorf("keyword should be quoted for exact-phrase matching: %s", url)
	}
	if !strings.HasSuffix(url, searchWindow) {
		t.Errorf("search feed should be time-boxed: %s", url)
	}
}

func TestResolveExpanded(t *testing.T) {
	r := NewResolver()

	url, query := r.ResolveExpanded([]string{"SCOTUS", " judiciary ", ""})
	if query != `"SCOTUS"OR"judiciary"` {
		t.Errorf("unexpected query: %s", query)
	}
	if !strings.HasPrefix(url, searchFeedBase) || !strings.HasSuffix(url, searchWindow) {
		t.Errorf("unexpected url: %s", url)
	}

	url, query = r.ResolveExpanded(nil)
	if url != "" || query != "" {
		t.Error("no keywords should yield no feed")
	}
}

func TestSplitQuery(t *testing.T) {
	tokens := SplitQuery(" us, business ,, soccer ")
	want := []string{"us", "business", "soccer"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, tokens[i], want[i])
		}
	}

	if got := SplitQuery(""); got != nil {
		t.Errorf("empty query should yield no tokens, got %v", got)
	}
}
