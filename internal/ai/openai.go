// Package ai provides the OpenAI-backed services of the Scoop pipeline:
// fallback keyword expansion and newsletter summarization.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tailoredscoops/scoop/internal/models"
)

const (
	requestTimeout = 60 * time.Second
	// maxContentChars truncates each article body before summarization to
	// keep the request inside the model's context window.
	maxContentChars = 2000
)

// OpenAIClient is an HTTP client for the chat completions API.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates an OpenAIClient. An empty apiKey yields a client whose
// keyword expansion is a no-op; summarization requires a key.
func NewClient(baseURL, apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Configured reports whether an API key is present.
func (c *OpenAIClient) Configured() bool {
	return c.apiKey != ""
}

// chatMessage is one entry of a chat completion conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the JSON response from POST /chat/completions.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// SimilarKeywords asks the model for alternative search keywords when the
// given one turned out too sparse to fill a feed. Returns a comma-separated
// list, or the empty string when the model has no usable alternatives or no
// API key is configured.
func (c *OpenAIClient) SimilarKeywords(ctx context.Context, keyword string) (string, error) {
	if !c.Configured() {
		return "", nil
	}

	messages := []chatMessage{
		{Role: "system", Content: "Generate at least 5 similar keywords to query news articles so that it's likely to find recent results"},
		{Role: "system", Content: "Return keywords in comma separated format"},
		{Role: "system", Content: "Example input: 'supreme court'"},
		{Role: "system", Content: "Example output: 'SCOTUS, justice, judiciary, constitutional law, courts'"},
		{Role: "system", Content: "If error or there are no similar keywords, return ''"},
		{Role: "user", Content: "keywords: " + keyword},
		{Role: "system", Content: "keywords:"},
	}

	response, err := c.chatComplete(ctx, messages, 0.2, 60)
	if err != nil {
		return "", fmt.Errorf("similar keywords: %w", err)
	}

	// Refusals come back as prose; treat them as no alternatives.
	if strings.HasPrefix(response, "Sorry,") || strings.HasPrefix(response, "I'm") {
		return "", nil
	}
	return strings.NewReplacer(`"`, "", "'", "").Replace(response), nil
}

// Summarize turns a ranked article set into morning newsletter prose and
// returns it together with one title per article used.
func (c *OpenAIClient) Summarize(ctx context.Context, articles []models.Article) (string, []string, error) {
	if !c.Configured() {
		return "", nil, fmt.Errorf("summarize: no API key configured")
	}
	if len(articles) == 0 {
		return "", nil, fmt.Errorf("summarize: no articles")
	}

	titles := make([]string, len(articles))
	var stories strings.Builder
	for i, a := range articles {
		titles[i] = a.Title
		if i > 0 {
			stories.WriteString("; ")
		}
		content := a.Content
		if len(content) > maxContentChars {
			content = content[:maxContentChars]
		}
		stories.WriteString(content)
	}

	messages := []chatMessage{
		{Role: "system", Content: "You are an energetic, fun, and witty daily news blogger."},
		{Role: "user", Content: "Please create a morning newsletter based on today's news stories"},
		{Role: "system", Content: "Ignore advertisements and omit advertisements in the newsletter."},
		{Role: "system", Content: "Separate different topics using different paragraphs. If the story is not too serious, feel free to use puns. Each bullet point should contain at least three sentences."},
		{Role: "system", Content: "Start the newsletter with a 'good morning' and cute greeting about today's scoops. Start each paragraph with an emoji."},
		{Role: "user", Content: fmt.Sprintf("Today's news stories are: %s. The newsletter:", stories.String())},
	}

	summary, err := c.chatComplete(ctx, messages, 0.8, 0)
	if err != nil {
		return "", nil, fmt.Errorf("summarize: %w", err)
	}
	if summary == "" {
		return "", nil, fmt.Errorf("summarize: empty response")
	}
	return summary, titles, nil
}

// chatComplete performs one chat completion and returns the first choice's
// trimmed content.
func (c *OpenAIClient) chatComplete(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
