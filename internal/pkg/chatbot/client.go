// Package chatbot wraps the Google Gemini generateContent endpoint behind a
// small client so the HTTP surface never leaks the upstream API key.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrEmptyReply is returned when the upstream answered 200 but produced no
// candidate text.
var ErrEmptyReply = errors.New("chatbot returned an empty reply")

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// Config holds the upstream endpoint settings
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client is a minimal Gemini generateContent client
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Client with a bounded request timeout
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send forwards one user message to the model and returns the first candidate
// text along with the unmodified upstream body. Any transport failure,
// non-2xx status or unparseable body is returned as an error so callers can
// decide how much to expose.
func (c *Client) Send(ctx context.Context, message string) (reply string, raw string, err error) {
	if c.config.APIKey == "" {
		return "", "", errors.New("chatbot API key is not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: message},
				},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode chatbot request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.config.Endpoint, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", fmt.Errorf("failed to build chatbot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("chatbot request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read chatbot response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("chatbot upstream returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", "", fmt.Errorf("failed to decode chatbot response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", "", ErrEmptyReply
	}

	return parsed.Candidates[0].Content.Parts[0].Text, string(body), nil
}
