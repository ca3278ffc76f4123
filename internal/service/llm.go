package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pantrychef/config"
	"pantrychef/internal/apperr"
)

// ChatCaller is the slice of the LLM client the generative services use.
// Tests substitute a canned implementation.
type ChatCaller interface {
	ChatJSON(ctx context.Context, model, system, user string, temperature float64, maxTokens int) (string, error)
}

// LLMClient talks to an OpenAI-compatible chat-completions endpoint.
type LLMClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewLLMClient creates the client. A missing API key is a configuration
// error and is reported here, at construction time, not on first use.
func NewLLMClient(cfg *config.Config) (*LLMClient, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}
	return &LLMClient{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		// A hung upstream call would otherwise hang the request forever.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format of a chat-completions call.
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

// ChatJSON sends a system+user prompt pair and returns the raw content
// of the first choice. JSON-formatted output is requested explicitly.
// Failures of the call itself surface as apperr.ErrUpstreamUnavailable;
// a reply without choices as apperr.ErrBadUpstreamResponse. No retries.
func (c *LLMClient) ChatJSON(ctx context.Context, model, system, user string, temperature float64, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.UpstreamUnavailablef("failed to reach generative API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.UpstreamUnavailablef("failed to read generative API response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperr.UpstreamUnavailablef("generative API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperr.BadUpstreamResponsef("failed to decode generative API response: %v", err)
	}
	if len(result.Choices) == 0 {
		return "", apperr.BadUpstreamResponsef("no choices in generative API response")
	}

	return result.Choices[0].Message.Content, nil
}
