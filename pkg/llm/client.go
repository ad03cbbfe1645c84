// Package llm talks to the Groq chat-completions API, which acts as the
// schedule placement engine. The core never trusts its output: everything it
// returns flows through the normalizer, validator and conflict filter.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

type Client struct {
	apiKey  string
	modelID string
	url     string
	httpc   *http.Client
}

func NewClient(apiKey, modelID string) *Client {
	return &Client{
		apiKey:  apiKey,
		modelID: modelID,
		url:     defaultAPIURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string         `json:"model"`
	Messages            []message      `json:"messages"`
	Temperature         float64        `json:"temperature"`
	MaxCompletionTokens int            `json:"max_completion_tokens"`
	TopP                float64        `json:"top_p"`
	ResponseFormat      responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSchedule sends the prompts and returns the raw schedule-entry
// records the model proposed. Records come back untyped; the schedule
// package owns validation.
func (c *Client) GenerateSchedule(ctx context.Context, systemPrompt, worldPrompt string) ([]map[string]any, error) {
	reqBody := chatRequest{
		Model: c.modelID,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: worldPrompt},
		},
		Temperature:         0,
		MaxCompletionTokens: 8192,
		TopP:                1,
		ResponseFormat:      responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model call failed: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	// Some models put the answer in content, reasoning-heavy ones leave
	// content empty and dump everything into reasoning.
	text := parsed.Choices[0].Message.Content
	if text == "" {
		text = parsed.Choices[0].Message.Reasoning
	}
	if text == "" {
		return nil, fmt.Errorf("model returned empty content")
	}

	obj, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	return Entries(obj), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
