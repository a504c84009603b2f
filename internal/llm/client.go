// Package llm wraps the generative-text service behind a one-method client.
// Callers pass a fully assembled prompt and per-call sampling options; the
// package owns API-key handling, timeouts, and response extraction.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"batterbox/internal/logging"
)

// Options are per-call sampling settings. Every call site sets both
// explicitly; there are no hidden defaults.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
}

// Client generates text for a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// GeminiClient calls Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate sends one prompt and returns the trimmed response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(opts.Temperature),
	}
	if opts.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = opts.MaxOutputTokens
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		logging.LLMError("generate failed after %v: %v", time.Since(start), err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		logging.LLMError("generate returned empty response")
		return "", fmt.Errorf("gemini generate: empty response")
	}

	logging.LLM("generate ok in %v (temp=%.1f, cap=%d, %d chars)",
		time.Since(start), opts.Temperature, opts.MaxOutputTokens, len(text))
	return text, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}
