// Copyright SilloVV, 2026. All rights reserved.

// Package llm wraps the Gemini API behind a small interface so pipeline
// stages can be tested with a fake generator.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// Message is one turn of a multi-turn prompt.
type Message struct {
	// Role is "user" or "model".
	Role string
	Text string
}

// Generator produces text from a system instruction and a list of turns.
// Implementations make exactly one inference call per invocation.
type Generator interface {
	Generate(ctx context.Context, system string, messages []Message) (string, error)
}

// GeminiClient implements Generator using the google.golang.org/genai SDK
// with the Gemini API backend. It is constructed once and injected into
// each stage; there is no package-level singleton.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client from configuration.
func NewGeminiClient(ctx context.Context, cfg types.LLMConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

// Generate sends one multi-turn request and returns the raw response text.
func (c *GeminiClient) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, &genai.Content{
			Role:  m.Role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
