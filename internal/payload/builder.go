// Copyright SilloVV, 2026. All rights reserved.

// Package payload turns a free-text legal question into a structured
// Legifrance search payload by prompting the model with a fixed
// instruction, then sanitizing the raw response into parseable JSON.
package payload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SilloVV/appel-legifrance-gemini/internal/llm"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// ErrMalformed marks model output that did not parse as a search payload.
// The pipeline surfaces it as a user-visible "please rephrase" error; it
// never triggers an automatic re-prompt.
var ErrMalformed = errors.New("le modèle n'a pas généré de JSON valide pour l'appel à l'API")

// Builder generates search payloads through an injected Generator.
type Builder struct {
	gen    llm.Generator
	system string
}

// NewBuilder assembles the system instruction once and returns a Builder.
func NewBuilder(gen llm.Generator) (*Builder, error) {
	system, err := SystemPrompt()
	if err != nil {
		return nil, fmt.Errorf("assembling payload prompt: %w", err)
	}
	return &Builder{gen: gen, system: system}, nil
}

// Build invokes the model once with the question and optional prior
// context, and returns the sanitized payload text. No JSON validation
// happens here; callers parse with Parse and treat failure as terminal.
func (b *Builder) Build(ctx context.Context, question, priorContext string) (string, error) {
	messages := []llm.Message{
		{Role: "user", Text: question},
	}
	if priorContext != "" {
		messages = append(messages, llm.Message{Role: "model", Text: priorContext})
	}

	raw, err := b.gen.Generate(ctx, b.system, messages)
	if err != nil {
		return "", fmt.Errorf("generating payload: %w", err)
	}
	return StripFences(raw), nil
}

// StripFences removes surrounding triple-backtick fencing and a "json"
// language tag from raw model output: everything up to the last "```json"
// marker is dropped, then everything from the next closing fence on.
// Unfenced output passes through with only whitespace trimmed.
func StripFences(s string) string {
	if i := strings.LastIndex(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
	}
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Parse decodes a sanitized payload string into a SearchQuery and checks
// its structural invariants. Any failure is reported as ErrMalformed.
func Parse(s string) (types.SearchQuery, error) {
	var q types.SearchQuery
	if err := json.Unmarshal([]byte(s), &q); err != nil {
		return types.SearchQuery{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := q.Validate(); err != nil {
		return types.SearchQuery{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return q, nil
}
