// Copyright SilloVV, 2026. All rights reserved.

// Package pipeline chains the question-to-answer stages: payload
// generation, search, metadata normalization, synthesis. Data flows one
// way; no stage feeds back into an earlier one.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SilloVV/appel-legifrance-gemini/internal/normalize"
	"github.com/SilloVV/appel-legifrance-gemini/internal/payload"
	"github.com/SilloVV/appel-legifrance-gemini/internal/search"
	"github.com/SilloVV/appel-legifrance-gemini/internal/synthesis"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// NoResultsMessage is the informational answer for a valid search that
// matched nothing. It is not an error.
const NoResultsMessage = "Aucun résultat juridique trouvé pour cette question."

// Searcher runs one structured query. *search.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query types.SearchQuery) ([]types.SearchResultRecord, error)
}

// Synthesizer produces the final answer. *synthesis.Client satisfies it.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, documents []types.DocumentMetadata) string
}

// Pipeline wires the stages together. Construct it once per process and
// run one question at a time; stages share no mutable state across runs
// except the search client's debug dump file.
type Pipeline struct {
	Builder     *payload.Builder
	Searcher    Searcher
	Normalizer  *normalize.Normalizer
	Synthesizer Synthesizer
}

// Result carries every intermediate product of one run, so presentation
// layers can show as much or as little as they want.
type Result struct {
	Question string                     `json:"question"`
	Query    types.SearchQuery          `json:"query"`
	Results  []types.SearchResultRecord `json:"results"`
	Metadata []types.DocumentMetadata   `json:"metadata"`
	Answer   synthesis.Answer           `json:"answer"`
}

// Run processes one question start to finish.
func (p *Pipeline) Run(ctx context.Context, question, priorContext string) (*Result, error) {
	res := &Result{Question: question}

	raw, err := p.Builder.Build(ctx, question, priorContext)
	if err != nil {
		return nil, fmt.Errorf("génération de la requête: %w", err)
	}
	query, err := payload.Parse(raw)
	if err != nil {
		// Malformed model output is terminal; the user is asked to
		// rephrase rather than the model being re-prompted.
		return nil, err
	}
	res.Query = query
	slog.Debug("requête générée", "fond", query.Fond)

	results, err := p.Searcher.Search(ctx, query)
	if err != nil {
		if errors.Is(err, search.ErrNoResults) {
			res.Answer = synthesis.Answer{Raw: NoResultsMessage, Body: NoResultsMessage}
			return res, nil
		}
		return nil, err
	}
	res.Results = results
	slog.Info("recherche terminée", "résultats", len(results))

	res.Metadata = p.Normalizer.Normalize(ctx, results)
	answer := p.Synthesizer.Synthesize(ctx, question, res.Metadata)
	res.Answer = synthesis.ParseAnswer(answer)
	return res, nil
}
