// Copyright SilloVV, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
	"github.com/SilloVV/appel-legifrance-gemini/internal/fetch"
	"github.com/SilloVV/appel-legifrance-gemini/internal/llm"
	"github.com/SilloVV/appel-legifrance-gemini/internal/normalize"
	"github.com/SilloVV/appel-legifrance-gemini/internal/payload"
	"github.com/SilloVV/appel-legifrance-gemini/internal/pipeline"
	"github.com/SilloVV/appel-legifrance-gemini/internal/search"
	"github.com/SilloVV/appel-legifrance-gemini/internal/secrets"
	"github.com/SilloVV/appel-legifrance-gemini/internal/synthesis"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "legifrance/0.1"
	defaultModel     = "gemini-2.0-flash-001"
)

// loadConfig assembles the stage configurations from viper, the secrets
// directory and the environment. Credentials never come from the config
// file values written to disk by users; missing ones fail fast here.
func loadConfig() (types.PipelineConfig, error) {
	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	httpCfg := types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent}

	clientID := secrets.Resolve(loadedSecrets, secrets.KeyClientID, "LEGIFRANCE_CLIENT_ID")
	clientSecret := secrets.Resolve(loadedSecrets, secrets.KeyClientSecret, "LEGIFRANCE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return types.PipelineConfig{}, fmt.Errorf("identifiants Legifrance manquants: renseignez LEGIFRANCE_CLIENT_ID et LEGIFRANCE_CLIENT_SECRET ou le répertoire .secrets/")
	}
	apiKey := secrets.Resolve(loadedSecrets, secrets.KeyGeminiAPIKey, "GEMINI_API_KEY")
	if apiKey == "" {
		return types.PipelineConfig{}, fmt.Errorf("clé Gemini manquante: renseignez GEMINI_API_KEY ou le répertoire .secrets/")
	}

	model := viper.GetString("model")
	if model == "" {
		model = defaultModel
	}

	cfg := types.PipelineConfig{
		Auth: types.AuthConfig{
			HTTPConfig:   httpCfg,
			TokenURL:     viper.GetString("token_url"),
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			BaseURL:    viper.GetString("base_url"),
			DumpPath:   viper.GetString("dump_path"),
			PageSize:   viper.GetInt("page_size"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: httpCfg,
			BaseURL:    viper.GetString("base_url"),
		},
		Payload: types.LLMConfig{Model: model, APIKey: apiKey},
		Synthesis: types.SynthesisConfig{
			LLMConfig:     types.LLMConfig{Model: model, APIKey: apiKey},
			MaxTextLength: viper.GetInt("max_text_length"),
		},
		Web: types.WebConfig{Addr: viper.GetString("addr")},
	}
	return cfg, nil
}

// buildPipeline wires every stage from configuration. The Gemini client
// is constructed once here and injected into both LLM stages.
func buildPipeline(ctx context.Context, cfg types.PipelineConfig) (*pipeline.Pipeline, error) {
	httpClient := &http.Client{Timeout: cfg.Auth.Timeout}
	tokens := auth.NewClient(httpClient, cfg.Auth)

	gemini, err := llm.NewGeminiClient(ctx, cfg.Payload)
	if err != nil {
		return nil, err
	}
	builder, err := payload.NewBuilder(gemini)
	if err != nil {
		return nil, err
	}

	return &pipeline.Pipeline{
		Builder:     builder,
		Searcher:    search.NewClient(httpClient, tokens, cfg.Search),
		Normalizer:  normalize.New(fetch.NewJuriFetcher(httpClient, tokens, cfg.Fetch)),
		Synthesizer: synthesis.NewClient(gemini, cfg.Synthesis),
	}, nil
}
