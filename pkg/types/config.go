// Copyright SilloVV, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that call the
// Legifrance APIs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AuthConfig holds the OAuth client-credentials settings. The client id and
// secret come from the environment (LEGIFRANCE_CLIENT_ID,
// LEGIFRANCE_CLIENT_SECRET) or the secrets directory.
type AuthConfig struct {
	HTTPConfig `yaml:",inline"`

	// TokenURL is the OAuth token endpoint.
	TokenURL string `json:"token_url" yaml:"token_url"`

	ClientID     string `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the Legifrance engine API.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DumpPath is the local file the raw search response is written to for
	// debugging. Overwritten on every search; never read back.
	DumpPath string `json:"dump_path" yaml:"dump_path"`

	// PageSize is the default result page size for generated payloads.
	PageSize int `json:"page_size" yaml:"page_size"`
}

// FetchConfig holds settings for the document fetchers.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the Legifrance engine API.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// JuriDelay is the fixed pacing delay before each case-law lookup.
	JuriDelay time.Duration `json:"juri_delay" yaml:"juri_delay"`

	// ArticleDelay is the fixed pacing delay before each article lookup.
	ArticleDelay time.Duration `json:"article_delay" yaml:"article_delay"`
}

// LLMConfig holds shared settings for stages that call the Gemini API.
type LLMConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.0-flash-001").
	Model string `json:"model" yaml:"model"`

	// APIKey is the Gemini API key (GEMINI_API_KEY).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// SynthesisConfig holds settings for the synthesis stage.
type SynthesisConfig struct {
	LLMConfig `yaml:",inline"`

	// MaxTextLength is the per-document character limit in the synthesis
	// prompt; longer texts are truncated with an ellipsis (default 3000).
	MaxTextLength int `json:"max_text_length" yaml:"max_text_length"`
}

// WebConfig holds settings for the web front end.
type WebConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Auth      AuthConfig      `json:"auth" yaml:"auth"`
	Search    SearchConfig    `json:"search" yaml:"search"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Payload   LLMConfig       `json:"payload" yaml:"payload"`
	Synthesis SynthesisConfig `json:"synthesis" yaml:"synthesis"`
	Web       WebConfig       `json:"web" yaml:"web"`
}
