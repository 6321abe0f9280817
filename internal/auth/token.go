// Copyright SilloVV, 2026. All rights reserved.

// Package auth performs the OAuth client-credentials exchange against the
// PISTE token endpoint. Tokens are fetched fresh before every API call and
// never cached; a single pipeline run is short enough that expiry is not
// checked.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// DefaultTokenURL is the sandbox OAuth endpoint.
const DefaultTokenURL = "https://sandbox-oauth.piste.gouv.fr/api/oauth/token"

// TokenProvider exchanges client credentials for a bearer token. Components
// depend on this interface so tests can substitute a fixed token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client implements TokenProvider against the PISTE OAuth service.
type Client struct {
	HTTPClient *http.Client
	TokenURL   string
	ClientID   string
	Secret     string
}

// NewClient builds a token client from configuration. An empty TokenURL
// falls back to the sandbox endpoint.
func NewClient(httpClient *http.Client, cfg types.AuthConfig) *Client {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &Client{
		HTTPClient: httpClient,
		TokenURL:   tokenURL,
		ClientID:   cfg.ClientID,
		Secret:     cfg.ClientSecret,
	}
}

// tokenResponse is the JSON body returned by the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Token performs one client-credentials exchange and returns the bearer
// token. On a non-200 response it logs the status and body and returns an
// error; callers treat the absence of a token as terminal for the current
// request and never retry.
func (c *Client) Token(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.ClientID},
		"client_secret": {c.Secret},
		"scope":         {"openid"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("authentication failed", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("token endpoint returned HTTP %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access_token")
	}
	return tr.AccessToken, nil
}
