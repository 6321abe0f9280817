// Copyright SilloVV, 2026. All rights reserved.

// Package fetch retrieves individual documents (case-law decisions and
// statute articles) from the Legifrance consult endpoints and extracts
// typed metadata fields. Every missing field is replaced with a
// field-specific placeholder string so downstream consumers never see an
// empty or absent value.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
)

// errDocumentUnavailable is the error marker carried by metadata records
// whose document could not be retrieved.
const errDocumentUnavailable = "Document introuvable ou erreur lors de la récupération"

// postDocument obtains a fresh token, POSTs the identifier payload to the
// consult endpoint, and returns the raw body. Any failure is logged and
// returned; callers translate it into an error-marked record rather than
// letting it cross the component boundary.
func postDocument(ctx context.Context, client *http.Client, tokens auth.TokenProvider, url, userAgent string, payload any) ([]byte, error) {
	token, err := tokens.Token(ctx)
	if err != nil {
		slog.Error("échec d'authentification: impossible d'obtenir un token Legifrance", "error", err)
		return nil, fmt.Errorf("obtaining token: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		slog.Error("erreur de connexion", "url", url, "error", err)
		return nil, fmt.Errorf("document request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("document request failed", "url", url, "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("document endpoint returned HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// newPacer builds the fixed-rate limiter used between consult calls. The
// limiter starts with a full bucket, so the initial token is drained here;
// every lookup, including the first, waits the full delay.
func newPacer(delay time.Duration) *rate.Limiter {
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.ReserveN(time.Now(), 1)
	return limiter
}

// text returns *s, or the placeholder when the field was absent.
func text(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

// date formats an upstream date value, or returns the placeholder when
// the field was absent.
func date(v any, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return FormatDate(v)
}
