// Copyright SilloVV, 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
	"github.com/SilloVV/appel-legifrance-gemini/internal/search"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// DefaultJuriDelay is the fixed pacing delay between case-law lookups.
// The upstream API answers 429 quickly without it.
const DefaultJuriDelay = 200 * time.Millisecond

// Placeholders for missing case-law fields.
const (
	juriNoText      = "Texte introuvable"
	juriNoTitle     = "Titre introuvable"
	juriNoCourt     = "Juridiction introuvable"
	juriNoStatus    = "Aucun état trouvé"
	juriNoStartDate = "Aucune date de début trouvée"
	juriNoEndDate   = "Aucune date de fin trouvée"
)

// JuriFetcher retrieves judicial decisions from /consult/juri.
type JuriFetcher struct {
	HTTPClient *http.Client
	Tokens     auth.TokenProvider
	BaseURL    string
	UserAgent  string

	limiter *rate.Limiter
}

// NewJuriFetcher builds a case-law fetcher. The pacing delay defaults to
// DefaultJuriDelay when the configuration leaves it zero.
func NewJuriFetcher(httpClient *http.Client, tokens auth.TokenProvider, cfg types.FetchConfig) *JuriFetcher {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = search.DefaultBaseURL
	}
	delay := cfg.JuriDelay
	if delay <= 0 {
		delay = DefaultJuriDelay
	}
	return &JuriFetcher{
		HTTPClient: httpClient,
		Tokens:     tokens,
		BaseURL:    baseURL,
		UserAgent:  cfg.UserAgent,
		limiter:    newPacer(delay),
	}
}

// Wire format of /consult/juri.
type juriDocument struct {
	Text *juriText `json:"text"`
}

type juriText struct {
	Texte       *string `json:"texte"`
	Titre       *string `json:"titre"`
	Juridiction *string `json:"juridiction"`
	Etat        *string `json:"etat"`
	DateDebut   any     `json:"dateDebut"`
	DateFin     any     `json:"dateFin"`
}

// Metadata fetches one decision and extracts its full metadata record.
// On any failure the returned record carries the error marker and the
// document id; no failure crosses this boundary as an error value.
func (f *JuriFetcher) Metadata(ctx context.Context, documentID string) types.DocumentMetadata {
	if documentID == "" {
		return errRecord(types.KindCaseLaw, documentID)
	}

	// Fixed-rate pacing, not adaptive backpressure.
	if err := f.limiter.Wait(ctx); err != nil {
		return errRecord(types.KindCaseLaw, documentID)
	}

	body, err := postDocument(ctx, f.HTTPClient, f.Tokens, f.BaseURL+"/consult/juri", f.UserAgent, map[string]string{"textId": documentID})
	if err != nil {
		return errRecord(types.KindCaseLaw, documentID)
	}

	var doc juriDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Text == nil {
		return errRecord(types.KindCaseLaw, documentID)
	}

	txt := doc.Text
	return types.DocumentMetadata{
		Kind:         types.KindCaseLaw,
		DocumentID:   documentID,
		Origin:       "JURI",
		Title:        text(txt.Titre, juriNoTitle),
		Jurisdiction: text(txt.Juridiction, juriNoCourt),
		Status:       text(txt.Etat, juriNoStatus),
		StartDate:    date(txt.DateDebut, juriNoStartDate),
		EndDate:      date(txt.DateFin, juriNoEndDate),
		Text:         text(txt.Texte, juriNoText),
	}
}

func errRecord(kind types.MetadataKind, documentID string) types.DocumentMetadata {
	return types.DocumentMetadata{
		Kind:       kind,
		DocumentID: documentID,
		Err:        errDocumentUnavailable,
	}
}
