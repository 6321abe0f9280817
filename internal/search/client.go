// Copyright SilloVV, 2026. All rights reserved.

// Package search queries the Legifrance /search endpoint and flattens the
// nested result tree into uniform records.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// DefaultBaseURL is the sandbox Legifrance engine root.
const DefaultBaseURL = "https://sandbox-api.piste.gouv.fr/dila/legifrance/lf-engine-app"

// DefaultDumpPath is where the raw search response is written for
// debugging. The file is overwritten on every search and never read back.
const DefaultDumpPath = "resultats_legifrance.json"

// DefaultPageSize is the result page size used when a query carries none.
const DefaultPageSize = 10

// ErrNoResults reports a valid search response that carried no results
// key. It is informational, distinct from transport failures.
var ErrNoResults = errors.New("aucun résultat trouvé")

// Placeholders substituted for absent sub-fields during flattening.
const (
	placeholderTitle        = "Titre non disponible"
	placeholderCID          = "CID non disponible"
	placeholderID           = "ID non disponible"
	placeholderSectionTitle = "Titre de section non disponible"
	placeholderExtractTitle = "Titre d'extrait non disponible"
)

// Client calls the Legifrance search API.
type Client struct {
	HTTPClient *http.Client
	Tokens     auth.TokenProvider
	BaseURL    string
	DumpPath   string
	UserAgent  string

	// PageSize fills in queries whose pagination the model left blank.
	PageSize int
}

// NewClient builds a search client from configuration, filling in the
// sandbox defaults.
func NewClient(httpClient *http.Client, tokens auth.TokenProvider, cfg types.SearchConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	dumpPath := cfg.DumpPath
	if dumpPath == "" {
		dumpPath = DefaultDumpPath
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		HTTPClient: httpClient,
		Tokens:     tokens,
		BaseURL:    baseURL,
		DumpPath:   dumpPath,
		UserAgent:  cfg.UserAgent,
		PageSize:   pageSize,
	}
}

// Legifrance wire format. Pointer fields distinguish absent sub-fields,
// which get placeholders, from present-but-empty ones.
type searchResponse struct {
	Results *[]searchHit `json:"results"`
}

type searchHit struct {
	Type     string          `json:"type"`
	Nature   string          `json:"nature"`
	Origin   string          `json:"origin"`
	Date     string          `json:"date"`
	Titles   []searchTitle   `json:"titles"`
	Sections []searchSection `json:"sections"`
}

type searchTitle struct {
	Title *string `json:"title"`
	CID   *string `json:"cid"`
	ID    *string `json:"id"`
}

type searchSection struct {
	ID          string          `json:"id"`
	Title       *string         `json:"title"`
	DateVersion string          `json:"dateVersion"`
	LegalStatus string          `json:"legalStatus"`
	Extracts    []searchExtract `json:"extracts"`
}

type searchExtract struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Num         string   `json:"num"`
	LegalStatus string   `json:"legalStatus"`
	Values      []string `json:"values"`
}

// Search sends the query to the search endpoint and returns the flattened
// result records. The raw response body is dumped to DumpPath first. A
// response without a results key yields (nil, ErrNoResults); transport
// failures yield errors naming the HTTP status.
func (c *Client) Search(ctx context.Context, query types.SearchQuery) ([]types.SearchResultRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search query: %w", err)
	}
	if query.Recherche.PageSize <= 0 {
		query.Recherche.PageSize = c.PageSize
	}
	if query.Recherche.PageNumber <= 0 {
		query.Recherche.PageNumber = 1
	}

	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("échec de connexion à Legifrance: %w", err)
	}

	if err := c.ping(ctx, token); err != nil {
		return nil, err
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("encoding search query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("search request failed", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("échec de la requête à Legifrance: code %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}

	// Debug dump only; a write failure must not abort the search.
	if err := os.WriteFile(c.DumpPath, raw, 0o644); err != nil {
		slog.Warn("could not write raw results dump", "path", c.DumpPath, "error", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	if sr.Results == nil {
		return nil, ErrNoResults
	}

	records := make([]types.SearchResultRecord, 0, len(*sr.Results))
	for _, hit := range *sr.Results {
		records = append(records, flatten(hit))
	}
	return records, nil
}

// ping checks that the search service is reachable. The upstream service
// answers a successful ping with HTTP 500; that inverted convention is
// deliberate and must be preserved.
func (c *Client) ping(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search/ping", nil)
	if err != nil {
		return fmt.Errorf("creating ping request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("l'API Legifrance ne répond pas: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusInternalServerError {
		return fmt.Errorf("l'API Legifrance ne répond pas (ping HTTP %d)", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// flatten converts one raw hit into a SearchResultRecord, substituting
// placeholders for absent sub-fields.
func flatten(hit searchHit) types.SearchResultRecord {
	record := types.SearchResultRecord{
		Type:   hit.Type,
		Nature: hit.Nature,
		Origin: hit.Origin,
		Date:   hit.Date,
	}

	for _, title := range hit.Titles {
		record.Titles = append(record.Titles, types.TitleRef{
			Title: orPlaceholder(title.Title, placeholderTitle),
			CID:   orPlaceholder(title.CID, placeholderCID),
			ID:    orPlaceholder(title.ID, placeholderID),
		})
	}

	for _, section := range hit.Sections {
		s := types.Section{
			ID:          section.ID,
			Title:       orPlaceholder(section.Title, placeholderSectionTitle),
			DateVersion: section.DateVersion,
			LegalStatus: section.LegalStatus,
		}
		for _, extract := range section.Extracts {
			s.Extracts = append(s.Extracts, types.Extract{
				ID:          extract.ID,
				Title:       orPlaceholder(extract.Title, placeholderExtractTitle),
				Num:         extract.Num,
				LegalStatus: extract.LegalStatus,
				Values:      extract.Values,
			})
		}
		record.Sections = append(record.Sections, s)
	}
	return record
}

func orPlaceholder(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}
