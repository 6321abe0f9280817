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

// DefaultArticleDelay is the fixed pacing delay between article lookups.
const DefaultArticleDelay = 50 * time.Millisecond

// Placeholders for missing article fields.
const (
	articleNoText      = "Texte introuvable"
	articleNoOrigin    = "Origine introuvable"
	articleNoNature    = "Nature introuvable"
	articleNoNum       = "Numéro introuvable"
	articleNoStatus    = "État introuvable"
	articleNoTextTitle = "Titre du texte introuvable"
	articleNoDate      = "Non disponible"
)

// ArticleMetadata is the extracted record of one statute article, used by
// the document display command.
type ArticleMetadata struct {
	// Err is non-empty when the article could not be retrieved.
	Err string `json:"error,omitempty"`

	ArticleID string `json:"article_id"`
	TextTitle string `json:"text_title"`
	Nature    string `json:"nature"`
	Number    string `json:"number"`
	Text      string `json:"texte"`
	Origin    string `json:"origine"`

	// Status is "EN VIGUEUR" when the raw state is exactly "VIGUEUR";
	// every other state passes through unchanged.
	Status string `json:"etat"`

	StartDate string `json:"date_debut"`
	EndDate   string `json:"date_fin"`
}

// ArticleFetcher retrieves statute articles from /consult/getArticle.
type ArticleFetcher struct {
	HTTPClient *http.Client
	Tokens     auth.TokenProvider
	BaseURL    string
	UserAgent  string

	limiter *rate.Limiter
}

// NewArticleFetcher builds an article fetcher. The pacing delay defaults
// to DefaultArticleDelay when the configuration leaves it zero.
func NewArticleFetcher(httpClient *http.Client, tokens auth.TokenProvider, cfg types.FetchConfig) *ArticleFetcher {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = search.DefaultBaseURL
	}
	delay := cfg.ArticleDelay
	if delay <= 0 {
		delay = DefaultArticleDelay
	}
	return &ArticleFetcher{
		HTTPClient: httpClient,
		Tokens:     tokens,
		BaseURL:    baseURL,
		UserAgent:  cfg.UserAgent,
		limiter:    newPacer(delay),
	}
}

// Wire format of /consult/getArticle.
type articleDocument struct {
	Article *articleBody `json:"article"`
}

type articleBody struct {
	Texte      *string            `json:"texte"`
	Origine    *string            `json:"origine"`
	Nature     *string            `json:"nature"`
	Num        *string            `json:"num"`
	Etat       *string            `json:"etat"`
	TextTitles []articleTextTitle `json:"textTitles"`
	DateDebut  any                `json:"dateDebut"`
	DateFin    any                `json:"dateFin"`
}

type articleTextTitle struct {
	Titre *string `json:"titre"`
}

// Metadata fetches one article and extracts its metadata record. On any
// failure the returned record carries the error marker and the article
// id; no failure crosses this boundary as an error value.
func (f *ArticleFetcher) Metadata(ctx context.Context, articleID string) ArticleMetadata {
	if articleID == "" {
		return articleErrRecord(articleID)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return articleErrRecord(articleID)
	}

	body, err := postDocument(ctx, f.HTTPClient, f.Tokens, f.BaseURL+"/consult/getArticle", f.UserAgent, map[string]string{"id": articleID})
	if err != nil {
		return articleErrRecord(articleID)
	}

	var doc articleDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc.Article == nil {
		return articleErrRecord(articleID)
	}

	a := doc.Article
	return ArticleMetadata{
		ArticleID: articleID,
		TextTitle: textTitle(a.TextTitles),
		Nature:    text(a.Nature, articleNoNature),
		Number:    text(a.Num, articleNoNum),
		Text:      text(a.Texte, articleNoText),
		Origin:    text(a.Origine, articleNoOrigin),
		Status:    FormatArticleStatus(text(a.Etat, articleNoStatus)),
		StartDate: date(a.DateDebut, articleNoDate),
		EndDate:   date(a.DateFin, articleNoDate),
	}
}

// FormatArticleStatus renders the in-force state with its French article:
// "VIGUEUR" becomes "EN VIGUEUR"; every other status is unchanged.
func FormatArticleStatus(status string) string {
	if status == "VIGUEUR" {
		return "EN " + status
	}
	return status
}

func textTitle(titles []articleTextTitle) string {
	if len(titles) > 0 && titles[0].Titre != nil {
		return *titles[0].Titre
	}
	return articleNoTextTitle
}

func articleErrRecord(articleID string) ArticleMetadata {
	return ArticleMetadata{
		ArticleID: articleID,
		Err:       "Article introuvable ou erreur lors de la récupération",
	}
}
