// Copyright SilloVV, 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

func fetchConfig(baseURL string) types.FetchConfig {
	return types.FetchConfig{
		BaseURL:      baseURL,
		JuriDelay:    1,
		ArticleDelay: 1,
	}
}

func TestJuriMetadata(t *testing.T) {
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/consult/juri", r.URL.Path)
		require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{
			"text": {
				"texte": "Attendu que la cour...",
				"titre": "Arrêt du 14 novembre 2023",
				"juridiction": "Cour de cassation",
				"etat": "VIGUEUR",
				"dateDebut": 1700000000000,
				"dateFin": "2024-01-01T00:00:00Z"
			}
		}`))
	}))
	defer srv.Close()

	f := NewJuriFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))
	md := f.Metadata(context.Background(), "JURITEXT000001")

	assert.Equal(t, map[string]string{"textId": "JURITEXT000001"}, gotPayload)
	assert.Empty(t, md.Err)
	assert.Equal(t, types.KindCaseLaw, md.Kind)
	assert.Equal(t, "JURITEXT000001", md.DocumentID)
	assert.Equal(t, "JURI", md.Origin)
	assert.Equal(t, "Arrêt du 14 novembre 2023", md.Title)
	assert.Equal(t, "Cour de cassation", md.Jurisdiction)
	assert.Equal(t, "VIGUEUR", md.Status)
	assert.Equal(t, "2023-11-14", md.StartDate)
	assert.Equal(t, "2024-01-01", md.EndDate)
	assert.Equal(t, "Attendu que la cour...", md.Text)
}

func TestJuriMetadataMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": {}}`))
	}))
	defer srv.Close()

	f := NewJuriFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))
	md := f.Metadata(context.Background(), "JURITEXT000002")

	assert.Empty(t, md.Err)
	assert.Equal(t, "Titre introuvable", md.Title)
	assert.Equal(t, "Juridiction introuvable", md.Jurisdiction)
	assert.Equal(t, "Aucun état trouvé", md.Status)
	assert.Equal(t, "Aucune date de début trouvée", md.StartDate)
	assert.Equal(t, "Aucune date de fin trouvée", md.EndDate)
	assert.Equal(t, "Texte introuvable", md.Text)
}

func TestJuriMetadataErrorRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewJuriFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))

	t.Run("http failure", func(t *testing.T) {
		md := f.Metadata(context.Background(), "JURITEXT000003")
		assert.Equal(t, "Document introuvable ou erreur lors de la récupération", md.Err)
		assert.Equal(t, "JURITEXT000003", md.DocumentID)
		assert.Equal(t, types.KindCaseLaw, md.Kind)
	})

	t.Run("empty id", func(t *testing.T) {
		md := f.Metadata(context.Background(), "")
		assert.NotEmpty(t, md.Err)
	})

	t.Run("token failure", func(t *testing.T) {
		broken := NewJuriFetcher(srv.Client(), staticTokens{err: assert.AnError}, fetchConfig(srv.URL))
		md := broken.Metadata(context.Background(), "JURITEXT000004")
		assert.NotEmpty(t, md.Err)
	})
}

func TestPacingDelaysFirstLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": {}}`))
	}))
	defer srv.Close()

	delay := 40 * time.Millisecond
	start := time.Now()
	f := NewJuriFetcher(srv.Client(), staticTokens{token: "tok-abc"}, types.FetchConfig{
		BaseURL:   srv.URL,
		JuriDelay: delay,
	})
	md := f.Metadata(context.Background(), "JURITEXT000010")

	require.Empty(t, md.Err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestArticleMetadata(t *testing.T) {
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/consult/getArticle", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{
			"article": {
				"texte": "Tout fait quelconque de l'homme...",
				"origine": "LEGI",
				"nature": "Article",
				"num": "1240",
				"etat": "VIGUEUR",
				"textTitles": [{"titre": "Code civil"}],
				"dateDebut": "2016-10-01T00:00:00",
				"dateFin": 2524608000000
			}
		}`))
	}))
	defer srv.Close()

	f := NewArticleFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))
	md := f.Metadata(context.Background(), "LEGIARTI000032041571")

	assert.Equal(t, map[string]string{"id": "LEGIARTI000032041571"}, gotPayload)
	assert.Empty(t, md.Err)
	assert.Equal(t, "Code civil", md.TextTitle)
	assert.Equal(t, "Article", md.Nature)
	assert.Equal(t, "1240", md.Number)
	assert.Equal(t, "LEGI", md.Origin)
	assert.Equal(t, "EN VIGUEUR", md.Status)
	assert.Equal(t, "2016-10-01", md.StartDate)
	assert.Equal(t, "2050-01-01", md.EndDate)
}

func TestArticleMetadataMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"article": {"etat": "ABROGE"}}`))
	}))
	defer srv.Close()

	f := NewArticleFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))
	md := f.Metadata(context.Background(), "LEGIARTI000000000001")

	assert.Empty(t, md.Err)
	assert.Equal(t, "Titre du texte introuvable", md.TextTitle)
	assert.Equal(t, "Nature introuvable", md.Nature)
	assert.Equal(t, "Numéro introuvable", md.Number)
	assert.Equal(t, "Texte introuvable", md.Text)
	assert.Equal(t, "Origine introuvable", md.Origin)
	assert.Equal(t, "ABROGE", md.Status)
	assert.Equal(t, "Non disponible", md.StartDate)
	assert.Equal(t, "Non disponible", md.EndDate)
}

func TestArticleMetadataErrorRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	f := NewArticleFetcher(srv.Client(), staticTokens{token: "tok-abc"}, fetchConfig(srv.URL))
	md := f.Metadata(context.Background(), "LEGIARTI000000000002")

	assert.Equal(t, "Article introuvable ou erreur lors de la récupération", md.Err)
	assert.Equal(t, "LEGIARTI000000000002", md.ArticleID)
}
