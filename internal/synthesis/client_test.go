// Copyright SilloVV, 2026. All rights reserved.

package synthesis

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilloVV/appel-legifrance-gemini/internal/llm"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, system string, messages []llm.Message) (string, error) {
	f.calls++
	f.lastSystem = system
	if len(messages) > 0 {
		f.lastPrompt = messages[len(messages)-1].Text
	}
	return f.response, f.err
}

func caseLawDoc() types.DocumentMetadata {
	return types.DocumentMetadata{
		Kind:         types.KindCaseLaw,
		DocumentID:   "JURITEXT000042",
		Origin:       "JURI",
		Title:        "Arrêt du 14 novembre 2023",
		Jurisdiction: "Cour de cassation",
		Status:       "VIGUEUR",
		StartDate:    "2023-11-14",
		EndDate:      "2024-01-01",
		Text:         "Attendu que la cour...",
	}
}

func TestSynthesizeEmptyList(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewClient(gen, types.SynthesisConfig{})

	got := c.Synthesize(context.Background(), "question", nil)

	assert.Equal(t, NoDocuments, got)
	assert.Zero(t, gen.calls)
}

func TestSynthesizeAllErrorRecords(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewClient(gen, types.SynthesisConfig{})

	docs := []types.DocumentMetadata{
		{Kind: types.KindCaseLaw, DocumentID: "JURITEXT000001", Err: "Document introuvable ou erreur lors de la récupération"},
		{Kind: types.KindCaseLaw, DocumentID: "JURITEXT000002", Err: "Document introuvable ou erreur lors de la récupération"},
	}
	got := c.Synthesize(context.Background(), "question", docs)

	assert.Equal(t, NoValidDocuments, got)
	assert.Zero(t, gen.calls)
}

func TestSynthesizeFiltersErrorRecords(t *testing.T) {
	gen := &fakeGenerator{response: "## RÉPONSE :\nanalyse\n## SOURCES:\nJURITEXT000042"}
	c := NewClient(gen, types.SynthesisConfig{})

	docs := []types.DocumentMetadata{
		{Kind: types.KindCaseLaw, DocumentID: "JURITEXT000001", Err: "Document introuvable ou erreur lors de la récupération"},
		caseLawDoc(),
	}
	got := c.Synthesize(context.Background(), "Quelle est la portée de l'arrêt ?", docs)

	assert.Equal(t, gen.response, got)
	assert.Equal(t, 1, gen.calls)
	assert.NotContains(t, gen.lastPrompt, "JURITEXT000001")
	assert.Contains(t, gen.lastPrompt, "--- DOCUMENT 1 ---")
	assert.NotContains(t, gen.lastPrompt, "--- DOCUMENT 2 ---")
}

func TestSynthesizePromptLayout(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	c := NewClient(gen, types.SynthesisConfig{})

	c.Synthesize(context.Background(), "Qui est responsable ?", []types.DocumentMetadata{caseLawDoc()})

	assert.Contains(t, gen.lastSystem, "## RÉPONSE :")
	assert.Contains(t, gen.lastSystem, "## SOURCES:")

	assert.Contains(t, gen.lastPrompt, "QUESTION : Qui est responsable ?")
	assert.Contains(t, gen.lastPrompt, "document_id: JURITEXT000042")
	assert.Contains(t, gen.lastPrompt, "juridiction: Cour de cassation")
	assert.Contains(t, gen.lastPrompt, "date_debut: 2023-11-14")
	assert.Contains(t, gen.lastPrompt, "texte: Attendu que la cour...")
}

func TestSynthesizeTruncatesText(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	c := NewClient(gen, types.SynthesisConfig{MaxTextLength: 10})

	doc := caseLawDoc()
	doc.Text = "0123456789ABCDEF"
	c.Synthesize(context.Background(), "q", []types.DocumentMetadata{doc})

	assert.Contains(t, gen.lastPrompt, "texte: 0123456789...")
	assert.NotContains(t, gen.lastPrompt, "ABCDEF")
}

func TestSynthesizeTruncatesAccentedText(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	c := NewClient(gen, types.SynthesisConfig{MaxTextLength: 11})

	doc := caseLawDoc()
	doc.Text = strings.Repeat("é", 20)
	c.Synthesize(context.Background(), "q", []types.DocumentMetadata{doc})

	assert.True(t, utf8.ValidString(gen.lastPrompt))
	assert.Contains(t, gen.lastPrompt, "texte: "+strings.Repeat("é", 11)+"...")
	assert.NotContains(t, gen.lastPrompt, strings.Repeat("é", 12))
}

func TestSynthesizeEmptyText(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	c := NewClient(gen, types.SynthesisConfig{})

	doc := types.DocumentMetadata{Kind: types.KindGeneric, DocumentID: "LEGIARTI000000000001", Title: "Code civil"}
	c.Synthesize(context.Background(), "q", []types.DocumentMetadata{doc})

	assert.Contains(t, gen.lastPrompt, "texte: Aucun contenu textuel disponible pour ce document.")
}

func TestSynthesizeGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: assert.AnError}
	c := NewClient(gen, types.SynthesisConfig{})

	got := c.Synthesize(context.Background(), "q", []types.DocumentMetadata{caseLawDoc()})

	require.True(t, strings.HasPrefix(got, "Impossible de générer une synthèse. Erreur: "))
	assert.Contains(t, got, assert.AnError.Error())
	assert.Equal(t, 1, gen.calls)
}

func TestParseAnswer(t *testing.T) {
	t.Run("two sections", func(t *testing.T) {
		a := ParseAnswer("## RÉPONSE :\nL'article 1240 fonde la responsabilité.\n## SOURCES:\nCode civil, art. 1240\n")
		assert.Equal(t, "L'article 1240 fonde la responsabilité.", a.Body)
		assert.Equal(t, "Code civil, art. 1240", a.Sources)
		assert.False(t, a.Insufficient)
	})

	t.Run("no headings", func(t *testing.T) {
		a := ParseAnswer("réponse libre sans structure")
		assert.Equal(t, "réponse libre sans structure", a.Body)
		assert.Empty(t, a.Sources)
	})

	t.Run("insufficiency marker after sources", func(t *testing.T) {
		a := ParseAnswer("## RÉPONSE :\nanalyse\n## SOURCES:\nCode civil\n# Documents insuffisants\n")
		assert.True(t, a.Insufficient)
		assert.Equal(t, "Code civil", a.Sources)
	})

	t.Run("insufficiency marker without sources", func(t *testing.T) {
		a := ParseAnswer("analyse\n# Documents insuffisants")
		assert.True(t, a.Insufficient)
		assert.Equal(t, "analyse", a.Body)
	})

	t.Run("general knowledge fallback named", func(t *testing.T) {
		a := ParseAnswer("## RÉPONSE :\nanalyse (Connaissances juridiques générales)\n## SOURCES:\n")
		assert.True(t, a.Insufficient)
	})
}
