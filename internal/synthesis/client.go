// Copyright SilloVV, 2026. All rights reserved.

// Package synthesis turns normalized document metadata into a cited,
// formatted answer by a single LLM call.
package synthesis

import (
	"context"
	"fmt"
	"strings"

	"github.com/SilloVV/appel-legifrance-gemini/internal/llm"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// DefaultMaxTextLength caps the document text embedded in the prompt.
const DefaultMaxTextLength = 3000

// Fixed sentinels, returned without any LLM call.
const (
	NoDocuments      = "Aucun document juridique trouvé pour répondre à cette question."
	NoValidDocuments = "Aucun document juridique valide trouvé parmi les documents fournis."
)

const noTextContent = "Aucun contenu textuel disponible pour ce document."

const systemPrompt = `Tu es un assistant juridique expert en droit français. Tu réponds à des questions juridiques en t'appuyant sur les documents officiels fournis (articles de loi, décisions de justice).

RÈGLES DE RÉDACTION :
1. Réponds en français, de manière claire et structurée.
2. Cite systématiquement tes sources : nom du texte ou de la décision, numéro d'article, identifiant du document.
3. Structure ta réponse en deux parties obligatoires :
   ## RÉPONSE :
   (ton analyse juridique argumentée)
   ## SOURCES:
   (la liste des documents cités, un par ligne)
4. Si les documents fournis ne suffisent pas à répondre complètement, complète avec tes connaissances juridiques générales SANS jamais indiquer que les documents sont insuffisants. Ne mentionne jamais l'expression "# Documents insuffisants" ni aucune limite des documents fournis.
5. Ne recopie pas les documents in extenso : synthétise.`

// Client renders the synthesis prompt and invokes the model.
type Client struct {
	gen           llm.Generator
	maxTextLength int
}

// NewClient builds a synthesis client. The text cap defaults to
// DefaultMaxTextLength when the configuration leaves it zero.
func NewClient(gen llm.Generator, cfg types.SynthesisConfig) *Client {
	maxLen := cfg.MaxTextLength
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLength
	}
	return &Client{gen: gen, maxTextLength: maxLen}
}

// Synthesize produces the cited answer for the question. An empty list,
// or a list where every record carries the error marker, short-circuits
// to a fixed sentinel without calling the model. A model failure is
// rendered as a user-facing error string, not returned as an error.
func (c *Client) Synthesize(ctx context.Context, question string, documents []types.DocumentMetadata) string {
	if len(documents) == 0 {
		return NoDocuments
	}

	valid := make([]types.DocumentMetadata, 0, len(documents))
	for _, doc := range documents {
		if doc.Err == "" {
			valid = append(valid, doc)
		}
	}
	if len(valid) == 0 {
		return NoValidDocuments
	}

	answer, err := c.gen.Generate(ctx, systemPrompt, []llm.Message{
		{Role: "user", Text: c.userPrompt(question, valid)},
	})
	if err != nil {
		return fmt.Sprintf("Impossible de générer une synthèse. Erreur: %v", err)
	}
	return answer
}

// userPrompt embeds the question and one block per document: the
// descriptive fields as key/value lines, then the truncated text.
func (c *Client) userPrompt(question string, documents []types.DocumentMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "QUESTION : %s\n\nDOCUMENTS JURIDIQUES :\n", question)
	for i, doc := range documents {
		fmt.Fprintf(&b, "\n--- DOCUMENT %d ---\n", i+1)
		for _, field := range doc.DescriptiveFields() {
			fmt.Fprintf(&b, "%s: %s\n", field.Key, field.Value)
		}
		b.WriteString("texte: ")
		b.WriteString(c.truncate(doc.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

// truncate caps the text at maxTextLength characters. The cap counts
// runes, not bytes, so accented legal text is never cut mid-rune.
func (c *Client) truncate(text string) string {
	if text == "" {
		return noTextContent
	}
	runes := []rune(text)
	if len(runes) <= c.maxTextLength {
		return text
	}
	return string(runes[:c.maxTextLength]) + "..."
}
