// Copyright SilloVV, 2026. All rights reserved.

package synthesis

import "strings"

// Section headings the model is instructed to emit.
const (
	answerHeading      = "## RÉPONSE :"
	sourcesHeading     = "## SOURCES:"
	insufficientMarker = "# Documents insuffisants"
)

// Answer is the parsed two-part structure of a synthesized response.
type Answer struct {
	// Raw is the model output verbatim.
	Raw string

	// Body is the analysis under the answer heading, or the whole output
	// when the model ignored the structure.
	Body string

	// Sources lists the cited documents, one per line, empty when the
	// model emitted no sources section.
	Sources string

	// Insufficient reports whether the output carries the insufficiency
	// marker despite the instruction forbidding it.
	Insufficient bool
}

// ParseAnswer splits a synthesized response into its answer and sources
// sections. Parsing is lenient: missing headings leave the whole text in
// Body so presentation layers always have something to show.
func ParseAnswer(raw string) Answer {
	a := Answer{Raw: raw, Body: strings.TrimSpace(raw)}

	rest := raw
	if i := strings.Index(rest, answerHeading); i >= 0 {
		rest = rest[i+len(answerHeading):]
		a.Body = strings.TrimSpace(rest)
	}
	if i := strings.Index(rest, sourcesHeading); i >= 0 {
		a.Body = strings.TrimSpace(rest[:i])
		a.Sources = strings.TrimSpace(rest[i+len(sourcesHeading):])
	}
	if i := strings.Index(a.Sources, insufficientMarker); i >= 0 {
		a.Insufficient = true
		a.Sources = strings.TrimSpace(a.Sources[:i])
	} else if strings.Contains(a.Body, insufficientMarker) {
		a.Insufficient = true
		a.Body = strings.TrimSpace(strings.Replace(a.Body, insufficientMarker, "", 1))
	}
	// The model is told to fall back silently; naming the fallback is
	// treated the same as the explicit marker.
	if strings.Contains(raw, "Connaissances juridiques générales") {
		a.Insufficient = true
	}
	return a
}
