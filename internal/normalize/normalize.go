// Copyright SilloVV, 2026. All rights reserved.

// Package normalize reconciles the flattened search results into the
// uniform metadata schema consumed by the synthesis stage. Case-law hits
// are re-fetched through the JURI consult endpoint for their full record;
// everything else is reshaped in place.
package normalize

import (
	"context"
	"strings"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// caseLawMarker appears in every identifier minted for the JURI corpus.
const caseLawMarker = "JURI"

// noExtractTitle labels extracts whose title and number are both absent.
const noExtractTitle = "Sans titre"

// CaseLawFetcher retrieves the full metadata record of one judicial
// decision. *fetch.JuriFetcher satisfies it.
type CaseLawFetcher interface {
	Metadata(ctx context.Context, documentID string) types.DocumentMetadata
}

// Normalizer turns search results into metadata records.
type Normalizer struct {
	CaseLaw CaseLawFetcher
}

func New(caseLaw CaseLawFetcher) *Normalizer {
	return &Normalizer{CaseLaw: caseLaw}
}

// IsCaseLaw classifies one result record. A record is case-law when its
// origin carries the JURI tag, or when any of its identifiers contains
// the JURI marker. The upstream data does not guarantee which field
// carries the marker, so both are checked.
func IsCaseLaw(rec types.SearchResultRecord) bool {
	if rec.Origin == caseLawMarker {
		return true
	}
	for _, title := range rec.Titles {
		if strings.Contains(title.ID, caseLawMarker) {
			return true
		}
	}
	for _, section := range rec.Sections {
		for _, extract := range section.Extracts {
			if strings.Contains(extract.ID, caseLawMarker) {
				return true
			}
		}
	}
	return false
}

// representativeID picks the identifier used to re-fetch a case-law
// record: the first extract id in section order, falling back to the
// first title id.
func representativeID(rec types.SearchResultRecord) string {
	for _, section := range rec.Sections {
		for _, extract := range section.Extracts {
			if extract.ID != "" {
				return extract.ID
			}
		}
	}
	for _, title := range rec.Titles {
		if title.ID != "" {
			return title.ID
		}
	}
	return ""
}

// Normalize produces one metadata record per search result. Case-law
// records whose fetch fails are skipped, so the output can be shorter
// than the input. Generic records are always appended, even when their
// combined text ends up empty.
func (n *Normalizer) Normalize(ctx context.Context, results []types.SearchResultRecord) []types.DocumentMetadata {
	records := make([]types.DocumentMetadata, 0, len(results))
	for _, rec := range results {
		if IsCaseLaw(rec) && n.CaseLaw != nil {
			md := n.CaseLaw.Metadata(ctx, representativeID(rec))
			if md.Err != "" {
				continue
			}
			records = append(records, md)
			continue
		}
		records = append(records, genericRecord(rec))
	}
	return records
}

// genericRecord reshapes one flattened result into the generic metadata
// variant. The combined text joins every extract value, each value
// prefixed by the owning section's bracketed title. Unlike the fetcher
// placeholders, a result with no values yields an empty Text.
func genericRecord(rec types.SearchResultRecord) types.DocumentMetadata {
	md := types.DocumentMetadata{
		Kind:   types.KindGeneric,
		Type:   rec.Type,
		Nature: rec.Nature,
		Origin: rec.Origin,
		Date:   rec.Date,
	}
	if len(rec.Titles) > 0 {
		md.Title = rec.Titles[0].Title
		md.CID = rec.Titles[0].CID
		md.DocumentID = rec.Titles[0].ID
	}

	var parts []string
	for _, section := range rec.Sections {
		for _, extract := range section.Extracts {
			title := extract.Title
			if title == "" {
				title = extract.Num
			}
			if title == "" {
				title = noExtractTitle
			}
			text := strings.Join(extract.Values, " ")
			md.Extracts = append(md.Extracts, types.ExtractMetadata{
				ID:           extract.ID,
				Title:        title,
				SectionTitle: section.Title,
				Text:         text,
			})
			for _, value := range extract.Values {
				if section.Title != "" {
					parts = append(parts, "["+section.Title+"] "+value)
				} else {
					parts = append(parts, value)
				}
			}
		}
	}
	md.Text = strings.Join(parts, "\n")
	return md
}
