// Copyright SilloVV, 2026. All rights reserved.

package types

// MetadataKind distinguishes the two shapes of normalized metadata.
type MetadataKind string

const (
	// KindCaseLaw marks a judicial decision fetched from the JURI corpus.
	KindCaseLaw MetadataKind = "juri"

	// KindGeneric marks a statute or article record built directly from
	// the flattened search result.
	KindGeneric MetadataKind = "generic"
)

// DocumentMetadata is the normalized record consumed by the synthesis
// stage. A record either carries Err (document unavailable) or a complete
// set of its variant's fields; missing upstream fields are replaced with
// placeholder strings by the fetchers, never left empty.
//
// The one exception is Text in the generic variant, which stays an empty
// string when a result has no extract values. The synthesis prompt
// rendering depends on that asymmetry.
type DocumentMetadata struct {
	Kind MetadataKind `json:"kind" yaml:"kind"`

	// Err is the error marker: non-empty means the document could not be
	// retrieved and the record carries no usable fields beyond DocumentID.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	DocumentID string `json:"document_id" yaml:"document_id"`
	Title      string `json:"title" yaml:"title"`
	Origin     string `json:"origin" yaml:"origin"`

	// Case-law fields.
	Jurisdiction string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate    string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// Generic fields.
	CID    string `json:"cid,omitempty" yaml:"cid,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Nature string `json:"nature,omitempty" yaml:"nature,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`

	// Extracts holds the per-extract tuples of the generic variant.
	Extracts []ExtractMetadata `json:"extracts,omitempty" yaml:"extracts,omitempty"`

	// Text is the full body text (case-law) or the concatenated extract
	// blob with bracketed section titles (generic).
	Text string `json:"text" yaml:"text"`
}

// ExtractMetadata is one matched passage of a generic record.
type ExtractMetadata struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	SectionTitle string `json:"section_title" yaml:"section_title"`
	Text         string `json:"text" yaml:"text"`
}

// Field is one descriptive key/value pair rendered into the synthesis
// prompt.
type Field struct {
	Key   string
	Value string
}

// DescriptiveFields returns the non-text fields of the record in a fixed
// order, ready to be rendered as "key: value" lines. Text is deliberately
// excluded; it is rendered separately with truncation.
func (m DocumentMetadata) DescriptiveFields() []Field {
	switch m.Kind {
	case KindCaseLaw:
		return []Field{
			{"document_id", m.DocumentID},
			{"origine", m.Origin},
			{"titre", m.Title},
			{"juridiction", m.Jurisdiction},
			{"etat", m.Status},
			{"date_debut", m.StartDate},
			{"date_fin", m.EndDate},
		}
	default:
		return []Field{
			{"titre", m.Title},
			{"document_id", m.DocumentID},
			{"cid", m.CID},
			{"type", m.Type},
			{"nature", m.Nature},
			{"origine", m.Origin},
			{"date", m.Date},
		}
	}
}
