// Copyright SilloVV, 2026. All rights reserved.

package types

import "testing"

func fieldKeys(fields []Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func TestDescriptiveFieldsOrder(t *testing.T) {
	tests := []struct {
		name string
		md   DocumentMetadata
		want []string
	}{
		{
			name: "case-law variant",
			md:   DocumentMetadata{Kind: KindCaseLaw},
			want: []string{"document_id", "origine", "titre", "juridiction", "etat", "date_debut", "date_fin"},
		},
		{
			name: "generic variant",
			md:   DocumentMetadata{Kind: KindGeneric},
			want: []string{"titre", "document_id", "cid", "type", "nature", "origine", "date"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldKeys(tt.md.DescriptiveFields())
			if len(got) != len(tt.want) {
				t.Fatalf("DescriptiveFields returned %d fields, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDescriptiveFieldsExcludeText(t *testing.T) {
	md := DocumentMetadata{Kind: KindGeneric, Text: "corps du texte"}
	for _, f := range md.DescriptiveFields() {
		if f.Value == md.Text {
			t.Errorf("text field %q leaked into descriptive fields", f.Key)
		}
	}
}
