// Copyright SilloVV, 2026. All rights reserved.

package fetch

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"epoch millis as string", "1700000000000", "2023-11-14"},
		{"epoch millis as number", float64(1700000000000), "2023-11-14"},
		{"ISO string", "2023-11-14T10:00:00Z", "2023-11-14"},
		{"ISO string without zone", "2008-05-01T00:00:00", "2008-05-01"},
		{"unparsed passthrough", "n/a", "n/a"},
		{"plain date passthrough", "2023-11-14", "2023-11-14"},
		{"mixed digits and letters", "1700a", "1700a"},
		{"empty string", "", ""},
		{"boolean literal form", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatArticleStatus(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"VIGUEUR", "EN VIGUEUR"},
		{"ABROGE", "ABROGE"},
		{"VIGUEUR_DIFFERE", "VIGUEUR_DIFFERE"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatArticleStatus(tt.in); got != tt.want {
			t.Errorf("FormatArticleStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
