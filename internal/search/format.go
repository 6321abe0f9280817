// Copyright SilloVV, 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// FormatResults writes results as a human-readable document listing to w.
func FormatResults(results []types.SearchResultRecord, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Aucun résultat à afficher.")
		return
	}

	fmt.Fprintln(w, "\n===== RÉSULTATS DE LA RECHERCHE =====")

	for i, result := range results {
		fmt.Fprintf(w, "\nDOCUMENT %d:\n", i+1)

		for _, title := range result.Titles {
			fmt.Fprintf(w, "  Titre: %s\n", title.Title)
			fmt.Fprintf(w, "  CID: %s\n", title.CID)
			fmt.Fprintf(w, "  ID: %s\n", title.ID)
		}

		fmt.Fprintf(w, "  Type: %s\n", result.Type)
		fmt.Fprintf(w, "  Nature: %s\n", result.Nature)
		fmt.Fprintf(w, "  Origine: %s\n", result.Origin)
		fmt.Fprintf(w, "  Date: %s\n", result.Date)

		fmt.Fprintln(w, "\n  SECTIONS:")
		for _, section := range result.Sections {
			fmt.Fprintf(w, "    → %s (ID: %s)\n", section.Title, section.ID)
			fmt.Fprintf(w, "      Date de version: %s\n", section.DateVersion)
			fmt.Fprintf(w, "      Statut légal: %s\n", section.LegalStatus)

			fmt.Fprintln(w, "\n      EXTRAITS:")
			for _, extract := range section.Extracts {
				label := extract.Title
				if label == "" || label == placeholderExtractTitle {
					if extract.Num != "" {
						label = extract.Num
					} else {
						label = "Sans titre"
					}
				}
				fmt.Fprintf(w, "        · Extrait: %s (ID: %s)\n", label, extract.ID)
				fmt.Fprintf(w, "          Statut légal: %s\n", extract.LegalStatus)
				if len(extract.Values) > 0 {
					fmt.Fprintln(w, "          Texte:")
					for _, value := range extract.Values {
						fmt.Fprintf(w, "            %s\n", value)
					}
				}
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.SearchResultRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
