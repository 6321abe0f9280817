// Copyright SilloVV, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
	"github.com/SilloVV/appel-legifrance-gemini/internal/fetch"
)

var documentCmd = &cobra.Command{
	Use:   "document <identifiant>",
	Short: "Récupère un document Legifrance par identifiant",
	Long: `Document interroge directement un point de consultation Legifrance et
affiche les métadonnées extraites. Le type de document est déduit de
l'identifiant (JURI... pour une décision, LEGIARTI... pour un article) et peut
être forcé avec --kind.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

func init() {
	documentCmd.Flags().String("kind", "", "type de document: juri ou article (déduit de l'identifiant par défaut)")
	documentCmd.Flags().Bool("text", false, "affiche aussi le texte intégral")

	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	kind, _ := cmd.Flags().GetString("kind")
	if kind == "" {
		if strings.Contains(id, "JURI") {
			kind = "juri"
		} else {
			kind = "article"
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	httpClient := &http.Client{Timeout: cfg.Auth.Timeout}
	tokens := auth.NewClient(httpClient, cfg.Auth)
	showText, _ := cmd.Flags().GetBool("text")

	switch kind {
	case "juri":
		md := fetch.NewJuriFetcher(httpClient, tokens, cfg.Fetch).Metadata(ctx, id)
		if md.Err != "" {
			return fmt.Errorf("%s", md.Err)
		}
		for _, f := range md.DescriptiveFields() {
			fmt.Printf("%s: %s\n", f.Key, f.Value)
		}
		if showText {
			fmt.Println()
			fmt.Println(md.Text)
		}
	case "article":
		md := fetch.NewArticleFetcher(httpClient, tokens, cfg.Fetch).Metadata(ctx, id)
		if md.Err != "" {
			return fmt.Errorf("%s", md.Err)
		}
		fmt.Printf("article_id: %s\n", md.ArticleID)
		fmt.Printf("titre_texte: %s\n", md.TextTitle)
		fmt.Printf("nature: %s\n", md.Nature)
		fmt.Printf("numéro: %s\n", md.Number)
		fmt.Printf("origine: %s\n", md.Origin)
		fmt.Printf("état: %s%s\n", md.Status, statusIndicator(md.Status))
		fmt.Printf("date_debut: %s\n", md.StartDate)
		fmt.Printf("date_fin: %s\n", md.EndDate)
		if showText {
			fmt.Println()
			fmt.Println(md.Text)
		}
	default:
		return fmt.Errorf("type de document inconnu %q (attendu: juri ou article)", kind)
	}
	return nil
}

// statusIndicator appends a visual marker for states a lawyer scans for.
func statusIndicator(status string) string {
	switch {
	case strings.Contains(status, "ABROGE"):
		return " [ABROGÉ]"
	case strings.Contains(status, "INITIALE"):
		return " [VERSION INITIALE]"
	default:
		return ""
	}
}
