// Copyright SilloVV, 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SilloVV/appel-legifrance-gemini/internal/auth"
	"github.com/SilloVV/appel-legifrance-gemini/internal/llm"
	"github.com/SilloVV/appel-legifrance-gemini/internal/payload"
	"github.com/SilloVV/appel-legifrance-gemini/internal/search"
	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [question]",
	Short: "Interroge l'API de recherche Legifrance",
	Long: `Search exécute la moitié amont du pipeline et s'arrête aux résultats
bruts: la question est traduite en requête structurée, la recherche est lancée
et les documents trouvés sont listés sans synthèse.

Avec --query-file, la requête structurée est relue depuis un fichier YAML déjà
sauvegardé au lieu d'être régénérée par le modèle.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query-file", "", "fichier YAML de requête à rejouer")
	searchCmd.Flags().String("save", "", "sauvegarde question, requête et résultats dans ce fichier YAML")
	searchCmd.Flags().Bool("json", false, "imprime les résultats en JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	httpClient := &http.Client{Timeout: cfg.Auth.Timeout}
	tokens := auth.NewClient(httpClient, cfg.Auth)
	client := search.NewClient(httpClient, tokens, cfg.Search)

	question := strings.TrimSpace(strings.Join(args, " "))
	var query types.SearchQuery

	queryFile, _ := cmd.Flags().GetString("query-file")
	switch {
	case queryFile != "":
		saved, err := search.ReadQueryFile(queryFile)
		if err != nil {
			return err
		}
		query = saved.Query
		if question == "" {
			question = saved.Question
		}
	case question != "":
		gemini, err := llm.NewGeminiClient(ctx, cfg.Payload)
		if err != nil {
			return err
		}
		builder, err := payload.NewBuilder(gemini)
		if err != nil {
			return err
		}
		raw, err := builder.Build(ctx, question, "")
		if err != nil {
			return err
		}
		query, err = payload.Parse(raw)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("fournissez une question ou --query-file")
	}

	results, err := client.Search(ctx, query)
	if err != nil {
		if errors.Is(err, search.ErrNoResults) {
			fmt.Println("Aucun résultat juridique trouvé pour cette question.")
			return nil
		}
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, question, query, results); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Requête sauvegardée dans", savePath)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(results, os.Stdout)
	}
	search.FormatResults(results, os.Stdout)
	return nil
}
