// Copyright SilloVV, 2026. All rights reserved.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Répond à une question juridique avec citations",
	Long: `Ask exécute le pipeline complet: génération de la requête de recherche,
interrogation de Legifrance, normalisation des documents et synthèse citée.
Sans argument, la question est lue sur l'entrée standard.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("context", "", "contexte antérieur transmis au modèle")
	askCmd.Flags().Bool("json", false, "imprime le résultat complet en JSON")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		fmt.Print("Votre question juridique : ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("lecture de la question: %w", err)
		}
		question = strings.TrimSpace(line)
	}
	if question == "" {
		return fmt.Errorf("aucune question fournie")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	p, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	priorContext, _ := cmd.Flags().GetString("context")
	res, err := p.Run(ctx, question, priorContext)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Println()
	fmt.Println(res.Answer.Body)
	if res.Answer.Sources != "" {
		fmt.Println()
		fmt.Println("Sources :")
		fmt.Println(res.Answer.Sources)
	}
	return nil
}
