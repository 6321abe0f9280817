// Copyright SilloVV, 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/SilloVV/appel-legifrance-gemini/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Lance l'interface web de l'assistant",
	Long: `Serve démarre un serveur HTTP exposant l'assistant dans un navigateur.
Les questions sont traitées une à la fois; le pipeline complet est exécuté à
chaque requête.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "adresse d'écoute (défaut :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := buildPipeline(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Web.Addr
	}
	if addr == "" {
		addr = ":8080"
	}
	return web.NewServer(p).Start(addr)
}
