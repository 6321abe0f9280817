// Copyright SilloVV, 2026. All rights reserved.

// Package main is the entry point for the legifrance CLI, an assistant
// that answers French legal questions from Legifrance documents.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SilloVV/appel-legifrance-gemini/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the legifrance CLI.
var rootCmd = &cobra.Command{
	Use:   "legifrance",
	Short: "Assistant juridique adossé à l'API Legifrance et à Gemini",
	Long: `legifrance répond à des questions de droit français. Une question en
langage naturel est traduite par un modèle Gemini en requête structurée pour
l'API de recherche Legifrance; les résultats sont normalisés puis synthétisés
en une réponse citée.

Chaque étape est aussi exposée en sous-commande: ask exécute le pipeline
complet, search interroge uniquement l'API de recherche, document récupère un
document isolé, serve lance l'interface web.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogging(cmd)
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./legifrance.yaml or ~/.config/legifrance/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("legifrance")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "legifrance"))
		}
	}

	viper.SetEnvPrefix("LEGIFRANCE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
