/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdfchat/config"
	"github.com/tieubaoca/pdfchat/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdfchat",
	Short: "Chat with the contents of a PDF",
	Long: `pdfchat extracts the text of an uploaded PDF and answers questions
about it with a large language model (Gemini by default, or any
OpenAI-compatible API).

Run "pdfchat start" to serve the HTTP API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config/config.yaml or ./config.yaml when present)")
}

// loadConfig reads the configuration and sets up logging. requireAPIKey is
// false for commands that never call the model.
func loadConfig(requireAPIKey bool) (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LoggerOptions())

	if requireAPIKey {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
