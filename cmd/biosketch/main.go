// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the biosketch CLI. The engine parses
// NIH Biographical Sketch documents into structured records; the CLI is a
// thin consumer that prints summaries and writes the serializable form for
// downstream tools (web handlers, form-filling automation) to transport.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the biosketch CLI.
var rootCmd = &cobra.Command{
	Use:   "biosketch",
	Short: "Extract structured records from NIH biosketch documents",
	Long: `biosketch turns a loosely formatted NIH Biographical Sketch document
(.docx, .pdf, or .txt) into typed records: identity header fields, the
education/training table, and the three narrative sections (personal
statement with embedded grants and citations, positions and honors, and
contributions to science).

Extraction is best-effort: missing structure yields empty fields rather
than errors, and only an unreadable file fails the command.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./biosketch.yaml or ~/.config/biosketch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("biosketch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "biosketch"))
		}
	}

	viper.SetEnvPrefix("BIOSKETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// parserConfig builds the engine configuration from viper. Unset knobs stay
// zero; the parser applies its own defaults.
func parserConfig() types.ParserConfig {
	return types.ParserConfig{
		HeaderScanLimit:  viper.GetInt("parser.header_scan_limit"),
		MinHeadingLength: viper.GetInt("parser.min_heading_length"),
		ExtraFunders:     viper.GetStringSlice("parser.extra_funders"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
