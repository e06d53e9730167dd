// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/08wparker/SciENV-biosketch-creator/internal/parse"
	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a biosketch document into structured records",
	Long: `Parse reads a biosketch document, prints a summary of what was
extracted, and optionally writes the structured record to a file as JSON
or YAML. Use --verbose for per-entry detail and parse coverage counters.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "write the structured record to this file")
	parseCmd.Flags().String("format", "json", "output format: json or yaml")
	parseCmd.Flags().BoolP("verbose", "v", false, "print per-entry detail and parse diagnostics")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parser := parse.New(parserConfig())

	data, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	printSummary(data)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		printDetail(data, parser.Diagnostics())
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	rendered, err := render(data, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("Saved to %s\n", output)
	return nil
}

// render serializes the biosketch in the requested format.
func render(data *types.Biosketch, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return data.ToJSON()
	case "yaml", "yml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}

func printSummary(data *types.Biosketch) {
	fmt.Printf("Name:          %s\n", data.Name)
	fmt.Printf("eRA Commons:   %s\n", data.ERACommonsUsername)
	fmt.Printf("Position:      %s\n", data.PositionTitle)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Education entries: %d\n", len(data.Education))
	fmt.Printf("Positions:         %d\n", len(data.Positions))
	fmt.Printf("Honors:            %d\n", len(data.Honors))
	fmt.Printf("Contributions:     %d\n", len(data.Contributions))

	if data.PersonalStatement != nil {
		fmt.Printf("Statement grants:  %d\n", len(data.PersonalStatement.Grants))
		fmt.Printf("Statement cites:   %d\n", len(data.PersonalStatement.Citations))
	}
}

func printDetail(data *types.Biosketch, diag parse.Diagnostics) {
	if len(data.Education) > 0 {
		fmt.Println("\nEDUCATION:")
		for _, edu := range data.Education {
			fmt.Printf("  - %s, %s (%s)\n", edu.Degree, edu.Institution, edu.CompletionDate)
		}
	}

	if len(data.Positions) > 0 {
		fmt.Println("\nPOSITIONS:")
		for _, pos := range data.Positions {
			fmt.Printf("  - %s: %s\n", pos.Dates, pos.Title)
		}
	}

	fmt.Println("\nCOVERAGE (lines structured/seen):")
	fmt.Printf("  positions: %d/%d\n", diag.Positions.Structured, diag.Positions.Seen)
	fmt.Printf("  honors:    %d/%d\n", diag.Honors.Structured, diag.Honors.Seen)
	fmt.Printf("  grants:    %d/%d\n", diag.Grants.Structured, diag.Grants.Seen)
}
