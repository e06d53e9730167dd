// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/08wparker/SciENV-biosketch-creator/internal/cite"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <file>",
	Short: "Split a citation list into structured citations",
	Long: `Citations reads a plain-text file of bibliography lines, groups them
into individual citations (numbered/lettered markers and blank lines act
as separators), and extracts PMID, PMCID, and DOI identifiers.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func init() {
	citationsCmd.Flags().Bool("json", false, "emit JSON instead of a table")

	rootCmd.AddCommand(citationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	citations := cite.SplitBlock(string(data))

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(citations)
	}

	if len(citations) == 0 {
		fmt.Println("No citations found.")
		return nil
	}

	for i, c := range citations {
		fmt.Printf("%d. %s\n", i+1, c.Text)
		if c.PMID != "" {
			fmt.Printf("   PMID:  %s\n", c.PMID)
		}
		if c.PMCID != "" {
			fmt.Printf("   PMCID: %s\n", c.PMCID)
		}
		if c.DOI != "" {
			fmt.Printf("   DOI:   %s\n", c.DOI)
		}
	}
	return nil
}
