package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/internal/differ"
	"github.com/pucklab/nhl-data-stack/stack"
)

func newDiffCmd() *cobra.Command {
	var (
		flags        configFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "diff <template-file>",
		Short: "Compare a deployed template against the current topology",
		Long: `Diff synthesizes the topology and compares it against a previously
written template file, reporting added, removed, and modified resources
from the perspective of moving from the file to the current code.

Examples:
    nhl-data-stack diff build/template.json
    nhl-data-stack diff deployed.yaml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runDiff(cfg, args[0], outputFormat)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runDiff(cfg stack.Config, path, format string) error {
	oldTmpl, err := differ.LoadTemplate(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", path, err)
		return fmt.Errorf("diff failed")
	}

	newTmpl, err := synthesize(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return fmt.Errorf("diff failed")
	}

	result := differ.Compare(oldTmpl, newTmpl)

	switch format {
	case "json":
		data, err := json.MarshalIndent(struct {
			Diff    nhldata.TemplateDiff `json:"diff"`
			Summary nhldata.DiffSummary  `json:"summary"`
		}{result.Diff, result.Summary}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Summary.Total == 0 {
			fmt.Println("No changes")
			return nil
		}

		for _, entry := range result.Diff.Added {
			fmt.Printf("  + %s [%s]\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Removed {
			fmt.Printf("  - %s [%s]\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Diff.Modified {
			fmt.Printf("  ~ %s [%s]\n", entry.Resource, entry.Type)
			for _, change := range entry.Changes {
				fmt.Printf("      %s\n", change)
			}
		}
		fmt.Printf("%d added, %d removed, %d modified\n",
			result.Summary.Added, result.Summary.Removed, result.Summary.Modified)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
