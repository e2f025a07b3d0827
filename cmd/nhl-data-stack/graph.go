package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pucklab/nhl-data-stack/internal/graph"
	"github.com/pucklab/nhl-data-stack/stack"
)

func newGraphCmd() *cobra.Command {
	var (
		flags         configFlags
		outputFormat  string
		outputFile    string
		includeParams bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the resource dependency graph",
		Long: `Graph renders the declared topology as a dependency graph.

Formats:
  dot      Graphviz DOT (default), render with: dot -Tpng -o graph.png
  mermaid  Mermaid, renders directly in GitHub markdown

Examples:
    nhl-data-stack graph
    nhl-data-stack graph -f mermaid -p
    nhl-data-stack graph -o graph.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runGraph(cfg, outputFormat, outputFile, includeParams)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&includeParams, "parameters", "p", false, "Include template parameters in the graph")

	return cmd
}

func runGraph(cfg stack.Config, format, outputFile string, includeParams bool) error {
	top, err := stack.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return fmt.Errorf("graph failed")
	}

	var gf graph.Format
	switch format {
	case "dot":
		gf = graph.FormatDOT
	case "mermaid":
		gf = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	gen := &graph.Generator{Format: gf, IncludeParameters: includeParams}
	output, err := gen.GenerateString(top)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outputFile, err)
		}
		fmt.Printf("Graph written to %s\n", outputFile)
		return nil
	}

	fmt.Println(output)
	return nil
}
