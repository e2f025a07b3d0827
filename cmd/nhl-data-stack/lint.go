package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pucklab/nhl-data-stack/internal/cfnlint"
)

func newLintCmd() *cobra.Command {
	var (
		flags        configFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "lint [template-file]",
		Short: "Lint the synthesized template with cfn-lint",
		Long: `Lint synthesizes the topology and runs cfn-lint against the result.

With a template file argument, lints that file instead of synthesizing.

Examples:
    nhl-data-stack lint
    nhl-data-stack lint build/template.json
    nhl-data-stack lint --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runLint(func() (*cfnlint.Result, error) {
					return cfnlint.LintFile(args[0])
				}, outputFormat)
			}

			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runLint(func() (*cfnlint.Result, error) {
				tmpl, err := synthesize(cfg)
				if err != nil {
					return nil, err
				}
				return cfnlint.LintTemplate(tmpl)
			}, outputFormat)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runLint(run func() (*cfnlint.Result, error), format string) error {
	result, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return fmt.Errorf("lint failed")
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Passed && result.TotalIssues() == 0 {
			fmt.Println("Lint passed: no issues found")
			return nil
		}

		for _, msg := range result.Errors {
			fmt.Printf("  ERROR: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", msg)
		}
		for _, msg := range result.Informational {
			fmt.Printf("  INFO: %s\n", msg)
		}
		fmt.Printf("%d issue(s) found\n", result.TotalIssues())

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Passed {
		os.Exit(1)
	}

	return nil
}
