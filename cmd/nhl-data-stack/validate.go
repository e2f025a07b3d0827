package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/internal/schema"
	"github.com/pucklab/nhl-data-stack/stack"
)

func newValidateCmd() *cobra.Command {
	var (
		flags        configFlags
		outputFormat string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the declared topology",
		Long: `Validate synthesizes the topology and checks the result offline.

Checks performed:
  - Configuration: required parameters present and well-formed
  - Declarations: unique logical names, resolvable dependencies, no cycles
  - Schema: required properties and property types per resource

Examples:
    nhl-data-stack validate
    nhl-data-stack validate --strict --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runValidate(cfg, outputFormat, strict)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Also report properties unknown to the schema")

	return cmd
}

func runValidate(cfg stack.Config, format string, strict bool) error {
	result := nhldata.ValidateResult{Success: true}

	tmpl, err := synthesize(cfg)
	if err != nil {
		result.Success = false
		result.Errors = append(result.Errors, err.Error())
		return outputValidateResult(result, format)
	}

	result.Resources = len(tmpl.Resources)

	schemaResult := schema.ValidateTemplate(tmpl, schema.Options{Strict: strict})
	for _, e := range schemaResult.Errors {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", e.Resource, e.Message))
	}
	for _, w := range schemaResult.Warnings {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", w.Resource, w.Message))
	}
	result.Success = len(result.Errors) == 0

	return outputValidateResult(result, format)
}

func outputValidateResult(result nhldata.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Printf("Validation passed: %d resources OK\n", result.Resources)
			for _, warnMsg := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", warnMsg)
			}
			return nil
		}

		fmt.Println("Validation FAILED:")
		for _, errMsg := range result.Errors {
			fmt.Printf("  ERROR: %s\n", errMsg)
		}
		for _, warnMsg := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", warnMsg)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}
