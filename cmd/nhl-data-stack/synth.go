package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/internal/template"
	"github.com/pucklab/nhl-data-stack/stack"
)

func newSynthCmd() *cobra.Command {
	var (
		flags        configFlags
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize the CloudFormation template",
		Long: `Synth builds the declared topology and writes the CloudFormation template.

Examples:
    nhl-data-stack synth
    nhl-data-stack synth -o template.json
    nhl-data-stack synth --format yaml
    nhl-data-stack synth --config deploy.yaml --region us-west-2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return runSynth(cfg, outputFormat, outputFile)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runSynth(cfg stack.Config, format, outputFile string) error {
	tmpl, err := synthesize(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("synth failed")
	}

	var data []byte
	switch format {
	case "json":
		data, err = template.ToJSON(tmpl)
	case "yaml":
		data, err = template.ToYAML(tmpl)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0o644)
}

// synthesize runs the full declaration pipeline: config to topology to template.
func synthesize(cfg stack.Config) (*nhldata.Template, error) {
	top, err := stack.Build(cfg)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.Build(top)
	if err != nil {
		return nil, fmt.Errorf("building template: %w", err)
	}

	return tmpl, nil
}

// resourceNames returns the template's logical IDs in sorted order.
func resourceNames(tmpl *nhldata.Template) []string {
	names := make([]string, 0, len(tmpl.Resources))
	for name := range tmpl.Resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
