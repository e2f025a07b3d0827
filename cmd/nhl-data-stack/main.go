// Command nhl-data-stack synthesizes the NHL player-data CloudFormation stack.
//
// Usage:
//
//	nhl-data-stack synth                  Generate the CloudFormation template
//	nhl-data-stack validate               Check the declared topology
//	nhl-data-stack lint                   Run cfn-lint on the synthesized template
//	nhl-data-stack diff template.json     Compare against a committed template
//	nhl-data-stack graph                  Emit the dependency graph
//	nhl-data-stack version                Show version
//
// Deployment and teardown stay with the external tooling:
//
//	aws cloudformation deploy --template-file template.json --stack-name nhl-player-data
//	aws cloudformation delete-stack --stack-name nhl-player-data
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nhl-data-stack",
		Short: "Synthesize the NHL player-data stack",
		Long: `nhl-data-stack declares an S3 bucket, a player-bios loader function, and an
invoke edge to the pre-existing seasons function, and synthesizes the
CloudFormation template the deployment tooling consumes.

The topology is fixed; the deployment parameters (bucket name template, target
function name, account/region) come from flags, an optional deploy config
file, and the environment, in that order.`,
	}

	rootCmd.AddCommand(
		newSynthCmd(),
		newValidateCmd(),
		newLintCmd(),
		newDiffCmd(),
		newGraphCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nhl-data-stack %s\n", getVersion())
		},
	}
}
