package main

import (
	"github.com/spf13/cobra"

	"github.com/pucklab/nhl-data-stack/stack"
)

// configFlags collects the deployment parameters shared by every command.
// Precedence: flag > config file > environment > hard-coded default.
type configFlags struct {
	configFile string

	bucketNameTemplate string
	targetFunction     string
	account            string
	region             string
	artifactBucket     string
	artifactKey        string
}

func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "Deploy config file (YAML)")
	flags.StringVar(&f.bucketNameTemplate, "bucket-name-template", "", "Bucket name, may reference ${AWS::AccountId}")
	flags.StringVar(&f.targetFunction, "target-function", "", "Name of the pre-existing function to invoke")
	flags.StringVar(&f.account, "account", "", "Target AWS account ID")
	flags.StringVar(&f.region, "region", "", "Target AWS region")
	flags.StringVar(&f.artifactBucket, "artifact-bucket", "", "Bucket holding the staged source artifact")
	flags.StringVar(&f.artifactKey, "artifact-key", "", "Key of the staged source artifact")
}

// load assembles the stack configuration. Validation happens in stack.Build,
// so a malformed configuration fails before any template is produced.
func (f *configFlags) load() (stack.Config, error) {
	var cfg stack.Config
	var err error

	if f.configFile != "" {
		cfg, err = stack.LoadFile(f.configFile)
		if err != nil {
			return stack.Config{}, err
		}
	} else {
		cfg = stack.DefaultConfig()
	}

	if f.bucketNameTemplate != "" {
		cfg.BucketNameTemplate = f.bucketNameTemplate
	}
	if f.targetFunction != "" {
		cfg.TargetFunctionName = f.targetFunction
	}
	if f.account != "" {
		cfg.Account = f.account
	}
	if f.region != "" {
		cfg.Region = f.region
	}
	if f.artifactBucket != "" {
		cfg.ArtifactBucket = f.artifactBucket
	}
	if f.artifactKey != "" {
		cfg.ArtifactKey = f.artifactKey
	}

	return cfg, nil
}
