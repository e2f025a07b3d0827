package stack

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Hard-coded defaults used when neither flags, config file, nor environment
// supply a value. The account placeholder is resolved by CloudFormation at
// deploy time; the literal account here only documents the intended target
// environment in the template metadata.
const (
	DefaultBucketNameTemplate = "nhl-player-data-myproject-${AWS::AccountId}"
	DefaultTargetFunctionName = "GetNHLSeasonsLambda"
	DefaultAccount            = "000000000000"
	DefaultRegion             = "us-east-1"
	DefaultArtifactBucket     = "nhl-data-deploy-artifacts"
	DefaultArtifactKey        = "player-bios-loader.zip"
)

// Environment variables consulted when account/region are not set explicitly.
const (
	EnvAccount = "AWS_ACCOUNT_ID"
	EnvRegion  = "AWS_REGION"
)

// Config carries every deployment parameter for one stack synthesis.
// The zero value is not usable; start from DefaultConfig or LoadFile and
// validate before building.
type Config struct {
	// BucketNameTemplate names the data bucket. It may reference
	// ${AWS::AccountId} to keep the name globally unique per account.
	BucketNameTemplate string `yaml:"bucket_name_template"`

	// TargetFunctionName is the pre-existing function the source function
	// invokes. The stack references it by name only and never owns it.
	TargetFunctionName string `yaml:"target_function_name"`

	// Account and Region identify the intended deployment environment.
	Account string `yaml:"account"`
	Region  string `yaml:"region"`

	// ArtifactBucket and ArtifactKey locate the staged deployment artifact
	// for the source function. They become template parameter defaults, so
	// the values can still be overridden at deploy time.
	ArtifactBucket string `yaml:"artifact_bucket"`
	ArtifactKey    string `yaml:"artifact_key"`
}

// DefaultConfig returns the configuration for the standard deployment,
// with account/region resolved from the environment.
func DefaultConfig() Config {
	cfg := Config{
		BucketNameTemplate: DefaultBucketNameTemplate,
		TargetFunctionName: DefaultTargetFunctionName,
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields from the environment, then from the
// hard-coded defaults. Missing environment variables are not an error.
func (c *Config) ApplyDefaults() {
	if c.Account == "" {
		c.Account = envOr(EnvAccount, DefaultAccount)
	}
	if c.Region == "" {
		c.Region = envOr(EnvRegion, DefaultRegion)
	}
	if c.ArtifactBucket == "" {
		c.ArtifactBucket = DefaultArtifactBucket
	}
	if c.ArtifactKey == "" {
		c.ArtifactKey = DefaultArtifactKey
	}
}

// targetNamePattern matches valid Lambda function names.
var targetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Validate checks the configuration before any template is produced.
// Errors here are declaration-time failures: nothing has touched the cloud.
func (c Config) Validate() error {
	if c.BucketNameTemplate == "" {
		return fmt.Errorf("bucket_name_template is required")
	}
	if strings.ContainsAny(c.BucketNameTemplate, " \t") {
		return fmt.Errorf("bucket_name_template %q must not contain whitespace", c.BucketNameTemplate)
	}
	if c.TargetFunctionName == "" {
		return fmt.Errorf("target_function_name is required")
	}
	if !targetNamePattern.MatchString(c.TargetFunctionName) {
		return fmt.Errorf("target_function_name %q is not a valid function name", c.TargetFunctionName)
	}
	if c.ArtifactBucket == "" || c.ArtifactKey == "" {
		return fmt.Errorf("artifact location is required")
	}
	return nil
}

// LoadFile reads a deploy configuration from a YAML file and applies defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.BucketNameTemplate == "" {
		cfg.BucketNameTemplate = DefaultBucketNameTemplate
	}
	if cfg.TargetFunctionName == "" {
		cfg.TargetFunctionName = DefaultTargetFunctionName
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
