package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pucklab/nhl-data-stack/stack"
)

func TestSynthesize(t *testing.T) {
	cfg := stack.DefaultConfig()

	tmpl, err := synthesize(cfg)
	require.NoError(t, err)

	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	assert.Equal(t, []string{
		stack.BucketName,
		stack.BucketPolicyName,
		stack.SourceFunctionName,
		stack.SourceRoleName,
	}, resourceNames(tmpl))
}

func TestSynthesize_InvalidConfig(t *testing.T) {
	cfg := stack.DefaultConfig()
	cfg.TargetFunctionName = ""

	_, err := synthesize(cfg)
	require.Error(t, err)
}

func TestConfigFlags_Precedence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "deploy.yaml")
	content := `target_function_name: FileFunction
region: eu-west-1
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	flags := configFlags{
		configFile:     configPath,
		targetFunction: "FlagFunction",
	}

	cfg, err := flags.load()
	require.NoError(t, err)

	// Flag wins over file, file wins over default.
	assert.Equal(t, "FlagFunction", cfg.TargetFunctionName)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, stack.DefaultBucketNameTemplate, cfg.BucketNameTemplate)
}

func TestRunSynth_WritesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "template.json")

	err := runSynth(stack.DefaultConfig(), "json", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AWS::S3::Bucket")
	assert.Contains(t, string(data), "GetNHLSeasonsLambda")
}
