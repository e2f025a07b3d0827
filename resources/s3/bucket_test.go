package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/internal/serialize"
	"github.com/pucklab/nhl-data-stack/intrinsics"
)

func TestResourceTypes(t *testing.T) {
	tests := []struct {
		name     string
		resource nhldata.Resource
		expected string
	}{
		{"Bucket", Bucket{}, "AWS::S3::Bucket"},
		{"BucketPolicy", BucketPolicy{}, "AWS::S3::BucketPolicy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resource.ResourceType())
		})
	}
}

func TestBucketSerialization(t *testing.T) {
	bucket := Bucket{
		BucketName: intrinsics.Sub{String: "data-${AWS::AccountId}"},
		BucketEncryption: &Bucket_BucketEncryption{
			ServerSideEncryptionConfiguration: intrinsics.Any(
				Bucket_ServerSideEncryptionRule{
					ServerSideEncryptionByDefault: &Bucket_ServerSideEncryptionByDefault{
						SSEAlgorithm: "AES256",
					},
				},
			),
		},
		PublicAccessBlockConfiguration: &Bucket_PublicAccessBlockConfiguration{
			BlockPublicAcls:       true,
			BlockPublicPolicy:     true,
			IgnorePublicAcls:      true,
			RestrictPublicBuckets: true,
		},
	}

	props, err := serialize.Properties(bucket)
	require.NoError(t, err)

	name := props["BucketName"].(map[string]any)
	assert.Equal(t, "data-${AWS::AccountId}", name["Fn::Sub"])

	enc := props["BucketEncryption"].(map[string]any)
	rules := enc["ServerSideEncryptionConfiguration"].([]any)
	require.Len(t, rules, 1)
	rule := rules[0].(map[string]any)
	byDefault := rule["ServerSideEncryptionByDefault"].(map[string]any)
	assert.Equal(t, "AES256", byDefault["SSEAlgorithm"])

	block := props["PublicAccessBlockConfiguration"].(map[string]any)
	assert.Equal(t, true, block["BlockPublicAcls"])
	assert.Equal(t, true, block["RestrictPublicBuckets"])
}

func TestBucketPolicySerialization(t *testing.T) {
	policy := BucketPolicy{
		Bucket: intrinsics.Ref{LogicalName: "DataBucket"},
		PolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(
				intrinsics.DenyStatement{
					Sid:       "DenyInsecureTransport",
					Effect:    "Deny",
					Principal: intrinsics.AllPrincipal,
					Action:    "s3:*",
					Condition: intrinsics.Json{
						intrinsics.Bool: intrinsics.Json{"aws:SecureTransport": "false"},
					},
				},
			),
		},
	}

	props, err := serialize.Properties(policy)
	require.NoError(t, err)

	ref := props["Bucket"].(map[string]any)
	assert.Equal(t, "DataBucket", ref["Ref"])

	doc := props["PolicyDocument"].(map[string]any)
	stmts := doc["Statement"].([]any)
	require.Len(t, stmts, 1)
	stmt := stmts[0].(map[string]any)
	assert.Equal(t, "Deny", stmt["Effect"])
	assert.Equal(t, "*", stmt["Principal"])
}

func TestOmitEmptyFields(t *testing.T) {
	bucket := Bucket{BucketName: "plain-name"}

	props, err := serialize.Properties(bucket)
	require.NoError(t, err)

	assert.Equal(t, "plain-name", props["BucketName"])

	_, hasEncryption := props["BucketEncryption"]
	assert.False(t, hasEncryption, "BucketEncryption should be omitted when nil")

	_, hasVersioning := props["VersioningConfiguration"]
	assert.False(t, hasVersioning, "VersioningConfiguration should be omitted when nil")
}
