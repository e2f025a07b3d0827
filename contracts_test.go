package nhldata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct{ typ string }

func (r fakeResource) ResourceType() string { return r.typ }

func TestTopology_Declaration(t *testing.T) {
	top := Topology{
		Declarations: []Declaration{
			{Name: "PlayerDataBucket", Resource: fakeResource{"AWS::S3::Bucket"}},
			{Name: "SourceFunction", Resource: fakeResource{"AWS::Lambda::Function"}, DependsOn: []string{"SourceFunctionRole"}},
		},
	}

	decl, ok := top.Declaration("SourceFunction")
	require.True(t, ok)
	assert.Equal(t, "AWS::Lambda::Function", decl.Resource.ResourceType())
	assert.Equal(t, []string{"SourceFunctionRole"}, decl.DependsOn)

	_, ok = top.Declaration("GetNHLSeasonsLambda")
	assert.False(t, ok)
}

func TestTemplate_JSON(t *testing.T) {
	template := Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              "Test template",
		Resources: map[string]ResourceDef{
			"PlayerDataBucket": {
				Type: "AWS::S3::Bucket",
				Properties: map[string]any{
					"BucketName": "test-bucket",
				},
				DeletionPolicy: "Delete",
			},
		},
		Parameters: map[string]Parameter{
			"SourceArtifactKey": {
				Type:        "String",
				Description: "Key of the staged artifact",
				Default:     "player-bios-loader.zip",
			},
		},
		Outputs: map[string]Output{
			"BucketName": {
				Description: "Name of the player data bucket",
				Value:       map[string]string{"Ref": "PlayerDataBucket"},
			},
		},
	}

	data, err := json.Marshal(template)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "2010-09-09", parsed["AWSTemplateFormatVersion"])

	resources := parsed["Resources"].(map[string]any)
	bucket := resources["PlayerDataBucket"].(map[string]any)
	assert.Equal(t, "AWS::S3::Bucket", bucket["Type"])
	assert.Equal(t, "Delete", bucket["DeletionPolicy"])

	params := parsed["Parameters"].(map[string]any)
	key := params["SourceArtifactKey"].(map[string]any)
	assert.Equal(t, "String", key["Type"])

	outputs := parsed["Outputs"].(map[string]any)
	name := outputs["BucketName"].(map[string]any)
	assert.Equal(t, "Name of the player data bucket", name["Description"])
}

func TestResourceDef_DependsOn(t *testing.T) {
	resource := ResourceDef{
		Type: "AWS::Lambda::Function",
		Properties: map[string]any{
			"Handler": "app.lambda_handler",
		},
		DependsOn: []string{"SourceFunctionRole", "PlayerDataBucket"},
	}

	data, err := json.Marshal(resource)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	dependsOn := parsed["DependsOn"].([]any)
	assert.Len(t, dependsOn, 2)
	assert.Equal(t, "SourceFunctionRole", dependsOn[0])
}

func TestSynthResult_Error(t *testing.T) {
	result := SynthResult{
		Success: false,
		Errors:  []string{"duplicate logical name: PlayerDataBucket"},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.False(t, parsed["success"].(bool))
	errors := parsed["errors"].([]any)
	assert.Len(t, errors, 1)
}
