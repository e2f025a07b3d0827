package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nhldata "github.com/pucklab/nhl-data-stack"
)

func TestValidateTemplate_Valid(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"DataBucket": {
				Type: "AWS::S3::Bucket",
				Properties: map[string]any{
					"BucketName": map[string]any{"Fn::Sub": "data-${AWS::AccountId}"},
				},
			},
			"Loader": {
				Type: "AWS::Lambda::Function",
				Properties: map[string]any{
					"Code":    map[string]any{"S3Bucket": "b", "S3Key": "k"},
					"Role":    map[string]any{"Fn::GetAtt": []any{"Role", "Arn"}},
					"Timeout": float64(300),
				},
			},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateTemplate_MissingRequired(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"Loader": {
				Type:       "AWS::Lambda::Function",
				Properties: map[string]any{"Runtime": "python3.12"},
			},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	var missing []string
	for _, e := range result.Errors {
		missing = append(missing, e.Property)
	}
	assert.ElementsMatch(t, []string{"Code", "Role"}, missing)
}

func TestValidateTemplate_WrongPropertyType(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"Loader": {
				Type: "AWS::Lambda::Function",
				Properties: map[string]any{
					"Code":    map[string]any{},
					"Role":    "arn:aws:iam::123456789012:role/x",
					"Timeout": "not-a-number",
				},
			},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Timeout", result.Errors[0].Property)
}

func TestValidateTemplate_UnknownTypeIsWarning(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"Queue": {Type: "AWS::SQS::Queue"},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "unknown resource type")
}

func TestValidateTemplate_MalformedType(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"Broken": {Type: "S3Bucket"},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.False(t, result.Valid)
}

func TestValidateTemplate_StrictUnknownProperty(t *testing.T) {
	tmpl := &nhldata.Template{
		Resources: map[string]nhldata.ResourceDef{
			"DataBucket": {
				Type:       "AWS::S3::Bucket",
				Properties: map[string]any{"AccelerateConfiguration": map[string]any{}},
			},
		},
	}

	relaxed := ValidateTemplate(tmpl, Options{})
	assert.Empty(t, relaxed.Warnings)

	strict := ValidateTemplate(tmpl, Options{Strict: true})
	require.Len(t, strict.Warnings, 1)
	assert.Contains(t, strict.Warnings[0].Message, "unknown property")
}
