package iam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pucklab/nhl-data-stack/internal/serialize"
	"github.com/pucklab/nhl-data-stack/intrinsics"
)

func TestResourceType(t *testing.T) {
	assert.Equal(t, "AWS::IAM::Role", Role{}.ResourceType())
}

func TestRoleSerialization(t *testing.T) {
	role := Role{
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(
				intrinsics.PolicyStatement{
					Effect:    "Allow",
					Principal: intrinsics.ServicePrincipal{"lambda.amazonaws.com"},
					Action:    "sts:AssumeRole",
				},
			),
		},
		ManagedPolicyArns: intrinsics.Any(
			"arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole",
		),
		Policies: intrinsics.Any(
			Role_Policy{
				PolicyName: "player-data-put",
				PolicyDocument: intrinsics.PolicyDocument{
					Version: "2012-10-17",
					Statement: intrinsics.Any(
						intrinsics.PolicyStatement{
							Effect:   "Allow",
							Action:   "s3:PutObject",
							Resource: intrinsics.Join{Delimiter: "", Values: []any{intrinsics.GetAtt{LogicalName: "DataBucket", Attribute: "Arn"}, "/*"}},
						},
					),
				},
			},
		),
	}

	props, err := serialize.Properties(role)
	require.NoError(t, err)

	assume := props["AssumeRolePolicyDocument"].(map[string]any)
	stmts := assume["Statement"].([]any)
	require.Len(t, stmts, 1)
	stmt := stmts[0].(map[string]any)
	principal := stmt["Principal"].(map[string]any)
	assert.Equal(t, "lambda.amazonaws.com", principal["Service"])
	assert.Equal(t, "sts:AssumeRole", stmt["Action"])

	managed := props["ManagedPolicyArns"].([]any)
	require.Len(t, managed, 1)
	assert.Contains(t, managed[0], "AWSLambdaBasicExecutionRole")

	policies := props["Policies"].([]any)
	require.Len(t, policies, 1)
	inline := policies[0].(map[string]any)
	assert.Equal(t, "player-data-put", inline["PolicyName"])
	doc := inline["PolicyDocument"].(map[string]any)
	putStmt := doc["Statement"].([]any)[0].(map[string]any)
	assert.Equal(t, "s3:PutObject", putStmt["Action"])

	join := putStmt["Resource"].(map[string]any)
	assert.Contains(t, join, "Fn::Join")
}

func TestOmitEmptyFields(t *testing.T) {
	role := Role{
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Statement: intrinsics.Any(
				intrinsics.PolicyStatement{Effect: "Allow", Action: "sts:AssumeRole"},
			),
		},
	}

	props, err := serialize.Properties(role)
	require.NoError(t, err)

	_, hasName := props["RoleName"]
	assert.False(t, hasName, "RoleName should be omitted when unset")

	_, hasMax := props["MaxSessionDuration"]
	assert.False(t, hasMax, "MaxSessionDuration should be omitted when zero")
}
