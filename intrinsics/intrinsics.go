// Package intrinsics provides the CloudFormation intrinsic functions and IAM
// policy document types used by the stack declarations.
//
// The core intrinsic types and pseudo-parameters come from
// cloudformation-schema-go; this package re-exports the subset the topology
// needs and adds the IAM policy types in policy.go.
//
// Examples:
//
//	Ref{LogicalName: "PlayerDataBucket"}      → {"Ref": "PlayerDataBucket"}
//	Sub{String: "data-${AWS::AccountId}"}     → {"Fn::Sub": "data-${AWS::AccountId}"}
//	GetAtt{LogicalName: "Role", Attribute: "Arn"} → {"Fn::GetAtt": ["Role", "Arn"]}
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// SubWithMap is Fn::Sub with a variable map.
	SubWithMap = intrinsics.SubWithMap

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join
)

// Pseudo-parameters are predefined by CloudFormation and resolved by the
// deployment tool at deploy time, never locally.
var (
	// AWS_ACCOUNT_ID returns the AWS account ID the stack is created in.
	AWS_ACCOUNT_ID = intrinsics.AWS_ACCOUNT_ID

	// AWS_PARTITION returns the partition the resource is in (aws, aws-cn, aws-us-gov).
	AWS_PARTITION = intrinsics.AWS_PARTITION

	// AWS_REGION returns the AWS Region the stack is created in.
	AWS_REGION = intrinsics.AWS_REGION

	// AWS_STACK_NAME returns the name of the stack.
	AWS_STACK_NAME = intrinsics.AWS_STACK_NAME
)
