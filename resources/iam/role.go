// Package iam provides CloudFormation resource types for AWS IAM.
package iam

// Role represents AWS::IAM::Role.
type Role struct {
	RoleName                 any
	Description              string
	AssumeRolePolicyDocument any
	ManagedPolicyArns        []any
	Policies                 []any
	MaxSessionDuration       int
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is an inline policy attached to a role.
type Role_Policy struct {
	PolicyName     any
	PolicyDocument any
}
