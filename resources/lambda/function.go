// Package lambda provides CloudFormation resource types for AWS Lambda.
package lambda

// Function represents AWS::Lambda::Function.
type Function struct {
	FunctionName any
	Description  string
	Runtime      string
	Handler      string
	Code         *Function_Code
	Role         any
	Timeout      int
	MemorySize   int
	Environment  *Function_Environment
	Tags         []any
}

// ResourceType returns the CloudFormation type.
func (Function) ResourceType() string { return "AWS::Lambda::Function" }

// Function_Code locates the deployment artifact.
// Either an S3 location or inline ZipFile source, never both.
type Function_Code struct {
	S3Bucket any
	S3Key    any
	ZipFile  string
}

// Function_Environment holds the function's environment variables.
type Function_Environment struct {
	Variables map[string]any
}

// Permission represents AWS::Lambda::Permission.
type Permission struct {
	FunctionName  any
	Action        string
	Principal     string
	SourceArn     any
	SourceAccount any
}

// ResourceType returns the CloudFormation type.
func (Permission) ResourceType() string { return "AWS::Lambda::Permission" }
