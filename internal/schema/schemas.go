package schema

// resourceSchemas covers the resource types this repository's topology
// declares. Properties not listed here are rejected only in Strict mode.
var resourceSchemas = map[string]ResourceSchema{
	"AWS::S3::Bucket": {
		Properties: map[string]PropertySchema{
			"BucketName":                     {Type: "String"},
			"BucketEncryption":               {Type: "Json"},
			"PublicAccessBlockConfiguration": {Type: "Json"},
			"VersioningConfiguration":        {Type: "Json"},
			"Tags":                           {Type: "List"},
		},
	},
	"AWS::S3::BucketPolicy": {
		Required: []string{"Bucket", "PolicyDocument"},
		Properties: map[string]PropertySchema{
			"Bucket":         {Type: "String"},
			"PolicyDocument": {Type: "Json"},
		},
	},
	"AWS::Lambda::Function": {
		Required: []string{"Code", "Role"},
		Properties: map[string]PropertySchema{
			"FunctionName": {Type: "String"},
			"Description":  {Type: "String"},
			"Runtime":      {Type: "String"},
			"Handler":      {Type: "String"},
			"Code":         {Type: "Json"},
			"Role":         {Type: "String"},
			"Timeout":      {Type: "Integer"},
			"MemorySize":   {Type: "Integer"},
			"Environment":  {Type: "Json"},
			"Tags":         {Type: "List"},
		},
	},
	"AWS::Lambda::Permission": {
		Required: []string{"FunctionName", "Action", "Principal"},
		Properties: map[string]PropertySchema{
			"FunctionName":  {Type: "String"},
			"Action":        {Type: "String"},
			"Principal":     {Type: "String"},
			"SourceArn":     {Type: "String"},
			"SourceAccount": {Type: "String"},
		},
	},
	"AWS::IAM::Role": {
		Required: []string{"AssumeRolePolicyDocument"},
		Properties: map[string]PropertySchema{
			"RoleName":                 {Type: "String"},
			"Description":              {Type: "String"},
			"AssumeRolePolicyDocument": {Type: "Json"},
			"ManagedPolicyArns":        {Type: "List"},
			"Policies":                 {Type: "List"},
			"MaxSessionDuration":       {Type: "Integer"},
		},
	},
}
