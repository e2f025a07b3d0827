// Package s3 provides CloudFormation resource types for Amazon S3.
//
// Only the types and properties this repository's topology declares are
// carried here; fields follow the CloudFormation property names exactly.
package s3

// Bucket represents AWS::S3::Bucket.
//
// Name fields are typed any so they accept either a literal string or an
// intrinsic such as Sub over the account pseudo-parameter.
type Bucket struct {
	BucketName                     any
	BucketEncryption               *Bucket_BucketEncryption
	PublicAccessBlockConfiguration *Bucket_PublicAccessBlockConfiguration
	VersioningConfiguration        *Bucket_VersioningConfiguration
	Tags                           []any
}

// ResourceType returns the CloudFormation type.
func (Bucket) ResourceType() string { return "AWS::S3::Bucket" }

// Bucket_BucketEncryption configures server-side encryption for a bucket.
type Bucket_BucketEncryption struct {
	ServerSideEncryptionConfiguration []any
}

// Bucket_ServerSideEncryptionRule is a single encryption rule.
type Bucket_ServerSideEncryptionRule struct {
	ServerSideEncryptionByDefault *Bucket_ServerSideEncryptionByDefault
	BucketKeyEnabled              bool
}

// Bucket_ServerSideEncryptionByDefault selects the default encryption algorithm.
type Bucket_ServerSideEncryptionByDefault struct {
	SSEAlgorithm   string
	KMSMasterKeyID any
}

// Bucket_PublicAccessBlockConfiguration blocks public access to a bucket.
type Bucket_PublicAccessBlockConfiguration struct {
	BlockPublicAcls       bool
	BlockPublicPolicy     bool
	IgnorePublicAcls      bool
	RestrictPublicBuckets bool
}

// Bucket_VersioningConfiguration enables versioning on a bucket.
type Bucket_VersioningConfiguration struct {
	Status string
}

// BucketPolicy represents AWS::S3::BucketPolicy.
type BucketPolicy struct {
	Bucket         any
	PolicyDocument any
}

// ResourceType returns the CloudFormation type.
func (BucketPolicy) ResourceType() string { return "AWS::S3::BucketPolicy" }
