// Package stack declares the NHL player-data deployment topology.
//
// One bucket stores player-bios data, one Lambda function loads it, and a
// pre-existing seasons function is referenced by name and granted nothing but
// an invoke edge from the loader. Build is a pure function from configuration
// to declaration tree: no process-global registration object, no cloud calls.
package stack

import (
	"fmt"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/intrinsics"
	"github.com/pucklab/nhl-data-stack/resources/iam"
	"github.com/pucklab/nhl-data-stack/resources/lambda"
	"github.com/pucklab/nhl-data-stack/resources/s3"
)

// Logical IDs of the declared resources.
const (
	BucketName          = "PlayerDataBucket"
	BucketPolicyName    = "PlayerDataBucketPolicy"
	SourceRoleName      = "SourceFunctionRole"
	SourceFunctionName  = "SourceFunction"
	ArtifactBucketParam = "SourceArtifactBucket"
	ArtifactKeyParam    = "SourceArtifactKey"
)

// Environment variable names injected into the source function. These two
// entries are the function's entire environment.
const (
	EnvBucketName        = "BUCKET_NAME"
	EnvTargetFunctionArn = "TARGET_FUNCTION_ARN"
)

const lambdaBasicExecutionPolicy = "arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"

// Build declares the full resource topology for the given configuration.
//
// Declaration order follows the data dependencies: the bucket first, then the
// external target reference, then the source function (whose environment
// embeds both), then the permission edges. Nothing here touches the cloud;
// provisioning order and retries belong to the deployment tool.
func Build(cfg Config) (*nhldata.Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stack config: %w", err)
	}

	// The data bucket. Public access fully blocked, AES256 at rest, TLS
	// enforced by the bucket policy below. DeletionPolicy is Delete: this
	// is a development stack and the data goes with it.
	bucket := s3.Bucket{
		BucketName: intrinsics.Sub{String: cfg.BucketNameTemplate},
		BucketEncryption: &s3.Bucket_BucketEncryption{
			ServerSideEncryptionConfiguration: intrinsics.Any(
				s3.Bucket_ServerSideEncryptionRule{
					ServerSideEncryptionByDefault: &s3.Bucket_ServerSideEncryptionByDefault{
						SSEAlgorithm: "AES256",
					},
				},
			),
		},
		PublicAccessBlockConfiguration: &s3.Bucket_PublicAccessBlockConfiguration{
			BlockPublicAcls:       true,
			BlockPublicPolicy:     true,
			IgnorePublicAcls:      true,
			RestrictPublicBuckets: true,
		},
	}

	bucketArn := intrinsics.GetAtt{LogicalName: BucketName, Attribute: "Arn"}
	bucketObjectsArn := intrinsics.Join{
		Delimiter: "",
		Values:    intrinsics.Any(bucketArn, "/*"),
	}

	denyInsecureTransport := intrinsics.DenyStatement{
		Sid:       "DenyInsecureTransport",
		Effect:    "Deny",
		Action:    "s3:*",
		Principal: intrinsics.AWSPrincipal{intrinsics.AllPrincipal},
		Resource:  intrinsics.Any(bucketArn, bucketObjectsArn),
		Condition: intrinsics.Json{
			intrinsics.Bool: intrinsics.Json{"aws:SecureTransport": "false"},
		},
	}

	bucketPolicy := s3.BucketPolicy{
		Bucket: intrinsics.Ref{LogicalName: BucketName},
		PolicyDocument: intrinsics.PolicyDocument{
			Version:   "2012-10-17",
			Statement: intrinsics.Any(denyInsecureTransport),
		},
	}

	// The pre-existing target function, resolved by name. This is a
	// reference, never a resource: the stack must not create or delete it.
	target := ExternalRef{Name: cfg.TargetFunctionName}
	targetArn := target.Arn()

	// The two permission grants, as inline policies on the execution
	// role. Write on the bucket's objects, invoke on the target.
	putGrant := iam.Role_Policy{
		PolicyName: "player-data-put",
		PolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(intrinsics.PolicyStatement{
				Effect:   "Allow",
				Action:   "s3:PutObject",
				Resource: bucketObjectsArn,
			}),
		},
	}

	invokeGrant := iam.Role_Policy{
		PolicyName: "seasons-invoke",
		PolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(intrinsics.PolicyStatement{
				Effect:   "Allow",
				Action:   "lambda:InvokeFunction",
				Resource: targetArn,
			}),
		},
	}

	role := iam.Role{
		Description: "Execution role for the player-bios loader",
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: intrinsics.Any(intrinsics.PolicyStatement{
				Effect:    "Allow",
				Principal: intrinsics.ServicePrincipal{"lambda.amazonaws.com"},
				Action:    "sts:AssumeRole",
			}),
		},
		ManagedPolicyArns: intrinsics.Any(lambdaBasicExecutionPolicy),
		Policies:          intrinsics.Any(putGrant, invokeGrant),
	}

	// The source function. Its environment is exactly two entries: the
	// bucket name and the resolved target identifier.
	function := lambda.Function{
		Description: "Loads NHL player bios for all seasons into the data bucket",
		Runtime:     "python3.12",
		Handler:     "app.lambda_handler",
		Code: &lambda.Function_Code{
			S3Bucket: intrinsics.Ref{LogicalName: ArtifactBucketParam},
			S3Key:    intrinsics.Ref{LogicalName: ArtifactKeyParam},
		},
		Role:       intrinsics.GetAtt{LogicalName: SourceRoleName, Attribute: "Arn"},
		Timeout:    300,
		MemorySize: 256,
		Environment: &lambda.Function_Environment{
			Variables: map[string]any{
				EnvBucketName:        intrinsics.Ref{LogicalName: BucketName},
				EnvTargetFunctionArn: targetArn,
			},
		},
	}

	top := &nhldata.Topology{
		Description: "NHL player data pipeline: bucket, loader function, and invoke edge to " + target.Name,
		Declarations: []nhldata.Declaration{
			{
				Name:           BucketName,
				Resource:       bucket,
				DeletionPolicy: "Delete",
			},
			{
				Name:      BucketPolicyName,
				Resource:  bucketPolicy,
				DependsOn: []string{BucketName},
			},
			{
				Name:     SourceRoleName,
				Resource: role,
				// Grants reference the bucket; order the role after it.
				DependsOn: []string{BucketName},
			},
			{
				Name:      SourceFunctionName,
				Resource:  function,
				DependsOn: []string{SourceRoleName},
			},
		},
		Parameters: map[string]nhldata.Parameter{
			ArtifactBucketParam: {
				Type:        "String",
				Description: "Bucket holding the staged source-function artifact",
				Default:     cfg.ArtifactBucket,
			},
			ArtifactKeyParam: {
				Type:        "String",
				Description: "Key of the staged source-function artifact",
				Default:     cfg.ArtifactKey,
			},
		},
		// Operator-visible outputs.
		Outputs: map[string]nhldata.Output{
			"BucketName": {
				Description: "Resolved name of the player data bucket",
				Value:       intrinsics.Ref{LogicalName: BucketName},
			},
			"TargetFunctionArn": {
				Description: "Resolved identifier of the referenced seasons function",
				Value:       targetArn,
			},
		},
		Metadata: map[string]any{
			"Environment": map[string]any{
				"Account": cfg.Account,
				"Region":  cfg.Region,
			},
		},
	}

	return top, nil
}
