package stack

import (
	"github.com/pucklab/nhl-data-stack/intrinsics"
)

// ExternalRef is a lookup handle to a function that already exists outside
// this deployment's ownership. It carries only a name; the identifier is
// deferred to deploy time via pseudo-parameter substitution. An ExternalRef
// never becomes a resource declaration, so tearing the stack down can never
// delete the referenced function.
//
// If no function with this name exists, the failure surfaces when the
// deployment tool applies the grants that use the resolved ARN, not during
// synthesis.
type ExternalRef struct {
	// Name is the exact function name, supplied externally.
	Name string
}

// Arn returns the deferred-resolved identifier of the referenced function.
func (r ExternalRef) Arn() intrinsics.Sub {
	return intrinsics.Sub{
		String: "arn:${AWS::Partition}:lambda:${AWS::Region}:${AWS::AccountId}:function:" + r.Name,
	}
}
