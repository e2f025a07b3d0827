// Package nhldata defines the declaration model for the NHL player-data stack.
//
// The repository declares one deployment topology: an S3 bucket for player-bios
// data, a Lambda function that loads the data, and an invoke edge to a
// pre-existing seasons function. Declarations are plain Go structs; the CLI
// turns them into a CloudFormation template that the external deployment
// tooling (aws cloudformation deploy / delete-stack) consumes.
package nhldata

// Resource represents a CloudFormation resource.
// All resource types (s3.Bucket, iam.Role, etc.) implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::S3::Bucket")
	ResourceType() string
}

// Declaration is a single named resource in the topology.
type Declaration struct {
	// Name is the CloudFormation logical ID
	Name string
	// Resource holds the typed resource properties
	Resource Resource
	// DependsOn are logical names this resource is ordered after
	DependsOn []string
	// DeletionPolicy controls teardown behavior ("Delete", "Retain", ...).
	// Empty means the CloudFormation default.
	DeletionPolicy string
}

// Topology is the full declared resource set for one deployment, in
// declaration order. It is the output of the pure stack builder and the input
// to template assembly; nothing in it touches the cloud provider.
type Topology struct {
	Description  string
	Declarations []Declaration
	Parameters   map[string]Parameter
	Outputs      map[string]Output
	Metadata     map[string]any
}

// Declaration returns the declaration with the given logical name, if present.
func (t *Topology) Declaration(name string) (Declaration, bool) {
	for _, d := range t.Declarations {
		if d.Name == name {
			return d, true
		}
	}
	return Declaration{}, false
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Metadata                 map[string]any         `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type           string         `json:"Type" yaml:"Type"`
	Properties     map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn      []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	DeletionPolicy string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type        string `json:"Type" yaml:"Type"`
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default     any    `json:"Default,omitempty" yaml:"Default,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
}

// SynthResult is the JSON output from `nhl-data-stack synth`.
type SynthResult struct {
	Success   bool     `json:"success"`
	Template  Template `json:"template,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `nhl-data-stack validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// SchemaError is a single schema validation finding.
type SchemaError struct {
	Resource string `json:"resource"`
	Property string `json:"property,omitempty"`
	Message  string `json:"message"`
}

// TemplateDiff describes the difference between two templates.
type TemplateDiff struct {
	Added    []DiffEntry `json:"added,omitempty"`
	Removed  []DiffEntry `json:"removed,omitempty"`
	Modified []DiffEntry `json:"modified,omitempty"`
}

// DiffEntry is a single changed resource in a template diff.
type DiffEntry struct {
	Resource string   `json:"resource"`
	Type     string   `json:"type"`
	Changes  []string `json:"changes,omitempty"`
}

// DiffSummary counts the entries in a TemplateDiff.
type DiffSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
	Total    int `json:"total"`
}
