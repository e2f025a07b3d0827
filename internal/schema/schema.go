// Package schema provides offline CloudFormation schema validation.
// It validates the synthesized template against the resource schemas the
// topology can emit, before anything reaches the deployment tool.
package schema

import (
	"fmt"
	"strings"

	nhldata "github.com/pucklab/nhl-data-stack"
)

// Options configures schema validation.
type Options struct {
	// Strict also reports properties the schema does not know about.
	Strict bool
}

// Result contains schema validation results.
type Result struct {
	Valid    bool
	Errors   []nhldata.SchemaError
	Warnings []nhldata.SchemaError
}

// ValidateTemplate validates a CloudFormation template against known schemas.
func ValidateTemplate(tmpl *nhldata.Template, opts Options) *Result {
	result := &Result{Valid: true}

	for name, resource := range tmpl.Resources {
		errs, warns := validateResource(name, resource, opts)
		result.Errors = append(result.Errors, errs...)
		result.Warnings = append(result.Warnings, warns...)
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}

	return result
}

func validateResource(name string, resource nhldata.ResourceDef, opts Options) ([]nhldata.SchemaError, []nhldata.SchemaError) {
	var errors, warnings []nhldata.SchemaError

	if !isValidResourceType(resource.Type) {
		errors = append(errors, nhldata.SchemaError{
			Resource: name,
			Property: "Type",
			Message:  fmt.Sprintf("invalid resource type format: %s", resource.Type),
		})
	}

	schema, ok := resourceSchemas[resource.Type]
	if !ok {
		// Unknown types are a warning: the table only covers what the
		// topology is expected to declare.
		warnings = append(warnings, nhldata.SchemaError{
			Resource: name,
			Property: "Type",
			Message:  fmt.Sprintf("unknown resource type: %s (no schema available)", resource.Type),
		})
		return errors, warnings
	}

	for _, required := range schema.Required {
		if _, exists := resource.Properties[required]; !exists {
			errors = append(errors, nhldata.SchemaError{
				Resource: name,
				Property: required,
				Message:  fmt.Sprintf("missing required property: %s", required),
			})
		}
	}

	for propName, propValue := range resource.Properties {
		propSchema, ok := schema.Properties[propName]
		if !ok {
			if opts.Strict {
				warnings = append(warnings, nhldata.SchemaError{
					Resource: name,
					Property: propName,
					Message:  fmt.Sprintf("unknown property: %s", propName),
				})
			}
			continue
		}

		if !isValidType(propValue, propSchema.Type) {
			errors = append(errors, nhldata.SchemaError{
				Resource: name,
				Property: propName,
				Message:  fmt.Sprintf("expected type %s", propSchema.Type),
			})
		}
	}

	return errors, warnings
}

// isValidResourceType checks the AWS::Service::Resource type format.
func isValidResourceType(resourceType string) bool {
	if strings.HasPrefix(resourceType, "Custom::") {
		return true
	}
	parts := strings.Split(resourceType, "::")
	return len(parts) == 3 && parts[0] == "AWS"
}

// isValidType checks if a value matches the expected schema type.
// Intrinsic functions are always valid; their resolution is deferred.
func isValidType(value any, expectedType string) bool {
	if m, ok := value.(map[string]any); ok {
		for key := range m {
			if strings.HasPrefix(key, "Fn::") || key == "Ref" {
				return true
			}
		}
	}

	switch expectedType {
	case "String":
		_, ok := value.(string)
		return ok
	case "Integer":
		switch value.(type) {
		case int, int32, int64, float64:
			return true
		}
		return false
	case "Boolean":
		_, ok := value.(bool)
		return ok
	case "List":
		_, ok := value.([]any)
		return ok
	case "Map", "Json":
		return true
	default:
		return true
	}
}

// ResourceSchema defines the schema for a resource type.
type ResourceSchema struct {
	Required   []string
	Properties map[string]PropertySchema
}

// PropertySchema defines the schema for a property.
type PropertySchema struct {
	Type string
}
