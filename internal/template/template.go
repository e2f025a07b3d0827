// Package template assembles a declared topology into a CloudFormation template.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	nhldata "github.com/pucklab/nhl-data-stack"
	"github.com/pucklab/nhl-data-stack/internal/serialize"
)

// Build constructs the CloudFormation template from the topology.
//
// Declarations are checked for duplicate logical names, unknown DependsOn
// targets, and dependency cycles. The template's resource set is unordered by
// nature (a JSON object); ordering only matters for validation, which uses a
// deterministic topological sort so the same topology always fails or passes
// the same way.
func Build(top *nhldata.Topology) (*nhldata.Template, error) {
	if top == nil {
		return nil, errors.New("nil topology")
	}

	if err := validateDeclarations(top.Declarations); err != nil {
		return nil, err
	}

	if _, err := sortDeclarations(top.Declarations); err != nil {
		return nil, err
	}

	tmpl := &nhldata.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              top.Description,
		Resources:                make(map[string]nhldata.ResourceDef, len(top.Declarations)),
	}

	for _, decl := range top.Declarations {
		props, err := serialize.Properties(decl.Resource)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", decl.Name, err)
		}

		tmpl.Resources[decl.Name] = nhldata.ResourceDef{
			Type:           decl.Resource.ResourceType(),
			Properties:     props,
			DependsOn:      decl.DependsOn,
			DeletionPolicy: decl.DeletionPolicy,
		}
	}

	if len(top.Parameters) > 0 {
		tmpl.Parameters = make(map[string]nhldata.Parameter, len(top.Parameters))
		for name, p := range top.Parameters {
			tmpl.Parameters[name] = p
		}
	}

	if len(top.Outputs) > 0 {
		tmpl.Outputs = make(map[string]nhldata.Output, len(top.Outputs))
		for name, o := range top.Outputs {
			tmpl.Outputs[name] = o
		}
	}

	if len(top.Metadata) > 0 {
		tmpl.Metadata = make(map[string]any, len(top.Metadata))
		for key, val := range top.Metadata {
			tmpl.Metadata[key] = val
		}
	}

	return tmpl, nil
}

// validateDeclarations checks for duplicate names, missing resources, and
// DependsOn targets that are not declared.
func validateDeclarations(decls []nhldata.Declaration) error {
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return errors.New("declaration with empty logical name")
		}
		if d.Resource == nil {
			return fmt.Errorf("declaration %s has no resource", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate logical name: %s", d.Name)
		}
		seen[d.Name] = true
	}

	for _, d := range decls {
		for _, dep := range d.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("%s depends on undeclared resource %s", d.Name, dep)
			}
		}
	}

	return nil
}

// sortDeclarations returns logical names in dependency order using Kahn's
// algorithm, with a sorted queue for determinism.
func sortDeclarations(decls []nhldata.Declaration) ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for _, d := range decls {
		graph[d.Name] = nil
		inDegree[d.Name] = 0
	}

	for _, d := range decls {
		for _, dep := range d.DependsOn {
			graph[dep] = append(graph[dep], d.Name)
			inDegree[d.Name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(decls) {
		var stuck []string
		for name, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("circular dependency involving: %v", stuck)
	}

	return result, nil
}

// ToJSON serializes a template to indented JSON.
func ToJSON(tmpl *nhldata.Template) ([]byte, error) {
	return json.MarshalIndent(tmpl, "", "  ")
}

// ToYAML serializes a template to YAML.
//
// Intrinsic values were already reduced to plain maps during property
// serialization, so the long-form {"Fn::Sub": ...} syntax survives the YAML
// round trip unchanged.
func ToYAML(tmpl *nhldata.Template) ([]byte, error) {
	// Round-trip through JSON so MarshalJSON implementations in the Outputs
	// section are honored by the YAML encoder as well.
	data, err := json.Marshal(tmpl)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}

	return yaml.Marshal(generic)
}
