// Package differ provides semantic comparison of CloudFormation templates.
//
// Operators use it to compare a fresh synthesis against the committed
// template before handing either to the deployment tool.
package differ

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	nhldata "github.com/pucklab/nhl-data-stack"
)

// Result contains the difference between two templates.
type Result struct {
	Diff    nhldata.TemplateDiff
	Summary nhldata.DiffSummary
}

// Compare compares two CloudFormation templates and returns differences
// from the perspective of moving from old to new.
func Compare(oldTmpl, newTmpl *nhldata.Template) *Result {
	result := &Result{}

	oldRes := oldTmpl.Resources
	newRes := newTmpl.Resources

	for name, def := range newRes {
		if _, exists := oldRes[name]; !exists {
			result.Diff.Added = append(result.Diff.Added, nhldata.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}

	for name, def := range oldRes {
		if _, exists := newRes[name]; !exists {
			result.Diff.Removed = append(result.Diff.Removed, nhldata.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}

	for name, oldDef := range oldRes {
		newDef, exists := newRes[name]
		if !exists {
			continue
		}
		changes := compareResources(oldDef, newDef)
		if len(changes) > 0 {
			result.Diff.Modified = append(result.Diff.Modified, nhldata.DiffEntry{
				Resource: name,
				Type:     oldDef.Type,
				Changes:  changes,
			})
		}
	}

	sortEntries(result.Diff.Added)
	sortEntries(result.Diff.Removed)
	sortEntries(result.Diff.Modified)

	result.Summary = nhldata.DiffSummary{
		Added:    len(result.Diff.Added),
		Removed:  len(result.Diff.Removed),
		Modified: len(result.Diff.Modified),
	}
	result.Summary.Total = result.Summary.Added + result.Summary.Removed + result.Summary.Modified

	return result
}

// LoadTemplate loads a CloudFormation template from a JSON or YAML file.
func LoadTemplate(path string) (*nhldata.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tmpl nhldata.Template
	if err := json.Unmarshal(data, &tmpl); err != nil {
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, fmt.Errorf("parsing %s as JSON or YAML: %w", path, err)
		}
	}

	return &tmpl, nil
}

func compareResources(oldDef, newDef nhldata.ResourceDef) []string {
	var changes []string

	if oldDef.Type != newDef.Type {
		changes = append(changes, fmt.Sprintf("Type changed: %s -> %s", oldDef.Type, newDef.Type))
	}
	if oldDef.DeletionPolicy != newDef.DeletionPolicy {
		changes = append(changes, "DeletionPolicy changed")
	}
	if !equalStringSlices(oldDef.DependsOn, newDef.DependsOn) {
		changes = append(changes, "DependsOn changed")
	}

	changes = append(changes, compareProperties(oldDef.Properties, newDef.Properties)...)

	return changes
}

func compareProperties(oldProps, newProps map[string]any) []string {
	var changes []string

	for key, newVal := range newProps {
		if oldVal, exists := oldProps[key]; exists {
			if !reflect.DeepEqual(normalize(oldVal), normalize(newVal)) {
				changes = append(changes, fmt.Sprintf("%s modified", key))
			}
		} else {
			changes = append(changes, fmt.Sprintf("%s added", key))
		}
	}

	for key := range oldProps {
		if _, exists := newProps[key]; !exists {
			changes = append(changes, fmt.Sprintf("%s removed", key))
		}
	}

	sort.Strings(changes)
	return changes
}

// normalize sends both values through a JSON round trip so that typed and
// generic representations of the same property compare equal.
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortEntries(entries []nhldata.DiffEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Resource < entries[j].Resource
	})
}
