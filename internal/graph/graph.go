// Package graph generates DOT and Mermaid dependency graphs of the declared
// topology.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	nhldata "github.com/pucklab/nhl-data-stack"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from a declared topology.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// IncludeParameters includes template parameter nodes in the graph.
	IncludeParameters bool
}

// Generate writes the dependency graph of the topology to w.
func (g *Generator) Generate(top *nhldata.Topology, w io.Writer) error {
	graph := g.buildGraph(top)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(top *nhldata.Topology) (string, error) {
	var sb strings.Builder
	if err := g.Generate(top, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(top *nhldata.Topology) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	for _, decl := range top.Declarations {
		n := graph.Node(decl.Name)
		n.Label(decl.Name + "\\n[" + decl.Resource.ResourceType() + "]")
	}

	if g.IncludeParameters {
		names := make([]string, 0, len(top.Parameters))
		for name := range top.Parameters {
			names = append(names, name)
		}
		// Map order is random; keep node creation deterministic.
		sort.Strings(names)
		for _, name := range names {
			n := graph.Node(name)
			n.Attr("shape", "ellipse")
			n.Attr("style", "dashed")
			n.Label(name)
		}
	}

	for _, decl := range top.Declarations {
		from := graph.Node(decl.Name)
		for _, dep := range decl.DependsOn {
			graph.Edge(from, graph.Node(dep))
		}
	}

	return graph
}
