// Package graphfile reads weighted directed graphs from YAML documents.
//
// A document lists edges and, optionally, isolated vertices:
//
//	vertices: [Z]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C, weight: -2}
//
// Edges go through graph.AddEdge, so a repeated from/to pair keeps the last
// weight and every endpoint becomes a vertex.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgraph/graph"
)

var (
	// ErrEmptyVertex is returned when a vertex id is blank.
	ErrEmptyVertex = errors.New("graphfile: empty vertex id")

	// ErrMissingWeight is returned when an edge has no weight field.
	ErrMissingWeight = errors.New("graphfile: edge without weight")

	// ErrBadWeight is returned when a weight is not an integer scalar.
	ErrBadWeight = errors.New("graphfile: weight is not an integer")
)

// Document is the YAML shape of a graph file.
type Document struct {
	Vertices []string   `yaml:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one directed edge. Weight is a pointer so that a missing
// weight can be told apart from an explicit zero.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight *Weight `yaml:"weight"`
}

// Weight is an edge weight that only accepts YAML integers. yaml.v3 would
// otherwise truncate 1.5 or -0.9 into an int64 field without complaint.
type Weight int64

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weight) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("%w: line %d: %q", ErrBadWeight, node.Line, node.Value)
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: line %d: %q", ErrBadWeight, node.Line, node.Value)
	}
	*w = Weight(v)

	return nil
}

// Decode parses a graph document from r. Unknown fields are rejected.
// An empty input yields an empty graph.
func Decode(r io.Reader) (graph.Graph[string, int64], error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return doc.Graph()
}

// Load opens path and decodes it.
func Load(path string) (graph.Graph[string, int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// FromGraph describes g as a Document. Edges are sorted by (from, to) and
// only vertices without any edge are listed under vertices.
func FromGraph(g graph.Graph[string, int64]) Document {
	var doc Document
	touched := make(map[string]bool, len(g))
	for _, e := range g.Edges() {
		w := Weight(e.Weight)
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: &w})
		touched[e.From] = true
		touched[e.To] = true
	}
	for _, v := range g.Vertices() {
		if !touched[v] {
			doc.Vertices = append(doc.Vertices, v)
		}
	}

	return doc
}

// Encode writes g to w in the format Decode reads.
func Encode(w io.Writer, g graph.Graph[string, int64]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Graph builds the graph described by d.
func (d Document) Graph() (graph.Graph[string, int64], error) {
	g := graph.New[string, int64]()
	for i, v := range d.Vertices {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertex, i)
		}
		g.AddVertex(v)
	}

	for i, e := range d.Edges {
		if strings.TrimSpace(e.From) == "" || strings.TrimSpace(e.To) == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyVertex, i)
		}
		if e.Weight == nil {
			return nil, fmt.Errorf("%w: edges[%d] %s→%s", ErrMissingWeight, i, e.From, e.To)
		}
		g.AddEdge(e.From, e.To, int64(*e.Weight))
	}

	return g, nil
}
