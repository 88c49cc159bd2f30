// Package report renders algorithm results as plain text for the CLI.
//
// Output is deterministic: vertices are listed in ascending order and no
// map iteration order leaks into the text. Colors are optional and never
// change the text itself.
package report

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/pathgraph/bellmanford"
	"github.com/katalvlaran/pathgraph/graph"
)

const arrow = " → "

// Printer writes reports for graphs with vertices V and weights E.
type Printer[V cmp.Ordered, E graph.Weight] struct {
	w io.Writer

	header *color.Color
	source *color.Color
	muted  *color.Color
	bad    *color.Color
	good   *color.Color
}

// New returns a Printer writing to w. With useColor false the output has
// no escape sequences, whatever the terminal or NO_COLOR say.
func New[V cmp.Ordered, E graph.Weight](w io.Writer, useColor bool) *Printer[V, E] {
	p := &Printer[V, E]{
		w:      w,
		header: color.New(color.Bold),
		source: color.New(color.FgGreen),
		muted:  color.New(color.FgYellow),
		bad:    color.New(color.FgRed, color.Bold),
		good:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.header, p.source, p.muted, p.bad, p.good} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Paths lists every vertex of g (plus the source) with its predecessor,
// distance and full path, or marks it unreachable.
func (p *Printer[V, E]) Paths(g graph.Graph[V, E], source V, paths graph.Paths[V, E]) error {
	bw := bufio.NewWriter(p.w)
	fmt.Fprintln(bw, p.header.Sprintf("shortest paths from %v", source))

	vs := g.Vertices()
	if !g.HasVertex(source) {
		i, _ := slices.BinarySearch(vs, source)
		vs = slices.Insert(vs, i, source)
	}
	for _, v := range vs {
		rec, ok := paths[v]
		switch {
		case !ok:
			fmt.Fprintf(bw, "  %v  %s\n", v, p.muted.Sprint("unreachable"))
		case rec.IsRoot():
			fmt.Fprintf(bw, "  %v  %s\n", v, p.source.Sprint("(source)"))
		default:
			pred, _ := rec.Predecessor()
			path, _ := paths.PathTo(v)
			fmt.Fprintf(bw, "  %v  via %v  distance %v  path %s\n", v, pred, rec.Distance(), join(path))
		}
	}

	return bw.Flush()
}

// Route prints a single source→target path and its total weight.
func (p *Printer[V, E]) Route(path []V, dist E) error {
	_, err := fmt.Fprintf(p.w, "%s  distance %v\n", join(path), dist)

	return err
}

// NegativeCycle reports that no shortest paths exist from source and shows
// the witness cycle with its total weight.
func (p *Printer[V, E]) NegativeCycle(g graph.Graph[V, E], source V, nc *bellmanford.NegativeCycleError[V]) error {
	bw := bufio.NewWriter(p.w)
	fmt.Fprintln(bw, p.bad.Sprintf("negative cycle reachable from %v: no well-defined shortest paths", source))
	if len(nc.Cycle) == 0 {
		fmt.Fprintf(bw, "  edge %v%s%v still relaxes\n", nc.From, arrow, nc.To)
	} else {
		loop := append(append([]V(nil), nc.Cycle...), nc.Cycle[0])
		fmt.Fprintf(bw, "  cycle %s  weight %v\n", join(loop), walkWeight(g, loop))
	}

	return bw.Flush()
}

// Search reports the history of a depth-first search from root.
func (p *Printer[V, E]) Search(root, objective V, history []V, found bool) error {
	bw := bufio.NewWriter(p.w)
	if found {
		fmt.Fprintf(bw, "%s %s\n",
			p.header.Sprintf("search %v%s%v:", root, arrow, objective),
			p.good.Sprintf("found after %d vertices", len(history)))
	} else {
		fmt.Fprintf(bw, "%s %s\n",
			p.header.Sprintf("search %v%s%v:", root, arrow, objective),
			p.muted.Sprint("not found"))
	}
	if len(history) > 0 {
		fmt.Fprintf(bw, "  history %s\n", join(history))
	}

	return bw.Flush()
}

// Layers prints vertices grouped by their number of edges from source.
func (p *Printer[V, E]) Layers(source V, layers [][]V) error {
	bw := bufio.NewWriter(p.w)
	fmt.Fprintln(bw, p.header.Sprintf("hops from %v", source))
	for d, layer := range layers {
		parts := make([]string, len(layer))
		for i, v := range layer {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(bw, "  %d  %s\n", d, strings.Join(parts, ", "))
	}

	return bw.Flush()
}

// Cycles lists closed cycles (first vertex repeated at the end) with their
// weights. Cycles of negative weight are flagged.
func (p *Printer[V, E]) Cycles(g graph.Graph[V, E], cycles [][]V) error {
	bw := bufio.NewWriter(p.w)
	switch len(cycles) {
	case 0:
		fmt.Fprintln(bw, p.good.Sprint("no cycles"))
	case 1:
		fmt.Fprintln(bw, p.header.Sprint("1 cycle"))
	default:
		fmt.Fprintln(bw, p.header.Sprintf("%d cycles", len(cycles)))
	}
	for _, c := range cycles {
		w := walkWeight(g, c)
		if w < 0 {
			fmt.Fprintf(bw, "  %s  weight %v  %s\n", join(c), w, p.bad.Sprint("negative"))
			continue
		}
		fmt.Fprintf(bw, "  %s  weight %v\n", join(c), w)
	}

	return bw.Flush()
}

// Order prints a numbered vertex order such as a topological sort.
func (p *Printer[V, E]) Order(title string, order []V) error {
	bw := bufio.NewWriter(p.w)
	fmt.Fprintln(bw, p.header.Sprint(title))
	for i, v := range order {
		fmt.Fprintf(bw, "  %d  %v\n", i+1, v)
	}

	return bw.Flush()
}

// Failure prints a one-line error message.
func (p *Printer[V, E]) Failure(err error) error {
	_, werr := fmt.Fprintf(p.w, "%s %v\n", p.bad.Sprint("error:"), err)

	return werr
}

func join[V any](vs []V) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, arrow)
}

// walkWeight sums the edge weights along walk; missing edges count as zero.
func walkWeight[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], walk []V) E {
	var total E
	for i := 0; i+1 < len(walk); i++ {
		w, _ := g.Weight(walk[i], walk[i+1])
		total += w
	}

	return total
}
