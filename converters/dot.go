// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz DOT export.
// Determinism:
//   - Nodes sorted by ID; edges sorted by (from, to).
// Concurrency:
//   - Each vertex is read under its own read lock, one at a time.

package converters

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/id"
)

// DOTOptions configures DOT rendering.
type DOTOptions struct {
	// Name is the graph name; "G" when empty.
	Name string
	// Detailed adds the vertex ID under the value in each label.
	// When false, only the value is shown.
	Detailed bool
}

// ToDOT renders vs as a Graphviz digraph. Node names are the display form of
// each ID; labels are the values formatted with %v. Edges to vertices that are
// not in vs are still emitted, so the target appears as a bare node.
func ToDOT[T any](vs []core.Vertex[T], opts DOTOptions) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	sorted := append([]core.Vertex[T](nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID().Less(sorted[j].ID()) })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  node [shape=box, style=\"rounded\"];\n")
	buf.WriteString("\n")

	for _, v := range sorted {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", v.ID().String(), fmtLabel(v, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, v := range sorted {
		from := v.ID()
		for _, to := range v.NeighborIDs() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from.String(), to.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphToDOT renders every vertex registered in g.
func GraphToDOT[T any](g *core.Graph[T], opts DOTOptions) string {
	return ToDOT(g.Vertices(), opts)
}

func fmtLabel[T any](v core.Vertex[T], detailed bool) string {
	label := fmt.Sprint(v.Value())
	if !detailed {
		return label
	}

	return label + "\n" + idLabel(v.ID())
}

func idLabel(x id.ID) string { return "#" + x.String() }
