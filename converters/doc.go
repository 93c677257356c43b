// Package converters exports lvmesh vertices to external graph formats.
//
// Currently supported:
//   - Graphviz DOT (ToDOT): one node per vertex, one "->" per adjacency entry.
//
// Output is deterministic: nodes and edges are emitted in ascending ID order.
package converters
