// Package pfg implements the pointer flow graph: a directed
// graph over pointer nodes whose edges encode the subset relation
// between points-to sets, with edge deduplication.
package pfg

import "github.com/flowgraph/pta/cs"

// Graph is the pointer flow graph. The zero value is an empty,
// ready-to-use graph. Not safe for concurrent use.
type Graph struct {
	succs map[cs.Pointer]map[cs.Pointer]struct{}
}

// AddEdge installs s → t, returning whether the edge is newly
// installed. Duplicate installations are idempotent no-ops.
func (g *Graph) AddEdge(s, t cs.Pointer) bool {
	if g.succs == nil {
		g.succs = make(map[cs.Pointer]map[cs.Pointer]struct{})
	}
	set, ok := g.succs[s]
	if !ok {
		set = make(map[cs.Pointer]struct{})
		g.succs[s] = set
	}
	if _, ok := set[t]; ok {
		return false
	}
	set[t] = struct{}{}
	return true
}

// Successors returns the direct successors of p. No predecessor
// lookup is provided
func (g *Graph) Successors(p cs.Pointer) []cs.Pointer {
	set := g.succs[p]
	if len(set) == 0 {
		return nil
	}
	out := make([]cs.Pointer, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}

// NumEdges returns the total number of installed edges, for
// reporting only.
func (g *Graph) NumEdges() int {
	n := 0
	for _, set := range g.succs {
		n += len(set)
	}
	return n
}
