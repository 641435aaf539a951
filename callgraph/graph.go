// Package callgraph implements the call graph: the reachable
// CSMethod set and the (kind, CSCallSite → CSMethod) edge set.
//
// This is the module's own lightweight call graph, distinct from
// golang.org/x/tools/go/callgraph — there is no SSA program backing
// it, only the context-sensitive methods and call sites this module
// interns.
package callgraph

import "github.com/flowgraph/pta/cs"

// Kind classifies a call-graph edge by the call shape that produced
// it.
type Kind int

const (
	// StaticCall is "T.m(...)" — no receiver, statically resolved.
	StaticCall Kind = iota
	// InstanceCall is "recv.m(...)" — resolved via the receiver's
	// runtime type at solve time.
	InstanceCall
)

func (k Kind) String() string {
	if k == StaticCall {
		return "static"
	}
	return "instance"
}

// Edge is one call-graph edge.
type Edge struct {
	Kind   Kind
	Site   *cs.CSCallSite
	Callee *cs.CSMethod
}

// Graph is the context-sensitive call graph.
type Graph struct {
	reachable map[*cs.CSMethod]struct{}
	edgeSeen  map[Edge]struct{}
	edges     []Edge
	byCallee  map[*cs.CSMethod][]Edge // incoming edges, for the "non-entry method has an incoming edge" check
}

// NewGraph returns an empty call graph.
func NewGraph() *Graph {
	return &Graph{
		reachable: make(map[*cs.CSMethod]struct{}),
		edgeSeen:  make(map[Edge]struct{}),
		byCallee:  make(map[*cs.CSMethod][]Edge),
	}
}

// AddReachableMethod marks m reachable, returning whether it is newly
// reachable.
func (g *Graph) AddReachableMethod(m *cs.CSMethod) bool {
	if _, ok := g.reachable[m]; ok {
		return false
	}
	g.reachable[m] = struct{}{}
	return true
}

// IsReachable reports whether m has been marked reachable.
func (g *Graph) IsReachable(m *cs.CSMethod) bool {
	_, ok := g.reachable[m]
	return ok
}

// ReachableMethods returns a snapshot of the reachable method set.
func (g *Graph) ReachableMethods() []*cs.CSMethod {
	out := make([]*cs.CSMethod, 0, len(g.reachable))
	for m := range g.reachable {
		out = append(out, m)
	}
	return out
}

// AddEdge installs a call-graph edge, returning whether it is newly
// installed.
func (g *Graph) AddEdge(kind Kind, site *cs.CSCallSite, callee *cs.CSMethod) bool {
	e := Edge{Kind: kind, Site: site, Callee: callee}
	if _, ok := g.edgeSeen[e]; ok {
		return false
	}
	g.edgeSeen[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.byCallee[callee] = append(g.byCallee[callee], e)
	return true
}

// Edges returns a snapshot of every installed edge.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// InEdges returns the edges whose callee is m.
func (g *Graph) InEdges(m *cs.CSMethod) []Edge {
	return g.byCallee[m]
}
