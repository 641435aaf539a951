// Package result collects a finished solve into a queryable report:
// the call graph, a rendered points-to map, and any taint flows
// found, independent of however the caller chose to drive the
// solver.
package result

import (
	"sort"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/callgraph"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/solver"
	"github.com/flowgraph/pta/taint"
)

// PointerAnalysisResult is a snapshot of a completed solve.
type PointerAnalysisResult struct {
	Manager   *cs.Manager
	CallGraph *callgraph.Graph
	Flows     []taint.TaintFlow
}

// New builds a PointerAnalysisResult from a solver that has already
// run Solve, and an optional taint manager (nil if the solve had no
// taint overlay).
func New(s *solver.Solver, tm *taint.Manager) *PointerAnalysisResult {
	r := &PointerAnalysisResult{
		Manager:   s.Manager(),
		CallGraph: s.CallGraph(),
	}
	if tm != nil {
		r.Flows = tm.Flows()
	}
	return r
}

// PointsTo returns the points-to set of v under ctx, as a sorted
// slice of object descriptions, for display.
func (r *PointerAnalysisResult) PointsTo(ctx actx.Context, v *ir.Var) []string {
	node := r.Manager.GetCSVar(ctx, v)
	var out []string
	node.PointsTo().ForEach(func(o cs.CSObj) {
		out = append(out, o.String())
	})
	sort.Strings(out)
	return out
}

// ReachableMethods returns every method the solve proved reachable,
// sorted by name for stable display.
func (r *PointerAnalysisResult) ReachableMethods() []*cs.CSMethod {
	out := r.CallGraph.ReachableMethods()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Edges returns every call-graph edge discovered by the solve.
func (r *PointerAnalysisResult) Edges() []callgraph.Edge {
	return r.CallGraph.Edges()
}
