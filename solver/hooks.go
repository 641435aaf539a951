package solver

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/ir"
)

// Hooks lets a collaborator — in this module, the taint overlay —
// piggyback on the solver's fixed point without the solver and the
// collaborator holding back-pointers to each other. The solver owns the hooks and calls into them
// at four well-defined points; no other coupling exists.
type Hooks interface {
	// OnCallEdge fires when a call-graph edge is newly installed, for
	// both static calls (recv == nil) and instance calls. callerCtx is
	// the context at the call site; calleeCtx is the resolved
	// callee's context.
	OnCallEdge(s *Solver, callerCtx actx.Context, call *ir.Call, recv cs.Pointer, calleeCtx actx.Context, callee *ir.Method)

	// OnPropagate fires after propagate(p, ...) installs a non-empty
	// delta into p's points-to set, once per call, with the full
	// newly-inserted slice.
	OnPropagate(s *Solver, p cs.Pointer, delta []cs.CSObj)

	// OnFinish fires once, after the work list has drained to a fixed
	// point.
	OnFinish(s *Solver)
}

// noopHooks is used when a Solver is constructed with no Hooks,
// keeping the four call sites unconditional rather than nil-checked
// everywhere.
type noopHooks struct{}

func (noopHooks) OnCallEdge(*Solver, actx.Context, *ir.Call, cs.Pointer, actx.Context, *ir.Method) {}
func (noopHooks) OnPropagate(*Solver, cs.Pointer, []cs.CSObj)                                      {}
func (noopHooks) OnFinish(*Solver)                                                                {}
