package actx

import "github.com/flowgraph/pta/ir"

// Selector chooses contexts for methods, call sites, and heap
// objects. Any deterministic selector is allowed; the solver
// treats Context as opaque and never inspects a selector's choices.
type Selector interface {
	// Empty returns this selector's notion of the empty context, used
	// to seed the analysis's entry method.
	Empty() Context

	// SelectContext computes the callee context for a static call
	// (no receiver), given the caller's context and the call/callee.
	SelectContext(callerCtx Context, call *ir.Call, callee *ir.Method) Context

	// SelectInstanceContext computes the callee context for an
	// instance call, given the caller's context, the call statement,
	// the receiving object's context and identity, and the resolved
	// callee.
	SelectInstanceContext(callerCtx Context, call *ir.Call, recvCtx Context, recvObj ir.Obj, callee *ir.Method) Context

	// SelectHeapContext computes the heap context for an object
	// allocated within a method running under methodCtx.
	SelectHeapContext(methodCtx Context, obj ir.Obj) Context
}
