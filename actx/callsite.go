package actx

import "github.com/flowgraph/pta/ir"

// callSiteSensitive implements k-call-site-sensitivity (call-string):
// a callee's context is the k most recent call statements on the
// path from the program's entry point. k=1 is the classic 1-CFA.
type callSiteSensitive struct {
	k int
}

// CallSiteSensitive returns a k-call-site-sensitive selector. Heap
// contexts mirror the allocating method's context, a common and cheap
// choice paired with call-site sensitivity.
func CallSiteSensitive(k int) Selector {
	return callSiteSensitive{k: k}
}

func (s callSiteSensitive) Empty() Context { return Empty() }

func (s callSiteSensitive) SelectContext(callerCtx Context, call *ir.Call, callee *ir.Method) Context {
	return extend(callerCtx, s.k, call)
}

func (s callSiteSensitive) SelectInstanceContext(callerCtx Context, call *ir.Call, recvCtx Context, recvObj ir.Obj, callee *ir.Method) Context {
	// Call-site sensitivity ignores the receiver; only the call string
	// (the sequence of call statements) matters.
	return extend(callerCtx, s.k, call)
}

func (s callSiteSensitive) SelectHeapContext(methodCtx Context, obj ir.Obj) Context {
	return methodCtx
}
