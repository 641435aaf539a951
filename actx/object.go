package actx

import "github.com/flowgraph/pta/ir"

// objectSensitive implements k-object-sensitivity: a callee's context
// is the k most recently allocated receiver objects on the path from
// the entry point. Static calls keep the caller's context, since
// there is no receiver to extend with.
type objectSensitive struct {
	k int
}

// ObjectSensitive returns a k-object-sensitive selector.
func ObjectSensitive(k int) Selector {
	return objectSensitive{k: k}
}

func (s objectSensitive) Empty() Context { return Empty() }

func (s objectSensitive) SelectContext(callerCtx Context, call *ir.Call, callee *ir.Method) Context {
	return callerCtx
}

func (s objectSensitive) SelectInstanceContext(callerCtx Context, call *ir.Call, recvCtx Context, recvObj ir.Obj, callee *ir.Method) Context {
	return extend(recvCtx, s.k, recvObj)
}

func (s objectSensitive) SelectHeapContext(methodCtx Context, obj ir.Obj) Context {
	return methodCtx
}
