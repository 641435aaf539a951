package actx

import "github.com/flowgraph/pta/ir"

// typeSensitive implements k-type-sensitivity: a callee's context is
// the declaring type of the k most recently allocated receiver
// objects, a coarser and cheaper approximation of object-sensitivity.
type typeSensitive struct {
	k int
}

// TypeSensitive returns a k-type-sensitive selector.
func TypeSensitive(k int) Selector {
	return typeSensitive{k: k}
}

func (s typeSensitive) Empty() Context { return Empty() }

func (s typeSensitive) SelectContext(callerCtx Context, call *ir.Call, callee *ir.Method) Context {
	return callerCtx
}

func (s typeSensitive) SelectInstanceContext(callerCtx Context, call *ir.Call, recvCtx Context, recvObj ir.Obj, callee *ir.Method) Context {
	return extend(recvCtx, s.k, recvObj.ObjType())
}

func (s typeSensitive) SelectHeapContext(methodCtx Context, obj ir.Obj) Context {
	return methodCtx
}
