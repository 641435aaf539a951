package solver

import "github.com/flowgraph/pta/ir"

// HeapModel synthesizes heap abstractions from allocation statements.
// External to the core; satisfied structurally by heap.Model.
type HeapModel interface {
	GetObj(stmt *ir.Alloc) ir.Obj
}

// ClassHierarchy resolves virtual dispatch. External to the core;
// satisfied structurally by classhierarchy.Hierarchy. Returning nil
// is the "no method" sentinel: the solver installs no call-graph edge
// and does not error.
type ClassHierarchy interface {
	ResolveCallee(recvType *ir.Type, name string) *ir.Method
}
