// Package heap provides a reference allocation-site heap model, the
// external collaborator named as "heapModel.getObj(allocStmt)". The
// analysis core depends only on the method signature, never on this
// package.
package heap

import "github.com/flowgraph/pta/ir"

// Model caches one ir.AllocObj per allocation statement, so repeated
// calls for the same statement return the identical object, the
// contract the statement processor relies on.
type Model struct {
	objs map[*ir.Alloc]*ir.AllocObj
}

// NewModel returns an empty allocation-site heap model.
func NewModel() *Model {
	return &Model{objs: make(map[*ir.Alloc]*ir.AllocObj)}
}

// GetObj returns the heap abstraction for stmt, creating it on first
// demand.
func (m *Model) GetObj(stmt *ir.Alloc) ir.Obj {
	if o, ok := m.objs[stmt]; ok {
		return o
	}
	o := &ir.AllocObj{Site: stmt, Type: stmt.Type}
	m.objs[stmt] = o
	return o
}
