package cs

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/ir"
)

type varKey struct {
	ctx actx.Context
	v   *ir.Var
}

type instanceFieldKey struct {
	base  CSObj
	field *ir.Field
}

type methodKey struct {
	ctx actx.Context
	m   *ir.Method
}

type callSiteKey struct {
	ctx  actx.Context
	call *ir.Call
}

// Manager is the interning manager. It canonicalizes
// (context, syntactic element) pairs to pointer nodes, creating each
// on first demand. All Manager methods are total: equal inputs always
// yield the identical (==) output.
//
// Manager is not safe for concurrent use, matching the solver's
// single-threaded ownership model.
type Manager struct {
	vars           map[varKey]*CSVar
	staticFields   map[*ir.Field]*StaticField
	instanceFields map[instanceFieldKey]*InstanceField
	arrayIndices   map[CSObj]*ArrayIndex
	methods        map[methodKey]*CSMethod
	callSites      map[callSiteKey]*CSCallSite
}

// NewManager returns an empty interner.
func NewManager() *Manager {
	return &Manager{
		vars:           make(map[varKey]*CSVar),
		staticFields:   make(map[*ir.Field]*StaticField),
		instanceFields: make(map[instanceFieldKey]*InstanceField),
		arrayIndices:   make(map[CSObj]*ArrayIndex),
		methods:        make(map[methodKey]*CSMethod),
		callSites:      make(map[callSiteKey]*CSCallSite),
	}
}

// GetCSVar returns the canonical CSVar for (ctx, v).
func (m *Manager) GetCSVar(ctx actx.Context, v *ir.Var) *CSVar {
	k := varKey{ctx, v}
	if p, ok := m.vars[k]; ok {
		return p
	}
	p := &CSVar{Ctx: ctx, Var: v}
	m.vars[k] = p
	return p
}

// GetStaticField returns the canonical, context-free StaticField node
// for f.
func (m *Manager) GetStaticField(f *ir.Field) *StaticField {
	if p, ok := m.staticFields[f]; ok {
		return p
	}
	p := &StaticField{Field: f}
	m.staticFields[f] = p
	return p
}

// GetInstanceField returns the canonical InstanceField node for
// (base, f).
func (m *Manager) GetInstanceField(base CSObj, f *ir.Field) *InstanceField {
	k := instanceFieldKey{base, f}
	if p, ok := m.instanceFields[k]; ok {
		return p
	}
	p := &InstanceField{Base: base, Field: f}
	m.instanceFields[k] = p
	return p
}

// GetArrayIndex returns the canonical ArrayIndex node for base,
// collapsing all indices of that array object onto one node.
func (m *Manager) GetArrayIndex(base CSObj) *ArrayIndex {
	if p, ok := m.arrayIndices[base]; ok {
		return p
	}
	p := &ArrayIndex{Base: base}
	m.arrayIndices[base] = p
	return p
}

// GetCSObj returns the context-sensitive object for (ctx, o). CSObj is
// a plain value type, so canonicalization falls out of struct
// equality; no identity table is required.
func (m *Manager) GetCSObj(ctx actx.Context, o ir.Obj) CSObj {
	return CSObj{Ctx: ctx, Obj: o}
}

// GetCSMethod returns the canonical CSMethod for (ctx, meth).
func (m *Manager) GetCSMethod(ctx actx.Context, meth *ir.Method) *CSMethod {
	k := methodKey{ctx, meth}
	if p, ok := m.methods[k]; ok {
		return p
	}
	p := &CSMethod{Ctx: ctx, Method: meth}
	m.methods[k] = p
	return p
}

// GetCSCallSite returns the canonical CSCallSite for (ctx, call).
func (m *Manager) GetCSCallSite(ctx actx.Context, call *ir.Call) *CSCallSite {
	k := callSiteKey{ctx, call}
	if p, ok := m.callSites[k]; ok {
		return p
	}
	p := &CSCallSite{Ctx: ctx, Call: call}
	m.callSites[k] = p
	return p
}

// Stats reports interning table sizes, for CLI/debug reporting only;
// it has no bearing on analysis semantics.
type Stats struct {
	Vars           int
	StaticFields   int
	InstanceFields int
	ArrayIndices   int
	Methods        int
	CallSites      int
}

// Stats returns the current interning table sizes.
func (m *Manager) Stats() Stats {
	return Stats{
		Vars:           len(m.vars),
		StaticFields:   len(m.staticFields),
		InstanceFields: len(m.instanceFields),
		ArrayIndices:   len(m.arrayIndices),
		Methods:        len(m.methods),
		CallSites:      len(m.callSites),
	}
}
