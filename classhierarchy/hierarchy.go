// Package classhierarchy provides a reference implementation of the
// class hierarchy / virtual-dispatch-lookup collaborator the solver
// consumes externally. It is not part of the analysis core — the core
// never imports it — but the module ships it so the solver is
// runnable standalone, the way a real static-analysis tool ships both
// the engine and a usable frontend.
package classhierarchy

import "github.com/flowgraph/pta/ir"

// Hierarchy resolves virtual dispatch by declaring which methods each
// type provides (including overrides inherited from supertypes) and
// answering subtype queries.
type Hierarchy struct {
	methods map[*ir.Type]map[string]*ir.Method
}

// NewHierarchy returns an empty class hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{methods: make(map[*ir.Type]map[string]*ir.Method)}
}

// Declare registers m as t's implementation of m.Name, overriding any
// inherited declaration under the same name.
func (h *Hierarchy) Declare(t *ir.Type, m *ir.Method) {
	ms, ok := h.methods[t]
	if !ok {
		ms = make(map[string]*ir.Method)
		h.methods[t] = ms
	}
	ms[m.Name] = m
}

// IsSubtype reports whether sub is t or transitively extends/implements t.
func (h *Hierarchy) IsSubtype(sub, t *ir.Type) bool {
	if sub == t {
		return true
	}
	for _, s := range sub.Supers {
		if h.IsSubtype(s, t) {
			return true
		}
	}
	return false
}

// ResolveCallee resolves the method named name on recvType, walking
// up the supertype chain for an inherited declaration. It returns nil
// (the "no method" sentinel) if no declaration is found; the solver
// treats this as "install no call-graph edge", never an error.
func (h *Hierarchy) ResolveCallee(recvType *ir.Type, name string) *ir.Method {
	if recvType == nil {
		return nil
	}
	if ms, ok := h.methods[recvType]; ok {
		if m, ok := ms[name]; ok {
			return m
		}
	}
	for _, s := range recvType.Supers {
		if m := h.ResolveCallee(s, name); m != nil {
			return m
		}
	}
	return nil
}
