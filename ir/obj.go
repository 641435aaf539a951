package ir

// Obj is a heap abstraction: an opaque identity carrying a declared
// type. The pointer analysis core never constructs an Obj itself —
// ordinary objects come from a heap.Model keyed on an allocation
// statement, taint objects come from a taint.Manager — it only ever
// stores, compares, and queries them.
type Obj interface {
	// ObjType is the declared type of the object. Named to avoid
	// colliding with fmt.Stringer-style Type() accessors on
	// implementers that also want a plain field named Type.
	ObjType() *Type
	String() string
}

// AllocObj is the ordinary heap abstraction: one instance per
// allocation site, produced by a heap.Model. Identity is by pointer;
// a conforming heap.Model caches and returns the same *AllocObj for
// repeated calls on the same allocation statement.
type AllocObj struct {
	Site *Alloc
	Type *Type
}

func (o *AllocObj) ObjType() *Type { return o.Type }

func (o *AllocObj) String() string {
	if o == nil {
		return "<nil obj>"
	}
	return o.Type.String() + "@" + o.Site.Label
}

// TaintObj is a synthetic heap abstraction minted by a taint manager
// at a source call site, carried through the same points-to machinery
// as an AllocObj so taint rides the pointer analysis's own fixed
// point instead of a parallel one. Always paired with the empty
// context when wrapped in a cs.CSObj.
type TaintObj struct {
	Source *Call
	Type   *Type
}

func (o *TaintObj) ObjType() *Type { return o.Type }

func (o *TaintObj) String() string {
	if o == nil {
		return "<nil taint>"
	}
	return "taint@" + o.Source.MethodRef
}
