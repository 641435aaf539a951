package ir

// Var is a local variable (including method parameters, return
// variables, and the receiver "this") belonging to exactly one
// Method. Identity is by pointer.
type Var struct {
	Name   string
	Type   *Type
	Method *Method

	// Indexes populated by Method.Finalize, used by the solver's
	// delta loop: for a variable v newly holding an object,
	// the solver needs every statement syntactically shaped as
	// "v.f = y", "x = v.f", "v[_] = y", "x = v[_]" or "v.m(...)".
	storeFields []*InstanceStore
	loadFields  []*InstanceLoad
	storeArrays []*ArrayStore
	loadArrays  []*ArrayLoad
	invokes     []*Call
}

// NewVar returns a new variable with no statements referencing it
// yet. Callers append it to a Method's parameter/return-var/local
// lists as appropriate before calling Method.Finalize.
func NewVar(name string, typ *Type) *Var {
	return &Var{Name: name, Type: typ}
}

// StoreFields returns the instance field-store statements whose base
// is this variable.
func (v *Var) StoreFields() []*InstanceStore { return v.storeFields }

// LoadFields returns the instance field-load statements whose base is
// this variable.
func (v *Var) LoadFields() []*InstanceLoad { return v.loadFields }

// StoreArrays returns the array-store statements whose base is this
// variable.
func (v *Var) StoreArrays() []*ArrayStore { return v.storeArrays }

// LoadArrays returns the array-load statements whose base is this
// variable.
func (v *Var) LoadArrays() []*ArrayLoad { return v.loadArrays }

// Invokes returns the instance call statements whose receiver is this
// variable.
func (v *Var) Invokes() []*Call { return v.invokes }

func (v *Var) String() string {
	if v == nil {
		return "<nil var>"
	}
	if v.Method != nil {
		return v.Method.String() + "::" + v.Name
	}
	return v.Name
}
