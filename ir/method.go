package ir

// IR is a method's translated body: its statements plus the
// parameter list, return variables, and receiver variable the
// statement processor needs to install parameter/return edges.
type IR struct {
	Stmts      []Stmt
	Params     []*Var
	ReturnVars []*Var
	This       *Var // nil for static methods
}

// Method is a declared method. Identity is by pointer.
type Method struct {
	Name      string
	Declaring *Type
	Static    bool
	IR        *IR
}

// NewMethod returns a method with an empty IR. Callers populate IR.Stmts
// and the parameter/return/this variables, then call Finalize once.
func NewMethod(name string, declaring *Type, static bool) *Method {
	return &Method{
		Name:      name,
		Declaring: declaring,
		Static:    static,
		IR:        &IR{},
	}
}

func (m *Method) String() string {
	if m == nil {
		return "<nil method>"
	}
	return m.Declaring.String() + "." + m.Name
}

// Finalize indexes IR.Stmts onto the per-variable accessors that the
// solver's delta loop depends on. It must be called exactly once
// after all statements have been appended to IR.Stmts, and every Var
// referenced must belong to this method (or be a value read
// elsewhere, which is fine — only the *Base* of a field/array/call
// statement is indexed here).
func (m *Method) Finalize() {
	for _, s := range Flatten(m.IR.Stmts) {
		switch st := s.(type) {
		case *InstanceStore:
			st.Base.storeFields = append(st.Base.storeFields, st)
		case *InstanceLoad:
			st.Base.loadFields = append(st.Base.loadFields, st)
		case *ArrayStore:
			st.Base.storeArrays = append(st.Base.storeArrays, st)
		case *ArrayLoad:
			st.Base.loadArrays = append(st.Base.loadArrays, st)
		case *Call:
			if st.Receiver != nil {
				st.Receiver.invokes = append(st.Receiver.invokes, st)
			}
		}
	}
}
