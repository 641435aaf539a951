package ir

// Program is a fully built, finalized IR: every declared type,
// method, and the chosen entry point. It is the unit the solver
// consumes; building one (parsing, resolving, finalizing) is the
// frontend's job, not the core's.
type Program struct {
	Types   []*Type
	Methods []*Method
	Entry   *Method
}

// Finalize indexes every method's statements. Safe to call once after
// all methods and statements have been constructed.
func (p *Program) Finalize() {
	for _, m := range p.Methods {
		m.Finalize()
	}
}
