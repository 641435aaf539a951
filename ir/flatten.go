package ir

// Flatten inlines the bodies of If and Switch statements into a
// single flat list, in source order, dropping the branch structure
// itself. The pointer analysis core is flow insensitive: it wants
// every Alloc/Copy/Load/Store/Call reachable from a method regardless
// of which branch guards it, and Flatten is how a statement list
// nested inside control flow still reaches that processing. The
// branch structure Flatten discards is exactly what ir.BuildCFG
// preserves for the dead-code detector.
func Flatten(stmts []Stmt) []Stmt {
	var out []Stmt
	for _, s := range stmts {
		out = append(out, s)
		switch st := s.(type) {
		case *If:
			out = append(out, Flatten(st.Then)...)
			out = append(out, Flatten(st.Else)...)
		case *Switch:
			for _, c := range st.Cases {
				out = append(out, Flatten(c.Body)...)
			}
			out = append(out, Flatten(st.Default)...)
		}
	}
	return out
}
