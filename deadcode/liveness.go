package deadcode

import "github.com/flowgraph/pta/ir"

// LiveFacts reports whether v is live immediately after stmt
// executes — read again before being overwritten, or used outside
// the method (a return or an escaping store).
type LiveFacts interface {
	Live(stmt ir.Stmt, v *ir.Var) bool
}

// Liveness is a trivial reference backward may-analysis over a
// flattened statement list. ir.Flatten linearizes every branch arm in
// source order, and this pass treats "successor" as "next statement
// in the flattened list", an approximation of the per-block analysis
// a production liveness pass would run. It can differ from a
// CFG-aware analysis in both directions: a use in a later arm can make
// a definition in an earlier arm look live, and a definition in a
// later arm can make a variable defined in an earlier arm look dead
// even though that value reaches a use after the branch.
type Liveness struct {
	liveOut map[ir.Stmt]map[*ir.Var]bool
}

// Compute runs the backward pass over stmts (and everything nested
// inside its If/Switch bodies) and returns the resulting facts.
func Compute(stmts []ir.Stmt) *Liveness {
	flat := ir.Flatten(stmts)
	l := &Liveness{liveOut: make(map[ir.Stmt]map[*ir.Var]bool, len(flat))}

	live := map[*ir.Var]bool{}
	for i := len(flat) - 1; i >= 0; i-- {
		s := flat[i]
		out := make(map[*ir.Var]bool, len(live))
		for v := range live {
			out[v] = true
		}
		l.liveOut[s] = out

		def, uses := defUse(s)
		if def != nil {
			delete(live, def)
		}
		for _, u := range uses {
			if u != nil {
				live[u] = true
			}
		}
	}
	return l
}

func (l *Liveness) Live(stmt ir.Stmt, v *ir.Var) bool {
	out, ok := l.liveOut[stmt]
	if !ok {
		return false
	}
	return out[v]
}

// defUse returns the variable a statement assigns (nil if none) and
// the variables it reads.
func defUse(s ir.Stmt) (def *ir.Var, uses []*ir.Var) {
	switch st := s.(type) {
	case *ir.Alloc:
		return st.Result, nil
	case *ir.Copy:
		return st.LHS, []*ir.Var{st.RHS}
	case *ir.StaticLoad:
		return st.LHS, nil
	case *ir.StaticStore:
		return nil, []*ir.Var{st.RHS}
	case *ir.InstanceLoad:
		return st.LHS, []*ir.Var{st.Base}
	case *ir.InstanceStore:
		return nil, []*ir.Var{st.Base, st.RHS}
	case *ir.ArrayLoad:
		return st.LHS, []*ir.Var{st.Base}
	case *ir.ArrayStore:
		return nil, []*ir.Var{st.Base, st.RHS}
	case *ir.Call:
		u := append([]*ir.Var{}, st.Args...)
		if st.Receiver != nil {
			u = append(u, st.Receiver)
		}
		return st.Result, u
	case *ir.If:
		return nil, []*ir.Var{st.Cond}
	case *ir.Switch:
		return nil, []*ir.Var{st.Subject}
	default:
		return nil, nil
	}
}
