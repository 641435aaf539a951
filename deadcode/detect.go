package deadcode

import "github.com/flowgraph/pta/ir"

// Reason classifies why a statement was reported.
type Reason int

const (
	Unreachable Reason = iota
	DeadAssignment
)

func (r Reason) String() string {
	switch r {
	case Unreachable:
		return "unreachable"
	case DeadAssignment:
		return "dead assignment"
	default:
		return "unknown"
	}
}

// Finding is one dead statement, in source order.
type Finding struct {
	Stmt   ir.Stmt
	Index  int
	Reason Reason
}

// Detect walks stmts' control-flow graph from its entry, pruning
// branches whose condition constants is able to resolve, and reports
// every statement it never reaches plus every assignment whose result
// is neither live-out nor produced by a statement with a side effect.
// Findings are ordered by statement index, matching flattened source
// order.
func Detect(stmts []ir.Stmt, constants ConstantFacts, live LiveFacts) []Finding {
	cfg := ir.BuildCFG(stmts)
	flat := ir.Flatten(stmts)

	index := make(map[ir.Stmt]int, len(flat))
	for i, s := range flat {
		index[s] = i
	}

	reached := make(map[ir.Stmt]bool, len(flat))
	visitedBlocks := make(map[*ir.Block]bool)
	queue := make([]*ir.Block, 0, len(cfg.Blocks))
	if cfg.Entry != nil {
		queue = append(queue, cfg.Entry)
	}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if b == nil || visitedBlocks[b] {
			continue
		}
		visitedBlocks[b] = true
		for _, s := range b.Stmts {
			reached[s] = true
		}

		var succs []*ir.Block
		switch branch := b.Branch.(type) {
		case *ir.If:
			reached[branch] = true
			if val, ok := constOf(constants, branch.Cond); ok {
				if val == "1" {
					succs = append(succs, b.Then)
				} else {
					succs = append(succs, b.Else)
				}
			} else {
				succs = append(succs, b.Then, b.Else)
			}
		case *ir.Switch:
			reached[branch] = true
			if val, ok := constOf(constants, branch.Subject); ok {
				matched := false
				for i, c := range branch.Cases {
					if c.Value == val && i < len(b.Cases) {
						succs = append(succs, b.Cases[i])
						matched = true
						break
					}
				}
				if !matched {
					succs = append(succs, b.Default)
				}
			} else {
				succs = append(succs, b.Cases...)
				succs = append(succs, b.Default)
			}
		default:
			succs = b.Succs()
		}
		for _, s := range succs {
			if s != nil {
				queue = append(queue, s)
			}
		}
	}

	var findings []Finding
	for _, s := range flat {
		if !reached[s] {
			findings = append(findings, Finding{Stmt: s, Index: index[s], Reason: Unreachable})
			continue
		}
		def, effectful := assigned(s)
		if def == nil || effectful {
			continue
		}
		if live == nil || !live.Live(s, def) {
			findings = append(findings, Finding{Stmt: s, Index: index[s], Reason: DeadAssignment})
		}
	}
	return findings
}

// assigned returns the variable a statement assigns (nil if it
// assigns nothing) and whether producing that value has a side
// effect: new, casts, field access, and array access may fault or
// touch the heap; arithmetic with DIV/REM may fault on division by
// zero; a call may run arbitrary code. Everything else is pure. A reachable statement with an
// effectful assignment is never reported dead even when its result is
// unused — the effect, not the value, is what keeps it live.
func assigned(s ir.Stmt) (v *ir.Var, effectful bool) {
	switch st := s.(type) {
	case *ir.Alloc:
		return st.Result, true
	case *ir.Copy:
		return st.LHS, false
	case *ir.StaticLoad:
		return st.LHS, true
	case *ir.InstanceLoad:
		return st.LHS, true
	case *ir.ArrayLoad:
		return st.LHS, true
	case *ir.Call:
		return st.Result, true
	default:
		return nil, false
	}
}
