package solver_test

import (
	"testing"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/classhierarchy"
	"github.com/flowgraph/pta/config"
	"github.com/flowgraph/pta/heap"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/solver"
	"github.com/flowgraph/pta/taint"
)

func TestArityMismatchPanicsWithInvariantError(t *testing.T) {
	program := ir.NewType("Program")
	typeT := ir.NewType("T")
	callee := ir.NewMethod("f", ir.NewType("Callee"), true)
	callee.IR.Params = []*ir.Var{ir.NewVar("p", typeT)}
	callee.Finalize()

	main := ir.NewMethod("main", program, true)
	arg := ir.NewVar("a", typeT)
	main.IR.Stmts = []ir.Stmt{
		&ir.Call{Static: true, Callee: callee, MethodRef: "f", Args: []*ir.Var{arg, arg}},
	}
	main.Finalize()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an arity mismatch")
		}
		if _, ok := r.(solver.InvariantError); !ok {
			t.Fatalf("expected solver.InvariantError, got %T: %v", r, r)
		}
	}()

	s := solver.NewSolver(actx.Insensitive, heap.NewModel(), classhierarchy.NewHierarchy(), solver.WithHooks(taint.NewManager(&config.Matchers{})))
	s.AddEntryPoint(main)
}
