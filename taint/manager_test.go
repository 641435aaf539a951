package taint_test

import (
	"testing"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/classhierarchy"
	"github.com/flowgraph/pta/config"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/heap"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/solver"
	"github.com/flowgraph/pta/taint"
)

func newSolver(t *testing.T, tm *taint.Manager) *solver.Solver {
	t.Helper()
	return solver.NewSolver(actx.Insensitive, heap.NewModel(), classhierarchy.NewHierarchy(), solver.WithHooks(tm))
}

func taintObjsOf(t *testing.T, p cs.Pointer) []cs.CSObj {
	t.Helper()
	var out []cs.CSObj
	p.PointsTo().ForEach(func(o cs.CSObj) {
		if _, ok := o.Obj.(*ir.TaintObj); ok {
			out = append(out, o)
		}
	})
	return out
}

func TestInjectSourceAndSinkWatchRecordsFlowAtConfiguredArg(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk.use\"\n    arg: 0\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeT := ir.NewType("T")
	x := ir.NewVar("x", typeT)
	srcCall := &ir.Call{Result: x, MethodRef: "Src.get"}
	sinkCall := &ir.Call{MethodRef: "Snk.use", Args: []*ir.Var{x}}

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, sinkCall, nil, ctx, nil)
	s.Solve()

	flows := tm.Flows()
	if len(flows) != 1 {
		t.Fatalf("expected exactly one flow, got %v", flows)
	}
	if flows[0].Source != srcCall || flows[0].Sink != sinkCall || flows[0].ParamIndex != 0 {
		t.Fatalf("unexpected flow: %+v", flows[0])
	}
}

func TestOnPropagateDedupsRepeatedFlow(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk.use\"\n    arg: 0\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeT := ir.NewType("T")
	x := ir.NewVar("x", typeT)
	srcCall := &ir.Call{Result: x, MethodRef: "Src.get"}
	sinkCall := &ir.Call{MethodRef: "Snk.use", Args: []*ir.Var{x}}

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, sinkCall, nil, ctx, nil)
	s.Solve()

	if len(tm.Flows()) != 1 {
		t.Fatalf("expected exactly one flow after the initial solve, got %v", tm.Flows())
	}

	xPointer := s.Manager().GetCSVar(ctx, x)
	delta := taintObjsOf(t, xPointer)
	if len(delta) != 1 {
		t.Fatalf("expected one taint object on x, got %d", len(delta))
	}

	// Re-delivering the same delta (as could happen if a pointer has
	// more than one inbound edge feeding it the same object) must not
	// produce a second, duplicate flow.
	tm.OnPropagate(s, xPointer, delta)
	if len(tm.Flows()) != 1 {
		t.Fatalf("expected the repeated delta to dedup, got %v", tm.Flows())
	}
}

func TestInstallTransferArgToResultRewritesTaintType(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\ntransfers:\n  - pattern: \"Wrap.of\"\n    kind: arg-to-result\n    arg: 0\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeT := ir.NewType("T")
	typeU := ir.NewType("U")
	x := ir.NewVar("x", typeT)
	y := ir.NewVar("y", typeU)
	srcCall := &ir.Call{Result: x, MethodRef: "Src.get"}
	transferCall := &ir.Call{Result: y, MethodRef: "Wrap.of", Args: []*ir.Var{x}}

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, transferCall, nil, ctx, nil)
	s.Solve()

	yPointer := s.Manager().GetCSVar(ctx, y)
	got := taintObjsOf(t, yPointer)
	if len(got) != 1 {
		t.Fatalf("expected one taint object on y, got %d", len(got))
	}
	taintObj := got[0].Obj.(*ir.TaintObj)
	if taintObj.Type != typeU {
		t.Errorf("expected taint on y to be rewritten to y's type U, got %v", taintObj.Type)
	}
	if taintObj.Source != srcCall {
		t.Errorf("expected taint on y to still trace back to the original source call, got %v", taintObj.Source)
	}
}

func TestInstallTransferArgToBaseRewritesTaintType(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\ntransfers:\n  - pattern: \"Builder.append\"\n    kind: arg-to-base\n    arg: 0\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeT := ir.NewType("T")
	typeB := ir.NewType("Builder")
	x := ir.NewVar("x", typeT)
	b := ir.NewVar("b", typeB)
	srcCall := &ir.Call{Result: x, MethodRef: "Src.get"}
	transferCall := &ir.Call{Receiver: b, MethodRef: "Builder.append", Args: []*ir.Var{x}}

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, transferCall, nil, ctx, nil)
	s.Solve()

	bPointer := s.Manager().GetCSVar(ctx, b)
	got := taintObjsOf(t, bPointer)
	if len(got) != 1 {
		t.Fatalf("expected one taint object on the receiver b, got %d", len(got))
	}
	if got[0].Obj.(*ir.TaintObj).Type != typeB {
		t.Errorf("expected taint on b to be rewritten to b's type Builder, got %v", got[0].Obj.(*ir.TaintObj).Type)
	}
}

func TestInstallTransferBaseToResultRewritesTaintType(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\ntransfers:\n  - pattern: \"Builder.toT\"\n    kind: base-to-result\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeB := ir.NewType("Builder")
	typeT := ir.NewType("T")
	b := ir.NewVar("b", typeB)
	r := ir.NewVar("r", typeT)
	srcCall := &ir.Call{Result: b, MethodRef: "Src.get"}
	transferCall := &ir.Call{Receiver: b, Result: r, MethodRef: "Builder.toT"}

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, transferCall, nil, ctx, nil)
	s.Solve()

	rPointer := s.Manager().GetCSVar(ctx, r)
	got := taintObjsOf(t, rPointer)
	if len(got) != 1 {
		t.Fatalf("expected one taint object on the result r, got %d", len(got))
	}
	if got[0].Obj.(*ir.TaintObj).Type != typeT {
		t.Errorf("expected taint on r to be rewritten to r's type T, got %v", got[0].Obj.(*ir.TaintObj).Type)
	}
}

func TestSinkArgPositionBeyondArityIsIgnored(t *testing.T) {
	matchers, err := config.Parse([]byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk.use\"\n    arg: 1\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	tm := taint.NewManager(matchers)
	s := newSolver(t, tm)
	ctx := actx.Empty()

	typeT := ir.NewType("T")
	x := ir.NewVar("x", typeT)
	srcCall := &ir.Call{Result: x, MethodRef: "Src.get"}
	sinkCall := &ir.Call{MethodRef: "Snk.use", Args: []*ir.Var{x}} // arity 1, but sink wants arg 1

	tm.OnCallEdge(s, ctx, srcCall, nil, ctx, nil)
	tm.OnCallEdge(s, ctx, sinkCall, nil, ctx, nil)
	s.Solve()

	if len(tm.Flows()) != 0 {
		t.Fatalf("expected no flow for a sink argument position beyond the call's arity, got %v", tm.Flows())
	}
}
