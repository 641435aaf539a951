package solver_test

import (
	"sort"
	"testing"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/config"
	"github.com/flowgraph/pta/heap"
	"github.com/flowgraph/pta/result"
	"github.com/flowgraph/pta/scenario"
	"github.com/flowgraph/pta/solver"
	"github.com/flowgraph/pta/taint"
)

func runScenario(t *testing.T, name string, selector actx.Selector) (*scenario.Scenario, *result.PointerAnalysisResult) {
	t.Helper()
	sc, err := scenario.Build(name)
	if err != nil {
		t.Fatalf("scenario.Build(%q): %v", name, err)
	}
	var matchers *config.Matchers
	if sc.ConfigYAML != nil {
		matchers, err = config.Parse(sc.ConfigYAML)
		if err != nil {
			t.Fatalf("config.Parse: %v", err)
		}
	} else {
		matchers = &config.Matchers{}
	}
	tm := taint.NewManager(matchers)
	s := solver.NewSolver(selector, heap.NewModel(), sc.Hierarchy, solver.WithHooks(tm))
	s.AddEntryPoint(sc.Program.Entry)
	s.Solve()
	return sc, result.New(s, tm)
}

func TestScenario1_CopyChain(t *testing.T) {
	sc, r := runScenario(t, "copychain", actx.Insensitive)

	a := r.PointsTo(actx.Empty(), sc.Vars["a"])
	b := r.PointsTo(actx.Empty(), sc.Vars["b"])
	c := r.PointsTo(actx.Empty(), sc.Vars["c"])

	if len(a) != 1 || len(b) != 1 || len(c) != 1 {
		t.Fatalf("expected singleton points-to sets, got a=%v b=%v c=%v", a, b, c)
	}
	if a[0] != b[0] || b[0] != c[0] {
		t.Fatalf("expected a, b, c to share one object: a=%v b=%v c=%v", a, b, c)
	}
}

func TestScenario2_InstanceDispatch(t *testing.T) {
	sc, r := runScenario(t, "dispatch", actx.Insensitive)
	_ = sc

	var got []string
	for _, e := range r.Edges() {
		got = append(got, e.Callee.String())
	}
	sort.Strings(got)

	foundP, foundQ := false, false
	for _, name := range got {
		if name == "[]:P.m" {
			foundP = true
		}
		if name == "[]:Q.m" {
			foundQ = true
		}
	}
	if !foundP || !foundQ {
		t.Fatalf("expected edges to both P.m and Q.m, got %v", got)
	}
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 call-graph edges (no cross dispatch), got %v", got)
	}
}

func TestScenario3_FieldFlow(t *testing.T) {
	sc, r := runScenario(t, "fieldflow", actx.Insensitive)

	tPts := r.PointsTo(actx.Empty(), sc.Vars["t"])
	if len(tPts) != 1 {
		t.Fatalf("expected t to point to exactly one object, got %v", tPts)
	}
}

func TestScenario4_TaintSourceSink(t *testing.T) {
	_, r := runScenario(t, "taint", actx.Insensitive)

	if len(r.Flows) != 1 {
		t.Fatalf("expected exactly one taint flow, got %v", r.Flows)
	}
	if r.Flows[0].Sink.MethodRef != "Snk.use" {
		t.Fatalf("expected flow into Snk.use, got %v", r.Flows[0])
	}
}

func TestScenario5_ArgToResultTransfer(t *testing.T) {
	sc, r := runScenario(t, "transfer", actx.Insensitive)

	if len(r.Flows) != 1 {
		t.Fatalf("expected exactly one taint flow, got %v", r.Flows)
	}

	yPts := r.PointsTo(actx.Empty(), sc.Vars["y"])
	if len(yPts) != 1 {
		t.Fatalf("expected y to carry exactly one taint object, got %v", yPts)
	}
}

func TestScenario6_SinkArgPositionIsRespected(t *testing.T) {
	_, r := runScenario(t, "sinkarg", actx.Insensitive)

	if len(r.Flows) != 0 {
		t.Fatalf("expected no flow: tainted value lands in arg 0, sink is configured only at arg 1, got %v", r.Flows)
	}
}

func TestContextSensitiveSelectorsMatchInsensitiveOnThisProgram(t *testing.T) {
	_, insensitiveResult := runScenario(t, "copychain", actx.Insensitive)
	_, cfaResult := runScenario(t, "copychain", actx.CallSiteSensitive(1))

	if len(insensitiveResult.Edges()) != len(cfaResult.Edges()) {
		t.Fatalf("expected the same edge count across selectors on a program with no calls")
	}
}
