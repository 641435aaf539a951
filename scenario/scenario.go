// Package scenario provides the canonical demo programs the CLI can
// run without a frontend: small, literal ir.Programs mirroring the
// pointer-analysis and taint walk-throughs a reader would reach for
// first — a copy chain, virtual dispatch, a field store/load, a
// source-to-sink taint flow, an arg-to-result transfer, and an
// if/unused-variable pair for the dead-code detector.
package scenario

import (
	"fmt"
	"sort"

	"github.com/flowgraph/pta/classhierarchy"
	"github.com/flowgraph/pta/ir"
)

// Scenario bundles a runnable program with the collaborators and
// labeled variables a driver needs to run it and describe the
// result.
type Scenario struct {
	Name        string
	Program     *ir.Program
	Hierarchy   *classhierarchy.Hierarchy
	Vars        map[string]*ir.Var // display name -> variable, for points-to queries
	ConfigYAML  []byte             // taint config, nil if the scenario carries none
	Description string
}

// Names returns every built-in scenario name, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build returns the named scenario, or an error if no such scenario
// is registered.
func Build(name string) (*Scenario, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown demo %q (available: %v)", name, Names())
	}
	return b(), nil
}

var builders = map[string]func() *Scenario{
	"copychain": buildCopyChain,
	"dispatch":  buildDispatch,
	"fieldflow": buildFieldFlow,
	"taint":     buildTaint,
	"transfer":  buildTransfer,
	"sinkarg":   buildSinkArg,
	"deadcode":  buildDeadCode,
}

func newMain(declaring *ir.Type) *ir.Method {
	return ir.NewMethod("main", declaring, true)
}

// buildCopyChain: A a = new A(); A b = a; A c = b;
func buildCopyChain() *Scenario {
	program := ir.NewType("Program")
	typeA := ir.NewType("A")
	main := newMain(program)

	a := ir.NewVar("a", typeA)
	b := ir.NewVar("b", typeA)
	c := ir.NewVar("c", typeA)
	alloc := &ir.Alloc{Result: a, Type: typeA, Label: "new_A"}

	main.IR.Stmts = []ir.Stmt{
		alloc,
		&ir.Copy{LHS: b, RHS: a},
		&ir.Copy{LHS: c, RHS: b},
	}

	return finish(&Scenario{
		Name:        "copychain",
		Program:     &ir.Program{Types: []*ir.Type{program, typeA}, Methods: []*ir.Method{main}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"a": a, "b": b, "c": c},
		Description: "A a = new A(); A b = a; A c = b; — expect a, b, c to share one points-to set.",
	})
}

// buildDispatch: interface I { void m(); } class P implements I { void m(){} }
// class Q implements I { void m(){} }
// main() { I x = new P(); x.m(); I y = new Q(); y.m(); }
func buildDispatch() *Scenario {
	program := ir.NewType("Program")
	typeI := ir.NewType("I")
	typeP := ir.NewType("P", typeI)
	typeQ := ir.NewType("Q", typeI)

	mP := ir.NewMethod("m", typeP, false)
	mP.IR.This = ir.NewVar("this", typeP)
	mP.Finalize()

	mQ := ir.NewMethod("m", typeQ, false)
	mQ.IR.This = ir.NewVar("this", typeQ)
	mQ.Finalize()

	hierarchy := classhierarchy.NewHierarchy()
	hierarchy.Declare(typeP, mP)
	hierarchy.Declare(typeQ, mQ)

	main := newMain(program)
	x := ir.NewVar("x", typeI)
	y := ir.NewVar("y", typeI)

	main.IR.Stmts = []ir.Stmt{
		&ir.Alloc{Result: x, Type: typeP, Label: "new_P"},
		&ir.Call{Receiver: x, MethodRef: "m"},
		&ir.Alloc{Result: y, Type: typeQ, Label: "new_Q"},
		&ir.Call{Receiver: y, MethodRef: "m"},
	}

	return finish(&Scenario{
		Name:        "dispatch",
		Program:     &ir.Program{Types: []*ir.Type{program, typeI, typeP, typeQ}, Methods: []*ir.Method{main, mP, mQ}, Entry: main},
		Hierarchy:   hierarchy,
		Vars:        map[string]*ir.Var{"x": x, "y": y},
		Description: "I x = new P(); x.m(); I y = new Q(); y.m(); — expect edges x.m->P.m and y.m->Q.m, never crossed.",
	})
}

// buildFieldFlow: class C { Object f; } main() { C c = new C(); c.f = new D(); Object t = c.f; }
func buildFieldFlow() *Scenario {
	program := ir.NewType("Program")
	typeObject := ir.NewType("Object")
	typeC := ir.NewType("C")
	typeD := ir.NewType("D", typeObject)
	fieldF := ir.NewField("f", typeObject, typeC, false)

	main := newMain(program)
	c := ir.NewVar("c", typeC)
	d := ir.NewVar("d", typeD)
	t := ir.NewVar("t", typeObject)

	main.IR.Stmts = []ir.Stmt{
		&ir.Alloc{Result: c, Type: typeC, Label: "new_C"},
		&ir.Alloc{Result: d, Type: typeD, Label: "new_D"},
		&ir.InstanceStore{Base: c, Field: fieldF, RHS: d},
		&ir.InstanceLoad{LHS: t, Base: c, Field: fieldF},
	}

	return finish(&Scenario{
		Name:        "fieldflow",
		Program:     &ir.Program{Types: []*ir.Type{program, typeObject, typeC, typeD}, Methods: []*ir.Method{main}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"c": c, "d": d, "t": t},
		Description: "c.f = new D(); Object t = c.f; — expect t's points-to set to contain D@new_D.",
	})
}

func sourceSinkTypes() (program, typeT *ir.Type, srcGet, snkUse *ir.Method) {
	program = ir.NewType("Program")
	typeT = ir.NewType("T")
	ret := ir.NewVar("ret", typeT)
	srcGet = ir.NewMethod("get", ir.NewType("Src"), true)
	srcGet.IR.ReturnVars = []*ir.Var{ret}
	srcGet.Finalize()

	param := ir.NewVar("v", typeT)
	snkUse = ir.NewMethod("use", ir.NewType("Snk"), true)
	snkUse.IR.Params = []*ir.Var{param}
	snkUse.Finalize()
	return
}

// buildTaint: x = Src.get(); Snk.use(x);
// Config: source Src.get -> T, sink Snk.use(0).
func buildTaint() *Scenario {
	program, typeT, srcGet, snkUse := sourceSinkTypes()

	main := newMain(program)
	x := ir.NewVar("x", typeT)

	main.IR.Stmts = []ir.Stmt{
		&ir.Call{Result: x, Static: true, Callee: srcGet, MethodRef: "Src.get"},
		&ir.Call{Static: true, Callee: snkUse, MethodRef: "Snk.use", Args: []*ir.Var{x}},
	}

	yaml := []byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk.use\"\n    arg: 0\n")

	return finish(&Scenario{
		Name:        "taint",
		Program:     &ir.Program{Types: []*ir.Type{program, typeT, srcGet.Declaring, snkUse.Declaring}, Methods: []*ir.Method{main, srcGet, snkUse}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"x": x},
		ConfigYAML:  yaml,
		Description: "x = Src.get(); Snk.use(x); — expect one taint flow from Src.get to Snk.use.",
	})
}

// buildTransfer: x = Src.get(); y = Wrap.of(x); Snk.use(y);
// Config: transfer Wrap.of(0 -> result), sink Snk.use(0).
func buildTransfer() *Scenario {
	program, typeT, srcGet, snkUse := sourceSinkTypes()

	wrapParam := ir.NewVar("v", typeT)
	wrapRet := ir.NewVar("ret", typeT)
	wrapOf := ir.NewMethod("of", ir.NewType("Wrap"), true)
	wrapOf.IR.Params = []*ir.Var{wrapParam}
	wrapOf.IR.ReturnVars = []*ir.Var{wrapRet}
	wrapOf.Finalize()

	main := newMain(program)
	x := ir.NewVar("x", typeT)
	y := ir.NewVar("y", typeT)

	main.IR.Stmts = []ir.Stmt{
		&ir.Call{Result: x, Static: true, Callee: srcGet, MethodRef: "Src.get"},
		&ir.Call{Result: y, Static: true, Callee: wrapOf, MethodRef: "Wrap.of", Args: []*ir.Var{x}},
		&ir.Call{Static: true, Callee: snkUse, MethodRef: "Snk.use", Args: []*ir.Var{y}},
	}

	yaml := []byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk.use\"\n    arg: 0\ntransfers:\n  - pattern: \"Wrap.of\"\n    kind: arg-to-result\n    arg: 0\n")

	return finish(&Scenario{
		Name:        "transfer",
		Program:     &ir.Program{Types: []*ir.Type{program, typeT, srcGet.Declaring, wrapOf.Declaring, snkUse.Declaring}, Methods: []*ir.Method{main, srcGet, wrapOf, snkUse}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"x": x, "y": y},
		ConfigYAML:  yaml,
		Description: "x = Src.get(); y = Wrap.of(x); Snk.use(y); — expect one flow, y carries a taint object sourced at Src.get.",
	})
}

// buildSinkArg: x = Src.get(); z = new Z(); Snk2.use2(x, z);
// Config: source Src.get -> T, sink Snk2.use2(1) — only the second
// argument is dangerous. The tainted value x lands in argument 0,
// which is not configured as a sink, so no flow should be reported.
func buildSinkArg() *Scenario {
	program, typeT, srcGet, _ := sourceSinkTypes()

	p0 := ir.NewVar("p0", typeT)
	p1 := ir.NewVar("p1", typeT)
	snkUse2 := ir.NewMethod("use2", ir.NewType("Snk2"), true)
	snkUse2.IR.Params = []*ir.Var{p0, p1}
	snkUse2.Finalize()

	main := newMain(program)
	x := ir.NewVar("x", typeT)
	typeZ := ir.NewType("Z", typeT)
	z := ir.NewVar("z", typeT)

	main.IR.Stmts = []ir.Stmt{
		&ir.Call{Result: x, Static: true, Callee: srcGet, MethodRef: "Src.get"},
		&ir.Alloc{Result: z, Type: typeZ, Label: "new_Z"},
		&ir.Call{Static: true, Callee: snkUse2, MethodRef: "Snk2.use2", Args: []*ir.Var{x, z}},
	}

	yaml := []byte("sources:\n  - pattern: \"Src.get\"\nsinks:\n  - pattern: \"Snk2.use2\"\n    arg: 1\n")

	return finish(&Scenario{
		Name:        "sinkarg",
		Program:     &ir.Program{Types: []*ir.Type{program, typeT, srcGet.Declaring, snkUse2.Declaring, typeZ}, Methods: []*ir.Method{main, srcGet, snkUse2}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"x": x, "z": z},
		ConfigYAML:  yaml,
		Description: "x = Src.get(); z = new Z(); Snk2.use2(x, z); sink configured only at arg 1 — expect no flow, since tainted x is arg 0.",
	})
}

// buildDeadCode: if (1 == 0) { int a = 1; } else { int b = 2; } int c = 3; // c unread
func buildDeadCode() *Scenario {
	program := ir.NewType("Program")
	typeInt := ir.NewType("int")
	main := newMain(program)

	cond := ir.NewVar("cond", typeInt)
	a, one := ir.NewVar("a", typeInt), ir.NewVar("one", typeInt)
	b, two := ir.NewVar("b", typeInt), ir.NewVar("two", typeInt)
	c, three := ir.NewVar("c", typeInt), ir.NewVar("three", typeInt)

	main.IR.Stmts = []ir.Stmt{
		&ir.If{
			Cond: cond,
			Then: []ir.Stmt{&ir.Copy{LHS: a, RHS: one}},
			Else: []ir.Stmt{&ir.Copy{LHS: b, RHS: two}},
		},
		&ir.Copy{LHS: c, RHS: three},
	}

	return finish(&Scenario{
		Name:        "deadcode",
		Program:     &ir.Program{Types: []*ir.Type{program, typeInt}, Methods: []*ir.Method{main}, Entry: main},
		Hierarchy:   classhierarchy.NewHierarchy(),
		Vars:        map[string]*ir.Var{"cond": cond, "a": a, "b": b, "c": c},
		Description: "if (1 == 0) { a = 1; } else { b = 2; } c = 3; — expect a = 1 unreachable, c = 3 dead.",
	})
}

func finish(s *Scenario) *Scenario {
	s.Program.Finalize()
	return s
}
