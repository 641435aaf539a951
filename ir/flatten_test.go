package ir_test

import (
	"testing"

	"github.com/flowgraph/pta/ir"
)

func TestFlattenInlinesBranchBodies(t *testing.T) {
	typ := ir.NewType("int")
	a := ir.NewVar("a", typ)
	b := ir.NewVar("b", typ)
	c := ir.NewVar("c", typ)
	cond := ir.NewVar("cond", typ)

	assignA := &ir.Copy{LHS: a, RHS: a}
	assignB := &ir.Copy{LHS: b, RHS: b}
	assignC := &ir.Copy{LHS: c, RHS: c}

	branch := &ir.If{Cond: cond, Then: []ir.Stmt{assignA}, Else: []ir.Stmt{assignB}}
	flat := ir.Flatten([]ir.Stmt{branch, assignC})

	if len(flat) != 4 {
		t.Fatalf("expected 4 flattened statements (branch, a, b, c), got %d: %v", len(flat), flat)
	}
	if flat[0] != ir.Stmt(branch) || flat[1] != ir.Stmt(assignA) || flat[2] != ir.Stmt(assignB) || flat[3] != ir.Stmt(assignC) {
		t.Fatalf("unexpected flatten order: %v", flat)
	}
}

func TestFlattenNestedSwitch(t *testing.T) {
	typ := ir.NewType("int")
	subj := ir.NewVar("subj", typ)
	x := ir.NewVar("x", typ)
	y := ir.NewVar("y", typ)
	z := ir.NewVar("z", typ)

	assignX := &ir.Copy{LHS: x, RHS: x}
	assignY := &ir.Copy{LHS: y, RHS: y}
	assignZ := &ir.Copy{LHS: z, RHS: z}

	sw := &ir.Switch{
		Subject: subj,
		Cases: []ir.SwitchCase{
			{Value: "1", Body: []ir.Stmt{assignX}},
			{Value: "2", Body: []ir.Stmt{assignY}},
		},
		Default: []ir.Stmt{assignZ},
	}

	flat := ir.Flatten([]ir.Stmt{sw})
	if len(flat) != 4 {
		t.Fatalf("expected 4 flattened statements, got %d: %v", len(flat), flat)
	}
}
