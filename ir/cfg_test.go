package ir_test

import (
	"testing"

	"github.com/flowgraph/pta/ir"
)

func TestBuildCFGStraightLine(t *testing.T) {
	typ := ir.NewType("int")
	a := ir.NewVar("a", typ)
	b := ir.NewVar("b", typ)

	stmts := []ir.Stmt{
		&ir.Copy{LHS: a, RHS: a},
		&ir.Copy{LHS: b, RHS: b},
	}
	cfg := ir.BuildCFG(stmts)
	if cfg.Entry == nil {
		t.Fatal("expected a non-nil entry block")
	}
	if len(cfg.Entry.Stmts) != 2 {
		t.Fatalf("expected both statements in one straight-line block, got %v", cfg.Entry.Stmts)
	}
	if cfg.Entry.Branch != nil {
		t.Fatal("straight-line block should have no branch")
	}
}

func TestBuildCFGIfJoinsAfterBranch(t *testing.T) {
	typ := ir.NewType("int")
	cond := ir.NewVar("cond", typ)
	a := ir.NewVar("a", typ)
	b := ir.NewVar("b", typ)
	c := ir.NewVar("c", typ)

	assignA := &ir.Copy{LHS: a, RHS: a}
	assignB := &ir.Copy{LHS: b, RHS: b}
	assignC := &ir.Copy{LHS: c, RHS: c}

	branch := &ir.If{Cond: cond, Then: []ir.Stmt{assignA}, Else: []ir.Stmt{assignB}}
	cfg := ir.BuildCFG([]ir.Stmt{branch, assignC})

	entry := cfg.Entry
	if entry.Branch != branch {
		t.Fatalf("expected entry block's branch to be the If statement, got %v", entry.Branch)
	}
	if entry.Then == nil || entry.Else == nil {
		t.Fatal("expected both Then and Else successor blocks")
	}
	if len(entry.Then.Stmts) != 1 || entry.Then.Stmts[0] != ir.Stmt(assignA) {
		t.Fatalf("expected Then block to hold assignA, got %v", entry.Then.Stmts)
	}
	if len(entry.Else.Stmts) != 1 || entry.Else.Stmts[0] != ir.Stmt(assignB) {
		t.Fatalf("expected Else block to hold assignB, got %v", entry.Else.Stmts)
	}
	if entry.Then.Next == nil || entry.Then.Next != entry.Else.Next {
		t.Fatal("expected both branch arms to join at the same successor block")
	}
	if len(entry.Then.Next.Stmts) != 1 || entry.Then.Next.Stmts[0] != ir.Stmt(assignC) {
		t.Fatalf("expected the join block to hold assignC, got %v", entry.Then.Next.Stmts)
	}
}
