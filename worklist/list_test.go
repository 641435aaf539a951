package worklist_test

import (
	"testing"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/pts"
	"github.com/flowgraph/pta/worklist"
)

func newVarPointer(name string) cs.Pointer {
	v := ir.NewVar(name, ir.NewType("T"))
	return &cs.CSVar{Ctx: actx.Empty(), Var: v}
}

func TestAddEntryMergesSamePointer(t *testing.T) {
	l := worklist.NewList()
	p := newVarPointer("v")
	objType := ir.NewType("A")

	o1 := cs.CSObj{Ctx: actx.Empty(), Obj: &ir.AllocObj{Type: objType}}
	o2 := cs.CSObj{Ctx: actx.Empty(), Obj: &ir.AllocObj{Type: objType}}

	l.AddEntry(p, pts.FromSlice(o1))
	l.AddEntry(p, pts.FromSlice(o2))

	got, set, ok := l.PollEntry()
	if !ok {
		t.Fatal("expected one pending entry")
	}
	if got != p {
		t.Fatalf("expected the merged entry's pointer to be p")
	}
	if set.Len() != 2 {
		t.Fatalf("expected both objects merged into one entry, got %d", set.Len())
	}
	if !l.IsEmpty() {
		t.Fatal("expected the work list to be empty after polling its only entry")
	}
}

func TestAddEntryEmptyDeltaIsNoop(t *testing.T) {
	l := worklist.NewList()
	p := newVarPointer("v")
	l.AddEntry(p, &cs.PTSet{})
	if !l.IsEmpty() {
		t.Fatal("expected an empty delta to add nothing")
	}
}

func TestPollEntryFIFOOrder(t *testing.T) {
	l := worklist.NewList()
	p1 := newVarPointer("v1")
	p2 := newVarPointer("v2")
	objType := ir.NewType("A")
	obj := cs.CSObj{Ctx: actx.Empty(), Obj: &ir.AllocObj{Type: objType}}

	l.AddEntry(p1, pts.FromSlice(obj))
	l.AddEntry(p2, pts.FromSlice(obj))

	got1, _, _ := l.PollEntry()
	got2, _, _ := l.PollEntry()
	if got1 != p1 || got2 != p2 {
		t.Fatal("expected FIFO poll order")
	}
}
