package cs

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/pts"
)

// PTSet is a points-to set of context-sensitive heap objects.
type PTSet = pts.Set[CSObj]

// Pointer is the tagged sum of pointer node kinds: CSVar,
// StaticField, InstanceField, ArrayIndex. Every Pointer owns a
// points-to set. Identity is by pointer value — the Manager
// guarantees at most one node exists per (context, syntactic
// element) pair, so two Pointer values compare equal (as interface
// values) iff they denote the same node.
type Pointer interface {
	// PointsTo returns the node's points-to set, created empty on
	// first demand and never nil.
	PointsTo() *PTSet
	String() string
}

// CSVar is a local variable in a method context.
type CSVar struct {
	Ctx actx.Context
	Var *ir.Var
	pts PTSet
}

func (p *CSVar) PointsTo() *PTSet { return &p.pts }
func (p *CSVar) String() string   { return p.Ctx.String() + ":" + p.Var.String() }

// StaticField is context-free: all contexts share one node per field.
type StaticField struct {
	Field *ir.Field
	pts   PTSet
}

func (p *StaticField) PointsTo() *PTSet { return &p.pts }
func (p *StaticField) String() string   { return p.Field.String() }

// InstanceField is one node per (receiving object, field).
type InstanceField struct {
	Base  CSObj
	Field *ir.Field
	pts   PTSet
}

func (p *InstanceField) PointsTo() *PTSet { return &p.pts }
func (p *InstanceField) String() string   { return p.Base.String() + "." + p.Field.Name }

// ArrayIndex is one node per array abstraction, collapsing all
// indices of that object onto a single pointer node.
type ArrayIndex struct {
	Base CSObj
	pts  PTSet
}

func (p *ArrayIndex) PointsTo() *PTSet { return &p.pts }
func (p *ArrayIndex) String() string   { return p.Base.String() + "[*]" }
