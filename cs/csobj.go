package cs

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/ir"
)

// CSObj is a context-sensitive heap abstraction: an allocation site
// (or taint origin) paired with a heap context. Taint CSObjs are
// always paired with the empty context.
type CSObj struct {
	Ctx actx.Context
	Obj ir.Obj
}

func (o CSObj) String() string {
	return o.Ctx.String() + ":" + o.Obj.String()
}

// Type returns the declared type of the wrapped object.
func (o CSObj) Type() *ir.Type { return o.Obj.ObjType() }
