package cs

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/ir"
)

// CSMethod is a context-sensitive method: (Context, Method).
type CSMethod struct {
	Ctx    actx.Context
	Method *ir.Method
}

func (m CSMethod) String() string { return m.Ctx.String() + ":" + m.Method.String() }

// CSCallSite is a context-sensitive call site: (Context, *ir.Call).
type CSCallSite struct {
	Ctx  actx.Context
	Call *ir.Call
}

func (c CSCallSite) String() string { return c.Ctx.String() + ":call" }
