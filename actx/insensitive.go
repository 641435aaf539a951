package actx

import "github.com/flowgraph/pta/ir"

// Insensitive always returns the empty context, reducing the analysis
// to a context-insensitive solve.
var Insensitive Selector = insensitive{}

type insensitive struct{}

func (insensitive) Empty() Context { return Empty() }

func (insensitive) SelectContext(Context, *ir.Call, *ir.Method) Context {
	return Empty()
}

func (insensitive) SelectInstanceContext(Context, *ir.Call, Context, ir.Obj, *ir.Method) Context {
	return Empty()
}

func (insensitive) SelectHeapContext(Context, ir.Obj) Context {
	return Empty()
}
