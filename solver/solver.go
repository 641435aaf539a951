package solver

import (
	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/callgraph"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/internal/plog"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/pfg"
	"github.com/flowgraph/pta/pts"
	"github.com/flowgraph/pta/worklist"
)

// Solver runs the pointer analysis fixed point over a program reached
// from one or more entry points. Construct with NewSolver, add entry
// points with AddEntryPoint, then call Solve.
type Solver struct {
	manager   *cs.Manager
	selector  actx.Selector
	heapModel HeapModel
	hierarchy ClassHierarchy
	hooks     Hooks
	logger    *plog.Logger
	pfg       *pfg.Graph
	cg        *callgraph.Graph
	wl        *worklist.List
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithHooks installs a Hooks implementation (typically a
// *taint.Manager) to piggyback on the fixed point.
func WithHooks(h Hooks) Option {
	return func(s *Solver) { s.hooks = h }
}

// WithLogger installs a logger; the zero logger is silent.
func WithLogger(l *plog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// NewSolver returns a ready-to-run solver.
func NewSolver(selector actx.Selector, heapModel HeapModel, hierarchy ClassHierarchy, opts ...Option) *Solver {
	s := &Solver{
		manager:   cs.NewManager(),
		selector:  selector,
		heapModel: heapModel,
		hierarchy: hierarchy,
		hooks:     noopHooks{},
		logger:    plog.New(plog.LevelSilent, nil),
		pfg:       &pfg.Graph{},
		cg:        callgraph.NewGraph(),
		wl:        worklist.NewList(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Manager returns the interning manager backing this solve.
func (s *Solver) Manager() *cs.Manager { return s.manager }

// CallGraph returns the call graph being built.
func (s *Solver) CallGraph() *callgraph.Graph { return s.cg }

// Enqueue adds (p, delta) to the work list. Exported so Hooks
// implementations (composed, not subclassed) can feed facts
// back into the fixed point.
func (s *Solver) Enqueue(p cs.Pointer, delta *cs.PTSet) {
	s.wl.AddEntry(p, delta)
}

// AddEntryPoint marks method reachable under the selector's empty
// context and processes its statements. Call once per program entry
// point before Solve.
func (s *Solver) AddEntryPoint(method *ir.Method) *cs.CSMethod {
	csMethod := s.manager.GetCSMethod(s.selector.Empty(), method)
	s.addReachable(csMethod)
	return csMethod
}

// Solve drains the work list to a fixed point. It returns once
// no further facts can be derived.
func (s *Solver) Solve() {
	for {
		p, delta, ok := s.wl.PollEntry()
		if !ok {
			break
		}
		s.logger.Trace("poll %s (%d objects)", p, delta.Len())
		newly := s.propagate(p, delta)
		if len(newly) == 0 {
			continue
		}
		v, ok := p.(*cs.CSVar)
		if !ok {
			continue
		}
		for _, csObj := range newly {
			for _, st := range v.Var.StoreFields() {
				s.installEdge(s.manager.GetCSVar(v.Ctx, st.RHS), s.manager.GetInstanceField(csObj, st.Field))
			}
			for _, st := range v.Var.LoadFields() {
				s.installEdge(s.manager.GetInstanceField(csObj, st.Field), s.manager.GetCSVar(v.Ctx, st.LHS))
			}
			for _, st := range v.Var.StoreArrays() {
				s.installEdge(s.manager.GetCSVar(v.Ctx, st.RHS), s.manager.GetArrayIndex(csObj))
			}
			for _, st := range v.Var.LoadArrays() {
				s.installEdge(s.manager.GetArrayIndex(csObj), s.manager.GetCSVar(v.Ctx, st.LHS))
			}
			for _, call := range v.Var.Invokes() {
				s.processCall(v, call, csObj)
			}
		}
	}
	s.hooks.OnFinish(s)
}

// propagate merges incoming into p's points-to set and fans the
// strictly-new elements out to every PFG successor. An empty delta
// generates no successor work, which is what makes re-enqueueing a
// converged pointer a no-op.
func (s *Solver) propagate(p cs.Pointer, incoming *cs.PTSet) []cs.CSObj {
	newly := p.PointsTo().AddAll(incoming)
	if len(newly) == 0 {
		return nil
	}
	fanout := pts.FromSlice(newly...)
	for _, succ := range s.pfg.Successors(p) {
		s.Enqueue(succ, fanout)
	}
	s.hooks.OnPropagate(s, p, newly)
	return newly
}

// installEdge installs s.pfg edge from→to and, if pt(from) is
// non-empty at installation time, enqueues it to to.
func (s *Solver) installEdge(from, to cs.Pointer) {
	if !s.pfg.AddEdge(from, to) {
		return
	}
	if from.PointsTo().IsEmpty() {
		return
	}
	s.Enqueue(to, from.PointsTo())
}

// addReachable marks csMethod reachable and, if newly so, runs the
// statement processor over its body exactly once.
func (s *Solver) addReachable(csMethod *cs.CSMethod) {
	if !s.cg.AddReachableMethod(csMethod) {
		return
	}
	s.processNewMethod(csMethod)
}

// processNewMethod is the statement processor, invoked once
// per newly reachable method.
func (s *Solver) processNewMethod(csMethod *cs.CSMethod) {
	ctx := csMethod.Ctx
	meth := csMethod.Method
	if meth == nil || meth.IR == nil {
		invariantf("reachable method has no IR: %v", csMethod)
	}
	s.logger.Debug("processing %s", csMethod)
	for _, stmt := range ir.Flatten(meth.IR.Stmts) {
		switch st := stmt.(type) {
		case *ir.Alloc:
			o := s.heapModel.GetObj(st)
			hc := s.selector.SelectHeapContext(ctx, o)
			csObj := s.manager.GetCSObj(hc, o)
			xNode := s.manager.GetCSVar(ctx, st.Result)
			s.Enqueue(xNode, pts.FromSlice(csObj))
		case *ir.Copy:
			s.installEdge(s.manager.GetCSVar(ctx, st.RHS), s.manager.GetCSVar(ctx, st.LHS))
		case *ir.StaticStore:
			s.installEdge(s.manager.GetCSVar(ctx, st.RHS), s.manager.GetStaticField(st.Field))
		case *ir.StaticLoad:
			s.installEdge(s.manager.GetStaticField(st.Field), s.manager.GetCSVar(ctx, st.LHS))
		case *ir.Call:
			if st.Static {
				s.processStaticCall(csMethod, st)
			}
			// Instance calls depend on the receiver's points-to set and
			// are processed from the delta loop in Solve, via
			// Var.Invokes().
		}
	}
}

// processStaticCall implements the static-call shape of the statement
// processor.
func (s *Solver) processStaticCall(csMethod *cs.CSMethod, call *ir.Call) {
	callerCtx := csMethod.Ctx
	callee := call.Callee
	if callee == nil {
		invariantf("static call %q has no resolved callee", call.MethodRef)
	}
	calleeCtx := s.selector.SelectContext(callerCtx, call, callee)
	calleeCS := s.manager.GetCSMethod(calleeCtx, callee)
	site := s.manager.GetCSCallSite(callerCtx, call)

	isNew := s.cg.AddEdge(callgraph.StaticCall, site, calleeCS)
	if !isNew {
		return
	}
	s.addReachable(calleeCS)
	s.installParamReturnEdges(callerCtx, call, calleeCtx, callee)
	s.hooks.OnCallEdge(s, callerCtx, call, nil, calleeCtx, callee)
}

// processCall handles an instance-call statement syntactically
// present on a variable that just gained recvObj, invoked from the
// delta loop for each such statement.
func (s *Solver) processCall(recvNode *cs.CSVar, call *ir.Call, recvObj cs.CSObj) {
	callerCtx := recvNode.Ctx

	callee := s.hierarchy.ResolveCallee(recvObj.Type(), call.MethodRef)
	if callee == nil {
		// "No method" sentinel: no edge installed, no error.
		return
	}
	if callee.IR.This == nil {
		invariantf("instance method %v has no receiver variable", callee)
	}

	calleeCtx := s.selector.SelectInstanceContext(callerCtx, call, recvObj.Ctx, recvObj.Obj, callee)

	// Step 3: always enqueue, even when the call-graph edge
	// already exists.
	thisNode := s.manager.GetCSVar(calleeCtx, callee.IR.This)
	s.Enqueue(thisNode, pts.FromSlice(recvObj))

	calleeCS := s.manager.GetCSMethod(calleeCtx, callee)
	site := s.manager.GetCSCallSite(callerCtx, call)

	isNew := s.cg.AddEdge(callgraph.InstanceCall, site, calleeCS)
	if !isNew {
		return
	}
	s.addReachable(calleeCS)
	s.installParamReturnEdges(callerCtx, call, calleeCtx, callee)
	s.hooks.OnCallEdge(s, callerCtx, call, recvNode, calleeCtx, callee)
}

// installParamReturnEdges installs the parameter and return edges
// common to both static and instance calls.
func (s *Solver) installParamReturnEdges(callerCtx actx.Context, call *ir.Call, calleeCtx actx.Context, callee *ir.Method) {
	if len(call.Args) != len(callee.IR.Params) {
		invariantf("arity mismatch calling %v: %d args, %d params", callee, len(call.Args), len(callee.IR.Params))
	}
	for i, param := range callee.IR.Params {
		if param == nil || call.Args[i] == nil {
			invariantf("nil parameter or argument %d calling %v", i, callee)
		}
		s.installEdge(s.manager.GetCSVar(callerCtx, call.Args[i]), s.manager.GetCSVar(calleeCtx, param))
	}
	if call.Result == nil {
		return
	}
	for _, rv := range callee.IR.ReturnVars {
		s.installEdge(s.manager.GetCSVar(calleeCtx, rv), s.manager.GetCSVar(callerCtx, call.Result))
	}
}
