// Package taint implements the taint-propagation overlay: a
// solver.Hooks implementation that rides the pointer analysis's
// fixed point rather than running a second one. Source calls mint
// synthetic ir.TaintObj heap objects and inject them at the call's
// result variable; transfer calls install edges on an auxiliary
// taint flow graph (TFG) that carries taint across an otherwise
// opaque call, rewriting the object's declared type at the boundary;
// sink calls are watched so that any taint reaching a sink argument
// is recorded as a TaintFlow.
package taint

import (
	"fmt"
	"sort"

	"github.com/flowgraph/pta/actx"
	"github.com/flowgraph/pta/config"
	"github.com/flowgraph/pta/cs"
	"github.com/flowgraph/pta/ir"
	"github.com/flowgraph/pta/pts"
	"github.com/flowgraph/pta/solver"
)

// TaintFlow is one confirmed path from a source call to a sink call's
// ParamIndex argument, through zero or more transfers.
type TaintFlow struct {
	Source     *ir.Call
	Sink       *ir.Call
	ParamIndex int
}

func (f TaintFlow) String() string {
	return fmt.Sprintf("%s -> %s[%d]", f.Source.MethodRef, f.Sink.MethodRef, f.ParamIndex)
}

// tfgEdge is one taint flow graph edge: taint reaching from produces
// a new taint object of resultType at to.
type tfgEdge struct {
	to         cs.Pointer
	resultType *ir.Type
}

// sinkWatch records that the pointer it is indexed under is sink
// call's argPos'th argument, so a TaintFlow can name which parameter
// taint reached.
type sinkWatch struct {
	call   *ir.Call
	argPos int
}

// Manager is the taint overlay. Construct with NewManager and pass to
// solver.WithHooks; a zero-value *config.Matchers (no sources/sinks
// configured) makes the overlay an observed no-op.
type Manager struct {
	matchers *config.Matchers

	tfg   map[cs.Pointer][]tfgEdge
	watch map[cs.Pointer][]sinkWatch

	// originOf records, for each taint CSObj this manager minted, the
	// call that produced it, so a flow can name its source even after
	// the object has been rewritten at a transfer boundary.
	originOf map[cs.CSObj]*ir.Call

	flows []TaintFlow
	seen  map[TaintFlow]struct{}
}

// NewManager returns a taint overlay configured by matchers. Passing
// nil is equivalent to an empty *config.Matchers.
func NewManager(matchers *config.Matchers) *Manager {
	if matchers == nil {
		matchers = &config.Matchers{}
	}
	return &Manager{
		matchers: matchers,
		tfg:      make(map[cs.Pointer][]tfgEdge),
		watch:    make(map[cs.Pointer][]sinkWatch),
		originOf: make(map[cs.CSObj]*ir.Call),
		seen:     make(map[TaintFlow]struct{}),
	}
}

// Flows returns the confirmed source-to-sink flows found during the
// solve, sorted for deterministic output.
func (m *Manager) Flows() []TaintFlow {
	out := make([]TaintFlow, len(m.flows))
	copy(out, m.flows)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source.MethodRef != out[j].Source.MethodRef {
			return out[i].Source.MethodRef < out[j].Source.MethodRef
		}
		if out[i].Sink.MethodRef != out[j].Sink.MethodRef {
			return out[i].Sink.MethodRef < out[j].Sink.MethodRef
		}
		return out[i].ParamIndex < out[j].ParamIndex
	})
	return out
}

// OnCallEdge installs taint behavior for a newly reached call edge:
// source calls inject a taint object at the result, sink calls
// install a watch on the argument at the configured position, and
// transfer calls install a TFG edge.
func (m *Manager) OnCallEdge(s *solver.Solver, callerCtx actx.Context, call *ir.Call, recv cs.Pointer, calleeCtx actx.Context, callee *ir.Method) {
	if m.matchers.IsSource(call.MethodRef) {
		m.injectSource(s, callerCtx, call)
	}
	if argPos, ok := m.matchers.Sink(call.MethodRef); ok {
		m.installSinkWatch(s, callerCtx, call, argPos)
	}
	if kind, argPos, ok := m.matchers.Transfer(call.MethodRef); ok {
		m.installTransfer(s, callerCtx, call, kind, argPos)
	}
}

func (m *Manager) injectSource(s *solver.Solver, ctx actx.Context, call *ir.Call) {
	if call.Result == nil {
		return
	}
	obj := &ir.TaintObj{Source: call, Type: call.Result.Type}
	csObj := cs.CSObj{Ctx: actx.Empty(), Obj: obj}
	m.originOf[csObj] = call
	resultNode := s.Manager().GetCSVar(ctx, call.Result)
	s.Enqueue(resultNode, pts.FromSlice(csObj))
}

func (m *Manager) installSinkWatch(s *solver.Solver, ctx actx.Context, call *ir.Call, argPos int) {
	if argPos >= len(call.Args) {
		return
	}
	arg := call.Args[argPos]
	p := s.Manager().GetCSVar(ctx, arg)
	m.watch[p] = append(m.watch[p], sinkWatch{call: call, argPos: argPos})
	m.checkWatch(p, call, argPos, p.PointsTo())
}

func (m *Manager) installTransfer(s *solver.Solver, ctx actx.Context, call *ir.Call, kind config.TransferKind, argPos int) {
	var from, to cs.Pointer
	var resultType *ir.Type
	switch kind {
	case config.TransferArgToResult:
		if call.Result == nil || argPos >= len(call.Args) {
			return
		}
		from = s.Manager().GetCSVar(ctx, call.Args[argPos])
		to = s.Manager().GetCSVar(ctx, call.Result)
		resultType = call.Result.Type
	case config.TransferArgToBase:
		if call.Receiver == nil || argPos >= len(call.Args) {
			return
		}
		from = s.Manager().GetCSVar(ctx, call.Args[argPos])
		to = s.Manager().GetCSVar(ctx, call.Receiver)
		resultType = call.Receiver.Type
	case config.TransferBaseToResult:
		if call.Receiver == nil || call.Result == nil {
			return
		}
		from = s.Manager().GetCSVar(ctx, call.Receiver)
		to = s.Manager().GetCSVar(ctx, call.Result)
		resultType = call.Result.Type
	default:
		return
	}
	m.tfg[from] = append(m.tfg[from], tfgEdge{to: to, resultType: resultType})
	// The edge may already have taint sitting on from (it could have
	// been reached before this call's edge installed); rewrite and
	// forward immediately so the fixed point still converges.
	m.rewriteAndForward(s, from, to, resultType, collectTaint(from.PointsTo()))
}

// OnPropagate fans newly arrived taint objects across this manager's
// TFG edges and checks any sink watch registered on p.
func (m *Manager) OnPropagate(s *solver.Solver, p cs.Pointer, delta []cs.CSObj) {
	taintDelta := collectTaint(newSet(delta))
	if len(taintDelta) == 0 {
		return
	}
	for _, edge := range m.tfg[p] {
		m.rewriteAndForward(s, p, edge.to, edge.resultType, taintDelta)
	}
	for _, w := range m.watch[p] {
		m.checkWatch(p, w.call, w.argPos, newSet(delta))
	}
}

// OnFinish is a no-op: flows are recorded incrementally as they are
// discovered so OnPropagate order doesn't matter for correctness.
func (m *Manager) OnFinish(s *solver.Solver) {}

func (m *Manager) rewriteAndForward(s *solver.Solver, from, to cs.Pointer, resultType *ir.Type, taintObjs []cs.CSObj) {
	if len(taintObjs) == 0 {
		return
	}
	rewritten := make([]cs.CSObj, 0, len(taintObjs))
	for _, orig := range taintObjs {
		origin := m.originOf[orig]
		if origin == nil {
			if t, ok := orig.Obj.(*ir.TaintObj); ok {
				origin = t.Source
			}
		}
		newObj := &ir.TaintObj{Source: origin, Type: resultType}
		newCS := cs.CSObj{Ctx: actx.Empty(), Obj: newObj}
		m.originOf[newCS] = origin
		rewritten = append(rewritten, newCS)
	}
	s.Enqueue(to, pts.FromSlice(rewritten...))
}

func (m *Manager) checkWatch(p cs.Pointer, call *ir.Call, argPos int, set *cs.PTSet) {
	for _, obj := range collectTaint(set) {
		origin := m.originOf[obj]
		if origin == nil {
			if t, ok := obj.Obj.(*ir.TaintObj); ok {
				origin = t.Source
			}
		}
		if origin == nil {
			continue
		}
		flow := TaintFlow{Source: origin, Sink: call, ParamIndex: argPos}
		if _, ok := m.seen[flow]; ok {
			continue
		}
		m.seen[flow] = struct{}{}
		m.flows = append(m.flows, flow)
	}
}

func collectTaint(set *cs.PTSet) []cs.CSObj {
	if set == nil {
		return nil
	}
	var out []cs.CSObj
	set.ForEach(func(o cs.CSObj) {
		if _, ok := o.Obj.(*ir.TaintObj); ok {
			out = append(out, o)
		}
	})
	return out
}

func newSet(objs []cs.CSObj) *cs.PTSet {
	return pts.FromSlice(objs...)
}
