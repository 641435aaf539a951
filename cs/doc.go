// Package cs implements the interning manager: canonicalizes
// (context, syntactic element) pairs into the context-sensitive
// elements (CSVar, StaticField, InstanceField, ArrayIndex, CSObj,
// CSMethod, CSCallSite) the rest of the solver operates on.
//
// Interning is the module's load-bearing invariant: for any
// (Context, syntactic element) pair, at most one node exists
// process-wide. Everything downstream — the pointer flow graph,
// the work list, the call graph — relies on pointer/value equality of
// the values Manager hands back.
package cs
