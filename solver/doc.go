// Package solver implements the statement processor and the
// solver loop: the monotone fixed-point computation that
// drains the work list, grows the pointer flow graph and call graph,
// and discovers newly reachable methods.
//
// A Solver is single-threaded and cooperative: one call to
// Solve owns the work list, PFG, call graph, interning manager, and
// every pointer's points-to set for its duration. It is not safe for
// concurrent use.
package solver
