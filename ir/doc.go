// Package ir defines the syntactic vocabulary the pointer analysis core
// consumes: types, variables, fields, methods, and the statement shapes
// the statement processor translates into pointer-flow-graph edges.
//
// Construction of this IR (parsing, desugaring, SSA-like normalization)
// is outside this package's concern. Callers build a Program once,
// normally via the scenario package or a real frontend, and hand it to
// the solver.
package ir
