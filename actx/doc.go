// Package actx implements the context abstraction layer: the
// opaque Context value every variable, heap object, call site, and
// method is indexed by, and the pluggable Selector interface that
// chooses contexts.
//
// Named actx rather than context to avoid shadowing the standard
// library's context.Context in call sites that need both.
package actx
