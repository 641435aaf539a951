package actx

import "strings"

// MaxDepth bounds how many elements a Context can hold. Selectors
// silently truncate to the most recent MaxDepth elements, which is
// enough for any k-CFA-family selector this module ships (k <= 4).
const MaxDepth = 4

// Context is the opaque, comparable token that disambiguates
// multiple abstract instances of the same syntactic entity. The zero
// Context is the distinguished empty context. Two contexts compare equal with == iff a
// selector would consider them the same context.
type Context struct {
	elems [MaxDepth]any
	n     int
}

// Empty returns the empty context.
func Empty() Context { return Context{} }

// IsEmpty reports whether c is the empty context.
func (c Context) IsEmpty() bool { return c.n == 0 }

// Len returns the number of elements held in c.
func (c Context) Len() int { return c.n }

// Elem returns the i'th most-recent element (0 is the most recent).
func (c Context) Elem(i int) any {
	if i < 0 || i >= c.n {
		return nil
	}
	return c.elems[i]
}

// extend returns a new context holding el followed by the most recent
// k-1 elements of prev, for a sliding window of length k. k == 0
// always yields the empty context (context-insensitive).
func extend(prev Context, k int, el any) Context {
	if k <= 0 {
		return Empty()
	}
	if k > MaxDepth {
		k = MaxDepth
	}
	var c Context
	c.elems[0] = el
	c.n = 1
	for i := 0; i < k-1 && i < prev.n; i++ {
		c.elems[c.n] = prev.elems[i]
		c.n++
	}
	return c
}

func (c Context) String() string {
	if c.IsEmpty() {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		switch v := c.elems[i].(type) {
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("?")
		}
	}
	b.WriteByte(']')
	return b.String()
}
