// Package pts implements the points-to set: a monotone set of
// heap abstractions supporting incremental addAll→delta.
//
// Set is generic over its element type so this package has no
// dependency on the cs package's CSObj — the interning manager sits
// below pts in the dependency graph, not above it.
package pts

// inlineCap is the small-size optimization threshold: sets with at
// most this many elements are held in a flat slice and scanned
// linearly, which beats a map for the overwhelmingly common case of a
// pointer with one or two points-to objects.
const inlineCap = 4

// Set is a monotone set of comparable elements. The zero value is an
// empty, ready-to-use set.
type Set[T comparable] struct {
	small [inlineCap]T
	n     int // number of elements in small, while big == nil
	big   map[T]struct{}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	if s.big != nil {
		return len(s.big)
	}
	return s.n
}

// IsEmpty reports whether the set has no elements. O(1).
func (s *Set[T]) IsEmpty() bool { return s.Len() == 0 }

// Contains reports whether o is in the set.
func (s *Set[T]) Contains(o T) bool {
	if s.big != nil {
		_, ok := s.big[o]
		return ok
	}
	for i := 0; i < s.n; i++ {
		if s.small[i] == o {
			return true
		}
	}
	return false
}

// AddObject inserts o, returning whether it was newly inserted.
func (s *Set[T]) AddObject(o T) bool {
	if s.Contains(o) {
		return false
	}
	if s.big != nil {
		s.big[o] = struct{}{}
		return true
	}
	if s.n < inlineCap {
		s.small[s.n] = o
		s.n++
		return true
	}
	// Promote to a map.
	s.big = make(map[T]struct{}, inlineCap*2)
	for i := 0; i < s.n; i++ {
		s.big[s.small[i]] = struct{}{}
	}
	s.big[o] = struct{}{}
	s.n = 0
	return true
}

// AddAll merges other into s, returning the strictly new elements.
// The returned delta never aliases other's storage.
func (s *Set[T]) AddAll(other *Set[T]) []T {
	if other == nil || other.IsEmpty() {
		return nil
	}
	var delta []T
	other.ForEach(func(o T) {
		if s.AddObject(o) {
			delta = append(delta, o)
		}
	})
	return delta
}

// ForEach iterates the set's elements. The set must not be mutated by
// the caller during iteration.
func (s *Set[T]) ForEach(f func(T)) {
	if s.big != nil {
		for o := range s.big {
			f(o)
		}
		return
	}
	for i := 0; i < s.n; i++ {
		f(s.small[i])
	}
}

// Slice returns a snapshot of the set's elements.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	s.ForEach(func(o T) { out = append(out, o) })
	return out
}

// FromSlice builds a Set from a literal slice of elements, useful for
// constructing the singleton delta sets the statement processor
// enqueues after an allocation.
func FromSlice[T comparable](elems ...T) *Set[T] {
	s := &Set[T]{}
	for _, o := range elems {
		s.AddObject(o)
	}
	return s
}
