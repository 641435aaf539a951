// Package worklist implements the solver's work list: a
// FIFO-in-spirit multiset of (pointer, points-to-delta) pairs. The
// fixed point is order-independent, so this implementation
// merges same-pointer entries by union rather than keeping true
// duplicates — a valid realization of the "semantically equivalent to
// a multiset" contract, since no element is ever dropped.
package worklist

import "github.com/flowgraph/pta/cs"

// Entry is one work list item: a pointer and the points-to set to
// merge into it.
type Entry struct {
	Pointer cs.Pointer
	PTS     *cs.PTSet
}

// List is a FIFO work list with same-pointer merging.
type List struct {
	queue []cs.Pointer
	index map[cs.Pointer]int // enqueue position, for merge lookup; removed once polled
	sets  map[cs.Pointer]*cs.PTSet
}

// NewList returns an empty work list.
func NewList() *List {
	return &List{
		index: make(map[cs.Pointer]int),
		sets:  make(map[cs.Pointer]*cs.PTSet),
	}
}

// AddEntry enqueues (p, delta). If p already has a pending entry, the
// sets are unioned in place and no new queue slot is created.
func (l *List) AddEntry(p cs.Pointer, delta *cs.PTSet) {
	if delta == nil || delta.IsEmpty() {
		return
	}
	if pos, ok := l.index[p]; ok && pos >= 0 {
		l.sets[p].AddAll(delta)
		return
	}
	merged := &cs.PTSet{}
	merged.AddAll(delta)
	l.sets[p] = merged
	l.index[p] = len(l.queue)
	l.queue = append(l.queue, p)
}

// PollEntry removes and returns the oldest pending entry.
func (l *List) PollEntry() (cs.Pointer, *cs.PTSet, bool) {
	if len(l.queue) == 0 {
		return nil, nil, false
	}
	p := l.queue[0]
	l.queue = l.queue[1:]
	delete(l.index, p)
	set := l.sets[p]
	delete(l.sets, p)
	return p, set, true
}

// IsEmpty reports whether the work list has no pending entries.
func (l *List) IsEmpty() bool { return len(l.queue) == 0 }
