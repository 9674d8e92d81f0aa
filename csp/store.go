// Package csp implements the Store: the mutable candidate-value sets the
// propagator and search controller operate on, with trail-based undo.
//
// Notes on implementation choices:
//
//   - Domains only shrink between Snapshot and Restore, so an undo log of
//     individual removals is enough to reverse any amount of pruning. This
//     replaces the whole-store deep copy per recursion frame seen in naive
//     implementations: snapshot cost is O(1) and memory is proportional to
//     values actually removed, not to total domain size.
//   - Removals remember the value's position and Restore re-inserts at that
//     position in LIFO order, so a restored store is exactly — ordering
//     included — the store that was snapshotted.
package csp

import "fmt"

// removal is one trail entry: value `value` was deleted from variable `id`
// at position `index` of its domain slice.
type removal[V comparable] struct {
	id    string
	value V
	index int
}

// Store holds the current domain of every variable of one Problem.
// It is exclusively owned by a single in-flight solve: not safe for
// concurrent use. Use Clone to give another goroutine its own store.
type Store[V comparable] struct {
	doms  map[string][]V
	trail []removal[V]
}

// NewStore copies the initial domains of p into a fresh store with an
// empty trail. The problem itself is left untouched.
func NewStore[V comparable](p *Problem[V]) *Store[V] {
	doms := make(map[string][]V, p.NumVariables())
	for id, dom := range p.domains {
		doms[id] = append(make([]V, 0, len(dom)), dom...)
	}

	return &Store[V]{doms: doms}
}

// Domain returns the current domain of id, or nil for an unknown variable.
// The returned slice is live store state: valid only until the next
// mutation, and callers must not modify it.
func (s *Store[V]) Domain(id string) []V { return s.doms[id] }

// Size returns the number of values currently admissible for id.
func (s *Store[V]) Size(id string) int { return len(s.doms[id]) }

// Has reports whether v is currently admissible for id.
func (s *Store[V]) Has(id string, v V) bool {
	for _, w := range s.doms[id] {
		if w == v {
			return true
		}
	}

	return false
}

// Value returns the sole remaining value of id if its domain is a
// singleton, and false otherwise.
func (s *Store[V]) Value(id string) (V, bool) {
	if dom := s.doms[id]; len(dom) == 1 {
		return dom[0], true
	}
	var zero V

	return zero, false
}

// Remove deletes v from the domain of id, recording the deletion on the
// trail. Removing a value that is not present is a no-op.
func (s *Store[V]) Remove(id string, v V) {
	dom := s.doms[id]
	for i, w := range dom {
		if w != v {
			continue
		}
		// Shift left to keep positions stable for exact restoration.
		copy(dom[i:], dom[i+1:])
		s.doms[id] = dom[:len(dom)-1]
		s.trail = append(s.trail, removal[V]{id: id, value: v, index: i})

		return
	}
}

// Assign shrinks the domain of id to the singleton {v} by removing every
// other value. After Assign the domain contains exactly v, provided v was
// admissible; assigning an inadmissible value leaves the domain empty, which
// the caller detects as a wipeout.
func (s *Store[V]) Assign(id string, v V) {
	// Walk backwards: each Remove shifts only elements after the hit.
	dom := s.doms[id]
	for i := len(dom) - 1; i >= 0; i-- {
		if dom[i] != v {
			s.Remove(id, dom[i])
		}
		dom = s.doms[id]
	}
}

// Snapshot returns a mark for the current trail position. O(1).
func (s *Store[V]) Snapshot() Mark { return Mark(len(s.trail)) }

// Restore undoes every removal performed since mark was taken, in reverse
// order, re-inserting each value at its recorded position. The store is
// bit-for-bit the store that existed at Snapshot time.
// Returns ErrBadMark if mark does not refer to a trail prefix.
func (s *Store[V]) Restore(mark Mark) error {
	if mark < 0 || int(mark) > len(s.trail) {
		return fmt.Errorf("%w: mark=%d trail=%d", ErrBadMark, mark, len(s.trail))
	}
	for i := len(s.trail) - 1; i >= int(mark); i-- {
		entry := s.trail[i]
		dom := s.doms[entry.id]
		// Re-open the slot at entry.index and put the value back.
		dom = append(dom, entry.value)
		copy(dom[entry.index+1:], dom[entry.index:])
		dom[entry.index] = entry.value
		s.doms[entry.id] = dom
	}
	s.trail = s.trail[:mark]

	return nil
}

// TrailLen returns the number of removals currently on the trail.
// Exposed for tests and diagnostics.
func (s *Store[V]) TrailLen() int { return len(s.trail) }

// Clone returns an independent deep copy of the current domains with an
// empty trail. Used to hand private stores to parallel search workers.
func (s *Store[V]) Clone() *Store[V] {
	doms := make(map[string][]V, len(s.doms))
	for id, dom := range s.doms {
		doms[id] = append(make([]V, 0, len(dom)), dom...)
	}

	return &Store[V]{doms: doms}
}
