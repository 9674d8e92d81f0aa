// Package ac3 implements the AC-3 worklist loop and the revise step.
package ac3

import (
	"fmt"

	"github.com/katalvlaran/arcon/csp"
)

// Run enforces arc consistency on st with respect to the arcs of p.
// It mutates st in place (removals land on the store's trail, so the caller's
// snapshot discipline makes the pass fully reversible).
//
// Returns:
//
//   - res: revision and pruning counters for the pass.
//   - err: ErrDomainWipeout (wrapped with the emptied variable) if the
//     domains admit no solution; validation sentinels for bad inputs;
//     nil when the store reached an arc-consistent fixed point.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. st must be non-nil (ErrNilStore).
//  3. Options.Start, when set, must be a declared variable (ErrStartNotFound).
func Run[V comparable](p *csp.Problem[V], st *csp.Store[V], opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if st == nil {
		return Result{}, ErrNilStore
	}
	if cfg.Start != "" && !p.HasVariable(cfg.Start) {
		return Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	}

	// 3) Seed the worklist: every arc for a full pass, or only the arcs
	//    into Start for the incremental re-queue after one assignment.
	var queue []csp.Arc[V]
	if cfg.Start == "" {
		queue = append(queue, p.Arcs()...)
	} else {
		queue = append(queue, p.ArcsInto(cfg.Start)...)
	}

	w := &worklist[V]{problem: p, store: st, queue: queue}

	return w.run()
}

// worklist holds the mutable state of one propagation pass.
type worklist[V comparable] struct {
	problem *csp.Problem[V]
	store   *csp.Store[V]
	queue   []csp.Arc[V] // FIFO, matching the classic formulation
	res     Result
}

// run drains the queue to a fixed point or to the first domain wipeout.
func (w *worklist[V]) run() (Result, error) {
	for len(w.queue) > 0 {
		// 1) Pop the oldest arc (Xi, Xj).
		arc := w.queue[0]
		w.queue = w.queue[1:]

		// 2) Revise the domain of Xi against the domain of Xj.
		if !w.revise(arc) {
			continue
		}
		w.res.Revisions++

		// 3) A revision that emptied Xi proves local unsatisfiability.
		if w.store.Size(arc.From) == 0 {
			return w.res, fmt.Errorf("%w: variable %q", ErrDomainWipeout, arc.From)
		}

		// 4) Xi shrank: values in in-neighbors Xk may have lost their only
		//    support, so re-enqueue every arc (Xk, Xi) except (Xj, Xi).
		for _, back := range w.problem.ArcsInto(arc.From) {
			if back.From != arc.To {
				w.queue = append(w.queue, back)
			}
		}
	}

	return w.res, nil
}

// revise removes from the domain of arc.From every value with no supporting
// value in the domain of arc.To, and reports whether anything was removed.
func (w *worklist[V]) revise(arc csp.Arc[V]) bool {
	// Iterate over a stable copy: Remove mutates the live domain slice.
	current := w.store.Domain(arc.From)
	candidates := append(make([]V, 0, len(current)), current...)

	revised := false
	for _, v := range candidates {
		if w.supported(v, arc) {
			continue
		}
		w.store.Remove(arc.From, v)
		w.res.Pruned++
		revised = true
	}

	return revised
}

// supported reports whether some value in the domain of arc.To satisfies
// the predicate together with v.
func (w *worklist[V]) supported(v V, arc csp.Arc[V]) bool {
	for _, u := range w.store.Domain(arc.To) {
		if arc.Accepts(v, u) {
			return true
		}
	}

	return false
}
