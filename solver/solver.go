// Package solver implements the backtracking search controller: the
// Searching → Solved / Failed state machine over snapshot-delimited
// recursion frames, with AC-3 propagation after every trial assignment.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcon/ac3"
	"github.com/katalvlaran/arcon/csp"
)

// Solve searches p for its first complete consistent assignment.
//
// Returns:
//
//   - the assignment, with every registered constraint satisfied and
//     (when set) Options.Check accepted; or
//   - ErrUnsatisfiable once every branch is exhausted — a definite result;
//   - ErrBudgetExhausted / ErrCanceled when a bound cut the search short.
//
// The search is deterministic for deterministic options: repeated calls
// return the same assignment.
func Solve[V comparable](p *csp.Problem[V], opts ...Option[V]) (Assignment[V], error) {
	// 1) Build options.
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the problem handle. Problem content was validated at
	//    construction time by the csp builder.
	if p == nil {
		return nil, ErrNilProblem
	}

	// 3) A fresh store per solve: domains live exactly as long as the call.
	return solveStore(p, csp.NewStore(p), cfg)
}

// SolveAll enumerates every solution of p in deterministic search order,
// passing each to yield; return false from yield to stop early.
//
// Exhausting the tree is not an error even when no solution was found —
// the enumeration is simply empty. Budget and cancellation errors are
// surfaced as in Solve.
func SolveAll[V comparable](p *csp.Problem[V], yield func(Assignment[V]) bool, opts ...Option[V]) error {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if p == nil {
		return ErrNilProblem
	}
	if yield == nil {
		return ErrNilYield
	}

	st := csp.NewStore(p)

	// Initial propagation; a wipeout here just means zero solutions.
	res, err := ac3.Run(p, st)
	addAC3(cfg.Stats, res)
	if err != nil {
		if errors.Is(err, ac3.ErrDomainWipeout) {
			return nil
		}

		return err
	}

	r := &runner[V]{problem: p, store: st, opts: cfg, yield: yield}
	_, err = r.search()

	return err
}

// solveStore runs the initial full propagation pass and then the
// backtracking search over an already-built store. Shared by Solve and the
// parallel workers, which bring their own stores.
func solveStore[V comparable](p *csp.Problem[V], st *csp.Store[V], cfg Options[V]) (Assignment[V], error) {
	// 1) Initial full AC-3 pass: prune before any branching. A wipeout at
	//    this point proves the problem unsatisfiable outright.
	res, err := ac3.Run(p, st)
	addAC3(cfg.Stats, res)
	if err != nil {
		if errors.Is(err, ac3.ErrDomainWipeout) {
			return nil, fmt.Errorf("%w: initial propagation: %v", ErrUnsatisfiable, err)
		}

		return nil, err
	}

	// 2) Depth-first search from the pruned domains.
	r := &runner[V]{problem: p, store: st, opts: cfg}
	solved, err := r.search()
	if err != nil {
		return nil, err
	}
	if !solved {
		return nil, ErrUnsatisfiable
	}

	return r.solution, nil
}

// runner holds the mutable state of one search: the store it owns, the
// options, the step counter for the budget, and — in enumeration mode —
// the yield callback instead of a single solution slot.
type runner[V comparable] struct {
	problem  *csp.Problem[V]
	store    *csp.Store[V]
	opts     Options[V]
	yield    func(Assignment[V]) bool // nil in first-solution mode
	solution Assignment[V]
	steps    int
}

// search is one Searching state of the controller. It reports stop=true
// when the caller should unwind with a final answer: a solution in
// first-solution mode, or yield declining more solutions in enumeration
// mode. stop=false with nil error is the Failed transition — the caller
// restores its snapshot and tries its own next value.
func (r *runner[V]) search() (stop bool, err error) {
	// 1) Honor cancellation once per node.
	if r.opts.Ctx != nil {
		select {
		case <-r.opts.Ctx.Done():
			return false, fmt.Errorf("%w: %v", ErrCanceled, r.opts.Ctx.Err())
		default:
		}
	}

	// 2) Solved check: every domain a singleton means the (explicit and
	//    propagated) assignments form a complete, arc-consistent solution.
	next := r.selectVariable()
	if next == "" {
		return r.emitSolution()
	}

	// 3) Try each candidate value of the selected variable in heuristic order.
	for _, v := range r.orderValues(next) {
		// 3a) Budget accounting: one trial assignment is one step.
		r.steps++
		if r.opts.Stats != nil {
			r.opts.Stats.Nodes++
		}
		if r.opts.StepBudget > 0 && r.steps > r.opts.StepBudget {
			return false, fmt.Errorf("%w: after %d steps", ErrBudgetExhausted, r.opts.StepBudget)
		}

		// 3b) Fast-path consistency against already-decided neighbors.
		//     Redundant with what AC-3 would detect, but skips the
		//     snapshot/assign/restore churn for immediate conflicts.
		if !r.consistentWithDecided(next, v) {
			continue
		}

		// 3c) Trial: snapshot, commit, propagate incrementally from `next`.
		mark := r.store.Snapshot()
		r.store.Assign(next, v)

		res, perr := ac3.Run(r.problem, r.store, ac3.WithStart(next))
		addAC3(r.opts.Stats, res)
		switch {
		case perr == nil:
			// 3d) Narrowed domains survived propagation: recurse.
			stop, err = r.search()
			if err != nil {
				return false, err
			}
			if stop {
				return true, nil
			}
		case !errors.Is(perr, ac3.ErrDomainWipeout):
			return false, perr
		}

		// 3e) Dead end (wipeout or exhausted subtree): rewind this trial.
		if rerr := r.store.Restore(mark); rerr != nil {
			return false, rerr
		}
		if r.opts.Stats != nil {
			r.opts.Stats.Backtracks++
		}
	}

	// 4) Every value failed: Failed propagates to the caller's frame.
	return false, nil
}

// emitSolution handles the Solved state: extract the assignment from the
// singleton domains, apply the optional leaf check, and either record it
// (first-solution mode) or hand it to yield (enumeration mode).
func (r *runner[V]) emitSolution() (bool, error) {
	asg := make(Assignment[V], r.problem.NumVariables())
	for _, id := range r.problem.Variables() {
		v, ok := r.store.Value(id)
		if !ok {
			// Unreachable after selectVariable returned "": every domain is
			// a singleton. Guard anyway rather than emit a partial result.
			return false, nil
		}
		asg[id] = v
	}

	if r.opts.Check != nil && !r.opts.Check(asg) {
		return false, nil // leaf rejected: treat as a dead end
	}

	if r.yield != nil {
		return !r.yield(asg), nil
	}
	r.solution = asg

	return true, nil
}

// consistentWithDecided reports whether assigning v to id agrees with every
// constraint toward a neighbor whose domain is already a singleton.
func (r *runner[V]) consistentWithDecided(id string, v V) bool {
	for _, arc := range r.problem.ArcsFrom(id) {
		if u, decided := r.store.Value(arc.To); decided && !arc.Accepts(v, u) {
			return false
		}
	}

	return true
}

// addAC3 folds one propagation result into the optional stats sink.
func addAC3(s *Stats, res ac3.Result) {
	if s == nil {
		return
	}
	s.Revisions += res.Revisions
	s.Pruned += res.Pruned
}
