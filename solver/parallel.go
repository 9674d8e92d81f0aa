// Package solver implements the parallel first-solution mode: the root
// variable's candidate values are split across workers, each searching its
// own cloned store; the first complete solution cancels the rest.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arcon/ac3"
	"github.com/katalvlaran/arcon/csp"
)

// errFirstSolution is an internal signal used to cancel the worker group
// once any branch solved; it never escapes SolveParallel.
var errFirstSolution = errors.New("solver: first solution found")

// SolveParallel searches p like Solve, but fans the root branching out
// across at most `workers` goroutines (workers < 1 means GOMAXPROCS).
// Which of several solutions is returned depends on goroutine scheduling;
// the result is always sound, just not reproducible. Stats are not
// collected in this mode.
//
// Returns ErrUnsatisfiable when every branch exhausts, ErrCanceled when
// Options.Ctx ends the race, and the first branch error otherwise.
func SolveParallel[V comparable](p *csp.Problem[V], workers int, opts ...Option[V]) (Assignment[V], error) {
	// 1) Build options; parallel workers never share a stats sink.
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Stats = nil

	if p == nil {
		return nil, ErrNilProblem
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 2) Shared root work: build the store and run the initial full pass once.
	st := csp.NewStore(p)
	if _, err := ac3.Run(p, st); err != nil {
		if errors.Is(err, ac3.ErrDomainWipeout) {
			return nil, fmt.Errorf("%w: initial propagation: %v", ErrUnsatisfiable, err)
		}

		return nil, err
	}

	// 3) Pick the split variable with the same MRV policy the sequential
	//    search would use. No split variable means propagation alone
	//    decided everything.
	root := &runner[V]{problem: p, store: st, opts: cfg}
	split := root.selectVariable()
	if split == "" {
		solved, err := root.emitSolution()
		if err != nil {
			return nil, err
		}
		if !solved {
			return nil, ErrUnsatisfiable
		}

		return root.solution, nil
	}

	// 4) Race one branch per candidate value, bounded by the worker limit.
	ctx := cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu       sync.Mutex
		solution Assignment[V]
	)

	for _, v := range root.orderValues(split) {
		v := v
		branch := st.Clone()
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // raced out before starting
			}

			// 4a) Commit this branch's root value and propagate.
			branch.Assign(split, v)
			if _, err := ac3.Run(p, branch, ac3.WithStart(split)); err != nil {
				if errors.Is(err, ac3.ErrDomainWipeout) {
					return nil // dead branch, not an error
				}

				return err
			}

			// 4b) Sequential search within the branch, honoring the group
			//     context so losers stop as soon as a winner emerges.
			bcfg := cfg
			bcfg.Ctx = gctx
			r := &runner[V]{problem: p, store: branch, opts: bcfg}
			solved, err := r.search()
			if err != nil {
				if errors.Is(err, ErrCanceled) {
					return nil // lost the race
				}

				return err
			}
			if !solved {
				return nil
			}

			mu.Lock()
			if solution == nil {
				solution = r.solution
			}
			mu.Unlock()

			return errFirstSolution // cancels gctx, stopping the siblings
		})
	}

	// 5) Settle the race.
	err := g.Wait()
	if solution != nil {
		return solution, nil
	}
	if err != nil && !errors.Is(err, errFirstSolution) {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
	}

	return nil, ErrUnsatisfiable
}
