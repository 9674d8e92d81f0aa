// Package solver declares the assignment and options types, search
// statistics, and sentinel errors for the backtracking controller.
package solver

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve, SolveAll and SolveParallel.
var (
	// ErrNilProblem indicates a nil problem was passed to a solve entry point.
	ErrNilProblem = errors.New("solver: problem is nil")

	// ErrNilYield indicates SolveAll was called without a yield callback.
	ErrNilYield = errors.New("solver: yield callback is nil")

	// ErrUnsatisfiable indicates the search exhausted every branch: the
	// problem has no solution under its declared domains. This is a definite
	// result, not a fault.
	ErrUnsatisfiable = errors.New("solver: problem is unsatisfiable")

	// ErrBudgetExhausted indicates the step budget ran out before the search
	// could conclude either way.
	ErrBudgetExhausted = errors.New("solver: step budget exhausted")

	// ErrCanceled indicates the context was canceled mid-search.
	ErrCanceled = errors.New("solver: search canceled")

	// ErrBadBudget indicates WithStepBudget was given a negative value.
	ErrBadBudget = errors.New("solver: step budget must be non-negative")
)

// Assignment maps each variable ID to its single committed value.
// A returned Assignment is always complete and consistent with every
// registered constraint.
type Assignment[V comparable] map[string]V

// Stats collects counters for one solve. Pass via WithStats; the solver
// adds to the fields it is given, so a caller may aggregate across runs.
//
// Not collected in parallel mode.
type Stats struct {
	// Nodes counts trial assignments (search tree nodes expanded).
	Nodes int

	// Backtracks counts snapshot restorations after failed trials.
	Backtracks int

	// Revisions counts AC-3 arc revisions that pruned at least one value.
	Revisions int

	// Pruned counts individual domain values removed by AC-3.
	Pruned int
}

// Options configures the behavior of the search controller.
//
// Ctx        – context checked once per node; nil means never canceled.
// UseLCV     – order candidate values by least-constraining-value.
// Less       – optional strict ordering for the base value order.
// Check      – optional full-assignment predicate evaluated at leaves.
// StepBudget – maximum trial assignments; 0 (default) means unlimited.
// Stats      – optional counter sink.
type Options[V comparable] struct {
	Ctx        context.Context
	UseLCV     bool
	Less       func(a, b V) bool
	Check      func(Assignment[V]) bool
	StepBudget int
	Stats      *Stats
}

// Option represents a functional option for configuring a solve.
type Option[V comparable] func(*Options[V])

// WithContext sets a context whose cancellation aborts the search with
// ErrCanceled. Checked once per search node.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) { o.Ctx = ctx }
}

// WithLCV enables least-constraining-value ordering: candidate values are
// stably sorted by how many options they would rule out in the domains of
// undecided neighbors, fewest first.
func WithLCV[V comparable]() Option[V] {
	return func(o *Options[V]) { o.UseLCV = true }
}

// WithValueLess sets a strict ordering used to sort each candidate list
// before (optional) LCV scoring, making value order independent of domain
// declaration order.
func WithValueLess[V comparable](less func(a, b V) bool) Option[V] {
	return func(o *Options[V]) { o.Less = less }
}

// WithCheck sets a predicate evaluated on every complete assignment; leaves
// failing it are treated as dead ends and search continues. The predicate
// must be pure. Use it for conditions a binary arc cannot express.
func WithCheck[V comparable](check func(Assignment[V]) bool) Option[V] {
	return func(o *Options[V]) { o.Check = check }
}

// WithStepBudget caps the number of trial assignments. Exceeding the cap
// surfaces ErrBudgetExhausted. Must pass a non-negative value; negative
// values cause an immediate panic, as with invalid options elsewhere.
func WithStepBudget[V comparable](n int) Option[V] {
	return func(o *Options[V]) {
		if n < 0 {
			panic(ErrBadBudget.Error())
		}
		o.StepBudget = n
	}
}

// WithStats directs per-solve counters into s.
func WithStats[V comparable](s *Stats) Option[V] {
	return func(o *Options[V]) { o.Stats = s }
}

// DefaultOptions returns an Options struct with defaults: no cancellation,
// domain-order values, no LCV, no leaf check, unlimited budget, no stats.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{}
}
