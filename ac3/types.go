// Package ac3 declares configuration options, the propagation result, and
// sentinel errors for the AC-3 propagator.
package ac3

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilProblem indicates a nil problem was passed to Run.
	ErrNilProblem = errors.New("ac3: problem is nil")

	// ErrNilStore indicates a nil store was passed to Run.
	ErrNilStore = errors.New("ac3: store is nil")

	// ErrStartNotFound indicates WithStart named an undeclared variable.
	ErrStartNotFound = errors.New("ac3: start variable not found in problem")

	// ErrDomainWipeout indicates a variable's domain became empty during
	// propagation: the current domains admit no solution. Callers unwind to
	// their previous snapshot; a top-level wipeout proves unsatisfiability.
	ErrDomainWipeout = errors.New("ac3: domain wiped out")
)

// Options configures one propagation pass.
//
// Start – if non-empty, seed the worklist with only the arcs into Start
// (the incremental re-queue after assigning Start). If empty (default),
// seed with every arc in the problem — the full pass run before search
// begins, matching the classic formulation.
type Options struct {
	Start string
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithStart seeds the worklist with only the arcs into id, for use
// immediately after the domain of id changed (typically by assignment).
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// DefaultOptions returns the zero configuration: full worklist seeding.
func DefaultOptions() Options { return Options{} }

// Result reports what one propagation pass did.
//
// Revisions counts arcs whose revision removed at least one value;
// Pruned counts individual values removed from the store.
type Result struct {
	Revisions int
	Pruned    int
}
