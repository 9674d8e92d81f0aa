// Package csp declares the core types and sentinel errors shared by the
// problem builder (problem.go) and the domain store (store.go).
package csp

import "errors"

// Sentinel errors for problem construction and store operations.
var (
	// ErrEmptyVariableID indicates a variable was declared with an empty ID.
	ErrEmptyVariableID = errors.New("csp: variable ID is empty")

	// ErrDuplicateVariable indicates the same variable ID was declared twice.
	ErrDuplicateVariable = errors.New("csp: variable already declared")

	// ErrEmptyDomain indicates a variable was declared with an empty domain.
	// An empty initial domain makes the problem trivially unsatisfiable and is
	// treated as a caller programming error, fatal at construction time.
	ErrEmptyDomain = errors.New("csp: initial domain is empty")

	// ErrVariableNotFound indicates an operation referenced an undeclared variable.
	ErrVariableNotFound = errors.New("csp: variable not found")

	// ErrNilPredicate indicates a constraint was registered with a nil predicate.
	ErrNilPredicate = errors.New("csp: constraint predicate is nil")

	// ErrSelfConstraint indicates a constraint pairs a variable with itself.
	// Unary restrictions belong in the initial domain, not in the arc set.
	ErrSelfConstraint = errors.New("csp: constraint endpoints must differ")

	// ErrBadMark indicates Restore was given a mark beyond the current trail.
	ErrBadMark = errors.New("csp: snapshot mark out of range")
)

// Predicate is a pure binary constraint over an ordered pair of values.
// For an arc (Xi, Xj) the predicate receives a candidate value of Xi first
// and a candidate value of Xj second. It must be total and side-effect free:
// the same pair of values always yields the same answer.
type Predicate[V comparable] func(vi, vj V) bool

// Arc is one directed constraint edge From→To with its predicate.
// AC-3 revises the domain of From against the domain of To.
type Arc[V comparable] struct {
	// From is the variable whose domain this arc restricts.
	From string

	// To is the variable supplying support values.
	To string

	// Accepts reports whether the ordered value pair (from, to) is permitted.
	Accepts Predicate[V]
}

// Mark identifies a point in a Store's undo trail. Obtained from
// Store.Snapshot and consumed by Store.Restore; owned by the search frame
// that created it and invalid once restored past.
type Mark int
