// Package csp defines the problem model for finite-domain constraint
// satisfaction: variables, value domains, the constraint graph of binary
// predicates, and the mutable domain Store used during search.
//
// What:
//
//   - Problem[V] collects variables (opaque string IDs), their initial value
//     domains, and directed constraint arcs, each carrying a pure binary
//     predicate. Built once, read-only during search.
//   - Store[V] owns the current candidate set of every variable. Values are
//     only ever removed during one search path; a trail (undo log) of
//     removals makes Snapshot O(1) and Restore proportional to the number of
//     removals being undone, not to total domain size.
//
// Why:
//
//   - One generic model covers N-Queens, Sudoku, map coloring and
//     cryptarithmetic — the same algorithm with different predicates.
//   - Construction-time validation turns malformed problem definitions into
//     immediate errors instead of silent search misbehavior.
//
// Complexity:
//
//   - AddVariable / AddConstraint: O(1) amortized.
//   - Store.Remove: O(|domain|) for the positional delete; Assign: O(|domain|).
//   - Snapshot: O(1). Restore: O(removals since the snapshot).
//
// Errors:
//
//   - ErrEmptyVariableID: a variable was declared with an empty ID.
//   - ErrDuplicateVariable: a variable ID was declared twice.
//   - ErrEmptyDomain: a variable was declared with no admissible values.
//   - ErrVariableNotFound: a constraint or query references an undeclared variable.
//   - ErrNilPredicate: a constraint was registered without a predicate.
//   - ErrSelfConstraint: a constraint pairs a variable with itself.
//   - ErrBadMark: Restore was given a mark that was never issued.
package csp
