// Package solver drives backtracking search over a csp.Problem: it selects
// variables and value orders heuristically, interleaves every trial
// assignment with incremental AC-3 propagation, and unwinds through store
// snapshots on dead ends.
//
// What:
//
//   - Solve returns the first complete consistent assignment, or
//     ErrUnsatisfiable once every branch is exhausted.
//   - SolveAll streams every solution to a yield callback (return false to
//     stop early), for puzzles with more than one valid answer.
//   - SolveParallel splits the root variable's values across goroutines,
//     each searching a cloned store; the first complete solution wins.
//
// Heuristics:
//
//   - Variable selection: Minimum-Remaining-Values over the live domains,
//     ties broken by the degree heuristic (most constraints against other
//     undecided variables), remaining ties by ascending variable ID. The
//     final lexicographic tie-break is a deliberate, documented policy: it
//     makes runs reproducible where a bare min() would not be.
//   - Value ordering: live domain order by default, optionally pre-sorted
//     with WithValueLess, optionally Least-Constraining-Value
//     (WithLCV) — a stable sort by how many neighbor values each
//     candidate would rule out.
//
// Complexity:
//
//   - Worst case exponential in the number of variables (the puzzles are
//     NP-hard); WithStepBudget and WithContext bound pathological runs with
//     a definite error instead of unbounded recursion.
//   - Recursion depth is bounded by the variable count.
//
// Options:
//
//   - WithContext(ctx): cancellation checked once per search node.
//   - WithStepBudget(n): cap on trial assignments; ErrBudgetExhausted beyond.
//   - WithLCV(): enable least-constraining-value ordering.
//   - WithValueLess(less): deterministic base order for values.
//   - WithCheck(fn): full-assignment predicate evaluated at leaves — an
//     escape hatch for conditions binary arcs cannot express (e.g. the
//     SEND+MORE=MONEY column sum).
//   - WithStats(s): collect node/backtrack/pruning counters.
//
// Errors:
//
//   - ErrNilProblem / ErrNilYield: missing inputs.
//   - ErrUnsatisfiable: definite "no solution exists" result.
//   - ErrBudgetExhausted: step budget hit before an answer either way.
//   - ErrCanceled: the context ended the search.
package solver
