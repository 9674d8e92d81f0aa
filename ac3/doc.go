// Package ac3 enforces arc consistency over a csp.Problem and csp.Store
// using the AC-3 worklist algorithm.
//
// What:
//
//   - Run drains a worklist of directed arcs, revising the tail variable's
//     domain against the head variable's domain: any value with no
//     supporting value in the neighbor is removed from the store.
//   - A shrunken domain re-enqueues every arc into the shrunken variable
//     (except the one from the arc's own head), because lost values may
//     invalidate support that previously satisfied those arcs.
//   - An emptied domain aborts propagation with ErrDomainWipeout: the
//     current domains admit no solution. Otherwise the loop terminates with
//     every arc consistent — a second Run prunes nothing.
//
// Why:
//
//   - Arc consistency is necessary, not sufficient: it prunes the search
//     space cheaply but backtracking is still required on the puzzles this
//     engine targets. Run is therefore designed to be re-invoked after each
//     trial assignment, seeded incrementally via WithStart.
//
// Complexity:
//
//   - Time: O(e·d³) where e = number of arcs, d = max domain size
//     (each arc re-enters the worklist at most d times, each revision
//     scans up to d×d value pairs).
//   - Space: O(e·d) worst case for the worklist.
//
// Options:
//
//   - WithStart(id): seed only the arcs into id — the incremental re-queue
//     used after assigning id. Default seeds every arc in the problem.
//
// Errors:
//
//   - ErrNilProblem / ErrNilStore: missing inputs.
//   - ErrStartNotFound: WithStart names an undeclared variable.
//   - ErrDomainWipeout: a domain emptied; unsatisfiable under current domains.
package ac3
