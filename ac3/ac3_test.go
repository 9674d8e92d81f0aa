// Package ac3_test contains unit tests for the AC-3 propagator: input
// validation, wipeout detection, fixed-point pruning, idempotence, and
// soundness against brute-force enumeration on small instances.
package ac3_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/arcon/ac3"
	"github.com/katalvlaran/arcon/csp"
)

func neq(a, b string) bool { return a != b }

// buildPath declares A—B—C with ≠ constraints and the given domains.
func buildPath(t *testing.T, domA, domB, domC []string) *csp.Problem[string] {
	t.Helper()
	p := csp.NewProblem[string]()
	for id, dom := range map[string][]string{"A": domA, "B": domB, "C": domC} {
		if err := p.AddVariable(id, dom...); err != nil {
			t.Fatalf("AddVariable(%s): %v", id, err)
		}
	}
	if err := p.AddMutualConstraint("A", "B", neq); err != nil {
		t.Fatalf("AddMutualConstraint(A,B): %v", err)
	}
	if err := p.AddMutualConstraint("B", "C", neq); err != nil {
		t.Fatalf("AddMutualConstraint(B,C): %v", err)
	}

	return p
}

// ------------------------------------------------------------------------
// 1. Validation Tests: invalid inputs are rejected before propagation.
// ------------------------------------------------------------------------

func TestRun_NilProblem(t *testing.T) {
	if _, err := ac3.Run[int](nil, nil); !errors.Is(err, ac3.ErrNilProblem) {
		t.Fatalf("Expected ErrNilProblem, got %v", err)
	}
}

func TestRun_NilStore(t *testing.T) {
	p := csp.NewProblem[int]()
	if err := p.AddVariable("X", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := ac3.Run(p, nil); !errors.Is(err, ac3.ErrNilStore) {
		t.Fatalf("Expected ErrNilStore, got %v", err)
	}
}

func TestRun_StartNotFound(t *testing.T) {
	p := buildPath(t, []string{"r"}, []string{"r", "g"}, []string{"r", "g"})
	st := csp.NewStore(p)
	if _, err := ac3.Run(p, st, ac3.WithStart("ghost")); !errors.Is(err, ac3.ErrStartNotFound) {
		t.Fatalf("Expected ErrStartNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Propagation semantics: pruning, wipeout, fixed point.
// ------------------------------------------------------------------------

func TestRun_PrunesCascade(t *testing.T) {
	// A={r} forces B≠r, and the shrunken B={g} in turn forces C≠g.
	p := buildPath(t, []string{"r"}, []string{"r", "g"}, []string{"r", "g", "b"})
	st := csp.NewStore(p)

	res, err := ac3.Run(p, st)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, want := fmt.Sprint(st.Domain("B")), "[g]"; got != want {
		t.Errorf("domain of B = %s; want %s", got, want)
	}
	if got, want := fmt.Sprint(st.Domain("C")), "[r b]"; got != want {
		t.Errorf("domain of C = %s; want %s", got, want)
	}
	if res.Pruned != 2 {
		t.Errorf("Pruned = %d; want 2", res.Pruned)
	}
}

func TestRun_DomainWipeout(t *testing.T) {
	// Two singleton variables forced to differ but holding the same value.
	p := csp.NewProblem[int]()
	for _, id := range []string{"X", "Y"} {
		if err := p.AddVariable(id, 1); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.AddMutualConstraint("X", "Y", func(a, b int) bool { return a != b }); err != nil {
		t.Fatal(err)
	}

	st := csp.NewStore(p)
	if _, err := ac3.Run(p, st); !errors.Is(err, ac3.ErrDomainWipeout) {
		t.Fatalf("Expected ErrDomainWipeout, got %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	p := buildPath(t, []string{"r"}, []string{"r", "g"}, []string{"r", "g", "b"})
	st := csp.NewStore(p)

	if _, err := ac3.Run(p, st); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	snapshot := map[string]string{
		"A": fmt.Sprint(st.Domain("A")),
		"B": fmt.Sprint(st.Domain("B")),
		"C": fmt.Sprint(st.Domain("C")),
	}

	// The store is already arc-consistent: a second pass must prune nothing.
	res, err := ac3.Run(p, st)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if res.Pruned != 0 || res.Revisions != 0 {
		t.Errorf("second pass pruned: %+v; want zero work", res)
	}
	for id, want := range snapshot {
		if got := fmt.Sprint(st.Domain(id)); got != want {
			t.Errorf("domain of %s changed on second pass: %s -> %s", id, want, got)
		}
	}
}

func TestRun_IncrementalAfterAssignment(t *testing.T) {
	p := buildPath(t, []string{"r", "g"}, []string{"r", "g"}, []string{"r", "g", "b"})
	st := csp.NewStore(p)

	// Assign A and re-propagate only from A, as the search controller does.
	st.Assign("A", "r")
	if _, err := ac3.Run(p, st, ac3.WithStart("A")); err != nil {
		t.Fatalf("incremental Run failed: %v", err)
	}
	if got, want := fmt.Sprint(st.Domain("B")), "[g]"; got != want {
		t.Errorf("domain of B = %s; want %s", got, want)
	}
	// The cascade must reach C through B even with incremental seeding.
	if got, want := fmt.Sprint(st.Domain("C")), "[r b]"; got != want {
		t.Errorf("domain of C = %s; want %s", got, want)
	}
}

// ------------------------------------------------------------------------
// 3. Soundness: AC-3 never removes a value that appears in some solution.
// ------------------------------------------------------------------------

func TestRun_NeverPrunesSolutionValues(t *testing.T) {
	// Triangle graph, three colors: brute-force every assignment over the
	// initial domains and verify each surviving solution value also
	// survives propagation.
	colors := []string{"r", "g", "b"}
	p := csp.NewProblem[string]()
	ids := []string{"A", "B", "C"}
	for _, id := range ids {
		if err := p.AddVariable(id, colors...); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := p.AddMutualConstraint(ids[i], ids[j], neq); err != nil {
				t.Fatal(err)
			}
		}
	}

	st := csp.NewStore(p)
	if _, err := ac3.Run(p, st); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Brute force over the 27 candidate assignments.
	solutions := 0
	for _, a := range colors {
		for _, b := range colors {
			for _, c := range colors {
				if a == b || b == c || a == c {
					continue
				}
				solutions++
				for id, v := range map[string]string{"A": a, "B": b, "C": c} {
					if !st.Has(id, v) {
						t.Errorf("AC-3 over-pruned: %s=%s belongs to solution (%s,%s,%s)", id, v, a, b, c)
					}
				}
			}
		}
	}
	if solutions != 6 {
		t.Fatalf("brute force found %d solutions; want 6", solutions)
	}
}
