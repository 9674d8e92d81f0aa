// Package csp implements the Problem builder: variable declaration, domain
// definition, and registration of binary constraints as directed arcs.
//
// A Problem is built once by the caller's modeling code and is read-only for
// the lifetime of any search over it. All validation happens here, at
// construction time: the propagator and the search controller may assume a
// well-formed constraint graph.
package csp

import (
	"fmt"
	"sort"
)

// Problem holds the immutable definition of one finite-domain CSP:
// the declared variables, their initial domains, and the constraint graph.
// V is the value type; it only needs equality.
//
// Problem is not safe for concurrent mutation; build it fully before
// handing it to a solver. Reads are safe to share across goroutines.
type Problem[V comparable] struct {
	ids       []string            // declaration order
	domains   map[string][]V      // initial domain per variable (deduplicated)
	out       map[string][]Arc[V] // arcs leaving each variable
	in        map[string][]Arc[V] // arcs entering each variable
	neighbors map[string][]string // distinct out-neighbors, first-seen order
	seen      map[string]map[string]bool
	arcCount  int
}

// NewProblem returns an empty problem definition for value type V.
func NewProblem[V comparable]() *Problem[V] {
	return &Problem[V]{
		domains:   make(map[string][]V),
		out:       make(map[string][]Arc[V]),
		in:        make(map[string][]Arc[V]),
		neighbors: make(map[string][]string),
		seen:      make(map[string]map[string]bool),
	}
}

// AddVariable declares a variable and its initial domain.
// Duplicate values in the domain are dropped, keeping first occurrence order.
// Returns ErrEmptyVariableID, ErrDuplicateVariable, or ErrEmptyDomain.
func (p *Problem[V]) AddVariable(id string, domain ...V) error {
	if id == "" {
		return ErrEmptyVariableID
	}
	if _, exists := p.domains[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, id)
	}
	if len(domain) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyDomain, id)
	}

	// Deduplicate while preserving the caller's ordering; a domain is a set.
	dedup := make([]V, 0, len(domain))
	present := make(map[V]bool, len(domain))
	for _, v := range domain {
		if present[v] {
			continue
		}
		present[v] = true
		dedup = append(dedup, v)
	}

	p.ids = append(p.ids, id)
	p.domains[id] = dedup

	return nil
}

// AddConstraint registers the directed arc (from → to) with the given
// predicate. The predicate receives a candidate value of `from` first.
// Both endpoints must already be declared.
// Returns ErrVariableNotFound, ErrNilPredicate, or ErrSelfConstraint.
func (p *Problem[V]) AddConstraint(from, to string, accepts Predicate[V]) error {
	if _, ok := p.domains[from]; !ok {
		return fmt.Errorf("%w: %q", ErrVariableNotFound, from)
	}
	if _, ok := p.domains[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVariableNotFound, to)
	}
	if accepts == nil {
		return fmt.Errorf("%w: arc %s→%s", ErrNilPredicate, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfConstraint, from)
	}

	arc := Arc[V]{From: from, To: to, Accepts: accepts}
	p.out[from] = append(p.out[from], arc)
	p.in[to] = append(p.in[to], arc)
	p.arcCount++

	// Track distinct out-neighbors for the degree heuristic.
	if p.seen[from] == nil {
		p.seen[from] = make(map[string]bool)
	}
	if !p.seen[from][to] {
		p.seen[from][to] = true
		p.neighbors[from] = append(p.neighbors[from], to)
	}

	return nil
}

// AddMutualConstraint registers the arc (a → b) with the given predicate and
// the reverse arc (b → a) with the argument order swapped, so both directions
// enforce the same relation. Use this for symmetric intent (≠, no-attack, …),
// which is how every arc in the classic puzzles is registered.
func (p *Problem[V]) AddMutualConstraint(a, b string, accepts Predicate[V]) error {
	if err := p.AddConstraint(a, b, accepts); err != nil {
		return err
	}

	return p.AddConstraint(b, a, func(vb, va V) bool { return accepts(va, vb) })
}

// Variables returns all declared variable IDs in ascending lexicographic
// order. The slice is a copy; callers may keep or modify it.
func (p *Problem[V]) Variables() []string {
	ids := make([]string, len(p.ids))
	copy(ids, p.ids)
	sort.Strings(ids)

	return ids
}

// HasVariable reports whether id was declared.
func (p *Problem[V]) HasVariable(id string) bool {
	_, ok := p.domains[id]

	return ok
}

// Domain returns the initial domain of id, or nil if id was not declared.
// The returned slice is shared; callers must not modify it.
func (p *Problem[V]) Domain(id string) []V { return p.domains[id] }

// ArcsFrom returns the arcs leaving id in registration order.
// The returned slice is shared; callers must not modify it.
func (p *Problem[V]) ArcsFrom(id string) []Arc[V] { return p.out[id] }

// ArcsInto returns the arcs entering id in registration order.
// The returned slice is shared; callers must not modify it.
func (p *Problem[V]) ArcsInto(id string) []Arc[V] { return p.in[id] }

// Neighbors returns the distinct out-neighbors of id in first-registration
// order. The returned slice is shared; callers must not modify it.
func (p *Problem[V]) Neighbors(id string) []string { return p.neighbors[id] }

// Degree returns the number of distinct variables id is constrained against.
func (p *Problem[V]) Degree(id string) int { return len(p.neighbors[id]) }

// NumVariables returns the number of declared variables.
func (p *Problem[V]) NumVariables() int { return len(p.ids) }

// NumArcs returns the number of registered directed arcs.
func (p *Problem[V]) NumArcs() int { return p.arcCount }

// Arcs returns every registered arc in deterministic order: variables in
// lexicographic order, each variable's outgoing arcs in registration order.
// Used to seed a full propagation pass.
func (p *Problem[V]) Arcs() []Arc[V] {
	arcs := make([]Arc[V], 0, p.arcCount)
	for _, id := range p.Variables() {
		arcs = append(arcs, p.out[id]...)
	}

	return arcs
}
