// Package solver implements the variable and value ordering policies:
// Minimum-Remaining-Values with a degree tie-break for variable selection,
// and optional Least-Constraining-Value scoring for value order.
package solver

import "sort"

// selectVariable picks the next variable to branch on, or "" when every
// domain is already a singleton (the assignment is complete).
//
// Policy, in order:
//  1. MRV: smallest live domain among variables with more than one value.
//  2. Degree: most distinct constraints against other undecided variables.
//  3. Ascending variable ID — the deterministic final tie-break.
//
// Iterating Problem.Variables (sorted) makes rule 3 fall out of "first
// candidate wins strictly": later candidates must be strictly better.
func (r *runner[V]) selectVariable() string {
	best := ""
	bestSize := 0
	bestDegree := 0

	for _, id := range r.problem.Variables() {
		size := r.store.Size(id)
		if size <= 1 {
			continue // decided (or wiped out, which the caller already caught)
		}
		if best == "" {
			best, bestSize, bestDegree = id, size, r.liveDegree(id)

			continue
		}
		if size > bestSize {
			continue
		}
		if size == bestSize {
			// Equal MRV score: the degree heuristic must be strictly better.
			if degree := r.liveDegree(id); degree > bestDegree {
				best, bestSize, bestDegree = id, size, degree
			}

			continue
		}
		best, bestSize, bestDegree = id, size, r.liveDegree(id)
	}

	return best
}

// liveDegree counts the distinct neighbors of id that are still undecided.
func (r *runner[V]) liveDegree(id string) int {
	degree := 0
	for _, neighbor := range r.problem.Neighbors(id) {
		if r.store.Size(neighbor) > 1 {
			degree++
		}
	}

	return degree
}

// orderValues returns the candidate values of id in trial order:
// a copy of the live domain, base-sorted with Options.Less when provided,
// then stably re-sorted by LCV score when Options.UseLCV is set.
func (r *runner[V]) orderValues(id string) []V {
	dom := r.store.Domain(id)
	values := append(make([]V, 0, len(dom)), dom...)

	if r.opts.Less != nil {
		sort.SliceStable(values, func(i, j int) bool { return r.opts.Less(values[i], values[j]) })
	}
	if !r.opts.UseLCV {
		return values
	}

	// LCV: fewest neighbor options ruled out first. Stable sort keeps the
	// base order on equal scores, so the result stays deterministic.
	scores := make([]int, len(values))
	for i, v := range values {
		scores[i] = r.lcvScore(id, v)
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] < scores[order[j]] })

	ranked := make([]V, len(values))
	for i, idx := range order {
		ranked[i] = values[idx]
	}

	return ranked
}

// lcvScore counts how many values in the live domains of undecided
// neighbors are incompatible with assigning v to id.
func (r *runner[V]) lcvScore(id string, v V) int {
	score := 0
	for _, arc := range r.problem.ArcsFrom(id) {
		if r.store.Size(arc.To) <= 1 {
			continue // decided neighbors cannot lose options
		}
		for _, u := range r.store.Domain(arc.To) {
			if !arc.Accepts(v, u) {
				score++
			}
		}
	}

	return score
}
