// Package ac3_test provides examples demonstrating arc-consistency
// propagation, full and incremental.
package ac3_test

import (
	"fmt"

	"github.com/katalvlaran/arcon/ac3"
	"github.com/katalvlaran/arcon/csp"
)

// ExampleRun demonstrates a full propagation pass pruning a chain of
// ≠ constraints.
func ExampleRun() {
	// 1) Three regions in a path, A fixed to red.
	p := csp.NewProblem[string]()
	_ = p.AddVariable("A", "red")
	_ = p.AddVariable("B", "red", "green")
	_ = p.AddVariable("C", "red", "green", "blue")
	_ = p.AddMutualConstraint("A", "B", func(a, b string) bool { return a != b })
	_ = p.AddMutualConstraint("B", "C", func(a, b string) bool { return a != b })

	// 2) Propagate to the fixed point.
	st := csp.NewStore(p)
	res, err := ac3.Run(p, st)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) B lost red to A, then C lost green to the shrunken B.
	fmt.Println("B:", st.Domain("B"))
	fmt.Println("C:", st.Domain("C"))
	fmt.Println("pruned:", res.Pruned)
	// Output:
	// B: [green]
	// C: [red blue]
	// pruned: 2
}

// ExampleWithStart demonstrates the incremental re-queue used after a
// single trial assignment.
func ExampleWithStart() {
	p := csp.NewProblem[int]()
	_ = p.AddVariable("X", 1, 2)
	_ = p.AddVariable("Y", 1, 2)
	_ = p.AddMutualConstraint("X", "Y", func(a, b int) bool { return a != b })

	st := csp.NewStore(p)

	// Commit X=1, then propagate only from X's neighborhood.
	st.Assign("X", 1)
	if _, err := ac3.Run(p, st, ac3.WithStart("X")); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Y:", st.Domain("Y"))
	// Output:
	// Y: [2]
}
