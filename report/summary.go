package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/antcolony/convergence"
)

// WriteSummary prints the convergence overview: first and last cost, total
// improvement, about ten sampled iterations and where the best was reached.
// An empty history prints nothing.
func WriteSummary(w io.Writer, h convergence.History) error {
	if h.Len() == 0 {
		return nil
	}
	s := h.Summarize()

	var b strings.Builder
	b.WriteString("--- Convergence ---\n")
	fmt.Fprintf(&b, "Initial cost: %.6f\n", s.Initial)
	fmt.Fprintf(&b, "Final cost:   %.6f\n", s.Final)
	fmt.Fprintf(&b, "Improvement:  %.6f\n", s.Improvement)
	for _, p := range s.Samples {
		fmt.Fprintf(&b, "Iteration %3d: %.6f\n", p.Iteration, p.Value)
	}
	fmt.Fprintf(&b, "\nBest cost reached at iteration %d: %.6f\n", s.BestIteration, s.BestValue)

	_, err := io.WriteString(w, b.String())
	return err
}
