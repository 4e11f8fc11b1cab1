package schedule

import (
	"context"

	"github.com/julianpajo/sts/internal/sat"
)

type optimum struct {
	assignment sat.Assignment
	bound      int
	found      bool
}

// minimizeImbalance binary-searches the smallest home/away imbalance bound
// that keeps the base formula satisfiable. Each probe pushes a scope, adds
// the bound constraint and pops it again, so the base clause set is built
// only once. The context carries the shared deadline; every probe runs on
// whatever budget remains.
//
// Unknown probes (timeout, external solver failure) move the lower bound up
// exactly like UNSAT ones. This is a conservative policy and may overestimate
// the true optimum.
func (e *encoder) minimizeImbalance(ctx context.Context, solver sat.Solver) (optimum, error) {
	best := optimum{bound: e.weeks}
	lower, upper := 1, e.weeks

	for lower <= upper && ctx.Err() == nil {
		mid := (lower + upper) / 2

		e.formula.Push()
		if err := e.boundImbalance(mid); err != nil {
			e.formula.Pop()
			return best, err
		}
		result := solver.Check(ctx, e.formula)
		e.formula.Pop()

		if result.Status == sat.Sat {
			best = optimum{assignment: result.Assignment, bound: mid, found: true}
			upper = mid - 1
			// Bound 1 is the smallest value this objective can take, so the
			// search can stop early.
			if mid == 1 {
				break
			}
		} else {
			lower = mid + 1
		}
	}

	return best, nil
}
