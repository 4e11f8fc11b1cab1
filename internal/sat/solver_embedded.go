package sat

import (
	"context"
	"fmt"

	"github.com/crillab/gophersat/solver"
)

type embeddedSolver struct{}

// NewEmbeddedSolver returns a Solver backed by the in-process gophersat CDCL
// engine. No external binary is required.
func NewEmbeddedSolver() Solver {
	return &embeddedSolver{}
}

func (s *embeddedSolver) Check(ctx context.Context, formula *Formula) Result {
	clauses := make([][]int, 0, formula.NumClauses()+formula.NumVars())
	clauses = append(clauses, formula.Clauses()...)
	// Tautology clauses register every allocated variable with the engine, so
	// the model stays total even for variables no real clause mentions.
	for variable := 1; variable <= formula.NumVars(); variable++ {
		clauses = append(clauses, []int{variable, -variable})
	}

	type outcome struct {
		status Status
		model  []bool
	}
	done := make(chan outcome, 1)
	go func() {
		engine := solver.New(solver.ParseSlice(clauses))
		switch engine.Solve() {
		case solver.Sat:
			done <- outcome{status: Sat, model: engine.Model()}
		case solver.Unsat:
			done <- outcome{status: Unsat}
		default:
			done <- outcome{status: Unknown}
		}
	}()

	select {
	case <-ctx.Done():
		// gophersat's Solve cannot be interrupted; the goroutine is abandoned
		// and its eventual result discarded.
		return unknown(ctx.Err())
	case out := <-done:
		switch out.status {
		case Sat:
			assignment := make(Assignment, formula.NumVars())
			for i, value := range out.model {
				assignment[i+1] = value
			}
			return satisfiable(assignment)
		case Unsat:
			return unsatisfiable()
		default:
			return unknown(fmt.Errorf("embedded solver stopped without a verdict"))
		}
	}
}
