package sat

import "context"

// Solver checks the satisfiability of a formula's current clause set.
// Implementations must honor the context deadline, reporting Unknown once it
// expires, and never modify the formula.
type Solver interface {
	Check(ctx context.Context, formula *Formula) Result
}
