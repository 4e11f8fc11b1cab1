package sat

import "math/rand"

// GenerateFormula builds a random formula over the given number of variables.
func GenerateFormula(variables, clauses int) *Formula {
	f := NewFormula()
	for i := 0; i < variables; i++ {
		f.NewVar()
	}

	for i := 0; i < clauses; i++ {
		clause := make([]int, 0, variables)
		for variable := 1; variable <= variables; variable++ {
			if rand.Float32() < 0.5 {
				sign := 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				clause = append(clause, sign*variable)
			}
		}

		if len(clause) == 0 {
			sign := 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			clause = append(clause, sign*(1+rand.Intn(variables)))
		}
		f.Add(clause...)
	}

	return f
}

// Satisfies reports whether the assignment makes every clause of the formula
// true. Unassigned variables count as a failure.
func Satisfies(f *Formula, assignment Assignment) bool {
	for _, clause := range f.Clauses() {
		satisfied := false
		for _, literal := range clause {
			value, ok := assignment[abs(literal)]
			if !ok {
				return false
			}
			if value == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
