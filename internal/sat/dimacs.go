package sat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// VarMap is the bijection between formula variables and DIMACS identifiers
// for a single export cycle. Identifiers are assigned in first-seen clause
// order, so they are only meaningful for the clause set they were built from.
type VarMap struct {
	toID  map[int]int
	toVar []int
}

// ID returns the DIMACS identifier of a formula variable.
func (m *VarMap) ID(variable int) (int, bool) {
	id, ok := m.toID[variable]
	return id, ok
}

// Var returns the formula variable behind a DIMACS identifier.
func (m *VarMap) Var(id int) (int, bool) {
	if id < 1 || id > len(m.toVar) {
		return 0, false
	}
	return m.toVar[id-1], true
}

// Len returns the number of mapped variables.
func (m *VarMap) Len() int {
	return len(m.toVar)
}

// ExportDIMACS renders the formula's current clause set in the DIMACS CNF
// interchange format and returns the variable mapping used to do so. Only
// variables that actually appear in a clause receive an identifier.
func ExportDIMACS(f *Formula) (string, *VarMap) {
	vars := &VarMap{toID: make(map[int]int, f.NumVars())}
	for _, clause := range f.Clauses() {
		for _, literal := range clause {
			variable := abs(literal)
			if _, seen := vars.toID[variable]; !seen {
				vars.toVar = append(vars.toVar, variable)
				vars.toID[variable] = len(vars.toVar)
			}
		}
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", vars.Len(), f.NumClauses())
	for _, clause := range f.Clauses() {
		for _, literal := range clause {
			id := vars.toID[abs(literal)]
			if literal < 0 {
				id = -id
			}
			fmt.Fprintf(&builder, "%d ", id)
		}
		builder.WriteString("0\n")
	}
	return builder.String(), vars
}

// ParseModel reads the "v" value lines of an external solver's output and
// maps the signed DIMACS literals back onto formula variables. The model may
// span several lines and is terminated by a literal 0. Unknown and duplicate
// identifiers are errors, not silent overwrites.
func ParseModel(output string, vars *VarMap) (Assignment, error) {
	tokens := lo.FlatMap(
		lo.Filter(strings.Split(output, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(line string, _ int) []string {
			return strings.Fields(line[1:])
		},
	)

	assignment := make(Assignment, vars.Len())
	for _, token := range tokens {
		literal, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q in solver model: %v", token, err)
		}
		if literal == 0 {
			return assignment, nil
		}
		variable, ok := vars.Var(abs(literal))
		if !ok {
			return nil, fmt.Errorf("unknown DIMACS id %d in solver model", abs(literal))
		}
		if _, dup := assignment[variable]; dup {
			return nil, fmt.Errorf("duplicate DIMACS id %d in solver model", abs(literal))
		}
		assignment[variable] = literal > 0
	}
	return nil, fmt.Errorf("solver model is not terminated by 0")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
