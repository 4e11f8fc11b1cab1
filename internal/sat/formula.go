package sat

import "fmt"

// A literal is a signed variable reference: v means "variable v is true" and
// -v means "variable v is false". Variables are allocated by a Formula and are
// always positive.

// Status of a single satisfiability check.
type Status int

const (
	Unknown Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Assignment is a total valuation of a formula's variables. It is produced
// only on a Sat result and is owned by the caller that requested the check.
type Assignment map[int]bool

// Result carries the outcome of one Check call. Reason is set only when
// Status is Unknown (timeout, cancellation or external solver failure).
type Result struct {
	Status     Status
	Assignment Assignment
	Reason     error
}

func satisfiable(assignment Assignment) Result {
	return Result{Status: Sat, Assignment: assignment}
}

func unsatisfiable() Result {
	return Result{Status: Unsat}
}

func unknown(reason error) Result {
	return Result{Status: Unknown, Reason: reason}
}

// Formula accumulates clauses over variables it allocates itself. Mutation is
// append-mostly: Push records a checkpoint and Pop discards every clause and
// variable added since the matching Push.
type Formula struct {
	numVars int
	clauses [][]int
	marks   []mark
}

type mark struct {
	vars    int
	clauses int
}

func NewFormula() *Formula {
	return &Formula{}
}

// NewVar allocates a fresh variable and returns its positive identifier.
func (f *Formula) NewVar() int {
	f.numVars++
	return f.numVars
}

func (f *Formula) NumVars() int {
	return f.numVars
}

func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// Clauses exposes the accumulated clause set. The returned slice must not be
// mutated by callers.
func (f *Formula) Clauses() [][]int {
	return f.clauses
}

// Add appends a clause. Referencing an unallocated variable is an encoder bug
// and panics.
func (f *Formula) Add(clause ...int) {
	for _, literal := range clause {
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if variable == 0 || variable > f.numVars {
			panic(fmt.Sprintf("clause references unallocated variable %d", literal))
		}
	}
	f.clauses = append(f.clauses, clause)
}

// Push records a restore point for Pop.
func (f *Formula) Push() {
	f.marks = append(f.marks, mark{vars: f.numVars, clauses: len(f.clauses)})
}

// Pop discards every clause and variable added since the matching Push.
func (f *Formula) Pop() {
	if len(f.marks) == 0 {
		panic("pop without matching push")
	}
	m := f.marks[len(f.marks)-1]
	f.marks = f.marks[:len(f.marks)-1]
	f.numVars = m.vars
	f.clauses = f.clauses[:m.clauses]
}
