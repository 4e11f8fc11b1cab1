package sat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVarIsSequential(t *testing.T) {
	f := NewFormula()
	for expected := 1; expected <= 10; expected++ {
		assert.Equal(t, expected, f.NewVar())
	}
	assert.Equal(t, 10, f.NumVars())
}

func TestAddRejectsUnallocatedVariable(t *testing.T) {
	f := NewFormula()
	f.NewVar()

	assert.Panics(t, func() { f.Add(2) })
	assert.Panics(t, func() { f.Add(-2) })
	assert.Panics(t, func() { f.Add(0) })
}

func TestPushPopRestoresCounts(t *testing.T) {
	f := NewFormula()
	a, b := f.NewVar(), f.NewVar()
	f.Add(a, b)

	f.Push()
	c := f.NewVar()
	f.Add(c)
	f.Add(-a, -c)
	assert.Equal(t, 3, f.NumVars())
	assert.Equal(t, 3, f.NumClauses())

	f.Pop()
	assert.Equal(t, 2, f.NumVars())
	assert.Equal(t, 1, f.NumClauses())
}

func TestPopWithoutPushPanics(t *testing.T) {
	assert.Panics(t, func() { NewFormula().Pop() })
}

// Pushing a contradiction and popping it again must leave the formula's
// satisfiability untouched.
func TestPushPopPreservesSatisfiability(t *testing.T) {
	solver := NewEmbeddedSolver()
	f := NewFormula()
	a, b := f.NewVar(), f.NewVar()
	f.Add(a, b)

	assert.Equal(t, Sat, solver.Check(context.Background(), f).Status)

	f.Push()
	f.Add(-a)
	f.Add(-b)
	assert.Equal(t, Unsat, solver.Check(context.Background(), f).Status)
	f.Pop()

	assert.Equal(t, Sat, solver.Check(context.Background(), f).Status)
}

func TestNestedPushPop(t *testing.T) {
	f := NewFormula()
	a := f.NewVar()
	f.Add(a)

	f.Push()
	f.Add(-a)
	f.Push()
	f.NewVar()
	f.Pop()
	assert.Equal(t, 1, f.NumVars())
	assert.Equal(t, 2, f.NumClauses())
	f.Pop()
	assert.Equal(t, 1, f.NumClauses())
}
