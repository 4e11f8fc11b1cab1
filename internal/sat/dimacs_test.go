package sat

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportDIMACSFormat(t *testing.T) {
	f := NewFormula()
	a, b, c := f.NewVar(), f.NewVar(), f.NewVar()
	f.Add(a, -b)
	f.Add(-a, b, c)
	f.Add(-c)

	text, vars := ExportDIMACS(f)

	assert.Equal(t, "p cnf 3 3\n1 -2 0\n-1 2 3 0\n-3 0\n", text)
	assert.Equal(t, 3, vars.Len())
}

// Variables that never reach a clause get no DIMACS identifier; identifiers
// follow first-seen clause order, not allocation order.
func TestExportDIMACSFirstSeenOrder(t *testing.T) {
	f := NewFormula()
	f.NewVar() // allocated but never used
	b, c := f.NewVar(), f.NewVar()
	f.Add(-c)
	f.Add(c, b)

	text, vars := ExportDIMACS(f)
	assert.True(t, strings.HasPrefix(text, "p cnf 2 2\n"))

	id, ok := vars.ID(c)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	id, ok = vars.ID(b)
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	_, ok = vars.ID(1)
	assert.False(t, ok)

	variable, ok := vars.Var(1)
	assert.True(t, ok)
	assert.Equal(t, c, variable)
	_, ok = vars.Var(3)
	assert.False(t, ok)
}

// A formula's own satisfying assignment must survive the export/import round
// trip unchanged on every original atom.
func TestModelRoundTrip(t *testing.T) {
	f := GenerateFormula(12, 30)
	result := NewEmbeddedSolver().Check(context.Background(), f)
	if result.Status != Sat {
		t.Skip("random instance happened to be unsatisfiable")
	}

	_, vars := ExportDIMACS(f)

	var builder strings.Builder
	builder.WriteString("c fabricated model\n")
	line := 0
	for id := 1; id <= vars.Len(); id++ {
		variable, _ := vars.Var(id)
		literal := id
		if !result.Assignment[variable] {
			literal = -id
		}
		if line == 0 {
			builder.WriteString("v")
		}
		builder.WriteString(" ")
		builder.WriteString(strconv.Itoa(literal))
		line++
		if line == 5 {
			builder.WriteString("\nv")
			line = 1
		}
	}
	builder.WriteString(" 0\n")

	parsed, err := ParseModel(builder.String(), vars)
	assert.Nil(t, err)
	for id := 1; id <= vars.Len(); id++ {
		variable, _ := vars.Var(id)
		assert.Equal(t, result.Assignment[variable], parsed[variable])
	}
}

func TestParseModelErrors(t *testing.T) {
	f := NewFormula()
	a, b := f.NewVar(), f.NewVar()
	f.Add(a, b)
	_, vars := ExportDIMACS(f)

	_, err := ParseModel("v 1 2 5 0\n", vars)
	assert.ErrorContains(t, err, "unknown DIMACS id")

	_, err = ParseModel("v 1 -1 2 0\n", vars)
	assert.ErrorContains(t, err, "duplicate DIMACS id")

	_, err = ParseModel("v 1 2\n", vars)
	assert.ErrorContains(t, err, "not terminated")

	_, err = ParseModel("v 1 x 0\n", vars)
	assert.ErrorContains(t, err, "invalid literal")
}
