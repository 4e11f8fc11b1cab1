package sat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertCardinality enumerates every assignment of n fresh literals and
// checks that the encoded constraint is satisfiable exactly when the true
// count meets the expected relation.
func assertCardinality(t *testing.T, n int, encode func(f *Formula, literals []int) error, holds func(trueCount int) bool) {
	t.Helper()
	solver := NewEmbeddedSolver()

	f := NewFormula()
	literals := make([]int, n)
	for i := range literals {
		literals[i] = f.NewVar()
	}
	assert.Nil(t, encode(f, literals))

	for mask := 0; mask < 1<<n; mask++ {
		f.Push()
		trueCount := 0
		for i, literal := range literals {
			if mask&(1<<i) != 0 {
				f.Add(literal)
				trueCount++
			} else {
				f.Add(-literal)
			}
		}
		result := solver.Check(context.Background(), f)
		f.Pop()

		expected := Unsat
		if holds(trueCount) {
			expected = Sat
		}
		assert.Equal(t, expected, result.Status, "n=%v mask=%b", n, mask)
	}
}

func TestExactlyOne(t *testing.T) {
	for n := 1; n <= 5; n++ {
		assertCardinality(t, n,
			func(f *Formula, literals []int) error { return ExactlyOne(f, literals) },
			func(trueCount int) bool { return trueCount == 1 },
		)
	}
}

func TestAtMostOne(t *testing.T) {
	assertCardinality(t, 5,
		func(f *Formula, literals []int) error {
			AtMostOne(f, literals)
			return nil
		},
		func(trueCount int) bool { return trueCount <= 1 },
	)
}

// Five literals stay below the combinatorial limit.
func TestAtMostKCombinatorial(t *testing.T) {
	for k := 2; k <= 4; k++ {
		assertCardinality(t, 5,
			func(f *Formula, literals []int) error { return AtMostK(f, literals, k) },
			func(trueCount int) bool { return trueCount <= k },
		)
	}
}

// Eight literals force the sequential-counter encoding.
func TestAtMostKSequentialCounter(t *testing.T) {
	for k := 2; k <= 4; k++ {
		assertCardinality(t, 8,
			func(f *Formula, literals []int) error { return AtMostK(f, literals, k) },
			func(trueCount int) bool { return trueCount <= k },
		)
	}
}

func TestAtLeastK(t *testing.T) {
	for _, n := range []int{5, 8} {
		for k := 1; k <= 3; k++ {
			assertCardinality(t, n,
				func(f *Formula, literals []int) error { return AtLeastK(f, literals, k) },
				func(trueCount int) bool { return trueCount >= k },
			)
		}
	}
}

func TestExactlyK(t *testing.T) {
	assertCardinality(t, 6,
		func(f *Formula, literals []int) error { return ExactlyK(f, literals, 2) },
		func(trueCount int) bool { return trueCount == 2 },
	)
	assertCardinality(t, 8,
		func(f *Formula, literals []int) error { return ExactlyK(f, literals, 4) },
		func(trueCount int) bool { return trueCount == 4 },
	)
}

func TestAtMostZeroForcesAllFalse(t *testing.T) {
	assertCardinality(t, 4,
		func(f *Formula, literals []int) error { return AtMostK(f, literals, 0) },
		func(trueCount int) bool { return trueCount == 0 },
	)
}

func TestTrivialBoundsEmitNothing(t *testing.T) {
	f := NewFormula()
	literals := []int{f.NewVar(), f.NewVar(), f.NewVar()}

	assert.Nil(t, AtMostK(f, literals, 3))
	assert.Nil(t, AtMostK(f, literals, 5))
	assert.Nil(t, AtLeastK(f, literals, 0))
	assert.Equal(t, 0, f.NumClauses())
}

func TestMalformedInputIsSignaled(t *testing.T) {
	f := NewFormula()
	literals := []int{f.NewVar(), f.NewVar()}

	var encodingErr *EncodingError
	assert.ErrorAs(t, AtLeastOne(f, nil), &encodingErr)
	assert.ErrorAs(t, ExactlyOne(f, nil), &encodingErr)
	assert.ErrorAs(t, AtLeastK(f, nil, 1), &encodingErr)
	assert.ErrorAs(t, AtLeastK(f, literals, 3), &encodingErr)
	assert.ErrorAs(t, ExactlyK(f, literals, 3), &encodingErr)
}
