package sat

import "fmt"

// Cardinality constraints over plain literal slices. Small sets use direct
// combinatorial encodings; larger sets use a sequential counter so the clause
// count stays linear in len(literals)*k instead of enumerating (k+1)-subsets.

// combinatorialLimit is the set size up to which the combinatorial at-most-k
// encoding is emitted instead of the sequential counter.
const combinatorialLimit = 6

// EncodingError indicates malformed cardinality input, e.g. an empty literal
// set with a positive lower bound. It signals an encoder bug, not an
// unsatisfiable instance, and must not be swallowed.
type EncodingError struct {
	msg string
}

func (e *EncodingError) Error() string {
	return e.msg
}

func encodingErrorf(format string, args ...any) error {
	return &EncodingError{msg: fmt.Sprintf(format, args...)}
}

// AtLeastOne requires at least one of the literals to be true.
func AtLeastOne(f *Formula, literals []int) error {
	if len(literals) == 0 {
		return encodingErrorf("at-least-one over an empty literal set")
	}
	f.Add(literals...)
	return nil
}

// AtMostOne forbids any two of the literals to be true simultaneously.
func AtMostOne(f *Formula, literals []int) {
	for i := 0; i < len(literals)-1; i++ {
		for j := i + 1; j < len(literals); j++ {
			f.Add(-literals[i], -literals[j])
		}
	}
}

// ExactlyOne requires exactly one of the literals to be true.
func ExactlyOne(f *Formula, literals []int) error {
	if err := AtLeastOne(f, literals); err != nil {
		return err
	}
	AtMostOne(f, literals)
	return nil
}

// AtMostK requires at most k of the literals to be true. k <= 0 forces every
// literal false; k >= len(literals) is trivially true and emits nothing.
func AtMostK(f *Formula, literals []int, k int) error {
	if k >= len(literals) {
		return nil
	}
	if k <= 0 {
		for _, literal := range literals {
			f.Add(-literal)
		}
		return nil
	}
	if k == 1 {
		AtMostOne(f, literals)
		return nil
	}
	if len(literals) <= combinatorialLimit {
		forEachSubset(literals, k+1, func(subset []int) {
			clause := make([]int, len(subset))
			for i, literal := range subset {
				clause[i] = -literal
			}
			f.Add(clause...)
		})
		return nil
	}
	addSequentialCounter(f, literals, k)
	return nil
}

// AtLeastK requires at least k of the literals to be true. It is encoded as
// at-most-(n-k) over the negated literals.
func AtLeastK(f *Formula, literals []int, k int) error {
	if k <= 0 {
		return nil
	}
	if k > len(literals) {
		return encodingErrorf("at-least-%d over %d literals", k, len(literals))
	}
	negated := make([]int, len(literals))
	for i, literal := range literals {
		negated[i] = -literal
	}
	return AtMostK(f, negated, len(literals)-k)
}

// ExactlyK requires exactly k of the literals to be true.
func ExactlyK(f *Formula, literals []int, k int) error {
	if err := AtLeastK(f, literals, k); err != nil {
		return err
	}
	return AtMostK(f, literals, k)
}

// addSequentialCounter emits the Sinz sequential-counter encoding of
// at-most-k. registers[i][j] reads "at least j+1 of the first i+1 literals
// are true"; an overflow clause fires when literal i+1 would push the count
// past k.
func addSequentialCounter(f *Formula, literals []int, k int) {
	n := len(literals)
	registers := make([][]int, n)
	for i := range registers {
		registers[i] = make([]int, k)
		for j := range registers[i] {
			registers[i][j] = f.NewVar()
		}
	}

	f.Add(-literals[0], registers[0][0])
	for j := 1; j < k; j++ {
		f.Add(-registers[0][j])
	}

	for i := 1; i < n; i++ {
		f.Add(-literals[i], registers[i][0])
		f.Add(-registers[i-1][0], registers[i][0])
		for j := 1; j < k; j++ {
			f.Add(-literals[i], -registers[i-1][j-1], registers[i][j])
			f.Add(-registers[i-1][j], registers[i][j])
		}
		f.Add(-literals[i], -registers[i-1][k-1])
	}
}

// forEachSubset calls fn with every subset of the given size. The slice passed
// to fn is reused between calls.
func forEachSubset(literals []int, size int, fn func(subset []int)) {
	subset := make([]int, size)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == size {
			fn(subset)
			return
		}
		for i := start; i <= len(literals)-(size-depth); i++ {
			subset[depth] = literals[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
