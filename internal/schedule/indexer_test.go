package schedule

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexerIsDenseBijection(t *testing.T) {
	for _, teams := range []int{2, 4, 6, 8, 12} {
		indexer := NewIndexer(teams)
		weeks := teams - 1
		periods := teams / 2

		indices := make([]int, 0, indexer.NumVars())
		for i := 0; i < teams; i++ {
			for j := 0; j < teams; j++ {
				if i == j {
					continue
				}
				for w := 0; w < weeks; w++ {
					indices = append(indices, indexer.HomeVar(i, j, w))
				}
			}
		}
		for i := 0; i < teams; i++ {
			for w := 0; w < weeks; w++ {
				for p := 0; p < periods; p++ {
					indices = append(indices, indexer.PeriodVar(i, w, p))
				}
			}
		}

		slices.Sort(indices)
		assert.Len(t, indices, indexer.NumVars())
		for i, index := range indices {
			if i == 0 {
				// First index should be 1
				assert.Equal(t, 1, index)
				continue
			}
			// Each index should be one more than the previous index
			assert.Equal(t, indices[i-1]+1, index)
		}
	}
}

func TestIndexerRoundTrip(t *testing.T) {
	const teams = 6
	indexer := NewIndexer(teams)

	for i := 0; i < teams; i++ {
		for j := 0; j < teams; j++ {
			if i == j {
				continue
			}
			for w := 0; w < teams-1; w++ {
				home, away, week, ok := indexer.Home(indexer.HomeVar(i, j, w))
				assert.True(t, ok)
				assert.Equal(t, []int{i, j, w}, []int{home, away, week})

				_, _, _, ok = indexer.Period(indexer.HomeVar(i, j, w))
				assert.False(t, ok)
			}
		}
	}

	for i := 0; i < teams; i++ {
		for w := 0; w < teams-1; w++ {
			for p := 0; p < teams/2; p++ {
				team, week, period, ok := indexer.Period(indexer.PeriodVar(i, w, p))
				assert.True(t, ok)
				assert.Equal(t, []int{i, w, p}, []int{team, week, period})

				_, _, _, ok = indexer.Home(indexer.PeriodVar(i, w, p))
				assert.False(t, ok)
			}
		}
	}
}

func TestIndexerRejectsOutOfRange(t *testing.T) {
	indexer := NewIndexer(4)

	_, _, _, ok := indexer.Home(0)
	assert.False(t, ok)
	_, _, _, ok = indexer.Period(indexer.NumVars() + 1)
	assert.False(t, ok)
}
