package schedule

import (
	"fmt"
	"time"

	"github.com/julianpajo/sts/internal/sat"
)

// Match is one fixture: Home hosts Away. Teams are numbered from 1 in
// reported schedules.
type Match struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Schedule is the period-by-week fixture grid of a single round robin:
// schedule[p][w] is the match played in period p of week w.
type Schedule [][]*Match

// Stats summarises a solve run.
type Stats struct {
	Elapsed time.Duration
	// Optimal is true when the run proved the best representable objective
	// value (imbalance bound 1) or, for plain decision runs, when a schedule
	// was found at all. It is not a general fixed-point proof.
	Optimal bool
	// Objective is the best imbalance bound the optimizer settled on, nil
	// when optimization was not requested.
	Objective *int
}

// Imbalances returns |home appearances - away appearances| per team, keyed by
// 1-based team number.
func (s Schedule) Imbalances() map[int]int {
	home := map[int]int{}
	away := map[int]int{}
	for _, row := range s {
		for _, match := range row {
			if match == nil {
				continue
			}
			home[match.Home]++
			away[match.Away]++
		}
	}

	imbalances := make(map[int]int, len(home))
	for team := range home {
		imbalances[team] = abs(home[team] - away[team])
	}
	for team := range away {
		if _, ok := imbalances[team]; !ok {
			imbalances[team] = away[team]
		}
	}
	return imbalances
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// extract rebuilds the period-by-week grid from a satisfying assignment. Any
// slot that cannot be reconstructed is an extraction failure, never a valid
// partial schedule.
func (e *encoder) extract(assignment sat.Assignment) (Schedule, error) {
	grid := make(Schedule, e.periods)
	for p := range grid {
		grid[p] = make([]*Match, e.weeks)
	}

	for w := 0; w < e.weeks; w++ {
		for p := 0; p < e.periods; p++ {
			teams := make([]int, 0, 2)
			for i := 0; i < e.teams; i++ {
				if assignment[e.indexer.PeriodVar(i, w, p)] {
					teams = append(teams, i)
				}
			}
			if len(teams) != 2 {
				return nil, fmt.Errorf("period %d of week %d holds %d teams instead of 2", p+1, w+1, len(teams))
			}

			i, j := teams[0], teams[1]
			switch {
			case assignment[e.indexer.HomeVar(i, j, w)]:
				grid[p][w] = &Match{Home: i + 1, Away: j + 1}
			case assignment[e.indexer.HomeVar(j, i, w)]:
				grid[p][w] = &Match{Home: j + 1, Away: i + 1}
			default:
				return nil, fmt.Errorf("no home orientation for teams %d and %d in week %d", i+1, j+1, w+1)
			}
		}
	}
	return grid, nil
}
