package schedule

import (
	"context"
	"time"

	"github.com/julianpajo/sts/internal/sat"
)

// DefaultTimeout is the time budget used when Options leaves Timeout unset.
const DefaultTimeout = 300 * time.Second

// Options select the optional clause families and the time budget of a run.
type Options struct {
	SymmetryBreaking bool
	Optimize         bool
	Timeout          time.Duration
}

// Scheduler builds single round-robin schedules with home/away and
// period-load constraints.
type Scheduler interface {
	// Build encodes the instance and solves it. A nil schedule with a nil
	// error means no schedule exists (or none was found within the budget);
	// Stats is meaningful either way.
	Build(ctx context.Context, teams int, options Options) (Schedule, Stats, error)

	// Verify checks the round-robin invariants directly on a grid.
	Verify(schedule Schedule, teams int) bool
}

func NewScheduler(solver sat.Solver) Scheduler {
	return &satScheduler{solver: solver}
}

type satScheduler struct {
	solver sat.Solver
}

func (s *satScheduler) Build(ctx context.Context, teams int, options Options) (Schedule, Stats, error) {
	start := time.Now()
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	enc, err := newEncoder(teams)
	if err != nil {
		return nil, Stats{}, err
	}
	if err := enc.encodeBase(options.SymmetryBreaking, options.Optimize); err != nil {
		return nil, Stats{}, err
	}

	if options.Optimize {
		return s.buildOptimized(ctx, enc, start)
	}

	result := s.solver.Check(ctx, enc.formula)
	stats := Stats{Elapsed: time.Since(start)}
	switch result.Status {
	case sat.Sat:
		grid, err := enc.extract(result.Assignment)
		if err != nil {
			return nil, stats, err
		}
		stats.Optimal = true
		return grid, stats, nil
	case sat.Unsat:
		return nil, stats, nil
	default:
		return nil, stats, result.Reason
	}
}

func (s *satScheduler) buildOptimized(ctx context.Context, enc *encoder, start time.Time) (Schedule, Stats, error) {
	best, err := enc.minimizeImbalance(ctx, s.solver)
	stats := Stats{Elapsed: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}

	if !best.found {
		// No SAT point before the budget ran out: report the worst-case
		// bound and no schedule, never a fabricated one.
		objective := enc.weeks
		stats.Objective = &objective
		return nil, stats, nil
	}

	grid, err := enc.extract(best.assignment)
	if err != nil {
		return nil, stats, err
	}
	objective := best.bound
	stats.Objective = &objective
	stats.Optimal = best.bound == 1
	return grid, stats, nil
}

func (s *satScheduler) Verify(schedule Schedule, teams int) bool {
	weeks := teams - 1
	periods := teams / 2
	if len(schedule) != periods {
		return false
	}

	pairs := map[[2]int]int{}
	perWeek := make([]map[int]int, weeks)
	for w := range perWeek {
		perWeek[w] = map[int]int{}
	}
	periodLoad := map[[2]int]int{}

	for p, row := range schedule {
		if len(row) != weeks {
			return false
		}
		for w, match := range row {
			if match == nil || match.Home == match.Away ||
				match.Home < 1 || match.Home > teams || match.Away < 1 || match.Away > teams {
				return false
			}

			lo, hi := match.Home, match.Away
			if lo > hi {
				lo, hi = hi, lo
			}
			pairs[[2]int{lo, hi}]++

			perWeek[w][match.Home]++
			perWeek[w][match.Away]++
			periodLoad[[2]int{match.Home, p}]++
			periodLoad[[2]int{match.Away, p}]++
		}
	}

	// Each unordered pair meets exactly once.
	if len(pairs) != teams*(teams-1)/2 {
		return false
	}
	for _, count := range pairs {
		if count != 1 {
			return false
		}
	}

	// Each team plays exactly once per week.
	for _, week := range perWeek {
		if len(week) != teams {
			return false
		}
		for _, count := range week {
			if count != 1 {
				return false
			}
		}
	}

	// No team appears more than twice in one period.
	for _, count := range periodLoad {
		if count > 2 {
			return false
		}
	}
	return true
}
