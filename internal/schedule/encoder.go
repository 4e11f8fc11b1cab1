package schedule

import (
	"fmt"

	"github.com/julianpajo/sts/internal/sat"
)

// ParameterError reports an instance that cannot be encoded at all: the
// number of teams must be even and at least 2. It is raised before any clause
// is built and is never retried.
type ParameterError struct {
	Teams int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid number of teams %d: must be even and at least 2", e.Teams)
}

// encoder owns the formula for one tournament instance. The base clause set
// is built once and stays immutable; only the imbalance bound is pushed and
// popped on top of it during optimization.
type encoder struct {
	teams   int
	weeks   int
	periods int
	indexer Indexer
	formula *sat.Formula
}

func newEncoder(teams int) (*encoder, error) {
	if teams < 2 || teams%2 != 0 {
		return nil, &ParameterError{Teams: teams}
	}
	e := &encoder{
		teams:   teams,
		weeks:   teams - 1,
		periods: teams / 2,
		indexer: NewIndexer(teams),
		formula: sat.NewFormula(),
	}
	for n := 0; n < e.indexer.NumVars(); n++ {
		e.formula.NewVar()
	}
	return e, nil
}

// encodeBase emits the hard, channelling, implied and (optionally) symmetry
// breaking clause families.
func (e *encoder) encodeBase(symmetryBreaking, optimize bool) error {
	steps := []func() error{
		e.pairingConstraints,
		e.weeklyCoverageConstraints,
		e.periodLoadConstraints,
		e.channellingConstraints,
		e.periodOccupancyConstraints,
		e.weeklyPeriodConstraints,
		e.exclusivityConstraints,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if symmetryBreaking {
		e.symmetryBreakingConstraints(optimize)
	}
	return nil
}

// Every unordered pair of teams meets exactly once across the tournament, in
// either orientation.
func (e *encoder) pairingConstraints() error {
	for i := 0; i < e.teams-1; i++ {
		for j := i + 1; j < e.teams; j++ {
			meetings := make([]int, 0, 2*e.weeks)
			for w := 0; w < e.weeks; w++ {
				meetings = append(meetings, e.indexer.HomeVar(i, j, w), e.indexer.HomeVar(j, i, w))
			}
			if err := sat.ExactlyOne(e.formula, meetings); err != nil {
				return err
			}
		}
	}
	return nil
}

// Every team plays exactly once per week, home or away.
func (e *encoder) weeklyCoverageConstraints() error {
	for i := 0; i < e.teams; i++ {
		for w := 0; w < e.weeks; w++ {
			games := make([]int, 0, 2*(e.teams-1))
			for j := 0; j < e.teams; j++ {
				if i == j {
					continue
				}
				games = append(games, e.indexer.HomeVar(i, j, w), e.indexer.HomeVar(j, i, w))
			}
			if err := sat.ExactlyOne(e.formula, games); err != nil {
				return err
			}
		}
	}
	return nil
}

// No team plays more than twice in the same period across the tournament.
func (e *encoder) periodLoadConstraints() error {
	for t := 0; t < e.teams; t++ {
		for p := 0; p < e.periods; p++ {
			appearances := make([]int, 0, e.weeks)
			for w := 0; w < e.weeks; w++ {
				appearances = append(appearances, e.indexer.PeriodVar(t, w, p))
			}
			if err := sat.AtMostK(e.formula, appearances, 2); err != nil {
				return err
			}
		}
	}
	return nil
}

// If two teams meet in a week they occupy the same period of that week. Two
// implications per orientation and period, no biconditional auxiliary.
func (e *encoder) channellingConstraints() error {
	for w := 0; w < e.weeks; w++ {
		for i := 0; i < e.teams-1; i++ {
			for j := i + 1; j < e.teams; j++ {
				hosts := [2]int{e.indexer.HomeVar(i, j, w), e.indexer.HomeVar(j, i, w)}
				for p := 0; p < e.periods; p++ {
					pi := e.indexer.PeriodVar(i, w, p)
					pj := e.indexer.PeriodVar(j, w, p)
					for _, host := range hosts {
						e.formula.Add(-host, -pi, pj)
						e.formula.Add(-host, pi, -pj)
					}
				}
			}
		}
	}
	return nil
}

// Exactly two teams occupy each (week, period) slot.
func (e *encoder) periodOccupancyConstraints() error {
	for w := 0; w < e.weeks; w++ {
		for p := 0; p < e.periods; p++ {
			occupants := make([]int, e.teams)
			for i := 0; i < e.teams; i++ {
				occupants[i] = e.indexer.PeriodVar(i, w, p)
			}
			if err := sat.ExactlyK(e.formula, occupants, 2); err != nil {
				return err
			}
		}
	}
	return nil
}

// Every team occupies exactly one period per week.
func (e *encoder) weeklyPeriodConstraints() error {
	for i := 0; i < e.teams; i++ {
		for w := 0; w < e.weeks; w++ {
			slots := make([]int, e.periods)
			for p := 0; p < e.periods; p++ {
				slots[p] = e.indexer.PeriodVar(i, w, p)
			}
			if err := sat.ExactlyOne(e.formula, slots); err != nil {
				return err
			}
		}
	}
	return nil
}

// A pair never plays both orientations in the same week.
func (e *encoder) exclusivityConstraints() error {
	for i := 0; i < e.teams-1; i++ {
		for j := i + 1; j < e.teams; j++ {
			for w := 0; w < e.weeks; w++ {
				e.formula.Add(-e.indexer.HomeVar(i, j, w), -e.indexer.HomeVar(j, i, w))
			}
		}
	}
	return nil
}

// symmetryBreakingConstraints removes relabeling-equivalent solutions without
// touching satisfiability: week 0 opens with team 0 hosting team 1 in period
// 0, and team 0 meets team w+1 in week w. The total-order clauses interact
// with the imbalance objective's symmetric solutions, so they are emitted
// only when optimization is off.
func (e *encoder) symmetryBreakingConstraints(optimize bool) {
	e.formula.Add(e.indexer.HomeVar(0, 1, 0))
	e.formula.Add(e.indexer.PeriodVar(0, 0, 0))
	e.formula.Add(e.indexer.PeriodVar(1, 0, 0))

	for w := 0; w < e.weeks; w++ {
		opponent := w + 1
		e.formula.Add(e.indexer.HomeVar(0, opponent, w), e.indexer.HomeVar(opponent, 0, w))
	}

	if !optimize {
		for i := 0; i < e.teams; i++ {
			for j := 0; j < i; j++ {
				for w := 0; w < e.weeks; w++ {
					e.formula.Add(-e.indexer.HomeVar(i, j, w))
				}
			}
		}
	}
}

// boundImbalance keeps every team's home-game count within
// [(W-maxDiff)/2, (W+maxDiff)/2], which caps |home-away| at maxDiff. Added
// inside a pushed scope during optimization, never part of the base formula.
func (e *encoder) boundImbalance(maxDiff int) error {
	for i := 0; i < e.teams; i++ {
		homeGames := make([]int, 0, (e.teams-1)*e.weeks)
		for j := 0; j < e.teams; j++ {
			if i == j {
				continue
			}
			for w := 0; w < e.weeks; w++ {
				homeGames = append(homeGames, e.indexer.HomeVar(i, j, w))
			}
		}
		if err := sat.AtLeastK(e.formula, homeGames, (e.weeks-maxDiff)/2); err != nil {
			return err
		}
		if err := sat.AtMostK(e.formula, homeGames, (e.weeks+maxDiff)/2); err != nil {
			return err
		}
	}
	return nil
}
