package schedule

// Indexer gives a unique formula variable to each scheduling decision and
// vice versa. Home variables cover ordered pairs (home, away) with
// home != away per week; period variables cover (team, week, period).
type Indexer interface {
	// HomeVar returns the variable for "home hosts away in the given week".
	HomeVar(home, away, week int) int
	// PeriodVar returns the variable for "team plays in the given period of
	// the given week".
	PeriodVar(team, week, period int) int
	// Home recovers the decision behind a home variable.
	Home(variable int) (home, away, week int, ok bool)
	// Period recovers the decision behind a period variable.
	Period(variable int) (team, week, period int, ok bool)
	// NumVars returns the total number of decision variables.
	NumVars() int
}

func NewIndexer(teams int) Indexer {
	weeks := teams - 1
	return &denseIndexer{
		teams:      teams,
		weeks:      weeks,
		periods:    teams / 2,
		periodBase: teams * (teams - 1) * weeks,
	}
}

// denseIndexer lays the decisions out as one flat arena: home variables fill
// 1..n(n-1)W in (pair, week) order, period variables follow in
// (team, week, period) order. Pure index arithmetic, no lookup tables.
type denseIndexer struct {
	teams      int
	weeks      int
	periods    int
	periodBase int
}

func (x *denseIndexer) HomeVar(home, away, week int) int {
	pair := home*(x.teams-1) + away
	if away > home {
		pair--
	}
	return pair*x.weeks + week + 1
}

func (x *denseIndexer) PeriodVar(team, week, period int) int {
	return x.periodBase + (team*x.weeks+week)*x.periods + period + 1
}

func (x *denseIndexer) Home(variable int) (home, away, week int, ok bool) {
	if variable < 1 || variable > x.periodBase {
		return 0, 0, 0, false
	}
	index := variable - 1
	week = index % x.weeks
	pair := index / x.weeks
	home = pair / (x.teams - 1)
	away = pair % (x.teams - 1)
	if away >= home {
		away++
	}
	return home, away, week, true
}

func (x *denseIndexer) Period(variable int) (team, week, period int, ok bool) {
	if variable <= x.periodBase || variable > x.NumVars() {
		return 0, 0, 0, false
	}
	index := variable - x.periodBase - 1
	period = index % x.periods
	index = index / x.periods
	week = index % x.weeks
	team = index / x.weeks
	return team, week, period, true
}

func (x *denseIndexer) NumVars() int {
	return x.periodBase + x.teams*x.weeks*x.periods
}
