// Package projection estimates fixture outcomes by repeated simulation.
package projection

import (
	"context"
	"errors"
	"fmt"

	"github.com/xtding233/cricket-sim/internal/cricket"
	"github.com/xtding233/cricket-sim/internal/engine"
)

// MaxTrials bounds a single projection.
const MaxTrials = 20000

var ErrTooManyTrials = errors.New("too many trials")

// Params describes one projection run.
type Params struct {
	Fixture engine.Fixture
	Trials  int
	Seed    uint64
	Workers int // <= 0 uses GOMAXPROCS
}

// Projection is the summary of Trials simulated matches.
type Projection struct {
	Trials int `json:"trials"`

	HomeWin float64 `json:"home_win"`
	AwayWin float64 `json:"away_win"`
	Tie     float64 `json:"tie"`
	Draw    float64 `json:"draw"`

	// FirstInnings is the score of the side batting first.
	FirstInnings Stats `json:"first_innings"`
	// Margin is home runs minus away runs over the whole match.
	Margin Stats `json:"margin"`
}

// Run simulates the fixture Trials times. The same seed yields the same
// projection regardless of Workers.
func Run(ctx context.Context, rules cricket.Rules, p Params, opts ...engine.Option) (Projection, error) {
	if p.Trials <= 0 {
		return Projection{}, nil
	}
	if p.Trials > MaxTrials {
		return Projection{}, fmt.Errorf("%w: %d > %d", ErrTooManyTrials, p.Trials, MaxTrials)
	}

	fixtures := make([]engine.Fixture, p.Trials)
	for i := range fixtures {
		fixtures[i] = p.Fixture
	}
	results, err := engine.SimulateBatch(ctx, rules, fixtures, p.Seed, p.Workers, opts...)
	if err != nil {
		return Projection{}, err
	}
	return summarize(p.Fixture.Home.ID, p.Fixture.Away.ID, results), nil
}

func summarize(home, away string, results []cricket.MatchResult) Projection {
	n := len(results)
	out := Projection{Trials: n}
	if n == 0 {
		return out
	}

	var homeWins, awayWins, ties, draws int
	first := make([]int, 0, n)
	margin := make([]int, 0, n)
	for _, r := range results {
		switch {
		case r.Outcome == cricket.OutcomeTie:
			ties++
		case r.Outcome == cricket.OutcomeDraw:
			draws++
		case r.WinnerID == home:
			homeWins++
		case r.WinnerID == away:
			awayWins++
		}

		runs := map[string]int{}
		for _, in := range r.Innings {
			runs[in.TeamID] += in.Score
		}
		if len(r.Innings) > 0 {
			first = append(first, r.Innings[0].Score)
		}
		margin = append(margin, runs[home]-runs[away])
	}

	out.HomeWin = float64(homeWins) / float64(n)
	out.AwayWin = float64(awayWins) / float64(n)
	out.Tie = float64(ties) / float64(n)
	out.Draw = float64(draws) / float64(n)
	out.FirstInnings = calcStats(first)
	out.Margin = calcStats(margin)
	return out
}
