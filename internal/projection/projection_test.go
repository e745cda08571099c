package projection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/xtding233/cricket-sim/internal/cricket"
	"github.com/xtding233/cricket-sim/internal/engine"
	"github.com/xtding233/cricket-sim/internal/tables"
)

func TestCalcStats(t *testing.T) {
	s := calcStats([]int{4, 1, 3, 2, 5})
	if s.Mean != 3 || s.Var != 2 || math.Abs(s.StdDev-math.Sqrt2) > 1e-12 {
		t.Fatalf("moments: %+v", s)
	}
	if s.P50 != 3 || math.Abs(s.P90-4.6) > 1e-12 || math.Abs(s.P99-4.96) > 1e-12 {
		t.Fatalf("percentiles: %+v", s)
	}
	if one := calcStats([]int{7}); one.P50 != 7 || one.P99 != 7 || one.Var != 0 {
		t.Fatalf("single sample: %+v", one)
	}
	if empty := calcStats(nil); empty.Mean != 0 || empty.Samples != nil {
		t.Fatal("empty samples should give zero stats")
	}
}

func team(id string) cricket.Team {
	roles := []cricket.Role{
		cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleAllRounder,
		cricket.RoleWicketKeeper, cricket.RoleAllRounder, cricket.RoleSpinBowler, cricket.RoleSpinBowler,
		cricket.RoleFastBowler, cricket.RoleFastBowler,
	}
	t := cricket.Team{ID: id, Name: id}
	for i, r := range roles {
		t.Lineup = append(t.Lineup, cricket.Player{
			ID: fmt.Sprintf("%s%d", id, i), Name: fmt.Sprintf("%s %d", id, i),
			Batting: 88 - 6*i, Bowling: 20 + 6*i, Role: r,
		})
	}
	return t
}

func TestRunProbabilitiesAndDeterminism(t *testing.T) {
	rules, err := tables.NewLoader("").Load("")
	if err != nil {
		t.Fatal(err)
	}
	p := Params{
		Fixture: engine.Fixture{Format: "T20", Ground: "Harbour Oval", Home: team("H"), Away: team("A")},
		Trials:  200,
		Seed:    5,
		Workers: 4,
	}
	got, err := Run(context.Background(), rules, p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Trials != 200 {
		t.Fatalf("trials=%d", got.Trials)
	}
	if sum := got.HomeWin + got.AwayWin + got.Tie + got.Draw; math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities sum to %v", sum)
	}
	if got.Draw != 0 {
		t.Fatal("limited overs cannot be drawn")
	}
	if got.FirstInnings.Mean <= 0 || got.FirstInnings.P50 > got.FirstInnings.P99 {
		t.Fatalf("first innings: %+v", got.FirstInnings)
	}

	p.Workers = 1
	again, err := Run(context.Background(), rules, p)
	if err != nil {
		t.Fatal(err)
	}
	if again.HomeWin != got.HomeWin || again.FirstInnings.Mean != got.FirstInnings.Mean {
		t.Fatal("projection depends on worker count")
	}
}

func TestRunLimits(t *testing.T) {
	if got, err := Run(context.Background(), cricket.Rules{}, Params{}); err != nil || got.Trials != 0 {
		t.Fatalf("zero trials: %+v %v", got, err)
	}
	_, err := Run(context.Background(), cricket.Rules{}, Params{Trials: MaxTrials + 1})
	if !errors.Is(err, ErrTooManyTrials) {
		t.Fatalf("expected ErrTooManyTrials, got %v", err)
	}
}

func TestSummarizeCountsOutcomes(t *testing.T) {
	res := []cricket.MatchResult{
		{Outcome: cricket.OutcomeWin, WinnerID: "H", Innings: []cricket.Inning{{TeamID: "H", Score: 200}, {TeamID: "A", Score: 150}}},
		{Outcome: cricket.OutcomeWin, WinnerID: "A", Innings: []cricket.Inning{{TeamID: "H", Score: 100}, {TeamID: "A", Score: 101}}},
		{Outcome: cricket.OutcomeTie, Innings: []cricket.Inning{{TeamID: "A", Score: 120}, {TeamID: "H", Score: 120}}},
		{Outcome: cricket.OutcomeDraw, Innings: []cricket.Inning{{TeamID: "H", Score: 300}, {TeamID: "A", Score: 280}, {TeamID: "H", Score: 10}}},
	}
	p := summarize("H", "A", res)
	if p.HomeWin != 0.25 || p.AwayWin != 0.25 || p.Tie != 0.25 || p.Draw != 0.25 {
		t.Fatalf("outcomes: %+v", p)
	}
	// margins: 50, -1, 0, 30
	if p.Margin.Mean != 19.75 {
		t.Fatalf("margin mean=%v", p.Margin.Mean)
	}
	// first innings: 200, 100, 120, 300
	if p.FirstInnings.Mean != 180 {
		t.Fatalf("first innings mean=%v", p.FirstInnings.Mean)
	}
}
