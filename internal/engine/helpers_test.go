package engine

import (
	"fmt"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

func testMatrix(avgScale, sr float64) cricket.ProfileMatrix {
	m := cricket.ProfileMatrix{}
	for _, tier := range cricket.Tiers {
		avg := avgScale * float64(6-int(tier))
		m[tier] = map[cricket.Style]cricket.BattingProfile{
			cricket.StyleNeutral:    {Average: avg, StrikeRate: sr},
			cricket.StyleAggressive: {Average: avg * 0.85, StrikeRate: sr * 1.15},
			cricket.StyleDefensive:  {Average: avg * 1.15, StrikeRate: sr * 0.85},
			cricket.StyleNA:         {Average: avg * 0.5, StrikeRate: sr * 0.7},
		}
	}
	return m
}

func testRules() cricket.Rules {
	return cricket.Rules{
		Version: "test",
		Formats: map[string]cricket.Format{
			"T20":  {Name: "T20", Family: cricket.FamilyShort, MaxOvers: 20, BowlerQuota: 5, Innings: 2},
			"ODI":  {Name: "ODI", Family: cricket.FamilyLimited, MaxOvers: 50, BowlerQuota: 10, Innings: 2},
			"Test": {Name: "Test", Family: cricket.FamilyMultiDay, MaxOvers: 90, Innings: 4},
		},
		Pitches: map[string]cricket.PitchModifier{
			"flat": {
				Name: "flat",
				PerFamily: map[cricket.Family]cricket.FamilyModifier{
					cricket.FamilyShort:    {RunRate: 1.05, WicketChance: 0.9},
					cricket.FamilyLimited:  {RunRate: 1.05, WicketChance: 0.9},
					cricket.FamilyMultiDay: {RunRate: 1.0, WicketChance: 0.9},
				},
				ChasePenalty: 1.0,
			},
			"dusty": {
				Name:             "dusty",
				SpinBonus:        0.3,
				ChasePenalty:     0.95,
				Deterioration:    0.4,
				Unpredictability: 0.1,
				Easing:           cricket.EaseOutQuad,
			},
		},
		Grounds: map[string]string{"Riverside": "flat", "Old Town": "dusty"},
		Profiles: map[cricket.Family]cricket.ProfileMatrix{
			cricket.FamilyShort:    testMatrix(6, 130),
			cricket.FamilyLimited:  testMatrix(8, 90),
			cricket.FamilyMultiDay: testMatrix(9, 55),
		},
		Tactics: cricket.TacticsTable{
			Batting: map[cricket.Mode]cricket.Multiplier{
				cricket.ModeNormal:     {Runs: 1, Wickets: 1},
				cricket.ModeAggressive: {Runs: 1.2, Wickets: 1.3},
				cricket.ModeDefensive:  {Runs: 0.8, Wickets: 0.7},
			},
			Bowling: map[cricket.Mode]cricket.Multiplier{
				cricket.ModeNormal:     {Runs: 1, Wickets: 1},
				cricket.ModeAggressive: {Runs: 1.1, Wickets: 1.15},
				cricket.ModeDefensive:  {Runs: 0.9, Wickets: 0.85},
			},
		},
		Limits: map[string]map[string][]cricket.ScoreLimits{
			"Old Town": {"T20": {{MaxRuns: 60, MaxWickets: 3}}},
		},
	}
}

// testTeam builds a conventional XI: five batters, a keeper, an
// all-rounder, two spinners and two quicks.
func testTeam(id string) cricket.Team {
	roles := []cricket.Role{
		cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleBatsman, cricket.RoleBatsman,
		cricket.RoleWicketKeeper, cricket.RoleAllRounder,
		cricket.RoleSpinBowler, cricket.RoleSpinBowler, cricket.RoleFastBowler, cricket.RoleFastBowler,
	}
	styles := []cricket.Style{
		cricket.StyleAggressive, cricket.StyleNeutral, cricket.StyleNeutral, cricket.StyleDefensive, cricket.StyleAggressive,
		cricket.StyleNeutral, cricket.StyleAggressive,
		cricket.StyleNA, cricket.StyleNA, cricket.StyleNA, cricket.StyleNA,
	}
	t := cricket.Team{ID: id, Name: "Team " + id}
	for i := range cricket.LineupSize {
		t.Lineup = append(t.Lineup, cricket.Player{
			ID:      fmt.Sprintf("%s%02d", id, i+1),
			Name:    fmt.Sprintf("%s batter %d", id, i+1),
			Batting: 90 - 7*i,
			Bowling: 15 + 7*i,
			Style:   styles[i],
			Role:    roles[i],
		})
	}
	return t
}

// cycleRNG repeats vals forever.
type cycleRNG struct {
	vals []float64
	i    int
}

func (c *cycleRNG) Float64() float64 {
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v
}
