// Package stats folds completed matches into per-format career records.
package stats

import (
	"strconv"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Figures is a bowling return, e.g. 3/20.
type Figures struct {
	Wickets int `json:"wickets"`
	Runs    int `json:"runs"`
}

// Better reports whether f beats g: more wickets, or as many for fewer runs.
func (f Figures) Better(g Figures) bool {
	if f.Wickets != g.Wickets {
		return f.Wickets > g.Wickets
	}
	return f.Runs < g.Runs
}

func (f Figures) String() string { return strconv.Itoa(f.Wickets) + "/" + strconv.Itoa(f.Runs) }

// Career is one player's record in one format.
type Career struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`

	// Matches counts innings batted, not fixtures played.
	Matches    int `json:"matches"`
	Innings    int `json:"innings"`
	NotOuts    int `json:"not_outs"`
	Runs       int `json:"runs"`
	Balls      int `json:"balls"`
	Dismissals int `json:"dismissals"`
	Fours      int `json:"fours"`
	Sixes      int `json:"sixes"`
	Fifties    int `json:"fifties"`
	Hundreds   int `json:"hundreds"`
	HighScore  int `json:"high_score"`

	BowlingInnings int      `json:"bowling_innings"`
	Wickets        int      `json:"wickets"`
	RunsConceded   int      `json:"runs_conceded"`
	BallsBowled    int      `json:"balls_bowled"`
	Maidens        int      `json:"maidens"`
	ThreeFors      int      `json:"three_fors"`
	FiveFors       int      `json:"five_fors"`
	Best           *Figures `json:"best,omitempty"`
}

func (c Career) Average() float64        { return cricket.Average(c.Runs, c.Dismissals) }
func (c Career) StrikeRate() float64     { return cricket.StrikeRate(c.Runs, c.Balls) }
func (c Career) Economy() float64        { return cricket.Economy(c.RunsConceded, c.BallsBowled) }
func (c Career) BowlingAverage() float64 { return cricket.Average(c.RunsConceded, c.Wickets) }

func (c *Career) addBatting(b cricket.BattingPerformance) {
	c.Matches++
	c.Innings++
	c.Runs += b.Runs
	c.Balls += b.Balls
	c.Fours += b.Fours
	c.Sixes += b.Sixes
	if b.Out {
		c.Dismissals++
	} else {
		c.NotOuts++
	}
	switch {
	case b.Runs >= 100:
		c.Hundreds++
	case b.Runs >= 50:
		c.Fifties++
	}
	c.HighScore = max(c.HighScore, b.Runs)
}

func (c *Career) addBowling(b cricket.BowlingPerformance) {
	c.BowlingInnings++
	c.Wickets += b.Wickets
	c.RunsConceded += b.Runs
	c.BallsBowled += b.Balls
	c.Maidens += b.Maidens
	switch {
	case b.Wickets >= 5:
		c.FiveFors++
	case b.Wickets >= 3:
		c.ThreeFors++
	}
	spell := Figures{Wickets: b.Wickets, Runs: b.Runs}
	if c.Best == nil || spell.Better(*c.Best) {
		c.Best = &spell
	}
}
