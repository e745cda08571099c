package engine

import (
	"fmt"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Batting weights; the second innings of each pair is favoured slightly.
type battingWeights struct {
	perRun  float64
	fifty   float64
	hundred float64
}

var (
	firstOfPair  = battingWeights{perRun: 1.0, fifty: 10, hundred: 20}
	secondOfPair = battingWeights{perRun: 1.1, fifty: 15, hundred: 25}
)

const (
	perWicket      = 20.0
	threeForBonus  = 10.0
	fiveForBonus   = 20.0
	perRunConceded = 0.5
)

// BattingScore rates one innings for the Man-of-the-Match award.
func BattingScore(b cricket.BattingPerformance, secondInPair bool) float64 {
	w := firstOfPair
	if secondInPair {
		w = secondOfPair
	}
	score := float64(b.Runs) * w.perRun
	if b.Runs >= 50 {
		score += w.fifty
	}
	if b.Runs >= 100 {
		score += w.hundred
	}
	return score
}

// BowlingScore rates one spell for the Man-of-the-Match award.
func BowlingScore(b cricket.BowlingPerformance) float64 {
	score := float64(b.Wickets) * perWicket
	if b.Wickets >= 3 {
		score += threeForBonus
	}
	if b.Wickets >= 5 {
		score += fiveForBonus
	}
	return score - perRunConceded*float64(b.Runs)
}

// ManOfTheMatch takes the best score over every batting then bowling line
// of every innings, in order. On equal scores the later line wins.
func ManOfTheMatch(innings []cricket.Inning) *cricket.Award {
	var best *cricket.Award
	consider := func(a cricket.Award) {
		if best == nil || a.Score >= best.Score {
			best = &a
		}
	}
	for i, in := range innings {
		second := i%2 == 1
		for _, b := range in.Batting {
			consider(cricket.Award{
				PlayerID: b.PlayerID,
				Name:     b.Name,
				TeamID:   in.TeamID,
				Score:    BattingScore(b, second),
				Figures:  battingFigures(b),
			})
		}
		for _, b := range in.Bowling {
			if b.Balls == 0 {
				continue
			}
			consider(cricket.Award{
				PlayerID: b.PlayerID,
				Name:     b.Name,
				TeamID:   in.BowlingTeamID,
				Score:    BowlingScore(b),
				Figures:  fmt.Sprintf("%d/%d", b.Wickets, b.Runs),
			})
		}
	}
	return best
}

func battingFigures(b cricket.BattingPerformance) string {
	notOut := ""
	if !b.Out {
		notOut = "*"
	}
	return fmt.Sprintf("%d%s (%d)", b.Runs, notOut, b.Balls)
}
