package engine

import (
	"fmt"
	"strings"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// MultiDayTarget is what the side batting last must score to win.
// A value <= 0 means that side already leads after three innings.
func MultiDayTarget(inn1, inn2, inn3 int) int {
	return inn1 + inn3 - inn2 + 1
}

// roundRobinStages are the stage names, after normalizing, whose level
// scores stay tied.
var roundRobinStages = map[string]bool{
	"":             true,
	"round robin":  true,
	"league":       true,
	"league stage": true,
	"group stage":  true,
}

// RoundRobin reports whether a competition stage leaves level scores tied.
// Anything else, "Round of 16" included, is a knockout or placement match.
func RoundRobin(group string) bool {
	g := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(group))
	return roundRobinStages[strings.Join(strings.Fields(g), " ")]
}

// decideLimited settles a two-innings match.
func decideLimited(res *cricket.MatchResult, names map[string]string, group string, standings map[string]int) {
	inn1, inn2 := res.Innings[0], res.Innings[1]
	switch {
	case inn2.Score > inn1.Score:
		wkts := inn2.WicketsLeft()
		win(res, inn2.TeamID, inn1.TeamID, cricket.Margin{Wickets: wkts},
			fmt.Sprintf("%s won by %s", names[inn2.TeamID], plural(wkts, "wicket")))
	case inn1.Score > inn2.Score:
		runs := inn1.Score - inn2.Score
		win(res, inn1.TeamID, inn2.TeamID, cricket.Margin{Runs: runs},
			fmt.Sprintf("%s won by %s", names[inn1.TeamID], plural(runs, "run")))
	default:
		if !RoundRobin(group) {
			if w, l, ok := byStanding(inn1.TeamID, inn2.TeamID, standings); ok {
				win(res, w, l, cricket.Margin{},
					fmt.Sprintf("%s won on league standing after scores finished level on %d", names[w], inn1.Score))
				return
			}
		}
		res.Outcome = cricket.OutcomeTie
		res.Summary = "Match tied"
	}
}

// byStanding prefers the higher-placed team. Unplaced teams rank last and
// equal positions leave the match unresolved.
func byStanding(a, b string, standings map[string]int) (string, string, bool) {
	pa, oka := standings[a]
	pb, okb := standings[b]
	switch {
	case oka && (!okb || pa < pb):
		return a, b, true
	case okb && (!oka || pb < pa):
		return b, a, true
	}
	return "", "", false
}

// decideMultiDay settles a four-innings match. Innings are ordered A, B,
// A, B; a missing fourth innings means B won by an innings.
func decideMultiDay(res *cricket.MatchResult, names map[string]string) {
	a, b := res.Innings[0].TeamID, res.Innings[1].TeamID
	target := MultiDayTarget(res.Innings[0].Score, res.Innings[1].Score, res.Innings[2].Score)

	if target <= 0 || len(res.Innings) < 4 {
		runs := 1 - target
		win(res, b, a, cricket.Margin{Runs: runs, Innings: true},
			fmt.Sprintf("%s won by an innings and %s", names[b], plural(runs, "run")))
		return
	}

	inn4 := res.Innings[3]
	switch {
	case inn4.Score >= target:
		wkts := inn4.WicketsLeft()
		win(res, b, a, cricket.Margin{Wickets: wkts},
			fmt.Sprintf("%s won by %s", names[b], plural(wkts, "wicket")))
	case inn4.AllOut:
		runs := target - 1 - inn4.Score
		win(res, a, b, cricket.Margin{Runs: runs},
			fmt.Sprintf("%s won by %s", names[a], plural(runs, "run")))
	default:
		res.Outcome = cricket.OutcomeDraw
		res.Summary = "Match drawn"
	}
}

func win(res *cricket.MatchResult, winner, loser string, m cricket.Margin, summary string) {
	res.Outcome = cricket.OutcomeWin
	res.WinnerID = winner
	res.LoserID = loser
	res.Margin = m
	res.Summary = summary
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
