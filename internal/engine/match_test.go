package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

var teamNames = map[string]string{"A": "Team A", "B": "Team B"}

func inning(team string, score, wickets int) cricket.Inning {
	return cricket.Inning{TeamID: team, Score: score, Wickets: wickets, WicketCap: 10, AllOut: wickets == 10}
}

func TestDecideLimited(t *testing.T) {
	cases := []struct {
		name      string
		inn1      cricket.Inning
		inn2      cricket.Inning
		group     string
		standings map[string]int
		outcome   cricket.Outcome
		winner    string
		margin    cricket.Margin
		summary   string
	}{
		{"chase", inning("A", 150, 7), inning("B", 151, 6), "Round-Robin", nil,
			cricket.OutcomeWin, "B", cricket.Margin{Wickets: 4}, "Team B won by 4 wickets"},
		{"defended", inning("A", 180, 5), inning("B", 179, 10), "", nil,
			cricket.OutcomeWin, "A", cricket.Margin{Runs: 1}, "Team A won by 1 run"},
		{"league tie", inning("A", 180, 10), inning("B", 180, 10), "Round-Robin", map[string]int{"A": 1, "B": 2},
			cricket.OutcomeTie, "", cricket.Margin{}, "Match tied"},
		{"knockout standing", inning("A", 180, 10), inning("B", 180, 9), "Semi-Finals", map[string]int{"A": 3, "B": 2},
			cricket.OutcomeWin, "B", cricket.Margin{}, "Team B won on league standing after scores finished level on 180"},
		{"unplaced loses", inning("A", 99, 10), inning("B", 99, 10), "Final", map[string]int{"A": 4},
			cricket.OutcomeWin, "A", cricket.Margin{}, "Team A won on league standing after scores finished level on 99"},
		{"no standings", inning("A", 99, 10), inning("B", 99, 10), "Final", nil,
			cricket.OutcomeTie, "", cricket.Margin{}, "Match tied"},
		{"round of 16", inning("A", 180, 10), inning("B", 180, 10), "Round of 16", map[string]int{"A": 1, "B": 4},
			cricket.OutcomeWin, "A", cricket.Margin{}, "Team A won on league standing after scores finished level on 180"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := cricket.MatchResult{Innings: []cricket.Inning{tc.inn1, tc.inn2}}
			decideLimited(&res, teamNames, tc.group, tc.standings)
			if res.Outcome != tc.outcome || res.WinnerID != tc.winner || res.Margin != tc.margin || res.Summary != tc.summary {
				t.Fatalf("got %s/%q/%+v/%q", res.Outcome, res.WinnerID, res.Margin, res.Summary)
			}
			if res.Outcome != cricket.OutcomeWin && res.LoserID != "" {
				t.Fatalf("loser set on %s", res.Outcome)
			}
		})
	}
}

func TestDecideMultiDay(t *testing.T) {
	if got := MultiDayTarget(300, 250, 200); got != 251 {
		t.Fatalf("target=%d want 251", got)
	}
	cases := []struct {
		name    string
		inns    []cricket.Inning
		outcome cricket.Outcome
		winner  string
		margin  cricket.Margin
		summary string
	}{
		{"chased", []cricket.Inning{inning("A", 300, 10), inning("B", 250, 10), inning("A", 200, 10), inning("B", 251, 4)},
			cricket.OutcomeWin, "B", cricket.Margin{Wickets: 6}, "Team B won by 6 wickets"},
		{"bowled out", []cricket.Inning{inning("A", 300, 10), inning("B", 250, 10), inning("A", 200, 10), inning("B", 230, 10)},
			cricket.OutcomeWin, "A", cricket.Margin{Runs: 20}, "Team A won by 20 runs"},
		{"drawn", []cricket.Inning{inning("A", 300, 10), inning("B", 250, 10), inning("A", 200, 10), inning("B", 180, 5)},
			cricket.OutcomeDraw, "", cricket.Margin{}, "Match drawn"},
		{"innings", []cricket.Inning{inning("A", 150, 10), inning("B", 400, 10), inning("A", 200, 10)},
			cricket.OutcomeWin, "B", cricket.Margin{Runs: 50, Innings: true}, "Team B won by an innings and 50 runs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := cricket.MatchResult{Innings: tc.inns}
			decideMultiDay(&res, teamNames)
			if res.Outcome != tc.outcome || res.WinnerID != tc.winner || res.Margin != tc.margin || res.Summary != tc.summary {
				t.Fatalf("got %s/%q/%+v/%q", res.Outcome, res.WinnerID, res.Margin, res.Summary)
			}
		})
	}
}

func TestRoundRobin(t *testing.T) {
	for group, want := range map[string]bool{
		"":                   true,
		"Round-Robin":        true,
		"round robin":        true,
		"league":             true,
		"League Stage":       true,
		"Semi-Finals":        false,
		"Final":              false,
		"Eliminator":         false,
		"Round of 16":        false,
		"Second Round":       false,
		"Super League Final": false,
	} {
		if got := RoundRobin(group); got != want {
			t.Fatalf("RoundRobin(%q)=%v want %v", group, got, want)
		}
	}
}

func fixture(format, ground string) Fixture {
	return Fixture{MatchNumber: 1, Format: format, Ground: ground, Home: testTeam("A"), Away: testTeam("B")}
}

func TestSimulateMatchReproducible(t *testing.T) {
	for _, format := range []string{"T20", "ODI", "Test"} {
		a, err := NewSimulator(testRules(), NewSeededRNG(21)).SimulateMatch(fixture(format, "Riverside"))
		if err != nil {
			t.Fatal(err)
		}
		b, err := NewSimulator(testRules(), NewSeededRNG(21)).SimulateMatch(fixture(format, "Riverside"))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: same seed produced different matches:\n%s\n%s", format, a.Summary, b.Summary)
		}
	}
}

func TestSimulateMatchShape(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		res, err := NewSimulator(testRules(), NewSeededRNG(seed)).SimulateMatch(fixture("T20", "Riverside"))
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Innings) != 2 {
			t.Fatalf("limited match has %d innings", len(res.Innings))
		}
		if res.Innings[0].TeamID == res.Innings[1].TeamID {
			t.Fatal("same side batted twice")
		}
		if res.Target != res.Innings[0].Score+1 || res.Innings[1].Target != res.Target {
			t.Fatalf("target %d after first innings of %d", res.Target, res.Innings[0].Score)
		}
		if res.Toss == nil || res.Toss.Decision != "bowl" {
			t.Fatalf("flat pitch toss winner should bowl: %+v", res.Toss)
		}
		if res.Innings[1].TeamID != res.Toss.WinnerID {
			t.Fatal("toss winner should bat second after choosing to bowl")
		}
		if res.Outcome == cricket.OutcomeDraw {
			t.Fatal("limited matches cannot be drawn")
		}
		if res.Outcome == cricket.OutcomeWin && (res.WinnerID == "" || res.Summary == "") {
			t.Fatalf("incomplete win: %+v", res)
		}
		if res.ManOfTheMatch == nil {
			t.Fatal("no man of the match")
		}
	}

	for seed := uint64(0); seed < 5; seed++ {
		res, err := NewSimulator(testRules(), NewSeededRNG(seed)).SimulateMatch(fixture("Test", "Old Town"))
		if err != nil {
			t.Fatal(err)
		}
		n := len(res.Innings)
		if n != 3 && n != 4 {
			t.Fatalf("multi-day match has %d innings", n)
		}
		if n == 3 && (!res.Margin.Innings || res.Target != 0) {
			t.Fatalf("three innings should mean an innings win with no target: %s target=%d", res.Summary, res.Target)
		}
		if n == 4 && res.Target != res.Innings[3].Target {
			t.Fatalf("target %d disagrees with fourth innings %d", res.Target, res.Innings[3].Target)
		}
		if res.Innings[0].TeamID != res.Innings[2].TeamID || res.Innings[1].TeamID == res.Innings[0].TeamID {
			t.Fatal("multi-day batting order must alternate")
		}
		if res.Toss == nil || res.Toss.Decision != "bat" {
			t.Fatalf("multi-day toss winner should bat: %+v", res.Toss)
		}
	}
}

func TestSimulateMatchBattingFirst(t *testing.T) {
	f := fixture("ODI", "Riverside")
	f.BattingFirst = "B"
	res, err := NewSimulator(testRules(), NewSeededRNG(4)).SimulateMatch(f)
	if err != nil {
		t.Fatal(err)
	}
	if res.Innings[0].TeamID != "B" || res.Toss != nil {
		t.Fatalf("B should bat first without a toss, got %s toss=%v", res.Innings[0].TeamID, res.Toss)
	}

	f.BattingFirst = "C"
	if _, err := NewSimulator(testRules(), NewSeededRNG(4)).SimulateMatch(f); !errors.Is(err, cricket.ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestSimulateMatchTableLimits(t *testing.T) {
	res, err := NewSimulator(testRules(), NewSeededRNG(2)).SimulateMatch(fixture("T20", "Old Town"))
	if err != nil {
		t.Fatal(err)
	}
	inn1 := res.Innings[0]
	if inn1.WicketCap != 3 || inn1.Wickets > 3 {
		t.Fatalf("first innings should be capped at 3 wickets: %+v", inn1.Scoreline())
	}
	if inn1.Score > 60+6 {
		t.Fatalf("first innings ran past 60: %d", inn1.Score)
	}
	if res.Innings[1].WicketCap != 10 {
		t.Fatalf("second innings has no cap configured, got %d", res.Innings[1].WicketCap)
	}

	f := fixture("T20", "Old Town")
	f.Limits = map[int]cricket.ScoreLimits{1: {MaxWickets: 1}}
	res, err = NewSimulator(testRules(), NewSeededRNG(2)).SimulateMatch(f)
	if err != nil {
		t.Fatal(err)
	}
	if res.Innings[0].WicketCap != 1 {
		t.Fatalf("fixture limits should win over tables, cap=%d", res.Innings[0].WicketCap)
	}
}

func TestSimulateMatchConfigErrors(t *testing.T) {
	sim := NewSimulator(testRules(), NewSeededRNG(1))

	f := fixture("T20", "Riverside")
	f.Away.Lineup = f.Away.Lineup[:10]
	if _, err := sim.SimulateMatch(f); !errors.Is(err, cricket.ErrInvalidTeam) {
		t.Fatalf("short lineup: %v", err)
	}

	f = fixture("T20", "Riverside")
	f.Away = f.Home
	if _, err := sim.SimulateMatch(f); !errors.Is(err, cricket.ErrInvalidTeam) {
		t.Fatalf("same team twice: %v", err)
	}

	f = fixture("T10", "Riverside")
	if _, err := sim.SimulateMatch(f); !errors.Is(err, cricket.ErrUnknownFormat) {
		t.Fatalf("unknown format: %v", err)
	}

	f = fixture("T20", "")
	f.Pitch = "dusty"
	if _, err := sim.SimulateMatch(f); err != nil {
		t.Fatalf("pitch without ground should play: %v", err)
	}
	f.Pitch = "dusti"
	_, err := sim.SimulateMatch(f)
	if !errors.Is(err, cricket.ErrUnknownPitch) || !strings.Contains(err.Error(), `did you mean "dusty"`) {
		t.Fatalf("unknown pitch: %v", err)
	}

	f = fixture("T20", "Nowhere")
	if _, err := sim.SimulateMatch(f); !errors.Is(err, cricket.ErrUnknownPitch) {
		t.Fatalf("unknown ground: %v", err)
	}
	f = fixture("T20", "")
	if _, err := sim.SimulateMatch(f); !errors.Is(err, cricket.ErrUnknownPitch) {
		t.Fatalf("no pitch at all: %v", err)
	}
}

func TestSimulateMatchRejectsSideWithoutBowlers(t *testing.T) {
	f := fixture("T20", "Riverside")
	f.BattingFirst = "A"
	for i := range f.Away.Lineup {
		f.Away.Lineup[i].Role = cricket.RoleWicketKeeper
	}
	_, err := NewSimulator(testRules(), NewSeededRNG(1)).SimulateMatch(f)
	if !errors.Is(err, cricket.ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
}

type recordingCommentator struct{ n int }

func (c *recordingCommentator) Line(ev BallEvent) string {
	c.n++
	return ev.Label
}

func TestObserverSeesEveryBall(t *testing.T) {
	var events []BallEvent
	com := &recordingCommentator{}
	sim := NewSimulator(testRules(), NewSeededRNG(6),
		WithObserver(func(ev BallEvent) { events = append(events, ev) }),
		WithCommentator(com))
	res, err := sim.SimulateMatch(fixture("T20", "Riverside"))
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, in := range res.Innings {
		total += in.Balls
	}
	if len(events) != total || com.n != total {
		t.Fatalf("observed %d events, commented %d, bowled %d", len(events), com.n, total)
	}
	for _, ev := range events {
		if ev.Commentary != ev.Label {
			t.Fatalf("commentary not attached: %+v", ev)
		}
	}
}
