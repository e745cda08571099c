package cricket

import (
	"math"
	"testing"
)

func TestFormatOvers(t *testing.T) {
	cases := []struct {
		balls int
		want  string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{6, "1.0"},
		{23, "3.5"},
		{120, "20.0"},
		{-3, "0.0"},
	}
	for _, c := range cases {
		if got := FormatOvers(c.balls); got != c.want {
			t.Fatalf("FormatOvers(%d)=%q want %q", c.balls, got, c.want)
		}
	}
}

func TestRatesGuardZero(t *testing.T) {
	for name, v := range map[string]float64{
		"strike rate": StrikeRate(10, 0),
		"economy":     Economy(10, 0),
		"run rate":    RunRate(0, 0),
	} {
		if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s with zero balls should be 0, got %v", name, v)
		}
	}
	if got := Average(37, 0); got != 37 {
		t.Fatalf("never-out average should equal runs, got %v", got)
	}
}

func TestRatesArePure(t *testing.T) {
	a1, a2 := Average(412, 9), Average(412, 9)
	s1, s2 := StrikeRate(412, 301), StrikeRate(412, 301)
	e1, e2 := Economy(233, 240), Economy(233, 240)
	if a1 != a2 || s1 != s2 || e1 != e2 {
		t.Fatalf("derived rates must be a pure function of counters")
	}
	if diff := e1 - 5.825; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("economy=%v want 5.825", e1)
	}
}

func TestScoreline(t *testing.T) {
	in := Inning{Score: 151, Wickets: 6, WicketCap: 10}
	if got := in.Scoreline(); got != "151/6" {
		t.Fatalf("got %q", got)
	}
	in.Wickets = 10
	if got := in.Scoreline(); got != "151" {
		t.Fatalf("all out should drop wickets, got %q", got)
	}
}
