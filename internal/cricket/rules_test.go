package cricket

import (
	"errors"
	"strings"
	"testing"
)

func testRules() Rules {
	return Rules{
		Formats: map[string]Format{
			"T20": {Name: "T20", Family: FamilyShort, MaxOvers: 20, Innings: 2},
			"ODI": {Name: "ODI", Family: FamilyLimited, MaxOvers: 50, Innings: 2},
		},
		Pitches: map[string]PitchModifier{
			"green": {Name: "green", PaceBonus: 0.2},
			"dusty": {Name: "dusty", SpinBonus: 0.3},
		},
		Grounds: map[string]string{"Northfield Park": "green", "Old Quarry": "dusty"},
		Limits: map[string]map[string][]ScoreLimits{
			"Old Quarry": {"T20": {{MaxRuns: 150}, {}}},
		},
	}
}

func TestRulesLookups(t *testing.T) {
	r := testRules()
	if f, err := r.Format("ODI"); err != nil || f.MaxBalls() != 300 {
		t.Fatalf("Format(ODI)=%+v, %v", f, err)
	}
	p, err := r.PitchForGround("Old Quarry")
	if err != nil || p.Name != "dusty" {
		t.Fatalf("PitchForGround=%+v, %v", p, err)
	}
}

func TestRulesSuggestions(t *testing.T) {
	r := testRules()
	cases := []struct {
		err      error
		sentinel error
		hint     string
	}{
		{errOf(r.Format("T2O")), ErrUnknownFormat, `did you mean "T20"?`},
		{errOf(r.Pitch("gren")), ErrUnknownPitch, `did you mean "green"?`},
		{errOf(r.PitchForGround("Northfeld Park")), ErrUnknownPitch, `did you mean "Northfield Park"?`},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) || !strings.Contains(tc.err.Error(), tc.hint) {
			t.Fatalf("got %v, want %v with %q", tc.err, tc.sentinel, tc.hint)
		}
	}

	_, err := r.Pitch("featherbed")
	if !errors.Is(err, ErrUnknownPitch) || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("distant names get no suggestion: %v", err)
	}
}

func errOf[T any](_ T, err error) error { return err }

func TestRulesScoreLimits(t *testing.T) {
	r := testRules()
	if l, ok := r.ScoreLimits("Old Quarry", "T20", 1); !ok || l.MaxRuns != 150 {
		t.Fatalf("innings 1 limit = %+v, %v", l, ok)
	}
	for _, n := range []int{0, 2, 3} {
		if _, ok := r.ScoreLimits("Old Quarry", "T20", n); ok {
			t.Fatalf("innings %d should have no limit", n)
		}
	}
	if _, ok := r.ScoreLimits("Riverside", "T20", 1); ok {
		t.Fatal("unknown ground should have no limit")
	}
}
