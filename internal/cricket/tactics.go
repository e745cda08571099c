package cricket

import (
	"fmt"
	"strings"
)

// Mode is a simple tactical toggle for either discipline.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeAggressive Mode = "aggressive" // batting: go for runs; bowling: attack the stumps
	ModeDefensive  Mode = "defensive"
)

// ParseMode validates a tactical mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeNormal, nil
	case ModeNormal, ModeAggressive, ModeDefensive:
		return m, nil
	case "attacking":
		return ModeAggressive, nil
	}
	return "", fmt.Errorf("unknown tactical mode %q", s)
}

// Tactics is the state of both toggles for one ball.
type Tactics struct {
	Batting Mode `json:"batting,omitempty"`
	Bowling Mode `json:"bowling,omitempty"`
}

// Multiplier scales expected runs and wicket probability.
type Multiplier struct {
	Runs    float64 `json:"runs"`
	Wickets float64 `json:"wickets"`
}

var neutralMultiplier = Multiplier{Runs: 1, Wickets: 1}

// TacticsTable holds the multipliers for each mode.
type TacticsTable struct {
	Batting map[Mode]Multiplier `json:"batting"`
	Bowling map[Mode]Multiplier `json:"bowling"`
}

// Effect combines the batting and bowling multipliers for t.
func (tt TacticsTable) Effect(t Tactics) Multiplier {
	bat := lookupMultiplier(tt.Batting, t.Batting)
	bowl := lookupMultiplier(tt.Bowling, t.Bowling)
	return Multiplier{
		Runs:    bat.Runs * bowl.Runs,
		Wickets: bat.Wickets * bowl.Wickets,
	}
}

func lookupMultiplier(m map[Mode]Multiplier, mode Mode) Multiplier {
	if mode == "" {
		mode = ModeNormal
	}
	v, ok := m[mode]
	if !ok || v.Runs <= 0 || v.Wickets <= 0 {
		return neutralMultiplier
	}
	return v
}
