package cricket

// Outcome classifies how a match ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeTie  Outcome = "tie"
	OutcomeDraw Outcome = "draw"
)

// Margin describes a victory. Exactly one of Runs or Wickets is set for a
// win; Innings marks an innings victory (Runs is then the surplus).
type Margin struct {
	Runs    int  `json:"runs,omitempty"`
	Wickets int  `json:"wickets,omitempty"`
	Innings bool `json:"innings,omitempty"`
}

// Award is the Man-of-the-Match reference.
type Award struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	TeamID   string  `json:"team_id"`
	Score    float64 `json:"score"`
	Figures  string  `json:"figures"` // e.g. "87 (54)" or "4/23"
}

// Toss records who won the toss and what they chose.
type Toss struct {
	WinnerID string `json:"winner_id"`
	Decision string `json:"decision"` // "bat" or "bowl"
}

// MatchResult is produced once per completed match and never mutated.
type MatchResult struct {
	MatchNumber int      `json:"match_number"`
	Format      string   `json:"format"`
	Ground      string   `json:"ground,omitempty"`
	Pitch       string   `json:"pitch"`
	Innings     []Inning `json:"innings"`

	Outcome  Outcome `json:"outcome"`
	WinnerID string  `json:"winner_id,omitempty"` // empty on tie or draw
	LoserID  string  `json:"loser_id,omitempty"`
	Margin   Margin  `json:"margin"`
	Summary  string  `json:"summary"`

	// Target is the final chase target. It is 0 when the final innings was
	// not played, which includes an innings victory after three innings.
	Target int `json:"target,omitempty"`

	ManOfTheMatch *Award `json:"man_of_the_match,omitempty"`
	Toss          *Toss  `json:"toss,omitempty"`
}
