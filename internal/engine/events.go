package engine

// BallEvent is published after every delivery for live and background UIs.
type BallEvent struct {
	Innings int    `json:"innings"`
	TeamID  string `json:"team_id"`
	Ball    int    `json:"ball"` // legal balls bowled so far in the innings
	Overs   string `json:"overs"`

	Striker string `json:"striker"`
	Bowler  string `json:"bowler"`
	Runs    int    `json:"runs"`
	Wicket  bool   `json:"wicket"`
	Label   string `json:"label"`

	Score   int `json:"score"`
	Wickets int `json:"wickets"`

	EndOfOver  bool   `json:"end_of_over,omitempty"`
	Maiden     bool   `json:"maiden,omitempty"`
	Commentary string `json:"commentary,omitempty"`
}

// Observer receives ball events. Batch simulations call it from several
// goroutines, so it must be safe for concurrent use there.
type Observer func(BallEvent)

// Commentator turns an event into a line of text. It must not consume the
// match's random source.
type Commentator interface {
	Line(ev BallEvent) string
}
