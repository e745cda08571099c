package cricket

import "strconv"

// BattingPerformance is one batter's line in an innings.
type BattingPerformance struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	Runs      int    `json:"runs"`
	Balls     int    `json:"balls"`
	Fours     int    `json:"fours"`
	Sixes     int    `json:"sixes"`
	Out       bool   `json:"out"`
	Dismissal string `json:"dismissal,omitempty"`
}

func (b BattingPerformance) StrikeRate() float64 { return StrikeRate(b.Runs, b.Balls) }

// BowlingPerformance is one bowler's line in an innings.
type BowlingPerformance struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Balls    int    `json:"balls"`
	Maidens  int    `json:"maidens"`
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
}

func (b BowlingPerformance) Overs() string    { return FormatOvers(b.Balls) }
func (b BowlingPerformance) Economy() float64 { return Economy(b.Runs, b.Balls) }

// FallOfWicket marks the score when a wicket fell.
type FallOfWicket struct {
	Score  int    `json:"score"`
	Wicket int    `json:"wicket"`
	Over   string `json:"over"`
	Batter string `json:"batter"`
}

// Inning is one team's completed (or in-progress) turn at the crease.
type Inning struct {
	Number        int    `json:"number"` // 1-based
	TeamID        string `json:"team_id"`
	BowlingTeamID string `json:"bowling_team_id"`

	Score     int `json:"score"`
	Wickets   int `json:"wickets"`
	WicketCap int `json:"wicket_cap"`
	Balls     int `json:"balls"`
	MaxBalls  int `json:"max_balls"`
	Target    int `json:"target,omitempty"` // 0 when not chasing

	Batting       []BattingPerformance `json:"batting"`
	Bowling       []BowlingPerformance `json:"bowling"`
	Recent        []string             `json:"recent"`
	FallOfWickets []FallOfWicket       `json:"fall_of_wickets,omitempty"`

	AllOut bool `json:"all_out"`
}

func (in Inning) Overs() string     { return FormatOvers(in.Balls) }
func (in Inning) RunRate() float64  { return RunRate(in.Score, in.Balls) }
func (in Inning) Chasing() bool     { return in.Target > 0 }
func (in Inning) TargetMet() bool   { return in.Target > 0 && in.Score >= in.Target }
func (in Inning) BallsLeft() int    { return max(in.MaxBalls-in.Balls, 0) }
func (in Inning) WicketsLeft() int  { return max(in.WicketCap-in.Wickets, 0) }
func (in Inning) Scoreline() string { return scoreline(in.Score, in.Wickets, in.WicketCap) }

func scoreline(runs, wkts, wicketCap int) string {
	if wkts >= wicketCap {
		return strconv.Itoa(runs)
	}
	return strconv.Itoa(runs) + "/" + strconv.Itoa(wkts)
}
