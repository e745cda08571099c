package cricket

// Format carries the rules of one match format.
type Format struct {
	Name        string `json:"name"`
	Family      Family `json:"family"`
	MaxOvers    int    `json:"max_overs"`    // per innings
	BowlerQuota int    `json:"bowler_quota"` // max overs per bowler, 0 = unlimited
	Innings     int    `json:"innings"`      // 2 or 4
}

// MaxBalls is the legal-ball ceiling of one innings.
func (f Format) MaxBalls() int { return f.MaxOvers * 6 }

// MultiInnings reports a four-innings format.
func (f Format) MultiInnings() bool { return f.Innings == 4 }

// FamilyModifier is the per-family part of a pitch.
type FamilyModifier struct {
	RunRate      float64 `json:"run_rate"`
	WicketChance float64 `json:"wicket_chance"`
}

// Easing shapes how quickly a pitch wears over a match.
type Easing string

const (
	EaseLinear     Easing = "linear"
	EaseOutQuad    Easing = "easeOutQuad"
	EaseInOutCubic Easing = "easeInOutCubic"
)

// PitchModifier is a named set of playing conditions.
type PitchModifier struct {
	Name      string                    `json:"name"`
	PerFamily map[Family]FamilyModifier `json:"per_family"`

	PaceBonus        float64 `json:"pace_bonus"`
	SpinBonus        float64 `json:"spin_bonus"`
	ChasePenalty     float64 `json:"chase_penalty"`
	Deterioration    float64 `json:"deterioration"`
	Unpredictability float64 `json:"unpredictability"`
	Easing           Easing  `json:"easing,omitempty"`
}

// For returns the family modifier, defaulting to neutral conditions.
func (p PitchModifier) For(f Family) FamilyModifier {
	if m, ok := p.PerFamily[f]; ok {
		return m
	}
	return FamilyModifier{RunRate: 1, WicketChance: 1}
}

// ScoreLimits optionally truncates an innings. Zero fields mean no cap.
type ScoreLimits struct {
	MaxRuns    int `json:"max_runs,omitempty"`
	MaxWickets int `json:"max_wickets,omitempty"`
}
