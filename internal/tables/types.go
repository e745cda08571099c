package tables

// RawTables is the YAML schema of the rules tables. Pointer fields tell
// "unset" apart from zero so that overrides merge field by field.
type RawTables struct {
	Version     string                                   `yaml:"version"`
	Formats     map[string]RawFormat                     `yaml:"formats,omitempty"`
	Pitches     map[string]RawPitch                      `yaml:"pitches,omitempty"`
	Grounds     map[string]string                        `yaml:"grounds,omitempty"`
	Profiles    map[string]map[int]map[string]RawProfile `yaml:"profiles,omitempty"`     // family -> tier -> style
	ScoreLimits map[string]map[string][]RawLimit         `yaml:"score_limits,omitempty"` // ground -> format -> innings
	Tactics     *RawTactics                              `yaml:"tactics,omitempty"`
	Notes       string                                   `yaml:"notes,omitempty"`
}

type RawFormat struct {
	Family      string `yaml:"family"`
	Overs       *int   `yaml:"overs"`
	BowlerQuota *int   `yaml:"bowler_quota,omitempty"`
	Innings     *int   `yaml:"innings"`
}

type RawPitch struct {
	PerFamily        map[string]RawFamilyMod `yaml:"per_family,omitempty"`
	PaceBonus        *float64                `yaml:"pace_bonus,omitempty"`
	SpinBonus        *float64                `yaml:"spin_bonus,omitempty"`
	ChasePenalty     *float64                `yaml:"chase_penalty,omitempty"`
	Deterioration    *float64                `yaml:"deterioration,omitempty"`
	Unpredictability *float64                `yaml:"unpredictability,omitempty"`
	Easing           string                  `yaml:"easing,omitempty"`
}

type RawFamilyMod struct {
	RunRate      *float64 `yaml:"run_rate,omitempty"`
	WicketChance *float64 `yaml:"wicket_chance,omitempty"`
}

type RawProfile struct {
	Average    float64 `yaml:"average"`
	StrikeRate float64 `yaml:"strike_rate"`
}

type RawLimit struct {
	MaxRuns    int `yaml:"max_runs,omitempty"`
	MaxWickets int `yaml:"max_wickets,omitempty"`
}

type RawTactics struct {
	Batting map[string]RawMultiplier `yaml:"batting,omitempty"`
	Bowling map[string]RawMultiplier `yaml:"bowling,omitempty"`
}

type RawMultiplier struct {
	Runs    float64 `yaml:"runs"`
	Wickets float64 `yaml:"wickets"`
}
