package engine

import (
	"fmt"
	"log/slog"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Fixture is everything the orchestrator needs for one match.
type Fixture struct {
	MatchNumber int    `json:"match_number"`
	Format      string `json:"format"`
	Ground      string `json:"ground,omitempty"`
	Pitch       string `json:"pitch,omitempty"` // overrides the ground's pitch

	Home cricket.Team `json:"home"`
	Away cricket.Team `json:"away"`

	// Group is the competition stage, e.g. "Round-Robin" or "Semi-Finals".
	Group string `json:"group,omitempty"`
	// Standings maps team ID to current league position (1 is top).
	Standings map[string]int `json:"standings,omitempty"`

	// BattingFirst skips the toss when set to one of the team IDs.
	BattingFirst string `json:"batting_first,omitempty"`

	HomeTactics cricket.Tactics `json:"home_tactics,omitempty"`
	AwayTactics cricket.Tactics `json:"away_tactics,omitempty"`
	AutoTactics bool            `json:"auto_tactics,omitempty"`

	// Limits overrides the tables' score caps, keyed by innings number.
	Limits map[int]cricket.ScoreLimits `json:"limits,omitempty"`
}

// Simulator plays matches against one set of rules and one random source.
// It holds no other state, so separate Simulators may run concurrently.
type Simulator struct {
	rules       cricket.Rules
	rng         RandomSource
	observer    Observer
	commentator Commentator
	logger      *slog.Logger
}

type Option func(*Simulator)

func WithObserver(o Observer) Option { return func(s *Simulator) { s.observer = o } }

func WithCommentator(c Commentator) Option { return func(s *Simulator) { s.commentator = c } }

func WithLogger(l *slog.Logger) Option { return func(s *Simulator) { s.logger = l } }

// NewSimulator builds a simulator; a nil rng uses the crypto source.
func NewSimulator(rules cricket.Rules, rng RandomSource, opts ...Option) *Simulator {
	if rng == nil {
		rng = DefaultRNG()
	}
	s := &Simulator{rules: rules, rng: rng, logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// side is a team together with its chosen tactics.
type side struct {
	team    cricket.Team
	tactics cricket.Tactics
}

// SimulateMatch plays a full match. Configuration errors abort before a
// ball is bowled and no partial result is returned.
func (s *Simulator) SimulateMatch(f Fixture) (cricket.MatchResult, error) {
	format, pitch, err := s.resolve(f)
	if err != nil {
		return cricket.MatchResult{}, err
	}

	home := side{team: f.Home, tactics: f.HomeTactics}
	away := side{team: f.Away, tactics: f.AwayTactics}
	first, second, toss, err := s.battingOrder(f, format, pitch, home, away)
	if err != nil {
		return cricket.MatchResult{}, err
	}

	res := cricket.MatchResult{
		MatchNumber: f.MatchNumber,
		Format:      format.Name,
		Ground:      f.Ground,
		Pitch:       pitch.Name,
		Toss:        toss,
	}

	play := func(n int, bat, bowl side, target int) (cricket.Inning, error) {
		cfg := InningsConfig{
			Number:      n,
			Batting:     bat.team,
			Bowling:     bowl.team,
			Format:      format,
			Pitch:       pitch,
			Profiles:    s.rules.Matrix(format.Family),
			Tactics:     s.rules.Tactics,
			Target:      target,
			Limits:      s.limits(f, format, n),
			Modes:       cricket.Tactics{Batting: bat.tactics.Batting, Bowling: bowl.tactics.Bowling},
			AutoTactics: f.AutoTactics,
			RNG:         s.rng,
			Observer:    s.observer,
			Commentator: s.commentator,
			Logger:      s.logger,
		}
		return RunInnings(cfg)
	}

	names := map[string]string{f.Home.ID: f.Home.DisplayName(), f.Away.ID: f.Away.DisplayName()}

	if !format.MultiInnings() {
		inn1, err := play(1, first, second, 0)
		if err != nil {
			return cricket.MatchResult{}, err
		}
		inn2, err := play(2, second, first, inn1.Score+1)
		if err != nil {
			return cricket.MatchResult{}, err
		}
		res.Innings = []cricket.Inning{inn1, inn2}
		res.Target = inn2.Target
		decideLimited(&res, names, f.Group, f.Standings)
	} else {
		var innings []cricket.Inning
		order := []struct{ bat, bowl side }{{first, second}, {second, first}, {first, second}}
		for i, o := range order {
			inn, err := play(i+1, o.bat, o.bowl, 0)
			if err != nil {
				return cricket.MatchResult{}, err
			}
			innings = append(innings, inn)
		}
		target := MultiDayTarget(innings[0].Score, innings[1].Score, innings[2].Score)
		if target > 0 {
			inn4, err := play(4, second, first, target)
			if err != nil {
				return cricket.MatchResult{}, err
			}
			innings = append(innings, inn4)
			res.Target = target
		}
		res.Innings = innings
		decideMultiDay(&res, names)
	}

	res.ManOfTheMatch = ManOfTheMatch(res.Innings)

	s.logger.Debug("match simulated",
		"match", res.MatchNumber, "format", res.Format, "pitch", res.Pitch,
		"outcome", res.Outcome, "winner", res.WinnerID, "summary", res.Summary)
	return res, nil
}

// resolve validates teams and looks up format and pitch.
func (s *Simulator) resolve(f Fixture) (cricket.Format, cricket.PitchModifier, error) {
	if err := f.Home.Validate(); err != nil {
		return cricket.Format{}, cricket.PitchModifier{}, err
	}
	if err := f.Away.Validate(); err != nil {
		return cricket.Format{}, cricket.PitchModifier{}, err
	}
	if f.Home.ID == f.Away.ID {
		return cricket.Format{}, cricket.PitchModifier{}, fmt.Errorf("%w: both sides are %q", cricket.ErrInvalidTeam, f.Home.ID)
	}

	format, err := s.rules.Format(f.Format)
	if err != nil {
		return cricket.Format{}, cricket.PitchModifier{}, err
	}

	var pitch cricket.PitchModifier
	switch {
	case f.Pitch != "":
		pitch, err = s.rules.Pitch(f.Pitch)
	case f.Ground != "":
		pitch, err = s.rules.PitchForGround(f.Ground)
	default:
		err = fmt.Errorf("%w: fixture names neither pitch nor ground", cricket.ErrUnknownPitch)
	}
	if err != nil {
		return cricket.Format{}, cricket.PitchModifier{}, err
	}
	return format, pitch, nil
}

// battingOrder honours BattingFirst or tosses a coin.
func (s *Simulator) battingOrder(f Fixture, format cricket.Format, pitch cricket.PitchModifier, home, away side) (side, side, *cricket.Toss, error) {
	switch f.BattingFirst {
	case "":
	case home.team.ID:
		return home, away, nil, nil
	case away.team.ID:
		return away, home, nil, nil
	default:
		return side{}, side{}, nil, fmt.Errorf("%w: batting_first %q plays in neither side", cricket.ErrInvalidTeam, f.BattingFirst)
	}

	homeWins, err := Chance(0.5, s.rng)
	if err != nil {
		return side{}, side{}, nil, err
	}
	winner, loser := away, home
	if homeWins {
		winner, loser = home, away
	}

	// Chasing on a pitch that punishes the chase is avoided.
	decision := "bat"
	if !format.MultiInnings() && pitch.ChasePenalty >= 1 {
		decision = "bowl"
	}
	toss := &cricket.Toss{WinnerID: winner.team.ID, Decision: decision}
	if decision == "bat" {
		return winner, loser, toss, nil
	}
	return loser, winner, toss, nil
}

// limits picks the fixture override, then the tables' cap, for innings n.
func (s *Simulator) limits(f Fixture, format cricket.Format, n int) *cricket.ScoreLimits {
	if l, ok := f.Limits[n]; ok {
		return &l
	}
	if l, ok := s.rules.ScoreLimits(f.Ground, format.Name, n); ok {
		return &l
	}
	return nil
}
