package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

var ErrInningsComplete = errors.New("innings is complete")

// recentBalls is how many ball labels an innings keeps for display.
const recentBalls = 12

// InningsConfig describes one innings to be played.
type InningsConfig struct {
	Number   int // 1-based within the match
	Batting  cricket.Team
	Bowling  cricket.Team
	Format   cricket.Format
	Pitch    cricket.PitchModifier
	Profiles cricket.ProfileMatrix
	Tactics  cricket.TacticsTable

	// Target is the score the batting side must reach; 0 when not chasing.
	Target int
	Limits *cricket.ScoreLimits

	// Modes chosen by the batting and bowling sides.
	Modes cricket.Tactics
	// AutoTactics lets the engine flip the batting toggle on the fly.
	AutoTactics bool

	RNG         RandomSource
	Observer    Observer
	Commentator Commentator
	Logger      *slog.Logger
}

// Innings is the ball-by-ball state machine of one team's innings.
type Innings struct {
	cfg InningsConfig
	inn cricket.Inning

	striker    int // lineup indices
	nonStriker int
	nextIn     int
	batRow     map[int]int // lineup index -> row in inn.Batting

	options  []int       // bowling options, lineup indices in rotation order
	bowlRow  map[int]int // lineup index -> row in inn.Bowling
	bowler   int         // lineup index of the current bowler
	rotation int         // position of bowler within options

	ballsInOver int
	overRuns    int
	maxRuns     int
	done        bool
}

// NewInnings validates the configuration and puts the openers in.
func NewInnings(cfg InningsConfig) (*Innings, error) {
	if err := cfg.Batting.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Bowling.Validate(); err != nil {
		return nil, err
	}
	if cfg.Format.MaxOvers <= 0 {
		return nil, fmt.Errorf("%w %q: max overs must be positive", cricket.ErrUnknownFormat, cfg.Format.Name)
	}
	if cfg.RNG == nil {
		cfg.RNG = DefaultRNG()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Number <= 0 {
		cfg.Number = 1
	}

	wicketCap := cricket.LineupSize - 1
	maxRuns := 0
	if l := cfg.Limits; l != nil {
		if l.MaxWickets > 0 && l.MaxWickets < wicketCap {
			wicketCap = l.MaxWickets
		}
		maxRuns = l.MaxRuns
	}

	s := &Innings{
		cfg: cfg,
		inn: cricket.Inning{
			Number:        cfg.Number,
			TeamID:        cfg.Batting.ID,
			BowlingTeamID: cfg.Bowling.ID,
			WicketCap:     wicketCap,
			MaxBalls:      cfg.Format.MaxBalls(),
			Target:        max(cfg.Target, 0),
		},
		striker:    0,
		nonStriker: 1,
		nextIn:     2,
		batRow:     make(map[int]int),
		bowlRow:    make(map[int]int),
		maxRuns:    maxRuns,
	}
	s.takeGuard(0)
	s.takeGuard(1)

	s.options = cfg.Bowling.BowlingOptions()
	for _, i := range s.options {
		p := cfg.Bowling.Lineup[i]
		s.bowlRow[i] = len(s.inn.Bowling)
		s.inn.Bowling = append(s.inn.Bowling, cricket.BowlingPerformance{PlayerID: p.ID, Name: p.Name})
	}
	s.bowler = s.options[0]
	return s, nil
}

// RunInnings plays an innings to completion.
func RunInnings(cfg InningsConfig) (cricket.Inning, error) {
	s, err := NewInnings(cfg)
	if err != nil {
		return cricket.Inning{}, err
	}
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return cricket.Inning{}, err
		}
	}
	return s.Result(), nil
}

// Done reports whether an innings-ending condition has fired.
func (s *Innings) Done() bool { return s.done }

// Result returns a copy of the innings; later steps never alter it.
func (s *Innings) Result() cricket.Inning {
	out := s.inn
	out.Batting = append([]cricket.BattingPerformance(nil), s.inn.Batting...)
	out.Bowling = append([]cricket.BowlingPerformance(nil), s.inn.Bowling...)
	out.Recent = append([]string(nil), s.inn.Recent...)
	out.FallOfWickets = append([]cricket.FallOfWicket(nil), s.inn.FallOfWickets...)
	return out
}

// Step bowls one legal delivery.
func (s *Innings) Step() (BallEvent, error) {
	if s.done {
		return BallEvent{}, ErrInningsComplete
	}

	modes := s.cfg.Modes
	if s.cfg.AutoTactics {
		modes = autoTactics(modes, s.inn, s.cfg.Format)
	}

	striker := s.cfg.Batting.Lineup[s.striker]
	bowler := s.cfg.Bowling.Lineup[s.bowler]
	progress := matchProgress(s.cfg.Format, s.inn.Number, s.inn.Balls)

	out, err := ResolveBall(BallInput{
		Striker:  striker,
		Bowler:   bowler,
		Family:   s.cfg.Format.Family,
		Profiles: s.cfg.Profiles,
		Pitch:    s.cfg.Pitch,
		Effect:   s.cfg.Tactics.Effect(modes),
		Chasing:  s.inn.Target > 0,
		Wear:     WearFactor(s.cfg.Pitch, progress),
	}, s.cfg.RNG)
	if err != nil {
		return BallEvent{}, fmt.Errorf("innings %d ball %d: %w", s.inn.Number, s.inn.Balls+1, err)
	}

	s.inn.Balls++
	s.ballsInOver++
	bat := &s.inn.Batting[s.batRow[s.striker]]
	bowl := &s.inn.Bowling[s.bowlRow[s.bowler]]
	bat.Balls++
	bowl.Balls++

	if out.Wicket {
		s.inn.Wickets++
		bowl.Wickets++
		bat.Out = true
		bat.Dismissal = out.Dismissal
		s.inn.FallOfWickets = append(s.inn.FallOfWickets, cricket.FallOfWicket{
			Score:  s.inn.Score,
			Wicket: s.inn.Wickets,
			Over:   s.inn.Overs(),
			Batter: striker.Name,
		})
	} else {
		s.inn.Score += out.Runs
		bat.Runs += out.Runs
		bowl.Runs += out.Runs
		s.overRuns += out.Runs
		switch out.Runs {
		case 4:
			bat.Fours++
		case 6:
			bat.Sixes++
		}
	}

	s.inn.Recent = append(s.inn.Recent, out.Label())
	if n := len(s.inn.Recent); n > recentBalls {
		s.inn.Recent = s.inn.Recent[n-recentBalls:]
	}

	s.done = s.finished()

	if out.Wicket && !s.done {
		s.striker = s.nextIn
		s.nextIn++
		s.takeGuard(s.striker)
	} else if !out.Wicket && out.Runs%2 == 1 {
		s.swapStrike()
	}

	ev := BallEvent{
		Innings: s.inn.Number,
		TeamID:  s.inn.TeamID,
		Ball:    s.inn.Balls,
		Overs:   s.inn.Overs(),
		Striker: striker.Name,
		Bowler:  bowler.Name,
		Runs:    out.Runs,
		Wicket:  out.Wicket,
		Label:   out.Label(),
		Score:   s.inn.Score,
		Wickets: s.inn.Wickets,
	}

	if s.ballsInOver == 6 {
		ev.EndOfOver = true
		if s.overRuns == 0 {
			bowl.Maidens++
			ev.Maiden = true
		}
		s.swapStrike()
		s.ballsInOver = 0
		s.overRuns = 0
		if !s.done {
			s.changeBowler()
		}
	}

	if s.cfg.Commentator != nil {
		ev.Commentary = s.cfg.Commentator.Line(ev)
	}
	if s.cfg.Observer != nil {
		s.cfg.Observer(ev)
	}
	return ev, nil
}

// finished checks every innings-ending condition.
func (s *Innings) finished() bool {
	in := &s.inn
	if in.Wickets >= in.WicketCap {
		in.AllOut = true
		return true
	}
	if in.Balls >= in.MaxBalls {
		return true
	}
	if s.maxRuns > 0 && in.Score >= s.maxRuns {
		return true
	}
	return in.Target > 0 && in.Score >= in.Target
}

func (s *Innings) takeGuard(i int) {
	p := s.cfg.Batting.Lineup[i]
	s.batRow[i] = len(s.inn.Batting)
	s.inn.Batting = append(s.inn.Batting, cricket.BattingPerformance{PlayerID: p.ID, Name: p.Name})
}

func (s *Innings) swapStrike() {
	s.striker, s.nonStriker = s.nonStriker, s.striker
}

// changeBowler moves to the next option in rotation that did not bowl the
// previous over and is under quota. When every such option is capped the
// quota is relaxed for this over.
func (s *Innings) changeBowler() {
	n := len(s.options)
	quota := s.cfg.Format.BowlerQuota
	for pass := 0; pass < 2; pass++ {
		for k := 1; k <= n; k++ {
			pos := (s.rotation + k) % n
			cand := s.options[pos]
			if cand == s.bowler && n > 1 {
				continue
			}
			if pass == 0 && quota > 0 && s.inn.Bowling[s.bowlRow[cand]].Balls/6 >= quota {
				continue
			}
			if pass == 1 {
				s.cfg.Logger.Debug("bowler quota relaxed",
					"innings", s.inn.Number, "over", s.inn.Balls/6+1,
					"bowler", s.cfg.Bowling.Lineup[cand].ID, "quota", quota)
			}
			s.rotation = pos
			s.bowler = cand
			return
		}
	}
}
