// Package service exposes match simulation and projection over the
// currently loaded rules tables.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xtding233/cricket-sim/internal/commentary"
	"github.com/xtding233/cricket-sim/internal/cricket"
	"github.com/xtding233/cricket-sim/internal/engine"
	"github.com/xtding233/cricket-sim/internal/projection"
)

// ErrBadRequest marks errors caused by the caller's input.
var ErrBadRequest = errors.New("bad request")

// DefaultTrials is used when a projection request does not name a count.
const DefaultTrials = 1000

// RulesSource supplies the active rules; *tables.Store implements it.
type RulesSource interface {
	Rules() cricket.Rules
}

type SimulateRequest struct {
	Fixture engine.Fixture `json:"fixture"`
	// Seed makes the match reproducible; nil uses the crypto source.
	Seed *uint64 `json:"seed,omitempty"`
	// Events returns every ball with commentary alongside the result.
	Events bool `json:"events,omitempty"`
}

type SimulateResponse struct {
	Result cricket.MatchResult `json:"result"`
	Events []engine.BallEvent  `json:"events,omitempty"`
}

type ProjectRequest struct {
	Fixture engine.Fixture `json:"fixture"`
	Trials  int            `json:"trials,omitempty"`
	Seed    uint64         `json:"seed,omitempty"`
}

type ProjectResponse struct {
	RulesVersion string                `json:"rules_version"`
	Projection   projection.Projection `json:"projection"`
}

// Simulation serves simulate and project requests.
type Simulation struct {
	rules   RulesSource
	workers int
	logger  *slog.Logger
}

func New(rules RulesSource, workers int, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Simulation{rules: rules, workers: workers, logger: logger}
}

// Simulate plays one match.
func (s *Simulation) Simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error) {
	if err := ctx.Err(); err != nil {
		return SimulateResponse{}, err
	}

	var rng engine.RandomSource
	if req.Seed != nil {
		rng = engine.NewSeededRNG(*req.Seed)
	}

	var (
		mu     sync.Mutex
		events []engine.BallEvent
	)
	opts := []engine.Option{engine.WithLogger(s.logger)}
	if req.Events {
		opts = append(opts,
			engine.WithCommentator(commentary.New(nil)),
			engine.WithObserver(func(ev engine.BallEvent) {
				mu.Lock()
				events = append(events, ev)
				mu.Unlock()
			}))
	}

	res, err := engine.NewSimulator(s.rules.Rules(), rng, opts...).SimulateMatch(req.Fixture)
	if err != nil {
		return SimulateResponse{}, classify(err)
	}
	s.logger.Info("match simulated", "match", res.MatchNumber, "format", res.Format, "summary", res.Summary)
	return SimulateResponse{Result: res, Events: events}, nil
}

// Project runs a Monte Carlo projection of one fixture.
func (s *Simulation) Project(ctx context.Context, req ProjectRequest) (ProjectResponse, error) {
	trials := req.Trials
	switch {
	case trials == 0:
		trials = DefaultTrials
	case trials < 0:
		return ProjectResponse{}, fmt.Errorf("%w: trials must be positive, got %d", ErrBadRequest, trials)
	}

	rules := s.rules.Rules()
	p, err := projection.Run(ctx, rules, projection.Params{
		Fixture: req.Fixture,
		Trials:  trials,
		Seed:    req.Seed,
		Workers: s.workers,
	}, engine.WithLogger(s.logger))
	if err != nil {
		return ProjectResponse{}, classify(err)
	}
	s.logger.Info("fixture projected", "trials", p.Trials, "home_win", p.HomeWin, "away_win", p.AwayWin)
	return ProjectResponse{RulesVersion: rules.Version, Projection: p}, nil
}

// classify marks configuration and input errors as bad requests.
func classify(err error) error {
	switch {
	case errors.Is(err, cricket.ErrInvalidTeam),
		errors.Is(err, cricket.ErrUnknownFormat),
		errors.Is(err, cricket.ErrUnknownPitch),
		errors.Is(err, projection.ErrTooManyTrials):
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return err
}
