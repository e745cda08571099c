package tables

import (
	"fmt"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Normalize turns validated raw tables into the engine's rules.
func Normalize(t RawTables) (cricket.Rules, error) {
	r := cricket.Rules{
		Version:  t.Version,
		Formats:  make(map[string]cricket.Format, len(t.Formats)),
		Pitches:  make(map[string]cricket.PitchModifier, len(t.Pitches)),
		Grounds:  make(map[string]string, len(t.Grounds)),
		Profiles: make(map[cricket.Family]cricket.ProfileMatrix, len(t.Profiles)),
		Limits:   make(map[string]map[string][]cricket.ScoreLimits, len(t.ScoreLimits)),
	}

	for name, f := range t.Formats {
		fam, err := cricket.ParseFamily(f.Family)
		if err != nil {
			return cricket.Rules{}, fmt.Errorf("format %s: %w", name, err)
		}
		r.Formats[name] = cricket.Format{
			Name:        name,
			Family:      fam,
			MaxOvers:    deref(f.Overs, 0),
			BowlerQuota: deref(f.BowlerQuota, 0),
			Innings:     deref(f.Innings, 2),
		}
	}

	for name, p := range t.Pitches {
		pm := cricket.PitchModifier{
			Name:             name,
			PaceBonus:        deref(p.PaceBonus, 0),
			SpinBonus:        deref(p.SpinBonus, 0),
			ChasePenalty:     deref(p.ChasePenalty, 1),
			Deterioration:    deref(p.Deterioration, 0),
			Unpredictability: deref(p.Unpredictability, 0),
			Easing:           cricket.Easing(p.Easing),
		}
		if len(p.PerFamily) > 0 {
			pm.PerFamily = make(map[cricket.Family]cricket.FamilyModifier, len(p.PerFamily))
			for fam, m := range p.PerFamily {
				pm.PerFamily[cricket.Family(fam)] = cricket.FamilyModifier{
					RunRate:      deref(m.RunRate, 1),
					WicketChance: deref(m.WicketChance, 1),
				}
			}
		}
		r.Pitches[name] = pm
	}

	for ground, pitch := range t.Grounds {
		r.Grounds[ground] = pitch
	}

	for fam, tiers := range t.Profiles {
		m := make(cricket.ProfileMatrix, len(tiers))
		for tier, row := range tiers {
			cells := make(map[cricket.Style]cricket.BattingProfile, len(row))
			for style, p := range row {
				s, err := cricket.ParseStyle(style)
				if err != nil {
					return cricket.Rules{}, fmt.Errorf("profiles.%s.%d: %w", fam, tier, err)
				}
				cells[s] = cricket.BattingProfile{Average: p.Average, StrikeRate: p.StrikeRate}
			}
			m[cricket.Tier(tier)] = cells
		}
		if err := m.Validate(); err != nil {
			return cricket.Rules{}, fmt.Errorf("profiles.%s: %w", fam, err)
		}
		r.Profiles[cricket.Family(fam)] = m
	}

	for ground, byFormat := range t.ScoreLimits {
		r.Limits[ground] = make(map[string][]cricket.ScoreLimits, len(byFormat))
		for format, caps := range byFormat {
			out := make([]cricket.ScoreLimits, len(caps))
			for i, c := range caps {
				out[i] = cricket.ScoreLimits{MaxRuns: c.MaxRuns, MaxWickets: c.MaxWickets}
			}
			r.Limits[ground][format] = out
		}
	}

	if t.Tactics != nil {
		var err error
		if r.Tactics.Batting, err = multipliers(t.Tactics.Batting); err != nil {
			return cricket.Rules{}, fmt.Errorf("tactics.batting: %w", err)
		}
		if r.Tactics.Bowling, err = multipliers(t.Tactics.Bowling); err != nil {
			return cricket.Rules{}, fmt.Errorf("tactics.bowling: %w", err)
		}
	}
	return r, nil
}

func multipliers(m map[string]RawMultiplier) (map[cricket.Mode]cricket.Multiplier, error) {
	out := make(map[cricket.Mode]cricket.Multiplier, len(m))
	for name, v := range m {
		mode, err := cricket.ParseMode(name)
		if err != nil {
			return nil, err
		}
		out[mode] = cricket.Multiplier{Runs: v.Runs, Wickets: v.Wickets}
	}
	return out, nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
