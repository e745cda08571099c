package tables

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// ErrInvalidTables wraps every validation failure.
var ErrInvalidTables = errors.New("tables validation failed")

// ValidateRaw checks semantic constraints of merged tables and reports
// every violation at once.
func ValidateRaw(t RawTables) error {
	var errs []string

	if len(t.Formats) == 0 {
		errs = append(errs, "formats: at least one format is required")
	}
	used := map[cricket.Family]bool{}
	for _, name := range sortedKeys(t.Formats) {
		f := t.Formats[name]
		fam, err := cricket.ParseFamily(f.Family)
		if err != nil {
			errs = append(errs, fmt.Sprintf("formats.%s.family: %v", name, err))
		} else {
			used[fam] = true
		}
		if f.Overs == nil || *f.Overs <= 0 {
			errs = append(errs, fmt.Sprintf("formats.%s.overs must be > 0", name))
		}
		if f.Innings == nil || (*f.Innings != 2 && *f.Innings != 4) {
			errs = append(errs, fmt.Sprintf("formats.%s.innings must be 2 or 4", name))
		}
		if f.BowlerQuota != nil && *f.BowlerQuota < 0 {
			errs = append(errs, fmt.Sprintf("formats.%s.bowler_quota must be >= 0 (0 means unlimited)", name))
		}
	}

	for _, name := range sortedKeys(t.Pitches) {
		errs = append(errs, validatePitch(name, t.Pitches[name])...)
	}

	for _, ground := range sortedKeys(t.Grounds) {
		if _, ok := t.Pitches[t.Grounds[ground]]; !ok {
			errs = append(errs, fmt.Sprintf("grounds.%s: unknown pitch %q", ground, t.Grounds[ground]))
		}
	}

	for _, fam := range sortedKeys(t.Profiles) {
		if _, err := cricket.ParseFamily(fam); err != nil {
			errs = append(errs, fmt.Sprintf("profiles.%s: %v", fam, err))
			continue
		}
		errs = append(errs, validateMatrix(fam, t.Profiles[fam])...)
	}
	for fam := range used {
		if _, ok := t.Profiles[string(fam)]; !ok {
			errs = append(errs, fmt.Sprintf("profiles.%s is missing but a format uses it", fam))
		}
	}

	for _, ground := range sortedKeys(t.ScoreLimits) {
		for _, format := range sortedKeys(t.ScoreLimits[ground]) {
			if _, ok := t.Formats[format]; !ok {
				errs = append(errs, fmt.Sprintf("score_limits.%s: unknown format %q", ground, format))
			}
			for i, l := range t.ScoreLimits[ground][format] {
				if l.MaxRuns < 0 || l.MaxWickets < 0 || l.MaxWickets > cricket.LineupSize-1 {
					errs = append(errs, fmt.Sprintf("score_limits.%s.%s[%d] must have max_runs >= 0 and max_wickets in [0,10]", ground, format, i))
				}
			}
		}
	}

	if t.Tactics != nil {
		errs = append(errs, validateMultipliers("tactics.batting", t.Tactics.Batting)...)
		errs = append(errs, validateMultipliers("tactics.bowling", t.Tactics.Bowling)...)
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("%w: %s", ErrInvalidTables, strings.Join(errs, "; "))
	}
	return nil
}

func validatePitch(name string, p RawPitch) []string {
	var errs []string
	for _, fam := range sortedKeys(p.PerFamily) {
		if _, err := cricket.ParseFamily(fam); err != nil {
			errs = append(errs, fmt.Sprintf("pitches.%s.per_family: %v", name, err))
		}
		m := p.PerFamily[fam]
		if m.RunRate != nil && *m.RunRate <= 0 {
			errs = append(errs, fmt.Sprintf("pitches.%s.per_family.%s.run_rate must be > 0", name, fam))
		}
		if m.WicketChance != nil && *m.WicketChance <= 0 {
			errs = append(errs, fmt.Sprintf("pitches.%s.per_family.%s.wicket_chance must be > 0", name, fam))
		}
	}
	if p.PaceBonus != nil && *p.PaceBonus <= -1 {
		errs = append(errs, fmt.Sprintf("pitches.%s.pace_bonus must be > -1", name))
	}
	if p.SpinBonus != nil && *p.SpinBonus <= -1 {
		errs = append(errs, fmt.Sprintf("pitches.%s.spin_bonus must be > -1", name))
	}
	if p.ChasePenalty != nil && *p.ChasePenalty <= 0 {
		errs = append(errs, fmt.Sprintf("pitches.%s.chase_penalty must be > 0", name))
	}
	if p.Deterioration != nil && *p.Deterioration < 0 {
		errs = append(errs, fmt.Sprintf("pitches.%s.deterioration must be >= 0", name))
	}
	if p.Unpredictability != nil && (*p.Unpredictability < 0 || *p.Unpredictability > 1) {
		errs = append(errs, fmt.Sprintf("pitches.%s.unpredictability must be in [0,1]", name))
	}
	switch cricket.Easing(p.Easing) {
	case "", cricket.EaseLinear, cricket.EaseOutQuad, cricket.EaseInOutCubic:
	default:
		errs = append(errs, fmt.Sprintf("pitches.%s.easing must be one of: linear, easeOutQuad, easeInOutCubic", name))
	}
	return errs
}

func validateMatrix(fam string, tiers map[int]map[string]RawProfile) []string {
	var errs []string
	for tier, row := range tiers {
		if tier < int(cricket.TierElite) || tier > int(cricket.TierTail) {
			errs = append(errs, fmt.Sprintf("profiles.%s: tier %d out of range 1..5", fam, tier))
		}
		for style := range row {
			if _, err := cricket.ParseStyle(style); err != nil {
				errs = append(errs, fmt.Sprintf("profiles.%s.%d: %v", fam, tier, err))
			}
		}
	}
	// the neutral fallback must exist for every tier, checked here rather
	// than at lookup time
	for _, tier := range cricket.Tiers {
		p, ok := tiers[int(tier)]["neutral"]
		if !ok || p.Average <= 0 || p.StrikeRate <= 0 {
			errs = append(errs, fmt.Sprintf("profiles.%s.%d: a usable neutral profile is required", fam, tier))
		}
	}
	return errs
}

func validateMultipliers(path string, m map[string]RawMultiplier) []string {
	var errs []string
	for _, mode := range sortedKeys(m) {
		if _, err := cricket.ParseMode(mode); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", path, err))
		}
		if v := m[mode]; v.Runs <= 0 || v.Wickets <= 0 {
			errs = append(errs, fmt.Sprintf("%s.%s: runs and wickets must be > 0", path, mode))
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
