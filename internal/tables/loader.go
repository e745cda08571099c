package tables

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

//go:embed default.yaml
var embeddedDefault []byte

// Paths helper for default/competition files.
type Paths struct {
	BaseDir string // e.g. /etc/cricket; empty means embedded defaults only
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "tables", "default.yaml")
}

func (p Paths) CompetitionPath(competition string) string {
	return filepath.Join(p.BaseDir, "tables", competition+".yaml")
}

// Watched lists the files whose changes should trigger a reload.
func (p Paths) Watched(competition string) []string {
	if p.BaseDir == "" {
		return nil
	}
	out := []string{p.DefaultPath()}
	if competition != "" {
		out = append(out, p.CompetitionPath(competition))
	}
	return out
}

// Loader reads YAML tables and merges default → competition.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]cricket.Rules // key: competition, "" for default only
}

// NewLoader creates a tables loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]cricket.Rules),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// Load returns validated rules for a competition; the competition file is
// optional. Results are cached until Invalidate.
func (l *Loader) Load(competition string) (cricket.Rules, error) {
	l.mu.RLock()
	if r, ok := l.cache[competition]; ok {
		l.mu.RUnlock()
		return r, nil
	}
	l.mu.RUnlock()

	merged, err := l.LoadMerged(competition)
	if err != nil {
		return cricket.Rules{}, err
	}
	if err := ValidateRaw(merged); err != nil {
		return cricket.Rules{}, err
	}
	rules, err := Normalize(merged)
	if err != nil {
		return cricket.Rules{}, err
	}

	l.mu.Lock()
	l.cache[competition] = rules
	l.mu.Unlock()
	return rules, nil
}

// LoadMerged reads and merges the raw tables without validating them.
func (l *Loader) LoadMerged(competition string) (RawTables, error) {
	def, err := l.readDefault()
	if err != nil {
		return RawTables{}, fmt.Errorf("read default: %w", err)
	}
	if competition == "" || l.paths.BaseDir == "" {
		return def, nil
	}
	comp, err := readYAML(l.paths.CompetitionPath(competition))
	if err != nil {
		return RawTables{}, fmt.Errorf("read %s: %w", competition, err)
	}
	return mergeRaw(def, comp), nil
}

// Invalidate clears the cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]cricket.Rules)
}

func (l *Loader) readDefault() (RawTables, error) {
	if l.paths.BaseDir != "" {
		b, err := os.ReadFile(l.paths.DefaultPath())
		switch {
		case err == nil:
			return parseYAML(b)
		case !errors.Is(err, os.ErrNotExist):
			return RawTables{}, err
		}
	}
	return parseYAML(embeddedDefault)
}

// readYAML loads a YAML file. Missing files return zero tables, no error.
func readYAML(path string) (RawTables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawTables{}, nil
		}
		return RawTables{}, err
	}
	return parseYAML(b)
}

func parseYAML(b []byte) (RawTables, error) {
	var t RawTables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return RawTables{}, err
	}
	return t, nil
}

// mergeRaw performs a deep merge: b overrides a where set. Profile cells,
// ground entries and score limits are replaced whole.
func mergeRaw(a, b RawTables) RawTables {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	if len(b.Formats) > 0 {
		out.Formats = maps.Clone(a.Formats)
		if out.Formats == nil {
			out.Formats = make(map[string]RawFormat)
		}
		for name, f := range b.Formats {
			out.Formats[name] = mergeFormat(out.Formats[name], f)
		}
	}

	if len(b.Pitches) > 0 {
		out.Pitches = maps.Clone(a.Pitches)
		if out.Pitches == nil {
			out.Pitches = make(map[string]RawPitch)
		}
		for name, p := range b.Pitches {
			out.Pitches[name] = mergePitch(out.Pitches[name], p)
		}
	}

	if len(b.Grounds) > 0 {
		out.Grounds = maps.Clone(a.Grounds)
		if out.Grounds == nil {
			out.Grounds = make(map[string]string)
		}
		maps.Copy(out.Grounds, b.Grounds)
	}

	if len(b.Profiles) > 0 {
		out.Profiles = make(map[string]map[int]map[string]RawProfile, len(a.Profiles))
		for fam, tiers := range a.Profiles {
			out.Profiles[fam] = make(map[int]map[string]RawProfile, len(tiers))
			for tier, row := range tiers {
				out.Profiles[fam][tier] = maps.Clone(row)
			}
		}
		for fam, tiers := range b.Profiles {
			if out.Profiles[fam] == nil {
				out.Profiles[fam] = make(map[int]map[string]RawProfile)
			}
			for tier, row := range tiers {
				if out.Profiles[fam][tier] == nil {
					out.Profiles[fam][tier] = make(map[string]RawProfile)
				}
				maps.Copy(out.Profiles[fam][tier], row)
			}
		}
	}

	if len(b.ScoreLimits) > 0 {
		out.ScoreLimits = make(map[string]map[string][]RawLimit, len(a.ScoreLimits))
		for ground, byFormat := range a.ScoreLimits {
			out.ScoreLimits[ground] = maps.Clone(byFormat)
		}
		for ground, byFormat := range b.ScoreLimits {
			if out.ScoreLimits[ground] == nil {
				out.ScoreLimits[ground] = make(map[string][]RawLimit)
			}
			for format, caps := range byFormat {
				out.ScoreLimits[ground][format] = append([]RawLimit(nil), caps...)
			}
		}
	}

	switch {
	case out.Tactics == nil && b.Tactics != nil:
		c := *b.Tactics
		out.Tactics = &c
	case out.Tactics != nil && b.Tactics != nil:
		c := RawTactics{
			Batting: maps.Clone(out.Tactics.Batting),
			Bowling: maps.Clone(out.Tactics.Bowling),
		}
		if c.Batting == nil {
			c.Batting = make(map[string]RawMultiplier)
		}
		if c.Bowling == nil {
			c.Bowling = make(map[string]RawMultiplier)
		}
		maps.Copy(c.Batting, b.Tactics.Batting)
		maps.Copy(c.Bowling, b.Tactics.Bowling)
		out.Tactics = &c
	}

	return out
}

func mergeFormat(a, b RawFormat) RawFormat {
	out := a
	if b.Family != "" {
		out.Family = b.Family
	}
	if b.Overs != nil {
		out.Overs = b.Overs
	}
	if b.BowlerQuota != nil {
		out.BowlerQuota = b.BowlerQuota
	}
	if b.Innings != nil {
		out.Innings = b.Innings
	}
	return out
}

func mergePitch(a, b RawPitch) RawPitch {
	out := a
	if len(b.PerFamily) > 0 {
		out.PerFamily = maps.Clone(a.PerFamily)
		if out.PerFamily == nil {
			out.PerFamily = make(map[string]RawFamilyMod)
		}
		for fam, m := range b.PerFamily {
			cur := out.PerFamily[fam]
			if m.RunRate != nil {
				cur.RunRate = m.RunRate
			}
			if m.WicketChance != nil {
				cur.WicketChance = m.WicketChance
			}
			out.PerFamily[fam] = cur
		}
	}
	if b.PaceBonus != nil {
		out.PaceBonus = b.PaceBonus
	}
	if b.SpinBonus != nil {
		out.SpinBonus = b.SpinBonus
	}
	if b.ChasePenalty != nil {
		out.ChasePenalty = b.ChasePenalty
	}
	if b.Deterioration != nil {
		out.Deterioration = b.Deterioration
	}
	if b.Unpredictability != nil {
		out.Unpredictability = b.Unpredictability
	}
	if b.Easing != "" {
		out.Easing = b.Easing
	}
	return out
}
