package cricket

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrInvalidTeam   = errors.New("invalid team")
	ErrUnknownFormat = errors.New("unknown format")
	ErrUnknownPitch  = errors.New("unknown pitch")
)

// Rules is the static configuration the engine consumes. It is built once
// by the tables loader and treated as read-only afterwards.
type Rules struct {
	Version  string
	Formats  map[string]Format
	Pitches  map[string]PitchModifier
	Grounds  map[string]string // ground -> pitch name
	Profiles map[Family]ProfileMatrix
	Tactics  TacticsTable

	// Limits: ground -> format -> per-innings caps (index 0 is innings 1).
	Limits map[string]map[string][]ScoreLimits
}

// Format looks up a format by name.
func (r Rules) Format(name string) (Format, error) {
	if f, ok := r.Formats[name]; ok {
		return f, nil
	}
	return Format{}, unknown(ErrUnknownFormat, name, keys(r.Formats))
}

// Pitch looks up a pitch by name.
func (r Rules) Pitch(name string) (PitchModifier, error) {
	if p, ok := r.Pitches[name]; ok {
		return p, nil
	}
	return PitchModifier{}, unknown(ErrUnknownPitch, name, keys(r.Pitches))
}

// PitchForGround resolves the pitch prepared at a ground.
func (r Rules) PitchForGround(ground string) (PitchModifier, error) {
	name, ok := r.Grounds[ground]
	if !ok {
		return PitchModifier{}, unknown(ErrUnknownPitch, "ground "+ground, keys(r.Grounds))
	}
	return r.Pitch(name)
}

// Matrix returns the profile matrix for a family.
func (r Rules) Matrix(f Family) ProfileMatrix {
	return r.Profiles[f]
}

// ScoreLimits returns the configured cap for an innings, if any.
func (r Rules) ScoreLimits(ground, format string, innings int) (ScoreLimits, bool) {
	caps := r.Limits[ground][format]
	if innings < 1 || innings > len(caps) {
		return ScoreLimits{}, false
	}
	l := caps[innings-1]
	if l.MaxRuns <= 0 && l.MaxWickets <= 0 {
		return ScoreLimits{}, false
	}
	return l, true
}

// unknown builds a lookup error with a "did you mean" hint.
func unknown(sentinel error, name string, candidates []string) error {
	if s := suggest(name, candidates); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", sentinel, name, s)
	}
	return fmt.Errorf("%w %q", sentinel, name)
}

func suggest(name string, candidates []string) string {
	best, bestDist := "", 4
	target := strings.ToLower(name)
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(target, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
