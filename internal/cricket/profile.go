package cricket

import (
	"fmt"
	"sort"
	"strings"
)

// Family groups formats that share batting profiles and pitch modifiers.
type Family string

const (
	FamilyShort    Family = "short"
	FamilyLimited  Family = "limited"
	FamilyMultiDay Family = "multi-day"
)

// ParseFamily validates a family name.
func ParseFamily(s string) (Family, error) {
	switch f := Family(strings.ToLower(strings.TrimSpace(s))); f {
	case FamilyShort, FamilyLimited, FamilyMultiDay:
		return f, nil
	}
	return "", fmt.Errorf("unknown format family %q", s)
}

// BattingProfile is the expected (average, strike rate) of a batter.
type BattingProfile struct {
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
}

// Usable reports whether the profile can drive the outcome model.
func (b BattingProfile) Usable() bool {
	return b.Average > 0 && b.StrikeRate > 0
}

// Tier is a coarse batting skill bracket, 1 (best) to 5.
type Tier int

const (
	TierElite Tier = iota + 1
	TierStrong
	TierSolid
	TierModest
	TierTail
)

// Tiers lists every tier in order.
var Tiers = []Tier{TierElite, TierStrong, TierSolid, TierModest, TierTail}

// TierFor maps a 0..99 batting skill onto a tier.
func TierFor(skill int) Tier {
	switch {
	case skill >= 85:
		return TierElite
	case skill >= 70:
		return TierStrong
	case skill >= 55:
		return TierSolid
	case skill >= 40:
		return TierModest
	default:
		return TierTail
	}
}

// ProfileMatrix is the tier × style table for one format family.
type ProfileMatrix map[Tier]map[Style]BattingProfile

// Lookup returns the profile for tier and style, falling back to the
// tier's Neutral entry. Validate guarantees the fallback exists.
func (m ProfileMatrix) Lookup(t Tier, s Style) BattingProfile {
	row := m[t]
	if p, ok := row[s]; ok && p.Usable() {
		return p
	}
	return row[StyleNeutral]
}

// Validate rejects matrices where any tier lacks a usable Neutral entry.
func (m ProfileMatrix) Validate() error {
	var missing []string
	for _, t := range Tiers {
		if p, ok := m[t][StyleNeutral]; !ok || !p.Usable() {
			missing = append(missing, fmt.Sprintf("tier %d", t))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("no usable neutral profile for %s", strings.Join(missing, ", "))
	}
	return nil
}

// ResolveProfile picks the custom profile when usable, else the matrix entry.
func ResolveProfile(p Player, f Family, m ProfileMatrix) BattingProfile {
	if bp, ok := p.Profile(f); ok {
		return bp
	}
	return m.Lookup(TierFor(p.Batting), p.Style)
}
