package cricket

import (
	"fmt"
	"strings"
)

// Style is a batter's approach at the crease.
type Style int

const (
	StyleNeutral Style = iota
	StyleAggressive
	StyleDefensive
	StyleNA // tail-enders and specialist bowlers
)

func (s Style) String() string {
	switch s {
	case StyleAggressive:
		return "aggressive"
	case StyleDefensive:
		return "defensive"
	case StyleNA:
		return "n/a"
	default:
		return "neutral"
	}
}

// ParseStyle accepts the YAML/JSON spelling of a style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "neutral":
		return StyleNeutral, nil
	case "aggressive":
		return StyleAggressive, nil
	case "defensive":
		return StyleDefensive, nil
	case "n/a", "na", "none":
		return StyleNA, nil
	}
	return StyleNeutral, fmt.Errorf("unknown batting style %q", s)
}

func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Role is a player's specialism. Bowling eligibility is derived from it.
type Role int

const (
	RoleBatsman Role = iota
	RoleWicketKeeper
	RoleAllRounder
	RoleSpinBowler
	RoleFastBowler
)

func (r Role) String() string {
	switch r {
	case RoleWicketKeeper:
		return "wicket-keeper"
	case RoleAllRounder:
		return "all-rounder"
	case RoleSpinBowler:
		return "spin-bowler"
	case RoleFastBowler:
		return "fast-bowler"
	default:
		return "batsman"
	}
}

// ParseRole accepts the YAML/JSON spelling of a role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "batsman", "batter":
		return RoleBatsman, nil
	case "wicket-keeper", "wicketkeeper", "keeper", "wk":
		return RoleWicketKeeper, nil
	case "all-rounder", "allrounder":
		return RoleAllRounder, nil
	case "spin-bowler", "spinbowler", "spinner":
		return RoleSpinBowler, nil
	case "fast-bowler", "fastbowler", "pacer", "seamer":
		return RoleFastBowler, nil
	}
	return RoleBatsman, fmt.Errorf("unknown role %q", s)
}

func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Bowls reports whether the role is a front-line bowling option.
func (r Role) Bowls() bool {
	return r == RoleAllRounder || r == RoleSpinBowler || r == RoleFastBowler
}

// Player is the simulation view of a squad member. It is never mutated by
// the engine.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Batting int    `json:"batting"` // 0..99
	Bowling int    `json:"bowling"` // 0..99
	Style   Style  `json:"style"`
	Role    Role   `json:"role"`
	Foreign bool   `json:"foreign,omitempty"`

	// CustomProfiles overrides the tier/style default, keyed by format family.
	CustomProfiles map[Family]BattingProfile `json:"custom_profiles,omitempty"`
}

// Profile returns the custom profile for the family if it is usable.
func (p Player) Profile(f Family) (BattingProfile, bool) {
	bp, ok := p.CustomProfiles[f]
	if !ok || !bp.Usable() {
		return BattingProfile{}, false
	}
	return bp, true
}
