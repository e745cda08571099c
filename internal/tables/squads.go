package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// RawSquads is the YAML schema of a squads file.
type RawSquads struct {
	Teams []RawTeam `yaml:"teams"`
}

type RawTeam struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Bowlers []string    `yaml:"bowlers,omitempty"`
	Lineup  []RawPlayer `yaml:"lineup"`
}

type RawPlayer struct {
	ID       string                `yaml:"id"`
	Name     string                `yaml:"name"`
	Batting  int                   `yaml:"batting"`
	Bowling  int                   `yaml:"bowling"`
	Style    string                `yaml:"style"`
	Role     string                `yaml:"role"`
	Foreign  bool                  `yaml:"foreign,omitempty"`
	Profiles map[string]RawProfile `yaml:"profiles,omitempty"` // family -> custom profile
}

// LoadSquads reads a squads file and returns validated teams by ID.
func LoadSquads(path string) (map[string]cricket.Team, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read squads: %w", err)
	}
	var raw RawSquads
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse squads %s: %w", path, err)
	}

	teams := make(map[string]cricket.Team, len(raw.Teams))
	for _, rt := range raw.Teams {
		t, err := rt.team()
		if err != nil {
			return nil, err
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := teams[t.ID]; dup {
			return nil, fmt.Errorf("%w: team %q defined twice", cricket.ErrInvalidTeam, t.ID)
		}
		teams[t.ID] = t
	}
	return teams, nil
}

func (rt RawTeam) team() (cricket.Team, error) {
	t := cricket.Team{ID: rt.ID, Name: rt.Name, Bowlers: rt.Bowlers}
	for _, rp := range rt.Lineup {
		style, err := cricket.ParseStyle(rp.Style)
		if err != nil {
			return cricket.Team{}, fmt.Errorf("%w: team %q player %q: %v", cricket.ErrInvalidTeam, rt.ID, rp.ID, err)
		}
		role, err := cricket.ParseRole(rp.Role)
		if err != nil {
			return cricket.Team{}, fmt.Errorf("%w: team %q player %q: %v", cricket.ErrInvalidTeam, rt.ID, rp.ID, err)
		}
		p := cricket.Player{
			ID:      rp.ID,
			Name:    rp.Name,
			Batting: clampSkill(rp.Batting),
			Bowling: clampSkill(rp.Bowling),
			Style:   style,
			Role:    role,
			Foreign: rp.Foreign,
		}
		for fam, prof := range rp.Profiles {
			f, err := cricket.ParseFamily(fam)
			if err != nil {
				return cricket.Team{}, fmt.Errorf("%w: team %q player %q: %v", cricket.ErrInvalidTeam, rt.ID, rp.ID, err)
			}
			if p.CustomProfiles == nil {
				p.CustomProfiles = make(map[cricket.Family]cricket.BattingProfile)
			}
			p.CustomProfiles[f] = cricket.BattingProfile{Average: prof.Average, StrikeRate: prof.StrikeRate}
		}
		t.Lineup = append(t.Lineup, p)
	}
	return t, nil
}

func clampSkill(v int) int {
	return min(max(v, 0), 99)
}
