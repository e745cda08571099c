package tables

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

func squadYAML(id string, players int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  - id: %s\n    name: %s XI\n    lineup:\n", id, id)
	roles := []string{"batsman", "batsman", "batsman", "batsman", "all-rounder", "wk", "all-rounder", "spinner", "spinner", "pacer", "pacer"}
	for i := range players {
		fmt.Fprintf(&b, "      - { id: %s%d, name: Player %d, batting: %d, bowling: %d, style: neutral, role: %s }\n",
			id, i+1, i+1, 90-6*i, 10+8*i, roles[i%len(roles)])
	}
	return b.String()
}

func TestLoadSquads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squads.yaml")
	writeFile(t, path, "teams:\n"+squadYAML("RED", 11)+squadYAML("BLU", 11))

	teams, err := LoadSquads(path)
	if err != nil {
		t.Fatal(err)
	}
	red, ok := teams["RED"]
	if !ok || len(teams) != 2 {
		t.Fatalf("teams=%v", teams)
	}
	if red.Name != "RED XI" || red.Lineup[5].Role != cricket.RoleWicketKeeper || red.Lineup[9].Role != cricket.RoleFastBowler {
		t.Fatalf("red: %+v", red)
	}
}

func TestLoadSquadsCustomProfilesAndClamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squads.yaml")
	body := "teams:\n" + squadYAML("RED", 10) +
		"      - { id: RED11, name: Star, batting: 150, bowling: -3, style: aggressive, role: batsman, profiles: { short: { average: 41, strike_rate: 160 } } }\n"
	writeFile(t, path, body)
	teams, err := LoadSquads(path)
	if err != nil {
		t.Fatal(err)
	}
	star := teams["RED"].Lineup[10]
	if star.Batting != 99 || star.Bowling != 0 {
		t.Fatalf("skills should clamp to 0..99: %+v", star)
	}
	if p, ok := star.Profile(cricket.FamilyShort); !ok || p.StrikeRate != 160 {
		t.Fatalf("custom profile: %+v %v", p, ok)
	}
}

func TestLoadSquadsRejectsBadTeams(t *testing.T) {
	cases := map[string]string{
		"short lineup": "teams:\n" + squadYAML("RED", 9),
		"bad role":     "teams:\n" + strings.Replace(squadYAML("RED", 11), "role: pacer", "role: umpire", 1),
		"duplicate":    "teams:\n" + squadYAML("RED", 11) + squadYAML("RED", 11),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "squads.yaml")
			writeFile(t, path, body)
			if _, err := LoadSquads(path); !errors.Is(err, cricket.ErrInvalidTeam) {
				t.Fatalf("expected ErrInvalidTeam, got %v", err)
			}
		})
	}
}
