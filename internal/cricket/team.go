package cricket

import (
	"fmt"
	"sort"
	"strings"
)

// LineupSize is the number of players each side must field.
const LineupSize = 11

// minBowlingOptions is how many bowlers a side is topped up to when the
// supplied roles do not provide enough.
const minBowlingOptions = 5

// minRotation is the fewest bowlers that can share an innings without
// anyone bowling consecutive overs.
const minRotation = 2

// Team is one side's fixed playing XI. Lineup order is batting order.
type Team struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Lineup []Player `json:"lineup"`

	// Bowlers optionally lists bowling-eligible player IDs in preferred order.
	Bowlers []string `json:"bowlers,omitempty"`
}

// Validate checks that the team can take the field.
func (t Team) Validate() error {
	var errs []string
	if strings.TrimSpace(t.ID) == "" {
		errs = append(errs, "team id is required")
	}
	if len(t.Lineup) != LineupSize {
		errs = append(errs, fmt.Sprintf("lineup must have %d players, got %d", LineupSize, len(t.Lineup)))
	}
	seen := make(map[string]bool, len(t.Lineup))
	for i, p := range t.Lineup {
		if strings.TrimSpace(p.ID) == "" {
			errs = append(errs, fmt.Sprintf("lineup[%d] has no player id", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("player %q appears twice", p.ID))
		}
		seen[p.ID] = true
	}
	for _, id := range t.Bowlers {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("bowler %q is not in the lineup", id))
		}
	}
	// overs alternate, so one bowler is not enough
	if len(errs) == 0 {
		if n := len(t.BowlingOptions()); n < minRotation {
			errs = append(errs, fmt.Sprintf("needs at least %d bowling options, got %d", minRotation, n))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: team %q: %s", ErrInvalidTeam, t.ID, strings.Join(errs, "; "))
	}
	return nil
}

// DisplayName falls back to the id when the team has no name.
func (t Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// BowlingOptions returns the lineup indices of the bowling-eligible players
// in rotation order. An explicit Bowlers list wins; otherwise bowling roles
// are used and topped up with the best part-timers (never the keeper).
func (t Team) BowlingOptions() []int {
	if len(t.Bowlers) > 0 {
		idx := make(map[string]int, len(t.Lineup))
		for i, p := range t.Lineup {
			idx[p.ID] = i
		}
		out := make([]int, 0, len(t.Bowlers))
		for _, id := range t.Bowlers {
			if i, ok := idx[id]; ok {
				out = append(out, i)
			}
		}
		if len(out) >= minRotation {
			return out
		}
	}

	var out []int
	used := make(map[int]bool)
	for i, p := range t.Lineup {
		if p.Role.Bowls() {
			out = append(out, i)
			used[i] = true
		}
	}
	if len(out) >= minBowlingOptions {
		return out
	}

	var rest []int
	for i, p := range t.Lineup {
		if !used[i] && p.Role != RoleWicketKeeper {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(rest, func(a, b int) bool {
		return t.Lineup[rest[a]].Bowling > t.Lineup[rest[b]].Bowling
	})
	for _, i := range rest {
		if len(out) >= minBowlingOptions {
			break
		}
		out = append(out, i)
	}
	return out
}
