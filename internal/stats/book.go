package stats

import (
	"sort"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Book holds careers by format name, then player ID.
type Book map[string]map[string]Career

// Get returns a player's career in a format, zero if unseen.
func (b Book) Get(format, playerID string) Career {
	return b[format][playerID]
}

// Apply folds one completed match into a copy of book. The input is left
// untouched. Applying the same result twice counts it twice; callers apply
// each match exactly once.
func Apply(res cricket.MatchResult, format string, book Book) Book {
	out := make(Book, len(book)+1)
	for f, careers := range book {
		cp := make(map[string]Career, len(careers))
		for id, c := range careers {
			if c.Best != nil {
				best := *c.Best
				c.Best = &best
			}
			cp[id] = c
		}
		out[f] = cp
	}
	careers := out[format]
	if careers == nil {
		careers = make(map[string]Career)
		out[format] = careers
	}

	for _, in := range res.Innings {
		for _, b := range in.Batting {
			c := career(careers, b.PlayerID, b.Name)
			c.addBatting(b)
			careers[b.PlayerID] = c
		}
		for _, b := range in.Bowling {
			if b.Balls == 0 {
				continue
			}
			c := career(careers, b.PlayerID, b.Name)
			c.addBowling(b)
			careers[b.PlayerID] = c
		}
	}
	return out
}

func career(careers map[string]Career, id, name string) Career {
	c, ok := careers[id]
	if !ok {
		c = Career{PlayerID: id}
	}
	if name != "" {
		c.Name = name
	}
	return c
}

// Metric selects what Leaders ranks by.
type Metric string

const (
	MetricRuns    Metric = "runs"
	MetricWickets Metric = "wickets"
)

func (m Metric) value(c Career) int {
	if m == MetricWickets {
		return c.Wickets
	}
	return c.Runs
}

// Leaders returns the top n careers in a format by metric. Equal values
// are ordered by player ID. n <= 0 returns everyone.
func Leaders(book Book, format string, m Metric, n int) []Career {
	var out []Career
	for _, c := range book[format] {
		if m.value(c) > 0 {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := m.value(out[i]), m.value(out[j])
		if vi != vj {
			return vi > vj
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
