// Package commentary renders ball events as one-line text.
package commentary

import (
	"fmt"
	"strings"

	"github.com/xtding233/cricket-sim/internal/engine"
)

// Templates maps an outcome label ("0".."6", "W") to line variants. Each
// variant may use {striker}, {bowler}, {runs} placeholders.
type Templates map[string][]string

// DefaultTemplates is the built-in phrasing.
var DefaultTemplates = Templates{
	"0": {
		"{bowler} to {striker}, no run.",
		"{bowler} to {striker}, dot ball, beaten outside off.",
		"{bowler} to {striker}, defended back down the pitch.",
	},
	"1": {
		"{bowler} to {striker}, pushed into the gap for a single.",
		"{bowler} to {striker}, worked off the pads, one run.",
	},
	"2": {
		"{bowler} to {striker}, driven into the deep, they come back for two.",
		"{bowler} to {striker}, placed wide of the fielder, 2 runs.",
	},
	"3": {
		"{bowler} to {striker}, chased down just inside the rope, three taken.",
	},
	"4": {
		"{bowler} to {striker}, FOUR! Cracked through the covers.",
		"{bowler} to {striker}, FOUR! Pulled away to the fence.",
		"{bowler} to {striker}, FOUR! Edged but it flies past slip.",
	},
	"6": {
		"{bowler} to {striker}, SIX! Launched over long-on.",
		"{bowler} to {striker}, SIX! Into the stands.",
	},
	"W": {
		"{bowler} to {striker}, OUT! Bowled him.",
		"{bowler} to {striker}, OUT! Through the gate and the stumps are shattered.",
	},
}

// Commentator picks a template per event. The variant depends only on the
// event, so a replayed match reads the same.
type Commentator struct {
	templates Templates
}

var _ engine.Commentator = (*Commentator)(nil)

// New returns a commentator over t, falling back to DefaultTemplates for
// labels t does not cover.
func New(t Templates) *Commentator {
	merged := make(Templates, len(DefaultTemplates))
	for k, v := range DefaultTemplates {
		merged[k] = v
	}
	for k, v := range t {
		if len(v) > 0 {
			merged[k] = v
		}
	}
	return &Commentator{templates: merged}
}

// Line renders one ball, with an end-of-over summary when it closes one.
func (c *Commentator) Line(ev engine.BallEvent) string {
	variants := c.templates[ev.Label]
	var line string
	if len(variants) == 0 {
		line = fmt.Sprintf("%s to %s, %s.", ev.Bowler, ev.Striker, ev.Label)
	} else {
		line = variants[(ev.Ball+ev.Innings)%len(variants)]
		line = strings.NewReplacer(
			"{striker}", ev.Striker,
			"{bowler}", ev.Bowler,
			"{runs}", ev.Label,
		).Replace(line)
	}

	if ev.EndOfOver {
		end := fmt.Sprintf(" End of over %d: %d/%d.", ev.Ball/6, ev.Score, ev.Wickets)
		if ev.Maiden {
			end = fmt.Sprintf(" Maiden by %s. End of over %d: %d/%d.", ev.Bowler, ev.Ball/6, ev.Score, ev.Wickets)
		}
		line += end
	}
	return line
}
