package engine

import "github.com/xtding233/cricket-sim/internal/cricket"

// chaseUrgency is how far the required rate may exceed the current rate
// before an automatic side starts attacking.
const chaseUrgency = 1.25

// autoTactics adjusts the batting toggle of a side that left its choice
// to the engine. An explicit non-normal choice is never overridden.
func autoTactics(base cricket.Tactics, in cricket.Inning, f cricket.Format) cricket.Tactics {
	t := base
	if t.Batting != "" && t.Batting != cricket.ModeNormal {
		return t
	}
	t.Batting = cricket.ModeNormal

	left := in.BallsLeft()
	lateInnings := left*5 <= in.MaxBalls

	switch {
	case in.WicketsLeft() <= 2 && !lateInnings:
		t.Batting = cricket.ModeDefensive
	case in.Chasing() && in.Balls > 0:
		need := in.Target - in.Score
		if cricket.RunRate(need, left) > chaseUrgency*in.RunRate() {
			t.Batting = cricket.ModeAggressive
		}
	case f.Family != cricket.FamilyMultiDay && lateInnings:
		t.Batting = cricket.ModeAggressive
	}
	return t
}
