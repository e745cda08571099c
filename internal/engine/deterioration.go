package engine

import "github.com/xtding233/cricket-sim/internal/cricket"

// ease maps match progress t in [0,1] through the pitch's wear curve.
func ease(e cricket.Easing, t float64) float64 {
	t = clamp(t, 0, 1)
	switch e {
	case cricket.EaseOutQuad:
		// f(t) = 1 - (1 - t)^2
		return 1 - (1-t)*(1-t)
	case cricket.EaseInOutCubic:
		// accelerate then decelerate
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - (-2*t+2)*(-2*t+2)*(-2*t+2)/2
	default:
		return t
	}
}

// matchProgress is how far through the scheduled match a ball falls:
// completed innings plus the fraction of the current one, over the
// format's innings count.
func matchProgress(f cricket.Format, inningsNumber, balls int) float64 {
	innings := f.Innings
	if innings <= 0 {
		innings = 2
	}
	frac := 0.0
	if mb := f.MaxBalls(); mb > 0 {
		frac = float64(balls) / float64(mb)
	}
	return (float64(inningsNumber-1) + frac) / float64(innings)
}

// WearFactor scales wicket probability as the pitch deteriorates.
// A fresh pitch returns 1; a fully worn one 1 + Deterioration.
func WearFactor(p cricket.PitchModifier, progress float64) float64 {
	if p.Deterioration <= 0 {
		return 1
	}
	return 1 + p.Deterioration*ease(p.Easing, progress)
}
