package engine

import (
	"errors"
	"math"
)

// ErrBadProbability is returned when ball conditions produce a probability
// outside [0, 1], usually from NaN or infinite table values.
var ErrBadProbability = errors.New("probability outside [0, 1]")

// Chance settles one yes/no event of a match: the wicket check on a
// delivery, or the toss. Certain and impossible events consume no
// randomness; anything in between takes exactly one value from rng.
func Chance(p float64, rng RandomSource) (bool, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return false, ErrBadProbability
	}
	switch {
	case p == 0:
		return false, nil
	case p == 1:
		return true, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return rng.Float64() < p, nil
}

// clamp bounds v to [lo, hi]. NaN passes through so Chance can reject it.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
