package engine

import (
	"math"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

const (
	// MinWicketProb and MaxWicketProb bound every ball. Without them a
	// mismatch produces all-out-every-ball or never-out sequences.
	MinWicketProb = 0.005
	MaxWicketProb = 0.5

	defaultWicketProb = 0.05
	skillWeight       = 0.25
)

// scoringRuns maps Distribution buckets to runs.
var scoringRuns = [6]int{0, 1, 2, 3, 4, 6}

// Distribution is a probability per scoring bucket: 0, 1, 2, 3, 4, 6.
type Distribution [6]float64

// Sum of all buckets.
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, p := range d {
		s += p
	}
	return s
}

// Expectation is the expected runs of a scoring ball.
func (d Distribution) Expectation() float64 {
	e := 0.0
	for i, p := range d {
		e += p * float64(scoringRuns[i])
	}
	return e
}

// baseDistributions are the unscaled scoring shapes per batting style.
// Aggressive shapes lean on boundaries, defensive ones on dots and singles.
var baseDistributions = map[cricket.Style]Distribution{
	cricket.StyleAggressive: {0.38, 0.30, 0.07, 0.01, 0.14, 0.10},
	cricket.StyleNeutral:    {0.42, 0.35, 0.08, 0.01, 0.10, 0.04},
	cricket.StyleDefensive:  {0.50, 0.36, 0.07, 0.01, 0.05, 0.01},
	cricket.StyleNA:         {0.60, 0.28, 0.05, 0.005, 0.05, 0.015},
}

// BaseDistribution returns the style's shape, Neutral for unknown styles.
func BaseDistribution(s cricket.Style) Distribution {
	if d, ok := baseDistributions[s]; ok {
		return d
	}
	return baseDistributions[cricket.StyleNeutral]
}

// Rescale stretches base toward the target expectation. Boundaries scale
// linearly, twos and threes by the square root, singles stay, and dots
// take the remainder. A negative remainder is paid for by singles first,
// then by shrinking the multi-run buckets proportionally.
func Rescale(base Distribution, target float64) Distribution {
	exp := base.Expectation()
	f := 1.0
	if exp > 0 {
		f = math.Max(target/exp, 0)
	}
	sq := math.Sqrt(f)

	d := base
	d[2] *= sq
	d[3] *= sq
	d[4] *= f
	d[5] *= f

	d[0] = 1 - (d[1] + d[2] + d[3] + d[4] + d[5])
	if d[0] >= 0 {
		return d
	}

	deficit := -d[0]
	d[0] = 0
	take := math.Min(deficit, d[1])
	d[1] -= take
	deficit -= take
	if deficit <= 0 {
		return d
	}

	rest := d[2] + d[3] + d[4] + d[5]
	for i := 2; i < len(d); i++ {
		d[i] /= rest
	}
	return d
}

// sample draws one run value against the cumulative distribution.
func sample(d Distribution, u float64) int {
	acc := 0.0
	last := 0
	for i, p := range d {
		if p <= 0 {
			continue
		}
		acc += p
		last = i
		if u < acc {
			return scoringRuns[i]
		}
	}
	// rounding left u past the last bucket
	return scoringRuns[last]
}

// BallInput is everything the outcome model needs for one delivery.
type BallInput struct {
	Striker  cricket.Player
	Bowler   cricket.Player
	Family   cricket.Family
	Profiles cricket.ProfileMatrix
	Pitch    cricket.PitchModifier
	Effect   cricket.Multiplier // combined tactical multipliers
	Chasing  bool
	Wear     float64 // pitch deterioration factor, 1 when fresh
}

// BallOutcome is the result of one delivery.
type BallOutcome struct {
	Runs      int
	Wicket    bool
	Dismissal string
}

// Label is the compact scoreboard form of the outcome.
func (o BallOutcome) Label() string {
	if o.Wicket {
		return "W"
	}
	return string(rune('0' + o.Runs))
}

// conditions are the per-ball lookups shared by the run and wicket models.
type conditions struct {
	profile cricket.BattingProfile
	mod     cricket.FamilyModifier
	erpb    float64 // expected runs per ball
}

func resolveConditions(in BallInput) conditions {
	c := conditions{
		profile: cricket.ResolveProfile(in.Striker, in.Family, in.Profiles),
		mod:     in.Pitch.For(in.Family),
	}
	c.erpb = c.profile.StrikeRate / 100
	if in.Chasing && in.Pitch.ChasePenalty > 0 {
		c.erpb *= in.Pitch.ChasePenalty
	}
	c.erpb *= positive(in.Effect.Runs) * positive(c.mod.RunRate)
	return c
}

// ExpectedRuns is the batter's expected runs per ball under the conditions.
func ExpectedRuns(in BallInput) float64 {
	return resolveConditions(in).erpb
}

// WicketProbability is the clamped chance of a dismissal, before any
// unpredictability jitter.
func WicketProbability(in BallInput) float64 {
	return clamp(rawWicketProbability(in, resolveConditions(in)), MinWicketProb, MaxWicketProb)
}

func rawWicketProbability(in BallInput, c conditions) float64 {
	p := defaultWicketProb
	if c.profile.Average > 0 {
		p = c.erpb / c.profile.Average
	}

	p *= 1 + skillWeight*float64(in.Bowler.Bowling-in.Striker.Batting)/99
	switch in.Bowler.Role {
	case cricket.RoleFastBowler:
		p *= 1 + in.Pitch.PaceBonus
	case cricket.RoleSpinBowler:
		p *= 1 + in.Pitch.SpinBonus
	}
	p *= positive(c.mod.WicketChance) * positive(in.Effect.Wickets) * positive(in.Wear)
	return p
}

// ScoringDistribution is the rescaled distribution used when the ball is
// not a wicket, given the wicket probability p.
func ScoringDistribution(in BallInput, p float64) Distribution {
	return Rescale(BaseDistribution(in.Striker.Style), ExpectedRuns(in)/(1-p))
}

// ResolveBall samples one delivery. It draws from rng once for the
// wicket check, once more for runs when not out, and once up front when
// the pitch is unpredictable.
func ResolveBall(in BallInput, rng RandomSource) (BallOutcome, error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	c := resolveConditions(in)
	p := rawWicketProbability(in, c)
	if u := in.Pitch.Unpredictability; u > 0 {
		p *= 1 + u*(2*rng.Float64()-1)
	}
	p = clamp(p, MinWicketProb, MaxWicketProb)

	out, err := Chance(p, rng)
	if err != nil {
		return BallOutcome{}, err
	}
	if out {
		return BallOutcome{Wicket: true, Dismissal: "b " + in.Bowler.Name}, nil
	}

	d := Rescale(BaseDistribution(in.Striker.Style), c.erpb/(1-p))
	return BallOutcome{Runs: sample(d, rng.Float64())}, nil
}

// positive treats unset or invalid multipliers as neutral.
func positive(v float64) float64 {
	if v > 0 {
		return v
	}
	return 1
}
