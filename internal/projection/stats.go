package projection

import (
	"math"
	"sort"
)

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(cp, 0.50),
		P90:     percentile(cp, 0.90),
		P99:     percentile(cp, 0.99),
		Samples: xs,
	}
}

// percentile interpolates linearly between the closest ranks of sorted xs.
func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 1 || p <= 0:
		return float64(sorted[0])
	case p >= 1:
		return float64(sorted[n-1])
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return float64(sorted[i])
	}
	return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
}
