package cricket

import "strconv"

// FormatOvers renders a legal-ball count as overs, e.g. 23 -> "3.5".
func FormatOvers(balls int) string {
	if balls < 0 {
		balls = 0
	}
	return strconv.Itoa(balls/6) + "." + strconv.Itoa(balls%6)
}

// ratio divides with a zero guard.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// StrikeRate is runs per hundred balls.
func StrikeRate(runs, balls int) float64 {
	return ratio(float64(runs)*100, float64(balls))
}

// Economy is runs conceded per six balls.
func Economy(runs, balls int) float64 {
	return ratio(float64(runs)*6, float64(balls))
}

// Average divides runs by dismissals; a batter never out averages their runs.
func Average(runs, dismissals int) float64 {
	if dismissals == 0 {
		return float64(runs)
	}
	return float64(runs) / float64(dismissals)
}

// RunRate is runs per over.
func RunRate(runs, balls int) float64 {
	return Economy(runs, balls)
}
