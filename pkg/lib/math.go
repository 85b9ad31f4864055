package lib

import "math"

// LogAsymptote normalizes an unbounded quantity into [0, limit): a
// logarithmic curve that rises quickly at first and approaches limit
// asymptotically.
//
//	f(x) = limit * ln(1 + k*x) / (1 + ln(1 + k*x))
//
// f(0) = 0, f is monotonically increasing, and f(x) < limit for all
// finite x. The growth parameter k sets how fast the curve saturates;
// fit it with FitGrowthRate.
func LogAsymptote(x, limit, k float64) float64 {
	if x < 0 {
		x = 0
	}

	ln := math.Log(1 + k*x)
	return limit * ln / (1 + ln)
}

// FitGrowthRate binary-searches the growth parameter k for LogAsymptote
// so that input x maps to target. Use it to anchor the curve to a known
// reference point ("an x of 120 should score 0.8") instead of hand-tuning
// k. Returns -1 when x is not positive or target is not strictly between
// 0 and limit.
func FitGrowthRate(x, target, limit float64, steps int) float64 {
	if x <= 0 || target <= 0 || target >= limit {
		return -1
	}

	low := 1e-9
	high := 10.0
	epsilon := 1e-9

	for range steps {
		mid := (low + high) / 2
		value := LogAsymptote(x, limit, mid)

		if math.Abs(value-target) < epsilon {
			return mid
		}

		if value < target {
			low = mid
		} else {
			high = mid
		}
	}

	return (low + high) / 2
}
