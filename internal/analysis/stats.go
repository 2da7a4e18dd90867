package analysis

import (
	"math"
	"sort"
)

// percentileSorted returns the p-th percentile (0..100) of an ascending
// slice using linear interpolation between order statistics. Both the
// final-equity distribution and the path bands go through this function so
// the two call sites share one interpolation convention.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// percentile sorts a copy of values and delegates to percentileSorted.
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

// maxDrawdown returns the largest peak-to-trough decline of an equity path
// as a fraction of the running peak. A zero running peak contributes 0
// rather than a division fault.
func maxDrawdown(equity []float64) float64 {
	maxDD := 0.0
	peak := math.Inf(-1)
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak == 0 {
			continue
		}
		dd := (peak - v) / peak
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// skewness returns the third standardized moment of values. The
// standardization uses the population standard deviation, matching the
// usual b1 estimator. Fewer than three observations or zero variance give
// no shape signal and return 0.
func skewness(values []float64) float64 {
	n := len(values)
	if n < 3 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(n)
	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		z := (v - mean) / std
		sum += z * z * z
	}
	return sum / float64(n)
}

// fractionAbove returns the fraction of values strictly greater than the
// threshold.
func fractionAbove(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}
