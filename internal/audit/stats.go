package audit

import (
	"math"
	"sort"
)

// mean returns the arithmetic mean of a non-empty series.
func mean(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// percentile95 returns the linearly-interpolated 95th percentile of a
// non-empty series. A single-sample series returns that sample, so average
// and percentile coincide without interpolation artifacts.
func percentile95(series []float64) float64 {
	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)

	rank := 0.95 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
