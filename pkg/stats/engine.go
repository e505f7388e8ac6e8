// Package stats is the aggregate statistics engine of hyperstats.
//
// It turns an observation.Set into count, mean, median, mode, population variance
// and standard deviation. Every function is pure and total: an empty set yields
// the absent outcome (ok == false, or a nil *Report), never an error, a NaN or a zero
// that could be mistaken for a computed value.
//
// The package also provides the stats collectors the service uses to describe its
// own behavior; those summaries are produced by this same engine.
package stats

import (
	"math"
	"slices"

	"github.com/hyp3rd/hyperstats/pkg/observation"
)

// Count returns the number of observations in set.
func Count(set observation.Set) int {
	return set.Len()
}

// Mean returns the arithmetic mean of set.
// ok is false when set is empty.
func Mean(set observation.Set) (mean float64, ok bool) {
	n := set.Len()
	if n == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range set.All {
		sum += v
	}

	return sum / float64(n), true
}

// Median returns the middle value of the sorted observations, or the average of the
// two middle values when their number is even. set itself is never reordered.
// ok is false when set is empty.
func Median(set observation.Set) (median float64, ok bool) {
	n := set.Len()
	if n == 0 {
		return 0, false
	}

	sorted := set.Values()
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, true
	}

	return sorted[mid], true
}

// ModeOf returns the most frequent observation. Ties go to the value that appears
// first in set; when no value repeats the result is the no-mode sentinel.
// ok is false when set is empty.
func ModeOf(set observation.Set) (mode Mode, ok bool) {
	if set.IsEmpty() {
		return Mode{}, false
	}

	freq := NewFrequencyMap(set)
	if freq.Max() <= 1 {
		return NoMode(), true
	}

	for _, key := range freq.Keys() {
		if freq.Count(key) == freq.Max() {
			return ValueMode(key), true
		}
	}

	// unreachable: Max is the count of at least one key.
	return NoMode(), true
}

// Variance returns the population variance of set around the supplied mean:
// the mean of squared deviations, divided by the number of observations.
// ok is false when set is empty.
func Variance(set observation.Set, mean float64) (variance float64, ok bool) {
	n := set.Len()
	if n == 0 {
		return 0, false
	}

	var squared float64
	for _, v := range set.All {
		d := v - mean
		squared += d * d
	}

	return max(squared/float64(n), 0), true
}

// StdDev returns the population standard deviation of set around the supplied mean.
// ok is false when set is empty.
func StdDev(set observation.Set, mean float64) (stdDev float64, ok bool) {
	variance, ok := Variance(set, mean)
	if !ok {
		return 0, false
	}

	return math.Sqrt(variance), true
}

// Compute builds the full Report for set, in the order count, mean, median, mode,
// standard deviation, variance. It returns nil when set is empty: there is nothing
// to report, which is not a failure.
func Compute(set observation.Set) *Report {
	if set.IsEmpty() {
		return nil
	}

	count := Count(set)
	mean, _ := Mean(set)
	median, _ := Median(set)
	mode, _ := ModeOf(set)
	stdDev, _ := StdDev(set, mean)
	variance, _ := Variance(set, mean)

	return &Report{
		Count:    count,
		Mean:     mean,
		Median:   median,
		Mode:     mode,
		StdDev:   stdDev,
		Variance: variance,
	}
}
