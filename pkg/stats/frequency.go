package stats

import (
	"slices"

	"github.com/hyp3rd/hyperstats/pkg/observation"
)

// FrequencyMap counts the occurrences of each distinct observation.
// Keys are kept in first-occurrence order so ties resolve deterministically.
type FrequencyMap struct {
	counts map[float64]int
	keys   []float64
	total  int
	max    int
}

// NewFrequencyMap builds the frequency map of set in a single pass.
func NewFrequencyMap(set observation.Set) *FrequencyMap {
	freq := &FrequencyMap{
		counts: make(map[float64]int),
	}

	for _, v := range set.All {
		if _, seen := freq.counts[v]; !seen {
			freq.keys = append(freq.keys, v)
		}

		freq.counts[v]++
		freq.total++

		if freq.counts[v] > freq.max {
			freq.max = freq.counts[v]
		}
	}

	return freq
}

// Keys returns a copy of the distinct values in first-occurrence order.
func (f *FrequencyMap) Keys() []float64 {
	return slices.Clone(f.keys)
}

// Count returns how many times value occurs.
func (f *FrequencyMap) Count(value float64) int {
	return f.counts[value]
}

// Total returns the sum of all counts, which equals the number of observations.
func (f *FrequencyMap) Total() int {
	return f.total
}

// Max returns the highest occurrence count, 0 for an empty map.
func (f *FrequencyMap) Max() int {
	return f.max
}
