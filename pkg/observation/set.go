// Package observation holds the Observation Set: the validated, ordered sequence of
// numeric values a dataset is made of. A Set is produced by the loader, consumed by the
// statistics engine and never changes after construction.
package observation

import "slices"

// Set is an immutable, ordered sequence of finite float64 observations.
// The zero value is an empty set.
type Set struct {
	values []float64
}

// New returns a Set holding a copy of values, in the given order.
func New(values ...float64) Set {
	return Set{values: slices.Clone(values)}
}

// Len returns the number of observations.
func (s Set) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the set holds no observations.
func (s Set) IsEmpty() bool {
	return len(s.values) == 0
}

// At returns the i-th observation in insertion order.
func (s Set) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the observations in insertion order.
func (s Set) Values() []float64 {
	return slices.Clone(s.values)
}

// All iterates the observations in insertion order without copying them.
func (s Set) All(yield func(i int, v float64) bool) {
	for i, v := range s.values {
		if !yield(i, v) {
			return
		}
	}
}
