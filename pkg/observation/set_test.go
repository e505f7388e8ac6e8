package observation

import (
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestSet_ZeroValueIsEmpty(t *testing.T) {
	var s Set

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, len(s.Values()))
}

func TestSet_CopiesInput(t *testing.T) {
	in := []float64{3, 1, 2}
	s := New(in...)

	in[0] = 99
	assert.Equal(t, 3.0, s.At(0))

	out := s.Values()
	out[1] = 42
	assert.Equal(t, 1.0, s.At(1))
}

func TestSet_PreservesOrder(t *testing.T) {
	s := New(5, 4, 3)

	var got []float64
	for _, v := range s.All {
		got = append(got, v)
	}

	assert.Equal(t, []float64{5, 4, 3}, got)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
}
