package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubling(t *testing.T) {
	var d Doubling
	assert.Equal(t, 1, d.Next(0))
	assert.Equal(t, 2, d.Next(1))
	assert.Equal(t, 4, d.Next(2))
	assert.Equal(t, 1024, d.Next(512))
	assert.Equal(t, math.MaxInt, d.Next(math.MaxInt/2+1))
}

func TestFixedIncrement(t *testing.T) {
	f := FixedIncrement{Step: 2}
	assert.Equal(t, 2, f.Next(0))
	assert.Equal(t, 7, f.Next(5))
	assert.Equal(t, math.MaxInt, f.Next(math.MaxInt-1))

	for _, step := range []int{0, -1, math.MinInt} {
		assert.Equal(t, 8, FixedIncrement{Step: step}.Next(8), "step %d", step)
	}
}

// Doubling reaches n elements in O(log n) reallocations; +2 needs n/2.
func TestGrowthCounts(t *testing.T) {
	cases := []struct {
		policy GrowthPolicy
		n      int
		grows  int
	}{
		{Doubling{}, 1000, 11},
		{FixedIncrement{Step: 2}, 1000, 500},
	}
	for _, c := range cases {
		s, err := New[int](0, &Options[int]{Growth: c.policy})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := range c.n {
			if err := s.Push(i); err != nil {
				t.Fatalf("Push: %v", err)
			}
		}
		assert.Equal(t, c.grows, s.Stats().Grows, "%T", c.policy)
		if err := s.Destroy(); err != nil {
			t.Fatalf("Destroy: %v", err)
		}
	}
}
