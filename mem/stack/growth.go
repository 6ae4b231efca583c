package stack

import "math"

// GrowthPolicy picks the capacity a full stack grows to.
// Next must return a value strictly greater than capacity.
type GrowthPolicy interface {
	Next(capacity int) int
}

// Doubling grows 0 -> 1 and c -> 2c, giving amortized O(1) pushes.
type Doubling struct{}

// Next implements GrowthPolicy.
func (Doubling) Next(capacity int) int {
	switch {
	case capacity <= 0:
		return 1
	case capacity > math.MaxInt/2:
		return math.MaxInt
	default:
		return capacity * 2
	}
}

// FixedIncrement grows by Step slots each time. Pushes cost O(n) amortized;
// Step 2 mirrors the classic "+2" growth found in textbook stacks.
type FixedIncrement struct {
	Step int
}

// Next implements GrowthPolicy. A non-positive Step never grows.
func (f FixedIncrement) Next(capacity int) int {
	if f.Step <= 0 {
		return capacity
	}
	if capacity > math.MaxInt-f.Step {
		return math.MaxInt
	}
	return capacity + f.Step
}
