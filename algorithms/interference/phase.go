package interference

import (
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

// CalculatePhaseShift returns the phase of the second wave relative to
// the first, normalized into [0, 360) degrees
func (c *Calculator) CalculatePhaseShift(wave1, wave2 wave.Wave) float64 {
	diff := wave2.GetPhase() - wave1.GetPhase()

	for diff < 0 {
		diff += 360.0
	}
	for diff >= 360.0 {
		diff -= 360.0
	}

	return diff
}

// AreInPhase reports whether the phase shift between two waves lies
// within the tolerance of 0 degrees, approached from either side of
// the wrap
func (c *Calculator) AreInPhase(wave1, wave2 wave.Wave, tolerance float64) bool {
	phaseDiff := c.CalculatePhaseShift(wave1, wave2)
	return phaseDiff <= tolerance || math.Abs(phaseDiff-360.0) <= tolerance
}

// AreOutOfPhase reports whether the phase shift between two waves lies
// within the tolerance of 180 degrees
func (c *Calculator) AreOutOfPhase(wave1, wave2 wave.Wave, tolerance float64) bool {
	return math.Abs(c.CalculatePhaseShift(wave1, wave2)-180.0) <= tolerance
}
