package interference

import (
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

// DetectResonance reports whether any pair of waves lies within the
// frequency tolerance of each other. Fewer than two waves never
// resonate.
func (c *Calculator) DetectResonance(waves []wave.Wave, frequencyTolerance float64) bool {
	if len(waves) < 2 {
		return false
	}

	for i := 0; i < len(waves); i++ {
		for j := i + 1; j < len(waves); j++ {
			if math.Abs(waves[i].GetFrequency()-waves[j].GetFrequency()) <= frequencyTolerance {
				return true
			}
		}
	}

	return false
}

// CalculateResonanceAmplification returns the ratio of the absolute
// superposed value at position 0, time 0 to the naive sum of the
// individual amplitudes. Empty input or a non-positive amplitude sum
// yields 0.
func (c *Calculator) CalculateResonanceAmplification(waves []wave.Wave) float64 {
	if len(waves) == 0 {
		return 0.0
	}

	individualSum := 0.0
	for _, w := range waves {
		individualSum += w.GetAmplitude()
	}
	if individualSum <= 0 {
		return 0.0
	}

	return math.Abs(c.CalculateTotalAmplitude(waves, 0.0, 0.0)) / individualSum
}
