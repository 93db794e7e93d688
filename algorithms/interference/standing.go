package interference

import (
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

// CalculateStandingWave superposes a forward-travelling wave
// A1*sin(kx - wt) and a backward-travelling wave A2*sin(kx + wt + phaseShift)
// at numPoints evenly spaced positions over [0, length]. Unit
// propagation speed is assumed, so k = w = 2*pi*frequency. The phase
// shift is in radians; a hard-boundary reflection corresponds to pi.
func (c *Calculator) CalculateStandingWave(amplitude1, amplitude2, frequency, phaseShift, length float64, numPoints int, time float64) []float64 {
	if numPoints <= 0 {
		return []float64{}
	}

	dx := 0.0
	if numPoints > 1 {
		dx = length / float64(numPoints-1)
	}

	k := common.TwoPi * frequency
	omega := common.TwoPi * frequency

	standingWave := make([]float64, numPoints)
	for i := range standingWave {
		x := float64(i) * dx

		forward := amplitude1 * math.Sin(k*x-omega*time)
		backward := amplitude2 * math.Sin(k*x+omega*time+phaseShift)

		standingWave[i] = forward + backward
	}

	return standingWave
}

// FindInterferenceNodes samples the absolute superposition amplitude
// over [0, length] and reports strict interior local minima at or below
// the threshold as nodes and strict interior local maxima at or above
// it as antinodes, nodes first. Fewer than three samples have no
// interior points and yield nothing; so does a spatially uniform field.
func (c *Calculator) FindInterferenceNodes(waves []wave.Wave, time, length float64, numPoints int, threshold float64) []Node {
	nodes := []Node{}

	samples := c.sampleTotalAmplitude(waves, time, length, numPoints)
	if len(samples) < 3 {
		return nodes
	}
	for i, v := range samples {
		samples[i] = math.Abs(v)
	}

	dx := length / float64(numPoints-1)

	for _, i := range findLocalExtrema(samples, false) {
		if samples[i] <= threshold {
			nodes = append(nodes, Node{
				Position:  float64(i) * dx,
				Amplitude: samples[i],
				Type:      NodeTypeNode,
			})
		}
	}

	for _, i := range findLocalExtrema(samples, true) {
		if samples[i] >= threshold {
			nodes = append(nodes, Node{
				Position:  float64(i) * dx,
				Amplitude: samples[i],
				Type:      NodeTypeAntinode,
			})
		}
	}

	return nodes
}

// findLocalExtrema returns the indices of strict interior local maxima
// or minima found by immediate-neighbor comparison.
func findLocalExtrema(data []float64, findMaxima bool) []int {
	extrema := []int{}

	for i := 1; i < len(data)-1; i++ {
		var isExtremum bool
		if findMaxima {
			isExtremum = data[i] > data[i-1] && data[i] > data[i+1]
		} else {
			isExtremum = data[i] < data[i-1] && data[i] < data[i+1]
		}

		if isExtremum {
			extrema = append(extrema, i)
		}
	}

	return extrema
}
