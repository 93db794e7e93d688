package interference

import (
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

// CalculateBeatFrequency returns the absolute difference of two
// component frequencies, the rate at which their superposition swells
// and fades
func (c *Calculator) CalculateBeatFrequency(f1, f2 float64) float64 {
	return math.Abs(f1 - f2)
}

// CalculateBeatPeriod returns the duration of one beat cycle,
// 1/beatFrequency, or 0 when the frequencies coincide
func (c *Calculator) CalculateBeatPeriod(f1, f2 float64) float64 {
	beatFreq := c.CalculateBeatFrequency(f1, f2)
	if beatFreq > 0 {
		return 1.0 / beatFreq
	}
	return 0.0
}

// CalculateBeatEnvelope samples the slow amplitude modulation of two
// superposed waves at int(duration*sampleRate) points: the average of
// the two amplitudes plus their difference scaled by
// cos(pi*beatFrequency*t), in absolute value.
func (c *Calculator) CalculateBeatEnvelope(wave1, wave2 wave.Wave, duration, sampleRate float64) []float64 {
	numSamples := int(duration * sampleRate)
	if numSamples <= 0 {
		return []float64{}
	}

	dt := 1.0 / sampleRate
	beatFreq := c.CalculateBeatFrequency(wave1.GetFrequency(), wave2.GetFrequency())
	avgAmplitude := (wave1.GetAmplitude() + wave2.GetAmplitude()) / 2.0
	amplitudeDiff := math.Abs(wave1.GetAmplitude() - wave2.GetAmplitude())

	envelope := make([]float64, numSamples)
	for i := range envelope {
		t := float64(i) * dt
		envelope[i] = math.Abs(avgAmplitude + amplitudeDiff*math.Cos(math.Pi*beatFreq*t))
	}

	return envelope
}
