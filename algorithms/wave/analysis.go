package wave

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
)

// Phenomenon labels produced by DetectPhenomenon.
const (
	PhenomenonNoWaves       = "No waves"
	PhenomenonSingleWave    = "Single wave"
	PhenomenonBeating       = "Beating"
	PhenomenonResonance     = "Resonance"
	PhenomenonSuperposition = "Superposition"
)

// Beat and resonance detection thresholds.
const (
	beatUpperBound     = 2.0  // Hz; gaps above this no longer read as beating
	resonanceTolerance = 0.01 // Hz; frequency gap treated as identical
)

// Analysis summarizes a sampled signal together with the engine's
// qualitative read of its wave collection.
type Analysis struct {
	MaxAmplitude float64 `json:"max_amplitude"`
	MinAmplitude float64 `json:"min_amplitude"`
	RMSAmplitude float64 `json:"rms_amplitude"`
	Frequency    float64 `json:"frequency"`
	Period       float64 `json:"period"`
	Energy       float64 `json:"energy"`
	Phenomenon   string  `json:"phenomenon"`
}

// AnalyzeWaves computes amplitude statistics for a sampled signal and
// attaches the dominant frequency and phenomenon label of the current
// wave collection. Empty input yields all-zero statistics labeled
// "No data". The sampleRate is carried for future spectral refinement;
// the dominant frequency here comes from wave parameters, not the data.
func (e *Engine) AnalyzeWaves(data []float64, sampleRate float64) Analysis {
	if len(data) == 0 {
		return Analysis{Phenomenon: "No data"}
	}

	analysis := Analysis{
		MaxAmplitude: floats.Max(data),
		MinAmplitude: floats.Min(data),
		RMSAmplitude: common.RMS(data),
	}
	analysis.Energy = 0.5 * analysis.RMSAmplitude * analysis.RMSAmplitude

	analysis.Frequency = e.GetDominantFrequency()
	if analysis.Frequency > 0 {
		analysis.Period = 1.0 / analysis.Frequency
	}

	analysis.Phenomenon = e.DetectPhenomenon()

	return analysis
}

// CalculateBeatFrequency returns the smallest positive gap between
// consecutive member frequencies in ascending order, 0 with fewer than
// two waves or when all frequencies coincide.
func (e *Engine) CalculateBeatFrequency() float64 {
	if len(e.waves) < 2 {
		return 0.0
	}

	frequencies := make([]float64, len(e.waves))
	for i, w := range e.waves {
		frequencies[i] = w.GetFrequency()
	}
	sort.Float64s(frequencies)

	minDiff := 0.0
	for i := 1; i < len(frequencies); i++ {
		diff := frequencies[i] - frequencies[i-1]
		if diff > 0 && (minDiff == 0 || diff < minDiff) {
			minDiff = diff
		}
	}

	return minDiff
}

// DetectInterference reports whether the collection can interfere,
// i.e. holds more than one wave
func (e *Engine) DetectInterference() bool {
	return len(e.waves) > 1
}

// DetectPhenomenon labels the current wave collection. Beating wins
// over resonance: a small positive frequency gap reads as beats even
// when another pair of members coincides exactly.
func (e *Engine) DetectPhenomenon() string {
	switch len(e.waves) {
	case 0:
		return PhenomenonNoWaves
	case 1:
		return PhenomenonSingleWave
	}

	beatFreq := e.CalculateBeatFrequency()
	if beatFreq > 0 && beatFreq < beatUpperBound {
		return PhenomenonBeating
	}

	for i := 0; i < len(e.waves); i++ {
		for j := i + 1; j < len(e.waves); j++ {
			diff := e.waves[i].GetFrequency() - e.waves[j].GetFrequency()
			if diff < 0 {
				diff = -diff
			}
			if diff < resonanceTolerance {
				return PhenomenonResonance
			}
		}
	}

	return PhenomenonSuperposition
}

// GetDominantFrequency returns the frequency of the wave with the
// largest amplitude, first occurrence winning ties. 0 for an empty
// collection.
func (e *Engine) GetDominantFrequency() float64 {
	maxAmp := 0.0
	dominantFreq := 0.0

	for _, w := range e.waves {
		if w.GetAmplitude() > maxAmp {
			maxAmp = w.GetAmplitude()
			dominantFreq = w.GetFrequency()
		}
	}

	return dominantFreq
}

// GetMaxAmplitude returns the largest member amplitude, never below 0
func (e *Engine) GetMaxAmplitude() float64 {
	maxAmp := 0.0
	for _, w := range e.waves {
		if w.GetAmplitude() > maxAmp {
			maxAmp = w.GetAmplitude()
		}
	}
	return maxAmp
}

// CalculateTotalEnergy sums the energy of every member wave
func (e *Engine) CalculateTotalEnergy() float64 {
	totalEnergy := 0.0
	for _, w := range e.waves {
		totalEnergy += w.GetEnergy()
	}
	return totalEnergy
}
