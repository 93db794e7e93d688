package spectral

import "math"

// DefaultHarmonicThreshold is the minimum bin magnitude treated as a
// significant peak during harmonic detection.
const DefaultHarmonicThreshold = 0.1

// maxHarmonicOrder bounds the search to the 10th harmonic.
const maxHarmonicOrder = 10

// Harmonic is a spectral peak at an integer multiple of the fundamental
type Harmonic struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
	Order     int     `json:"order"` // 1 = fundamental
}

// FindHarmonics locates the fundamental as the highest-magnitude bin
// excluding DC, then walks integer multiples of it up to the Nyquist
// frequency. A multiple is accepted when the closest bin lies within
// twice the frequency resolution and its magnitude clears the
// threshold. The result is empty when no fundamental clears the
// threshold or its frequency is zero.
func (a *Analyzer) FindHarmonics(spectrum FrequencySpectrum, threshold float64) []Harmonic {
	harmonics := []Harmonic{}

	if len(spectrum.Bins) == 0 {
		return harmonics
	}

	maxMagnitude := 0.0
	fundamentalFreq := 0.0
	for i := 1; i < len(spectrum.Bins); i++ {
		if spectrum.Bins[i].Magnitude > maxMagnitude {
			maxMagnitude = spectrum.Bins[i].Magnitude
			fundamentalFreq = spectrum.Bins[i].Frequency
		}
	}

	if fundamentalFreq == 0.0 || maxMagnitude < threshold {
		return harmonics
	}

	toleranceHz := spectrum.FrequencyResolution * 2.0

	for order := 1; order <= maxHarmonicOrder; order++ {
		targetFreq := float64(order) * fundamentalFreq
		if targetFreq > spectrum.MaxFrequency {
			break
		}

		closestBin := 0
		minDistance := math.Abs(spectrum.Bins[0].Frequency - targetFreq)
		for i := 1; i < len(spectrum.Bins); i++ {
			distance := math.Abs(spectrum.Bins[i].Frequency - targetFreq)
			if distance < minDistance {
				minDistance = distance
				closestBin = i
			}
		}

		if minDistance <= toleranceHz && spectrum.Bins[closestBin].Magnitude >= threshold {
			harmonics = append(harmonics, Harmonic{
				Frequency: spectrum.Bins[closestBin].Frequency,
				Amplitude: spectrum.Bins[closestBin].Magnitude,
				Phase:     spectrum.Bins[closestBin].Phase,
				Order:     order,
			})
		}
	}

	return harmonics
}

// CalculateTHD returns total harmonic distortion as a percentage: the
// square root of harmonic power over fundamental power, times 100.
// Returns 0 when there are no harmonics or no order-1 power.
func (a *Analyzer) CalculateTHD(harmonics []Harmonic) float64 {
	if len(harmonics) == 0 {
		return 0.0
	}

	fundamentalPower := 0.0
	harmonicPower := 0.0
	for _, h := range harmonics {
		power := h.Amplitude * h.Amplitude
		if h.Order == 1 {
			fundamentalPower = power
		} else {
			harmonicPower += power
		}
	}

	if fundamentalPower == 0.0 {
		return 0.0
	}

	return math.Sqrt(harmonicPower/fundamentalPower) * 100.0
}
