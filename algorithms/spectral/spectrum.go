package spectral

import (
	"math/cmplx"

	"github.com/RyanBlaney/onda-lab/algorithms/windowing"
)

// FrequencyBin is one discrete frequency sample of a spectrum
type FrequencyBin struct {
	Frequency float64 `json:"frequency"` // Hz
	Magnitude float64 `json:"magnitude"` // normalized single-sided amplitude
	Phase     float64 `json:"phase"`     // radians
}

// FrequencySpectrum holds the single-sided spectrum of a real signal,
// bin 0 at DC through the Nyquist bin inclusive, plus the harmonic
// structure derived from it.
type FrequencySpectrum struct {
	Bins                []FrequencyBin `json:"bins"`
	Harmonics           []Harmonic     `json:"harmonics"`
	SampleRate          float64        `json:"sample_rate"`
	FrequencyResolution float64        `json:"frequency_resolution"` // Hz per bin
	MaxFrequency        float64        `json:"max_frequency"`        // Nyquist
}

// Analyzer extracts single-sided spectra and harmonic structure from
// real signals. The window applied before the transform is selectable;
// the zero value of windowType means Hann.
type Analyzer struct {
	fft        *FFT
	windowType windowing.Type
}

// NewAnalyzer creates an analyzer with the default Hann window
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithWindow(windowing.TypeHann)
}

// NewAnalyzerWithWindow creates an analyzer using the given window type
// ahead of the transform
func NewAnalyzerWithWindow(windowType windowing.Type) *Analyzer {
	if windowType == "" {
		windowType = windowing.TypeHann
	}
	return &Analyzer{
		fft:        NewFFT(),
		windowType: windowType,
	}
}

// GetSpectrum windows the signal, transforms it, and extracts the
// positive-frequency bins. Interior bins are scaled by 2/fftSize to
// fold in the negative-frequency half; the DC and Nyquist bins by
// 1/fftSize. An empty signal yields the zero-value spectrum.
func (a *Analyzer) GetSpectrum(signal []float64, sampleRate float64) FrequencySpectrum {
	if len(signal) == 0 {
		return FrequencySpectrum{}
	}

	windowed := windowing.ApplyTo(signal, a.windowType)
	fftResult := a.fft.Compute(windowed)

	fftSize := len(fftResult)
	spectrum := FrequencySpectrum{
		SampleRate:          sampleRate,
		FrequencyResolution: sampleRate / float64(fftSize),
		MaxFrequency:        sampleRate / 2.0,
	}

	numBins := fftSize/2 + 1
	spectrum.Bins = make([]FrequencyBin, numBins)
	for i := range spectrum.Bins {
		magnitude := cmplx.Abs(fftResult[i])
		if i > 0 && i < fftSize/2 {
			magnitude *= 2.0 / float64(fftSize)
		} else {
			magnitude /= float64(fftSize)
		}

		spectrum.Bins[i] = FrequencyBin{
			Frequency: float64(i) * spectrum.FrequencyResolution,
			Magnitude: magnitude,
			Phase:     cmplx.Phase(fftResult[i]),
		}
	}

	spectrum.Harmonics = a.FindHarmonics(spectrum, DefaultHarmonicThreshold)

	return spectrum
}

// FindDominantFrequency returns the frequency of the highest-magnitude
// bin excluding DC, 0 for an empty spectrum
func (a *Analyzer) FindDominantFrequency(spectrum FrequencySpectrum) float64 {
	maxMagnitude := 0.0
	dominantFreq := 0.0

	// Skip the DC bin
	for i := 1; i < len(spectrum.Bins); i++ {
		if spectrum.Bins[i].Magnitude > maxMagnitude {
			maxMagnitude = spectrum.Bins[i].Magnitude
			dominantFreq = spectrum.Bins[i].Frequency
		}
	}

	return dominantFreq
}

// GetFrequencyAxis maps bin indices to frequencies for a transform of
// the given size: frequency of bin i is i*sampleRate/fftSize, for bins
// 0 through fftSize/2. Non-positive sizes yield an empty axis.
func (a *Analyzer) GetFrequencyAxis(fftSize int, sampleRate float64) []float64 {
	if fftSize <= 0 {
		return []float64{}
	}

	df := sampleRate / float64(fftSize)
	frequencies := make([]float64, fftSize/2+1)
	for i := range frequencies {
		frequencies[i] = float64(i) * df
	}

	return frequencies
}
