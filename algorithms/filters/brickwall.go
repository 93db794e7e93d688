package filters

import (
	"github.com/RyanBlaney/onda-lab/algorithms/spectral"
)

// Brickwall filters a real signal by zeroing FFT bins outside the pass
// band and transforming back. Bins are zeroed symmetrically (index i
// together with its mirror n-i) so the inverse stays real.
//
// The cutoff maps to a bin as int(cutoff*n/sampleRate) with n the
// padded transform length, and the output has that padded length, not
// the input length. Callers filtering non-power-of-two signals see the
// zero-padded tail in the result.
type Brickwall struct {
	fft *spectral.FFT
}

// NewBrickwall creates a new brick-wall filter bank
func NewBrickwall() *Brickwall {
	return &Brickwall{fft: spectral.NewFFT()}
}

// LowPass removes frequency content at and above the cutoff. An empty
// signal comes back empty.
func (b *Brickwall) LowPass(signal []float64, cutoffFreq, sampleRate float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	spectrum := b.fft.Compute(signal)
	n := len(spectrum)

	cutoffBin := int(cutoffFreq * float64(n) / sampleRate)
	if cutoffBin < 0 {
		cutoffBin = 0
	}

	for i := cutoffBin; i <= n-cutoffBin && i < n; i++ {
		spectrum[i] = 0
	}

	return b.fft.ComputeInverseReal(spectrum)
}

// HighPass removes frequency content at and below the cutoff. An empty
// signal comes back empty.
func (b *Brickwall) HighPass(signal []float64, cutoffFreq, sampleRate float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	spectrum := b.fft.Compute(signal)
	n := len(spectrum)

	cutoffBin := int(cutoffFreq * float64(n) / sampleRate)

	for i := 0; i <= cutoffBin && i < n; i++ {
		spectrum[i] = 0
		if i > 0 {
			spectrum[n-i] = 0
		}
	}

	return b.fft.ComputeInverseReal(spectrum)
}

// BandPass keeps the bins in [lowBin, highBin] and their mirror images,
// zeroing everything else. Both band edges are inclusive. An empty
// signal comes back empty.
func (b *Brickwall) BandPass(signal []float64, lowFreq, highFreq, sampleRate float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	spectrum := b.fft.Compute(signal)
	n := len(spectrum)

	lowBin := int(lowFreq * float64(n) / sampleRate)
	highBin := int(highFreq * float64(n) / sampleRate)

	for i := range spectrum {
		// Fold the mirrored half onto its positive-frequency index
		j := i
		if j > n/2 {
			j = n - j
		}
		if j < lowBin || j > highBin {
			spectrum[i] = 0
		}
	}

	return b.fft.ComputeInverseReal(spectrum)
}
