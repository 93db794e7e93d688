package spectral

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
)

// FFT provides the forward and inverse discrete Fourier transform
// behind spectrum extraction and frequency-domain filtering. Real input
// is zero-padded on the right to the next power of two (length 1 for at
// most one sample) and transformed by a recursive radix-2
// decimation-in-time pass.
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute transforms a real signal. The output length is the next
// power of two at or above the input length.
func (f *FFT) Compute(signal []float64) []complex128 {
	n := common.NextPowerOfTwo(len(signal))

	padded := make([]complex128, n)
	for i, val := range signal {
		padded[i] = complex(val, 0)
	}

	return f.transform(padded)
}

// ComputeInverse computes the inverse transform via the conjugate
// trick: conjugate, forward transform, conjugate again and divide by n.
// The input must be a power-of-two-length spectrum as produced by
// Compute; other lengths leave the result length undefined.
func (f *FFT) ComputeInverse(spectrum []complex128) []complex128 {
	if len(spectrum) == 0 {
		return []complex128{}
	}

	conjugated := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		conjugated[i] = cmplx.Conj(c)
	}

	result := f.transform(conjugated)

	n := complex(float64(len(result)), 0)
	for i, c := range result {
		result[i] = cmplx.Conj(c) / n
	}

	return result
}

// ComputeInverseReal computes the inverse transform and returns the
// real parts only
func (f *FFT) ComputeInverseReal(spectrum []complex128) []float64 {
	if len(spectrum) == 0 {
		return []float64{}
	}

	result := f.ComputeInverse(spectrum)
	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// transform is the recursive radix-2 decimation-in-time pass. Twiddle
// factors use the forward sign convention exp(-2*pi*i*k/n).
func (f *FFT) transform(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	even := make([]complex128, 0, (n+1)/2)
	odd := make([]complex128, 0, n/2)
	for i := 0; i < n; i += 2 {
		even = append(even, x[i])
		if i+1 < n {
			odd = append(odd, x[i+1])
		}
	}

	evenFFT := f.transform(even)
	oddFFT := f.transform(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		angle := -common.TwoPi * float64(k) / float64(n)
		w := complex(math.Cos(angle), math.Sin(angle))
		t := w * oddFFT[k]

		result[k] = evenFFT[k] + t
		result[k+n/2] = evenFFT[k] - t
	}

	return result
}
