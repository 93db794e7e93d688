package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMS(t *testing.T) {
	assert.Equal(t, 0.0, RMS(nil))
	assert.Equal(t, 0.0, RMS([]float64{}))

	// Constant signal: RMS equals the absolute value
	assert.InDelta(t, 3.0, RMS([]float64{3, 3, 3, 3}), 1e-12)
	assert.InDelta(t, 3.0, RMS([]float64{-3, -3, -3, -3}), 1e-12)

	// Full cycles of a unit sine settle at 1/sqrt(2)
	n := 1000
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(TwoPi * 5.0 * float64(i) / float64(n))
	}
	assert.InDelta(t, 1.0/math.Sqrt2, RMS(data), 1e-3)
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{256, true},
		{1000, false},
		{1024, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.n), "n=%d", tt.n)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{500, 512},
		{512, 512},
		{513, 1024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPowerOfTwo(tt.n), "n=%d", tt.n)
	}
}
