package wave

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
)

// Cosine is a cosine wave: A*cos(2*pi*f*t + phase)
type Cosine struct {
	params
}

// NewCosine creates a cosine wave with the given amplitude,
// frequency (Hz) and phase (degrees)
func NewCosine(amplitude, frequency, phase float64) *Cosine {
	return &Cosine{params{amplitude, frequency, phase}}
}

// Evaluate returns the wave value at the given position and time
func (w *Cosine) Evaluate(x, t float64) float64 {
	return w.amplitude * math.Cos(common.TwoPi*w.frequency*t+w.phase*common.DegToRad)
}

// GetType returns the wave type
func (w *Cosine) GetType() WaveType {
	return TypeCosine
}

// GetEquation returns a display form of the wave equation
func (w *Cosine) GetEquation() string {
	return fmt.Sprintf("y = %g * cos(2π * %g * t + %g°)", w.amplitude, w.frequency, w.phase)
}
