package wave

import (
	"fmt"
	"math"
)

// Sawtooth is a sawtooth wave ramping linearly from -A to A each period
type Sawtooth struct {
	params
}

// NewSawtooth creates a sawtooth wave with the given amplitude,
// frequency (Hz) and phase (degrees)
func NewSawtooth(amplitude, frequency, phase float64) *Sawtooth {
	return &Sawtooth{params{amplitude, frequency, phase}}
}

// Evaluate returns the wave value at the given position and time
func (w *Sawtooth) Evaluate(x, t float64) float64 {
	arg := w.frequency*t + w.phase/360.0
	r := arg - math.Floor(arg)
	return w.amplitude * (2.0*r - 1.0)
}

// GetType returns the wave type
func (w *Sawtooth) GetType() WaveType {
	return TypeSawtooth
}

// GetEquation returns a display form of the wave equation
func (w *Sawtooth) GetEquation() string {
	return fmt.Sprintf("y = %g * sawtooth(%g * t + %g°)", w.amplitude, w.frequency, w.phase)
}
