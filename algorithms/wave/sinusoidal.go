package wave

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
)

// Sinusoidal is a sine wave: A*sin(2*pi*f*t + phase)
type Sinusoidal struct {
	params
}

// NewSinusoidal creates a sine wave with the given amplitude,
// frequency (Hz) and phase (degrees)
func NewSinusoidal(amplitude, frequency, phase float64) *Sinusoidal {
	return &Sinusoidal{params{amplitude, frequency, phase}}
}

// Evaluate returns the wave value at the given position and time
func (w *Sinusoidal) Evaluate(x, t float64) float64 {
	return w.amplitude * math.Sin(common.TwoPi*w.frequency*t+w.phase*common.DegToRad)
}

// GetType returns the wave type
func (w *Sinusoidal) GetType() WaveType {
	return TypeSinusoidal
}

// GetEquation returns a display form of the wave equation
func (w *Sinusoidal) GetEquation() string {
	return fmt.Sprintf("y = %g * sin(2π * %g * t + %g°)", w.amplitude, w.frequency, w.phase)
}
