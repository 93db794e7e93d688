package wave

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
)

// Square is a square wave: A*sign(sin(2*pi*f*t + phase)) with sign(0) = +1
type Square struct {
	params
}

// NewSquare creates a square wave with the given amplitude,
// frequency (Hz) and phase (degrees)
func NewSquare(amplitude, frequency, phase float64) *Square {
	return &Square{params{amplitude, frequency, phase}}
}

// Evaluate returns the wave value at the given position and time
func (w *Square) Evaluate(x, t float64) float64 {
	arg := common.TwoPi*w.frequency*t + w.phase*common.DegToRad
	if math.Sin(arg) >= 0 {
		return w.amplitude
	}
	return -w.amplitude
}

// GetType returns the wave type
func (w *Square) GetType() WaveType {
	return TypeSquare
}

// GetEquation returns a display form of the wave equation
func (w *Square) GetEquation() string {
	return fmt.Sprintf("y = %g * sign(sin(2π * %g * t + %g°))", w.amplitude, w.frequency, w.phase)
}
