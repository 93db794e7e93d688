package wave

import (
	"fmt"
	"math"
)

// Triangular is a triangle wave ramping -1..1..-1 over each period,
// scaled by the amplitude
type Triangular struct {
	params
}

// NewTriangular creates a triangle wave with the given amplitude,
// frequency (Hz) and phase (degrees)
func NewTriangular(amplitude, frequency, phase float64) *Triangular {
	return &Triangular{params{amplitude, frequency, phase}}
}

// Evaluate returns the wave value at the given position and time
func (w *Triangular) Evaluate(x, t float64) float64 {
	arg := w.frequency*t + w.phase/360.0
	r := arg - math.Floor(arg)

	switch {
	case r < 0.25:
		return w.amplitude * 4.0 * r
	case r < 0.75:
		return w.amplitude * (2.0 - 4.0*r)
	default:
		return w.amplitude * (4.0*r - 4.0)
	}
}

// GetType returns the wave type
func (w *Triangular) GetType() WaveType {
	return TypeTriangular
}

// GetEquation returns a display form of the wave equation
func (w *Triangular) GetEquation() string {
	return fmt.Sprintf("y = %g * triangular(%g * t + %g°)", w.amplitude, w.frequency, w.phase)
}
