package wave

import "github.com/RyanBlaney/onda-lab/algorithms/common"

// WaveType identifies a generator variant.
type WaveType string

const (
	TypeSinusoidal WaveType = "sinusoidal"
	TypeCosine     WaveType = "cosine"
	TypeSquare     WaveType = "square"
	TypeTriangular WaveType = "triangular"
	TypeSawtooth   WaveType = "sawtooth"
)

// String returns the variant name
func (t WaveType) String() string {
	return string(t)
}

// Wave is a pure function of position and time parameterized by
// amplitude, frequency (Hz) and phase (degrees). The closed set of
// implementations is Sinusoidal, Cosine, Square, Triangular and
// Sawtooth; all of them are time-only (the position argument is
// reserved for spatial dependence and currently ignored).
//
// Evaluate is deterministic for fixed parameters. Derived quantities
// divide by frequency or velocity without guarding: a zero divisor
// yields Inf/NaN, which callers are expected to screen for beforehand.
type Wave interface {
	Evaluate(position, time float64) float64

	GetAmplitude() float64
	GetFrequency() float64
	GetPhase() float64
	GetType() WaveType
	GetEquation() string

	SetAmplitude(amplitude float64)
	SetFrequency(frequency float64)
	SetPhase(phase float64)
	SetParameters(amplitude, frequency, phase float64)

	// Derived quantities
	GetPeriod() float64
	GetWavelength(velocity float64) float64
	GetAngularFrequency() float64
	GetWaveNumber(velocity float64) float64
	GetEnergy() float64
}

// params is the shared parameter block embedded by every variant.
type params struct {
	amplitude float64
	frequency float64 // Hz
	phase     float64 // degrees
}

// GetAmplitude returns the wave amplitude
func (p *params) GetAmplitude() float64 {
	return p.amplitude
}

// GetFrequency returns the wave frequency in Hz
func (p *params) GetFrequency() float64 {
	return p.frequency
}

// GetPhase returns the wave phase in degrees
func (p *params) GetPhase() float64 {
	return p.phase
}

// SetAmplitude sets the wave amplitude
func (p *params) SetAmplitude(amplitude float64) {
	p.amplitude = amplitude
}

// SetFrequency sets the wave frequency in Hz
func (p *params) SetFrequency(frequency float64) {
	p.frequency = frequency
}

// SetPhase sets the wave phase in degrees
func (p *params) SetPhase(phase float64) {
	p.phase = phase
}

// SetParameters sets all three defining parameters at once
func (p *params) SetParameters(amplitude, frequency, phase float64) {
	p.amplitude = amplitude
	p.frequency = frequency
	p.phase = phase
}

// GetPeriod returns 1/frequency
func (p *params) GetPeriod() float64 {
	return 1.0 / p.frequency
}

// GetWavelength returns velocity/frequency
func (p *params) GetWavelength(velocity float64) float64 {
	return velocity / p.frequency
}

// GetAngularFrequency returns 2*pi*frequency
func (p *params) GetAngularFrequency() float64 {
	return common.TwoPi * p.frequency
}

// GetWaveNumber returns 2*pi/wavelength
func (p *params) GetWaveNumber(velocity float64) float64 {
	return common.TwoPi / p.GetWavelength(velocity)
}

// GetEnergy returns the energy density 0.5*amplitude^2
func (p *params) GetEnergy() float64 {
	return 0.5 * p.amplitude * p.amplitude
}

// New creates a wave of the given type. Unknown types yield nil; the
// variant set is closed.
func New(waveType WaveType, amplitude, frequency, phase float64) Wave {
	switch waveType {
	case TypeSinusoidal:
		return NewSinusoidal(amplitude, frequency, phase)
	case TypeCosine:
		return NewCosine(amplitude, frequency, phase)
	case TypeSquare:
		return NewSquare(amplitude, frequency, phase)
	case TypeTriangular:
		return NewTriangular(amplitude, frequency, phase)
	case TypeSawtooth:
		return NewSawtooth(amplitude, frequency, phase)
	default:
		return nil
	}
}
