package analysis

import (
	"fmt"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
	"github.com/RyanBlaney/onda-lab/algorithms/interference"
	"github.com/RyanBlaney/onda-lab/algorithms/spectral"
	"github.com/RyanBlaney/onda-lab/algorithms/windowing"
)

// Default spatial scan used for interference detection.
const (
	DefaultInterferenceLength = 10.0 // region [0, length]
	DefaultInterferencePoints = 1000
)

// Config holds the sampling plan and detection parameters for a full
// analysis pass.
type Config struct {
	SampleRate         float64        `json:"sample_rate"`         // Hz
	Duration           float64        `json:"duration"`            // seconds
	Position           float64        `json:"position"`            // sampling position for time series
	WindowType         windowing.Type `json:"window_type"`         // applied before the transform
	HarmonicThreshold  float64        `json:"harmonic_threshold"`  // minimum significant bin magnitude
	InterferenceLength float64        `json:"interference_length"` // spatial scan extent
	InterferencePoints int            `json:"interference_points"` // spatial scan resolution
	NodeThreshold      float64        `json:"node_threshold"`      // node/antinode amplitude split
	Tolerance          float64        `json:"tolerance"`           // interference classification slack
}

// DefaultConfig returns the default analysis configuration
func DefaultConfig() *Config {
	return &Config{
		SampleRate:         common.DefaultSampleRate,
		Duration:           common.DefaultDuration,
		Position:           0.0,
		WindowType:         windowing.TypeHann,
		HarmonicThreshold:  spectral.DefaultHarmonicThreshold,
		InterferenceLength: DefaultInterferenceLength,
		InterferencePoints: DefaultInterferencePoints,
		NodeThreshold:      interference.DefaultNodeThreshold,
		Tolerance:          interference.DefaultTolerance,
	}
}

// Validate checks that the sampling plan can produce data. Thresholds
// and tolerances are unconstrained; only the plan dimensions can make
// an analysis pass meaningless.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %g", c.SampleRate)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	if c.InterferenceLength <= 0 {
		return fmt.Errorf("interference length must be positive, got %g", c.InterferenceLength)
	}
	if c.InterferencePoints <= 0 {
		return fmt.Errorf("interference points must be positive, got %d", c.InterferencePoints)
	}
	return nil
}

// ValidateWaveParameters checks wave parameters against the display
// bounds before a wave is constructed: amplitude and frequency within
// their positive ranges, phase within [0, 360].
func ValidateWaveParameters(amplitude, frequency, phase float64) error {
	if amplitude < common.MinAmplitude || amplitude > common.MaxAmplitude {
		return fmt.Errorf("amplitude %g outside [%g, %g]", amplitude, common.MinAmplitude, common.MaxAmplitude)
	}
	if frequency < common.MinFrequency || frequency > common.MaxFrequency {
		return fmt.Errorf("frequency %g outside [%g, %g]", frequency, common.MinFrequency, common.MaxFrequency)
	}
	if phase < common.MinPhase || phase > common.MaxPhase {
		return fmt.Errorf("phase %g outside [%g, %g]", phase, common.MinPhase, common.MaxPhase)
	}
	return nil
}
