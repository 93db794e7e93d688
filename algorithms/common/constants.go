package common

import "math"

// Physical and display constants shared across the wave engine.
const (
	TwoPi    = 2 * math.Pi
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// Default sampling plan used when a consumer supplies none.
const (
	DefaultSampleRate = 1000.0 // Hz
	DefaultDuration   = 5.0    // seconds
)

// Display parameter bounds for wave construction. Values outside these
// ranges are numerically valid but rejected by the analysis facade so
// front-ends stay within a plottable window.
const (
	MinAmplitude = 0.1
	MaxAmplitude = 10.0
	MinFrequency = 0.1
	MaxFrequency = 10.0
	MinPhase     = 0.0
	MaxPhase     = 360.0
)
