package interference

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

// Default detection parameters, matching the values NewCalculator uses.
const (
	// DefaultTolerance is the amplitude-envelope slack used to classify
	// a pattern as constructive or destructive.
	DefaultTolerance = 0.1

	// DefaultNodeThreshold is the absolute amplitude below which a local
	// minimum counts as a node and at or above which a local maximum
	// counts as an antinode.
	DefaultNodeThreshold = 0.1

	// DefaultPhaseTolerance is the slack in degrees for the in-phase and
	// out-of-phase checks.
	DefaultPhaseTolerance = 0.1

	// DefaultFrequencyTolerance is the frequency gap in Hz at or below
	// which two waves count as resonating.
	DefaultFrequencyTolerance = 0.01
)

// beatUpperBound is the beat frequency in Hz above which a frequency
// gap no longer reads as beating.
const beatUpperBound = 2.0

// Type classifies an interference pattern.
type Type string

const (
	TypeConstructive   Type = "constructive"
	TypeDestructive    Type = "destructive"
	TypePartial        Type = "partial"
	TypeNoInterference Type = "no_interference"
)

// String returns the classification name
func (t Type) String() string {
	return string(t)
}

// NodeType tags a standing-wave structure point as an amplitude minimum
// or maximum.
type NodeType string

const (
	NodeTypeNode     NodeType = "node"
	NodeTypeAntinode NodeType = "antinode"
)

// Node is a spatial point of locally extreme superposition amplitude
type Node struct {
	Position  float64  `json:"position"`
	Amplitude float64  `json:"amplitude"`
	Type      NodeType `json:"type"`
}

// Result describes an interference pattern: the classification, the
// peak amplitude observed over the sampled region, the phase shift
// between the two component waves in degrees [0, 360), the beat
// frequency, node and antinode positions, and a display summary.
type Result struct {
	Type              Type      `json:"type"`
	Amplitude         float64   `json:"amplitude"`
	Phase             float64   `json:"phase"`
	BeatFrequency     float64   `json:"beat_frequency"`
	NodePositions     []float64 `json:"node_positions"`
	AntinodePositions []float64 `json:"antinode_positions"`
	Description       string    `json:"description"`
}

// Calculator analyzes superposition phenomena of two or more waves:
// interference classification, beats, standing-wave structure, phase
// relations and resonance.
//
// Waves handed to a calculator are borrowed for the duration of the
// call, never stored, and must be non-nil.
type Calculator struct {
	tolerance          float64 // classification envelope slack
	nodeThreshold      float64 // node/antinode amplitude split
	frequencyTolerance float64 // Hz, resonance pair gap
}

// NewCalculator creates a calculator with the default tolerances
func NewCalculator() *Calculator {
	return &Calculator{
		tolerance:          DefaultTolerance,
		nodeThreshold:      DefaultNodeThreshold,
		frequencyTolerance: DefaultFrequencyTolerance,
	}
}

// NewCalculatorWithTolerances creates a calculator whose composite
// analyses use the given classification tolerance, node threshold and
// resonance frequency tolerance. The single-purpose methods that take
// an explicit tolerance parameter are unaffected.
func NewCalculatorWithTolerances(tolerance, nodeThreshold, frequencyTolerance float64) *Calculator {
	return &Calculator{
		tolerance:          tolerance,
		nodeThreshold:      nodeThreshold,
		frequencyTolerance: frequencyTolerance,
	}
}

// CalculateTwoWaveInterference samples the superposition of two waves
// at numPoints evenly spaced positions over [0, length] at the given
// time and classifies the pattern. The peak amplitude is the largest
// absolute sample; nodes and antinodes come from the same sampling
// plan.
func (c *Calculator) CalculateTwoWaveInterference(wave1, wave2 wave.Wave, time, length float64, numPoints int) Result {
	waves := []wave.Wave{wave1, wave2}

	var result Result
	result.Amplitude = c.peakAmplitude(waves, time, length, numPoints)
	result.Phase = c.CalculatePhaseShift(wave1, wave2)
	result.Type = c.ClassifyInterference(wave1.GetAmplitude(), wave2.GetAmplitude(), result.Amplitude, c.tolerance)
	result.BeatFrequency = c.CalculateBeatFrequency(wave1.GetFrequency(), wave2.GetFrequency())

	c.collectNodePositions(&result, waves, time, length, numPoints)

	result.Description = describe(result)

	return result
}

// CalculateMultiWaveInterference samples the superposition of any
// number of waves and classifies the pattern. Zero waves yield a
// no-interference result labeled accordingly; a single wave yields a
// no-interference result carrying that wave's amplitude. With two or
// more waves the beat frequency comes from the first two, a resonating
// pair overrides the classification to constructive, and everything
// else reads as partial.
func (c *Calculator) CalculateMultiWaveInterference(waves []wave.Wave, time, length float64, numPoints int) Result {
	var result Result

	if len(waves) == 0 {
		result.Type = TypeNoInterference
		result.Description = "No waves provided"
		return result
	}

	if len(waves) == 1 {
		result.Type = TypeNoInterference
		result.Amplitude = waves[0].GetAmplitude()
		result.Description = "Single wave - no interference"
		return result
	}

	result.Amplitude = c.peakAmplitude(waves, time, length, numPoints)
	result.BeatFrequency = c.CalculateBeatFrequency(waves[0].GetFrequency(), waves[1].GetFrequency())

	c.collectNodePositions(&result, waves, time, length, numPoints)

	switch {
	case c.DetectResonance(waves, c.frequencyTolerance):
		result.Type = TypeConstructive
		result.Description = "Resonance detected - constructive interference"
	case result.BeatFrequency > 0 && result.BeatFrequency < beatUpperBound:
		result.Type = TypePartial
		result.Description = "Beat phenomenon detected"
	default:
		result.Type = TypePartial
		result.Description = "Complex multi-wave interference"
	}

	return result
}

// ClassifyInterference compares an observed peak amplitude against the
// envelope two component amplitudes can reach: constructive at or above
// their sum minus the tolerance, destructive at or below their absolute
// difference plus the tolerance, partial in between.
func (c *Calculator) ClassifyInterference(amplitude1, amplitude2, resultAmplitude, tolerance float64) Type {
	maxPossible := amplitude1 + amplitude2
	minPossible := math.Abs(amplitude1 - amplitude2)

	switch {
	case resultAmplitude >= maxPossible-tolerance:
		return TypeConstructive
	case resultAmplitude <= minPossible+tolerance:
		return TypeDestructive
	default:
		return TypePartial
	}
}

// CalculateTotalAmplitude sums every wave's value at the given position
// and time. This is the sampling primitive behind every region scan in
// the package.
func (c *Calculator) CalculateTotalAmplitude(waves []wave.Wave, position, time float64) float64 {
	total := 0.0
	for _, w := range waves {
		total += w.Evaluate(position, time)
	}
	return total
}

// sampleTotalAmplitude evaluates the superposition at numPoints evenly
// spaced positions over [0, length]. A single point samples the origin;
// a non-positive count yields no samples.
func (c *Calculator) sampleTotalAmplitude(waves []wave.Wave, time, length float64, numPoints int) []float64 {
	if numPoints <= 0 {
		return []float64{}
	}

	dx := 0.0
	if numPoints > 1 {
		dx = length / float64(numPoints-1)
	}

	samples := make([]float64, numPoints)
	for i := range samples {
		samples[i] = c.CalculateTotalAmplitude(waves, float64(i)*dx, time)
	}

	return samples
}

// peakAmplitude returns the largest absolute superposition sample over
// the region, 0 when there are no sample points.
func (c *Calculator) peakAmplitude(waves []wave.Wave, time, length float64, numPoints int) float64 {
	samples := c.sampleTotalAmplitude(waves, time, length, numPoints)
	if len(samples) == 0 {
		return 0.0
	}
	return math.Max(math.Abs(floats.Min(samples)), math.Abs(floats.Max(samples)))
}

// collectNodePositions splits the detected structure points into the
// result's node and antinode position lists.
func (c *Calculator) collectNodePositions(result *Result, waves []wave.Wave, time, length float64, numPoints int) {
	for _, node := range c.FindInterferenceNodes(waves, time, length, numPoints, c.nodeThreshold) {
		if node.Type == NodeTypeNode {
			result.NodePositions = append(result.NodePositions, node.Position)
		} else {
			result.AntinodePositions = append(result.AntinodePositions, node.Position)
		}
	}
}

// describe synthesizes the display summary for a classified result.
func describe(result Result) string {
	var b strings.Builder

	switch result.Type {
	case TypeConstructive:
		b.WriteString("Constructive interference - waves reinforce each other")
	case TypeDestructive:
		b.WriteString("Destructive interference - waves cancel each other")
	case TypePartial:
		b.WriteString("Partial interference")
		if result.BeatFrequency > 0 {
			fmt.Fprintf(&b, " with beating at %g Hz", result.BeatFrequency)
		}
	case TypeNoInterference:
		b.WriteString("No interference detected")
	}

	if len(result.NodePositions) > 0 {
		fmt.Fprintf(&b, ". %d nodes detected", len(result.NodePositions))
	}
	if len(result.AntinodePositions) > 0 {
		fmt.Fprintf(&b, ". %d antinodes detected", len(result.AntinodePositions))
	}

	return b.String()
}
