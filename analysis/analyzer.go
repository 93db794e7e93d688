package analysis

import (
	"fmt"
	"time"

	"github.com/RyanBlaney/onda-lab/algorithms/interference"
	"github.com/RyanBlaney/onda-lab/algorithms/spectral"
	"github.com/RyanBlaney/onda-lab/algorithms/wave"
	"github.com/RyanBlaney/onda-lab/logging"
)

// Report is the plain-data outcome of one analysis pass: the sampled
// superposition, its statistics and spectrum, and the interference
// read of the wave collection. Interference is nil for signal-only
// passes.
type Report struct {
	Timestamp         time.Time                  `json:"timestamp"`
	WaveCount         int                        `json:"wave_count"`
	TimeSeries        []float64                  `json:"time_series"`
	WaveAnalysis      wave.Analysis              `json:"wave_analysis"`
	Spectrum          spectral.FrequencySpectrum `json:"spectrum"`
	Harmonics         []spectral.Harmonic        `json:"harmonics"`
	THD               float64                    `json:"thd"`
	DominantFrequency float64                    `json:"dominant_frequency"`
	Interference      *interference.Result       `json:"interference,omitempty"`
	Resonance         bool                       `json:"resonance"`
	Amplification     float64                    `json:"amplification"`
}

// Analyzer orchestrates the wave, spectral and interference modules
// into full analysis passes over an engine's wave collection.
type Analyzer struct {
	config       *Config
	spectral     *spectral.Analyzer
	interference *interference.Calculator
	logger       logging.Logger
}

// NewAnalyzer creates an analyzer with the given configuration. A nil
// config selects the defaults.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}

	logger := logging.WithFields(logging.Fields{
		"component": "wave_analyzer",
	})

	return &Analyzer{
		config:       config,
		spectral:     spectral.NewAnalyzerWithWindow(config.WindowType),
		interference: interference.NewCalculatorWithTolerances(config.Tolerance, config.NodeThreshold, interference.DefaultFrequencyTolerance),
		logger:       logger,
	}
}

// Analyze runs the full pipeline over the engine's wave collection:
// time series at the configured position, amplitude statistics,
// spectrum with harmonics and THD, interference classification of the
// member waves at t=0 over the configured region, and the resonance
// read. The engine must be non-nil and the configuration valid.
func (a *Analyzer) Analyze(engine *wave.Engine) (*Report, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	logger := a.logger.WithFields(logging.Fields{
		"function":    "Analyze",
		"wave_count":  engine.GetWaveCount(),
		"sample_rate": a.config.SampleRate,
		"duration":    a.config.Duration,
	})

	logger.Debug("Starting wave analysis")

	report := &Report{
		Timestamp: time.Now(),
		WaveCount: engine.GetWaveCount(),
	}

	if report.WaveCount == 0 {
		logger.Warn("Engine holds no waves")
	}

	report.TimeSeries = engine.GenerateTimeSeries(a.config.Duration, a.config.SampleRate, a.config.Position)
	if len(report.TimeSeries) == 0 {
		logger.Warn("Sampling plan produced no samples")
	}

	report.WaveAnalysis = engine.AnalyzeWaves(report.TimeSeries, a.config.SampleRate)

	report.Spectrum = a.spectral.GetSpectrum(report.TimeSeries, a.config.SampleRate)
	report.Harmonics = a.spectral.FindHarmonics(report.Spectrum, a.config.HarmonicThreshold)
	report.THD = a.spectral.CalculateTHD(report.Harmonics)
	report.DominantFrequency = a.spectral.FindDominantFrequency(report.Spectrum)

	logger.Debug("Spectral stage completed", logging.Fields{
		"bins":               len(report.Spectrum.Bins),
		"harmonics":          len(report.Harmonics),
		"dominant_frequency": report.DominantFrequency,
	})

	report.Interference = a.classifyInterference(engine)

	waves := memberWaves(engine)
	report.Resonance = a.interference.DetectResonance(waves, interference.DefaultFrequencyTolerance)
	report.Amplification = a.interference.CalculateResonanceAmplification(waves)

	logger.Debug("Wave analysis completed", logging.Fields{
		"phenomenon":   report.WaveAnalysis.Phenomenon,
		"interference": report.Interference.Type,
		"resonance":    report.Resonance,
	})

	return report, nil
}

// AnalyzeSignal runs the spectral stage alone over an externally
// produced sample buffer. The report carries no wave or interference
// sections.
func (a *Analyzer) AnalyzeSignal(signal []float64) (*Report, error) {
	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	logger := a.logger.WithFields(logging.Fields{
		"function": "AnalyzeSignal",
		"samples":  len(signal),
	})

	logger.Debug("Starting signal analysis")

	if len(signal) == 0 {
		logger.Warn("Empty signal")
	}

	report := &Report{
		Timestamp: time.Now(),
	}

	report.Spectrum = a.spectral.GetSpectrum(signal, a.config.SampleRate)
	report.Harmonics = a.spectral.FindHarmonics(report.Spectrum, a.config.HarmonicThreshold)
	report.THD = a.spectral.CalculateTHD(report.Harmonics)
	report.DominantFrequency = a.spectral.FindDominantFrequency(report.Spectrum)

	logger.Debug("Signal analysis completed", logging.Fields{
		"bins":               len(report.Spectrum.Bins),
		"dominant_frequency": report.DominantFrequency,
	})

	return report, nil
}

// classifyInterference runs the two-wave path for exactly two member
// waves and the multi-wave path otherwise, at t=0 over the configured
// region.
func (a *Analyzer) classifyInterference(engine *wave.Engine) *interference.Result {
	waves := memberWaves(engine)

	var result interference.Result
	if len(waves) == 2 {
		result = a.interference.CalculateTwoWaveInterference(waves[0], waves[1], 0.0, a.config.InterferenceLength, a.config.InterferencePoints)
	} else {
		result = a.interference.CalculateMultiWaveInterference(waves, 0.0, a.config.InterferenceLength, a.config.InterferencePoints)
	}

	return &result
}

// memberWaves snapshots the engine's wave collection in index order.
func memberWaves(engine *wave.Engine) []wave.Wave {
	waves := make([]wave.Wave, 0, engine.GetWaveCount())
	for i := 0; i < engine.GetWaveCount(); i++ {
		if w, ok := engine.GetWave(i); ok {
			waves = append(waves, w)
		}
	}
	return waves
}
