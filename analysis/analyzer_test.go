package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/RyanBlaney/onda-lab/algorithms/common"
	"github.com/RyanBlaney/onda-lab/algorithms/interference"
	"github.com/RyanBlaney/onda-lab/algorithms/wave"
	"github.com/RyanBlaney/onda-lab/logging"
)

func TestAnalyzeNilEngine(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report, err := analyzer.Analyze(nil)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "engine")
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 0

	analyzer := NewAnalyzer(cfg)

	_, err := analyzer.Analyze(wave.NewEngine())
	assert.ErrorContains(t, err, "sample rate")

	_, err = analyzer.AnalyzeSignal([]float64{1.0, 2.0})
	assert.ErrorContains(t, err, "sample rate")
}

func TestAnalyzeTwoWaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 256.0
	cfg.Duration = 4.0

	analyzer := NewAnalyzer(cfg)

	engine := wave.NewEngine()
	engine.AddWave(wave.NewCosine(2.0, 1.0, 0.0))
	engine.AddWave(wave.NewCosine(1.0, 3.0, 0.0))

	report, err := analyzer.Analyze(engine)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.False(t, report.Timestamp.IsZero())
	assert.Equal(t, 2, report.WaveCount)
	assert.Len(t, report.TimeSeries, 1024)

	// Both cosines peak together at t=0
	assert.InDelta(t, 3.0, report.WaveAnalysis.MaxAmplitude, 1e-9)
	assert.Equal(t, wave.PhenomenonSuperposition, report.WaveAnalysis.Phenomenon)
	assert.Equal(t, 1.0, report.WaveAnalysis.Frequency)

	assert.Equal(t, 0.25, report.Spectrum.FrequencyResolution)
	assert.Equal(t, 128.0, report.Spectrum.MaxFrequency)
	assert.InDelta(t, 1.0, report.DominantFrequency, 1e-9)

	// The 3 Hz component registers as the third harmonic of the 1 Hz
	// fundamental; the even orders have no energy
	require.Len(t, report.Harmonics, 2)
	assert.Equal(t, 1, report.Harmonics[0].Order)
	assert.InDelta(t, 1.0, report.Harmonics[0].Frequency, 1e-9)
	assert.InDelta(t, 1.0, report.Harmonics[0].Amplitude, 0.01)
	assert.Equal(t, 3, report.Harmonics[1].Order)
	assert.InDelta(t, 3.0, report.Harmonics[1].Frequency, 1e-9)
	assert.InDelta(t, 0.5, report.Harmonics[1].Amplitude, 0.01)

	assert.InDelta(t, 50.0, report.THD, 1.0)

	require.NotNil(t, report.Interference)
	assert.Equal(t, interference.TypeConstructive, report.Interference.Type)
	assert.InDelta(t, 3.0, report.Interference.Amplitude, 1e-9)
	assert.Equal(t, 2.0, report.Interference.BeatFrequency)
	assert.Equal(t, "Constructive interference - waves reinforce each other", report.Interference.Description)

	assert.False(t, report.Resonance)
	assert.InDelta(t, 1.0, report.Amplification, 1e-12)
}

func TestAnalyzeResonantPair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 128.0
	cfg.Duration = 1.0

	analyzer := NewAnalyzer(cfg)

	engine := wave.NewEngine()
	engine.AddWave(wave.NewCosine(1.0, 2.0, 0.0))
	engine.AddWave(wave.NewCosine(1.0, 2.0, 0.0))

	report, err := analyzer.Analyze(engine)
	require.NoError(t, err)

	assert.Equal(t, wave.PhenomenonResonance, report.WaveAnalysis.Phenomenon)
	assert.True(t, report.Resonance)
	assert.InDelta(t, 1.0, report.Amplification, 1e-12)

	assert.InDelta(t, 2.0, report.DominantFrequency, 1e-9)
	require.Len(t, report.Harmonics, 1)
	assert.Equal(t, 1, report.Harmonics[0].Order)
	assert.Equal(t, 0.0, report.THD)

	require.NotNil(t, report.Interference)
	assert.Equal(t, interference.TypeConstructive, report.Interference.Type)
	assert.InDelta(t, 2.0, report.Interference.Amplitude, 1e-9)
}

func TestAnalyzeMultiWave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 128.0
	cfg.Duration = 1.0

	analyzer := NewAnalyzer(cfg)

	engine := wave.NewEngine()
	engine.AddWave(wave.NewCosine(1.0, 2.0, 0.0))
	engine.AddWave(wave.NewCosine(1.0, 2.005, 0.0))
	engine.AddWave(wave.NewCosine(1.0, 7.0, 0.0))

	report, err := analyzer.Analyze(engine)
	require.NoError(t, err)

	assert.Equal(t, 3, report.WaveCount)

	// The 0.005 Hz gap reads as beating for the engine but as a
	// resonating pair for the interference calculator
	assert.Equal(t, wave.PhenomenonBeating, report.WaveAnalysis.Phenomenon)
	assert.True(t, report.Resonance)

	require.NotNil(t, report.Interference)
	assert.Equal(t, interference.TypeConstructive, report.Interference.Type)
	assert.Equal(t, "Resonance detected - constructive interference", report.Interference.Description)
	assert.InDelta(t, 1.0, report.Amplification, 1e-12)
}

func TestAnalyzeEmptyEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 100.0
	cfg.Duration = 1.0

	analyzer := NewAnalyzer(cfg)

	report, err := analyzer.Analyze(wave.NewEngine())
	require.NoError(t, err)

	assert.Equal(t, 0, report.WaveCount)
	require.Len(t, report.TimeSeries, 100)
	for i, v := range report.TimeSeries {
		assert.Equal(t, 0.0, v, "i=%d", i)
	}

	assert.Equal(t, wave.PhenomenonNoWaves, report.WaveAnalysis.Phenomenon)
	assert.Equal(t, 0.0, report.WaveAnalysis.MaxAmplitude)
	assert.Equal(t, 0.0, report.WaveAnalysis.RMSAmplitude)

	assert.Empty(t, report.Harmonics)
	assert.Equal(t, 0.0, report.THD)
	assert.Equal(t, 0.0, report.DominantFrequency)

	require.NotNil(t, report.Interference)
	assert.Equal(t, interference.TypeNoInterference, report.Interference.Type)
	assert.Equal(t, "No waves provided", report.Interference.Description)

	assert.False(t, report.Resonance)
	assert.Equal(t, 0.0, report.Amplification)
}

func TestAnalyzeSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 128.0

	analyzer := NewAnalyzer(cfg)

	signal := make([]float64, 128)
	for i := range signal {
		tm := float64(i) / 128.0
		signal[i] = math.Sin(common.TwoPi * 10.0 * tm)
	}

	report, err := analyzer.AnalyzeSignal(signal)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.False(t, report.Timestamp.IsZero())
	assert.Equal(t, 0, report.WaveCount)
	assert.Empty(t, report.TimeSeries)
	assert.Nil(t, report.Interference)

	assert.InDelta(t, 10.0, report.DominantFrequency, 1e-9)
	require.Len(t, report.Harmonics, 1)
	assert.Equal(t, 1, report.Harmonics[0].Order)
	assert.InDelta(t, 0.5, report.Harmonics[0].Amplitude, 0.01)
	assert.Equal(t, 0.0, report.THD)
}

func TestAnalyzeSignalEmpty(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report, err := analyzer.AnalyzeSignal(nil)
	require.NoError(t, err)

	assert.Empty(t, report.Spectrum.Bins)
	assert.Empty(t, report.Harmonics)
	assert.Equal(t, 0.0, report.THD)
	assert.Equal(t, 0.0, report.DominantFrequency)
	assert.Nil(t, report.Interference)
}

func TestAnalyzeLogsStages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := logging.GetGlobalLogger()
	logging.SetGlobalLogger(logging.NewZapLogger(zap.New(core)))
	defer logging.SetGlobalLogger(original)

	cfg := DefaultConfig()
	cfg.SampleRate = 100.0
	cfg.Duration = 1.0

	analyzer := NewAnalyzer(cfg)

	_, err := analyzer.Analyze(wave.NewEngine())
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Starting wave analysis").Len())
	assert.Equal(t, 1, logs.FilterMessage("Wave analysis completed").Len())

	warnings := logs.FilterMessage("Engine holds no waves")
	require.Equal(t, 1, warnings.Len())
	entry := warnings.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "wave_analyzer", entry.ContextMap()["component"])
}
