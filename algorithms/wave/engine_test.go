package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineWaveManagement(t *testing.T) {
	engine := NewEngine()
	assert.Equal(t, 0, engine.GetWaveCount())

	first := NewSinusoidal(1.0, 1.0, 0.0)
	engine.AddWave(first)
	engine.AddWave(NewCosine(2.0, 3.0, 0.0))
	assert.Equal(t, 2, engine.GetWaveCount())

	w, ok := engine.GetWave(0)
	require.True(t, ok)
	assert.Same(t, first, w)

	_, ok = engine.GetWave(2)
	assert.False(t, ok)
	_, ok = engine.GetWave(-1)
	assert.False(t, ok)

	engine.RemoveWave(0)
	assert.Equal(t, 1, engine.GetWaveCount())
	w, ok = engine.GetWave(0)
	require.True(t, ok)
	assert.Equal(t, TypeCosine, w.GetType())
}

func TestEngineIgnoresNilWave(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(nil)
	assert.Equal(t, 0, engine.GetWaveCount())
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	engine := NewEngine()
	first := NewSinusoidal(1.0, 1.0, 0.0)
	engine.AddWave(first)

	engine.RemoveWave(5)
	engine.RemoveWave(-1)

	assert.Equal(t, 1, engine.GetWaveCount())
	w, ok := engine.GetWave(0)
	require.True(t, ok)
	assert.Same(t, first, w)
}

func TestClearWaves(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(NewSinusoidal(1.0, 1.0, 0.0))
	engine.AddWave(NewSquare(1.0, 2.0, 0.0))

	engine.ClearWaves()
	assert.Equal(t, 0, engine.GetWaveCount())
	assert.Equal(t, 0.0, engine.EvaluateSuperposition(0, 0.3))
}

func TestSuperpositionLinearity(t *testing.T) {
	engine := NewEngine()
	members := []Wave{
		NewSinusoidal(1.0, 1.0, 0.0),
		NewCosine(0.5, 2.0, 30.0),
		NewSawtooth(2.0, 0.5, 90.0),
	}
	for _, w := range members {
		engine.AddWave(w)
	}

	for _, x := range []float64{0, 1.5} {
		for _, tm := range []float64{0, 0.1, 0.25, 0.77, 2.0} {
			sum := 0.0
			for _, w := range members {
				sum += w.Evaluate(x, tm)
			}
			assert.Equal(t, sum, engine.EvaluateSuperposition(x, tm), "x=%v t=%v", x, tm)
		}
	}
}

func TestEvaluateWave(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(NewSinusoidal(2.0, 1.0, 0.0))

	assert.InDelta(t, 2.0, engine.EvaluateWave(0, 0, 0.25), 1e-12)
	assert.Equal(t, 0.0, engine.EvaluateWave(1, 0, 0.25))
	assert.Equal(t, 0.0, engine.EvaluateWave(-1, 0, 0.25))
}

func TestGenerateTimeSeries(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(NewSinusoidal(1.0, 2.0, 0.0))

	series := engine.GenerateTimeSeries(1.0, 100.0, 0.0)
	require.Len(t, series, 100)

	for i, got := range series {
		want := engine.EvaluateSuperposition(0, float64(i)/100.0)
		assert.InDelta(t, want, got, 1e-12, "i=%d", i)
	}

	// Sample count truncates
	assert.Len(t, engine.GenerateTimeSeries(0.55, 10.0, 0.0), 5)

	assert.Empty(t, engine.GenerateTimeSeries(0, 100.0, 0.0))
	assert.Empty(t, engine.GenerateTimeSeries(1.0, 0, 0.0))
}

func TestGenerateDetailedTimeSeries(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(NewSinusoidal(1.0, 1.0, 0.0))

	sampleRate := 50.0
	points := engine.GenerateDetailedTimeSeries(1.0, sampleRate, 0.0)
	require.Len(t, points, 50)

	assert.Equal(t, 0.0, points[0].Velocity)
	assert.Equal(t, 0.0, points[0].Acceleration)
	assert.Equal(t, 0.0, points[1].Acceleration)

	dt := 1.0 / sampleRate
	for i := 2; i < len(points); i++ {
		y0 := points[i-2].Amplitude
		y1 := points[i-1].Amplitude
		y2 := points[i].Amplitude

		assert.InDelta(t, (y2-y1)/dt, points[i].Velocity, 1e-9, "i=%d", i)
		assert.InDelta(t, (y2-2*y1+y0)/(dt*dt), points[i].Acceleration, 1e-6, "i=%d", i)
	}

	assert.InDelta(t, dt, points[1].Time-points[0].Time, 1e-12)
}

func TestGenerateSpatialSeries(t *testing.T) {
	engine := NewEngine()
	engine.AddWave(NewSinusoidal(1.0, 1.0, 0.0))

	series := engine.GenerateSpatialSeries(2.0, 50.0, 0.1)
	require.Len(t, series, 100)

	// Generators are time-only, so a spatial sweep holds the value fixed
	want := engine.EvaluateSuperposition(0, 0.1)
	for i, got := range series {
		assert.Equal(t, want, got, "i=%d", i)
	}
}

func TestVelocityAndTimeCursor(t *testing.T) {
	engine := NewEngine()
	assert.Equal(t, 1.0, engine.GetVelocity())
	assert.Equal(t, 0.0, engine.GetCurrentTime())

	engine.SetVelocity(340.0)
	engine.SetCurrentTime(2.5)
	assert.Equal(t, 340.0, engine.GetVelocity())
	assert.Equal(t, 2.5, engine.GetCurrentTime())
}
