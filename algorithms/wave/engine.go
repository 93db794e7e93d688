package wave

// TimePoint is one sample of a detailed time series with numerical
// first and second derivatives of the superposed amplitude.
type TimePoint struct {
	Time         float64 `json:"time"`
	Amplitude    float64 `json:"amplitude"`
	Velocity     float64 `json:"velocity"`
	Acceleration float64 `json:"acceleration"`
}

// Engine owns an ordered collection of waves and computes their
// superposition and derived signals.
//
// Waves added to the engine are owned by it: indices shift down on
// removal, and a Wave reference obtained from GetWave is invalidated
// by any structural mutation (RemoveWave, ClearWaves). The velocity
// and current-time fields are display conveniences; no internal
// computation reads them.
type Engine struct {
	waves       []Wave
	velocity    float64
	currentTime float64
}

// NewEngine creates an empty engine with propagation velocity 1.0
func NewEngine() *Engine {
	return &Engine{velocity: 1.0}
}

// AddWave appends a wave to the collection, taking ownership.
// Nil waves are ignored.
func (e *Engine) AddWave(w Wave) {
	if w == nil {
		return
	}
	e.waves = append(e.waves, w)
}

// RemoveWave removes the wave at the given index, shifting subsequent
// indices down. Out-of-range indices are a no-op.
func (e *Engine) RemoveWave(index int) {
	if index < 0 || index >= len(e.waves) {
		return
	}
	e.waves = append(e.waves[:index], e.waves[index+1:]...)
}

// ClearWaves drops all owned waves
func (e *Engine) ClearWaves() {
	e.waves = nil
}

// GetWaveCount returns the number of owned waves
func (e *Engine) GetWaveCount() int {
	return len(e.waves)
}

// GetWave returns the wave at the given index. The second return is
// false when the index is out of range.
func (e *Engine) GetWave(index int) (Wave, bool) {
	if index < 0 || index >= len(e.waves) {
		return nil, false
	}
	return e.waves[index], true
}

// EvaluateSuperposition returns the sum of every owned wave at the
// given position and time, 0 for an empty engine
func (e *Engine) EvaluateSuperposition(x, t float64) float64 {
	result := 0.0
	for _, w := range e.waves {
		result += w.Evaluate(x, t)
	}
	return result
}

// EvaluateWave returns the value of a single member wave, or 0 if the
// index is out of range
func (e *Engine) EvaluateWave(index int, x, t float64) float64 {
	if index < 0 || index >= len(e.waves) {
		return 0.0
	}
	return e.waves[index].Evaluate(x, t)
}

// GenerateTimeSeries samples the superposition at a fixed position over
// [0, duration) with int(duration*sampleRate) samples at t = i/sampleRate.
func (e *Engine) GenerateTimeSeries(duration, sampleRate, position float64) []float64 {
	numSamples := int(duration * sampleRate)
	if numSamples <= 0 {
		return []float64{}
	}

	dt := 1.0 / sampleRate
	data := make([]float64, numSamples)
	for i := range data {
		data[i] = e.EvaluateSuperposition(position, float64(i)*dt)
	}

	return data
}

// GenerateDetailedTimeSeries samples like GenerateTimeSeries and
// additionally carries forward-difference velocity and second-difference
// acceleration per point. The first point has velocity 0; the first two
// have acceleration 0.
func (e *Engine) GenerateDetailedTimeSeries(duration, sampleRate, position float64) []TimePoint {
	numSamples := int(duration * sampleRate)
	if numSamples <= 0 {
		return []TimePoint{}
	}

	dt := 1.0 / sampleRate
	data := make([]TimePoint, numSamples)

	var prev, prevPrev float64
	for i := range data {
		t := float64(i) * dt
		amp := e.EvaluateSuperposition(position, t)

		vel := 0.0
		if i > 0 {
			vel = (amp - prev) / dt
		}

		acc := 0.0
		if i > 1 {
			acc = (amp - 2*prev + prevPrev) / (dt * dt)
		}

		data[i] = TimePoint{Time: t, Amplitude: amp, Velocity: vel, Acceleration: acc}
		prevPrev, prev = prev, amp
	}

	return data
}

// GenerateSpatialSeries samples the superposition at a fixed time over
// [0, length) with int(length*sampleRate) samples at x = i/sampleRate.
func (e *Engine) GenerateSpatialSeries(length, sampleRate, time float64) []float64 {
	numSamples := int(length * sampleRate)
	if numSamples <= 0 {
		return []float64{}
	}

	dx := 1.0 / sampleRate
	data := make([]float64, numSamples)
	for i := range data {
		data[i] = e.EvaluateSuperposition(float64(i)*dx, time)
	}

	return data
}

// SetVelocity sets the propagation velocity used by display consumers
func (e *Engine) SetVelocity(velocity float64) {
	e.velocity = velocity
}

// GetVelocity returns the propagation velocity
func (e *Engine) GetVelocity() float64 {
	return e.velocity
}

// SetCurrentTime sets the advisory time cursor
func (e *Engine) SetCurrentTime(time float64) {
	e.currentTime = time
}

// GetCurrentTime returns the advisory time cursor
func (e *Engine) GetCurrentTime() float64 {
	return e.currentTime
}
