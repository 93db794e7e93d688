package interference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/onda-lab/algorithms/wave"
)

func TestCalculatePhaseShift(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name   string
		phase1 float64
		phase2 float64
		want   float64
	}{
		{"quarter cycle ahead", 0.0, 90.0, 90.0},
		{"quarter cycle behind", 90.0, 0.0, 270.0},
		{"wraps across zero", 350.0, 10.0, 20.0},
		{"full turns collapse", 0.0, 720.0, 0.0},
		{"negative first phase", -30.0, 30.0, 60.0},
		{"negative second phase", 0.0, -90.0, 270.0},
		{"identical phases", 45.0, 45.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w1 := wave.NewSinusoidal(1.0, 1.0, tt.phase1)
			w2 := wave.NewSinusoidal(1.0, 1.0, tt.phase2)
			assert.Equal(t, tt.want, c.CalculatePhaseShift(w1, w2))
		})
	}
}

func TestAreInPhase(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		phase1    float64
		phase2    float64
		tolerance float64
		want      bool
	}{
		{"exactly aligned", 0.0, 0.0, DefaultPhaseTolerance, true},
		{"just ahead", 0.0, 0.05, DefaultPhaseTolerance, true},
		{"just behind", 0.0, 359.95, DefaultPhaseTolerance, true},
		{"one degree off", 0.0, 1.0, DefaultPhaseTolerance, false},
		{"opposed", 0.0, 180.0, DefaultPhaseTolerance, false},
		{"wide tolerance", 0.0, 5.0, 10.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w1 := wave.NewSinusoidal(1.0, 1.0, tt.phase1)
			w2 := wave.NewSinusoidal(1.0, 1.0, tt.phase2)
			assert.Equal(t, tt.want, c.AreInPhase(w1, w2, tt.tolerance))
		})
	}
}

func TestAreOutOfPhase(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		phase1    float64
		phase2    float64
		tolerance float64
		want      bool
	}{
		{"exactly opposed", 0.0, 180.0, DefaultPhaseTolerance, true},
		{"just past opposition", 0.0, 180.05, DefaultPhaseTolerance, true},
		{"just short of opposition", 0.0, 179.95, DefaultPhaseTolerance, true},
		{"quadrature", 0.0, 90.0, DefaultPhaseTolerance, false},
		{"aligned", 0.0, 0.0, DefaultPhaseTolerance, false},
		{"opposed with offset phases", 45.0, 225.0, DefaultPhaseTolerance, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w1 := wave.NewSinusoidal(1.0, 1.0, tt.phase1)
			w2 := wave.NewSinusoidal(1.0, 1.0, tt.phase2)
			assert.Equal(t, tt.want, c.AreOutOfPhase(w1, w2, tt.tolerance))
		})
	}
}
