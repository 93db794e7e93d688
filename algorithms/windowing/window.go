package windowing

import "fmt"

// Type identifies a window function.
type Type string

const (
	TypeHann        Type = "hann"
	TypeHamming     Type = "hamming"
	TypeBlackman    Type = "blackman"
	TypeRectangular Type = "rectangular"
)

// Window is a precomputed tapering function of a fixed size.
//
// All windows are symmetric: coefficient k uses the k/(N-1) form, so the
// first and last samples taper to the same value. A window of size 1 is
// the identity [1.0].
type Window interface {
	// Apply windows a signal into a new slice. Returns nil if the signal
	// length does not match the window size.
	Apply(signal []float64) []float64

	// ApplyInPlace windows a signal without allocating.
	ApplyInPlace(signal []float64) error

	// GetCoefficients returns a copy of the window coefficients.
	GetCoefficients() []float64

	// GetSize returns the window size.
	GetSize() int

	// GetType returns the window type.
	GetType() Type
}

// New creates a window of the given type and size.
func New(windowType Type, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	switch windowType {
	case TypeHann:
		return NewHann(size), nil
	case TypeHamming:
		return NewHamming(size), nil
	case TypeBlackman:
		return NewBlackman(size), nil
	case TypeRectangular:
		return NewRectangular(size), nil
	default:
		return nil, fmt.Errorf("unknown window type: %s", windowType)
	}
}

// ApplyTo windows a signal with a window matched to its length. Unknown
// types fall back to rectangular so numerical pipelines degrade instead
// of failing. An empty signal comes back empty.
func ApplyTo(signal []float64, windowType Type) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	w, err := New(windowType, len(signal))
	if err != nil {
		w = NewRectangular(len(signal))
	}
	return w.Apply(signal)
}
