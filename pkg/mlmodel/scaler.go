package mlmodel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArtifact = errors.New("invalid artifact")
	ErrWidthMismatch   = errors.New("input width mismatch")
)

// StandardScaler centers and scales each column with fitted statistics.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler copies mean and scale. A zero scale is stored as 1 so
// constant columns pass through centered.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("%w: scaler has no columns", ErrInvalidArtifact)
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: scaler mean has %d columns, scale has %d",
			ErrInvalidArtifact, len(mean), len(scale))
	}

	s := &StandardScaler{
		mean:  make([]float64, len(mean)),
		scale: make([]float64, len(scale)),
	}
	copy(s.mean, mean)
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

func (s *StandardScaler) Width() int {
	return len(s.mean)
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.mean) {
		return nil, fmt.Errorf("%w: scaler expects %d values, got %d", ErrWidthMismatch, len(s.mean), len(x))
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = (x[i] - s.mean[i]) / s.scale[i]
	}
	return out, nil
}
