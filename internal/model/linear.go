package model

import (
	"fmt"
	"math"
)

// Linear is y = intercept + sum(coef[i] * x[i]).
type Linear struct {
	coef      []float64
	intercept float64
}

func NewLinear(coef []float64, intercept float64) (*Linear, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("linear: no coefficients")
	}
	for i, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("linear: coefficient %d is not finite", i)
		}
	}
	return &Linear{coef: append([]float64(nil), coef...), intercept: intercept}, nil
}

func (m *Linear) Predict(x []float64) (float64, error) {
	if err := checkWidth(x, len(m.coef)); err != nil {
		return 0, err
	}
	y := m.intercept
	for i, c := range m.coef {
		y += c * x[i]
	}
	return y, nil
}

func (m *Linear) NumFeatures() int { return len(m.coef) }
func (m *Linear) Kind() string     { return KindLinear }
