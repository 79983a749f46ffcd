// Package model loads exported regression estimators and evaluates them on a
// single feature row. Artifacts are JSON exports of fitted estimators; the
// package never trains anything.
package model

import (
	"fmt"
	"math"
)

// Regressor predicts a scalar from one feature row.
type Regressor interface {
	// Predict evaluates the estimator on x. len(x) must equal NumFeatures.
	Predict(x []float64) (float64, error)
	NumFeatures() int
	Kind() string
}

// Kinds of artifact understood by LoadFile.
const (
	KindRandomForest = "random_forest"
	KindLinear       = "linear"
)

// Transform identifies how the training target was transformed.
type Transform string

const (
	// TransformLog1p means the model was fit on log(1+y); Inverse applies expm1.
	TransformLog1p Transform = "log1p"
	// TransformIdentity means the model predicts y directly.
	TransformIdentity Transform = "identity"
)

// ParseTransform maps an artifact value to a Transform. Empty means log1p.
func ParseTransform(s string) (Transform, error) {
	switch Transform(s) {
	case "", TransformLog1p:
		return TransformLog1p, nil
	case TransformIdentity:
		return TransformIdentity, nil
	}
	return "", fmt.Errorf("unsupported target_transform %q", s)
}

// Inverse maps a model output back to the original target scale.
func (t Transform) Inverse(v float64) float64 {
	if t == TransformIdentity {
		return v
	}
	return math.Expm1(v)
}

// Forward applies the training-time transform.
func (t Transform) Forward(v float64) float64 {
	if t == TransformIdentity {
		return v
	}
	return math.Log1p(v)
}

func checkWidth(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("feature width mismatch: got %d, model expects %d", len(x), n)
	}
	return nil
}
