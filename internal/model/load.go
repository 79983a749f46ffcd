package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is the on-disk JSON form of an exported estimator.
type Artifact struct {
	Kind            string    `json:"kind"`
	Name            string    `json:"name,omitempty"`
	NFeatures       int       `json:"n_features"`
	TargetTransform string    `json:"target_transform,omitempty"`
	FeatureNames    []string  `json:"feature_names,omitempty"`
	Trees           []Tree    `json:"trees,omitempty"`
	Coefficients    []float64 `json:"coefficients,omitempty"`
	Intercept       float64   `json:"intercept,omitempty"`
}

// Loaded is a ready-to-use estimator plus its artifact metadata.
type Loaded struct {
	Regressor    Regressor
	Name         string
	Transform    Transform
	FeatureNames []string
}

// LoadFile reads and builds the estimator stored at path.
func LoadFile(path string) (Loaded, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return Loaded{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return Build(a)
}

// Build turns a decoded artifact into an estimator.
func Build(a Artifact) (Loaded, error) {
	tr, err := ParseTransform(a.TargetTransform)
	if err != nil {
		return Loaded{}, err
	}
	if len(a.FeatureNames) > 0 && a.NFeatures != 0 && len(a.FeatureNames) != a.NFeatures {
		return Loaded{}, fmt.Errorf("feature_names has %d entries but n_features is %d", len(a.FeatureNames), a.NFeatures)
	}
	var reg Regressor
	switch a.Kind {
	case KindRandomForest:
		n := a.NFeatures
		if n == 0 {
			n = len(a.FeatureNames)
		}
		reg, err = NewForest(a.Trees, n)
	case KindLinear:
		if a.NFeatures != 0 && a.NFeatures != len(a.Coefficients) {
			return Loaded{}, fmt.Errorf("linear: %d coefficients but n_features is %d", len(a.Coefficients), a.NFeatures)
		}
		reg, err = NewLinear(a.Coefficients, a.Intercept)
	case "":
		return Loaded{}, fmt.Errorf("model artifact has no kind")
	default:
		return Loaded{}, fmt.Errorf("unsupported model kind %q", a.Kind)
	}
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{
		Regressor:    reg,
		Name:         a.Name,
		Transform:    tr,
		FeatureNames: append([]string(nil), a.FeatureNames...),
	}, nil
}
