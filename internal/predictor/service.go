// Package predictor turns a PatientRecord into a predicted yearly charge using
// a loaded artifact bundle. A Service without a bundle is degraded: it stays
// up and rejects every prediction with a model-not-loaded error.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"costd/internal/artifacts"
	"costd/internal/features"
	"costd/pkg/types"
)

// Service is safe for concurrent use; it holds only read-only state.
type Service struct {
	bundle    *artifacts.Bundle
	loadErr   error
	startTime time.Time
}

// Config wires a Service. Exactly one of Bundle or LoadErr is expected; a nil
// Bundle with a nil LoadErr is still treated as degraded.
type Config struct {
	Bundle  *artifacts.Bundle
	LoadErr error
}

func New(cfg Config) *Service {
	s := &Service{bundle: cfg.Bundle, loadErr: cfg.LoadErr, startTime: time.Now()}
	if s.bundle != nil {
		s.loadErr = nil
	}
	return s
}

// Result is one successful prediction.
type Result struct {
	// ChargeUSD is the non-negative charge rounded to cents.
	ChargeUSD float64
	// Raw is the model output before the inverse transform.
	Raw       float64
	ModelName string
	Record    types.PatientRecord
	Features  features.Vector
}

// Ready reports whether predictions can be served.
func (s *Service) Ready() bool { return s.bundle != nil }

// LoadError is the reason the service is degraded, or nil.
func (s *Service) LoadError() error {
	if s.bundle != nil {
		return nil
	}
	if s.loadErr == nil {
		return errors.New("no artifacts configured")
	}
	return s.loadErr
}

// Predict aligns rec to the model schema, evaluates the model and undoes the
// target transform.
func (s *Service) Predict(ctx context.Context, rec types.PatientRecord) (res Result, err error) {
	if s.bundle == nil {
		return Result{}, ErrModelNotLoaded(s.LoadError())
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	vec, err := features.Align(rec, s.bundle.Schema)
	if err != nil {
		if errors.Is(err, features.ErrNoSchema) {
			return Result{}, ErrModelNotLoaded(err)
		}
		if features.IsInvalidValue(err) {
			return Result{}, ErrInvalidInput(err.Error())
		}
		return Result{}, predictionFailedError{err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = predictionFailedError{err: fmt.Errorf("panic: %v", r)}
		}
	}()
	raw, err := s.bundle.Regressor.Predict(vec.Values())
	if err != nil {
		return Result{}, predictionFailedError{err: err}
	}
	if !finite(raw) {
		return Result{}, predictionFailedError{err: fmt.Errorf("model returned %v", raw)}
	}
	charge := s.bundle.Transform.Inverse(raw)
	if !finite(charge) {
		return Result{}, predictionFailedError{err: fmt.Errorf("inverse %s of %v overflowed", s.bundle.Transform, raw)}
	}
	return Result{
		ChargeUSD: RoundCents(math.Max(0, charge)),
		Raw:       raw,
		ModelName: s.bundle.ModelName,
		Record:    rec,
		Features:  vec,
	}, nil
}

// Status summarizes the loaded artifacts for GET /status.
func (s *Service) Status() types.StatusResponse {
	st := types.StatusResponse{UptimeSeconds: int64(time.Since(s.startTime).Seconds())}
	if s.bundle == nil {
		st.State = "degraded"
		st.Error = s.LoadError().Error()
		return st
	}
	b := s.bundle
	st.State = "ready"
	st.Model = b.ModelName
	st.Kind = b.Regressor.Kind()
	st.TargetTransform = string(b.Transform)
	st.Columns = b.Schema.Names()
	if r, ok := b.ReferenceRegion(); ok {
		st.ReferenceRegion = string(r)
	}
	st.ArtifactsDir = b.Dir
	st.LoadedAtUnix = b.LoadedAt.Unix()
	return st
}

// RoundCents rounds v to 2 decimal places using the exact binary value of v,
// with exact ties going to the even cent (0.125 -> 0.12, 2.675 -> 2.67).
func RoundCents(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
