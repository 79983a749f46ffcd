package predictor

import (
	"errors"
	"net/http"
)

// modelNotLoadedError signals the degraded state: artifacts failed to load at
// startup, so no prediction can run. Maps to 503.
type modelNotLoadedError struct{ cause error }

func (e modelNotLoadedError) Error() string {
	if e.cause != nil {
		return "model not loaded: " + e.cause.Error()
	}
	return "model not loaded"
}

func (e modelNotLoadedError) Unwrap() error  { return e.cause }
func (e modelNotLoadedError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrModelNotLoaded constructs the degraded-state error.
func ErrModelNotLoaded(cause error) error { return modelNotLoadedError{cause: cause} }

// IsModelNotLoaded reports whether err indicates missing artifacts.
func IsModelNotLoaded(err error) bool {
	var e modelNotLoadedError
	return errors.As(err, &e)
}

// invalidInputError rejects a record the aligner cannot encode. Maps to 400.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string   { return "invalid input: " + e.msg }
func (e invalidInputError) StatusCode() int { return http.StatusBadRequest }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err was caused by the request payload.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}

// predictionFailedError wraps failures inside the model or the inverse transform. Maps to 500.
type predictionFailedError struct{ err error }

func (e predictionFailedError) Error() string   { return "prediction failed: " + e.err.Error() }
func (e predictionFailedError) Unwrap() error   { return e.err }
func (e predictionFailedError) StatusCode() int { return http.StatusInternalServerError }

// IsPredictionFailed reports whether err came from evaluating the model.
func IsPredictionFailed(err error) bool {
	var e predictionFailedError
	return errors.As(err, &e)
}
