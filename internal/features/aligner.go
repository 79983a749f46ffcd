// Package features turns a PatientRecord into the feature vector a trained
// model expects. The column schema is the ground truth: every schema column is
// emitted in order, columns the record cannot populate are 0.
package features

import (
	"errors"

	"costd/internal/schema"
	"costd/pkg/types"
)

// ErrNoSchema is returned when alignment is attempted without a column schema.
var ErrNoSchema = errors.New("model not loaded: column schema unavailable")

// Vector is a single row aligned to a column schema.
type Vector struct {
	cols   *schema.Columns
	values []float64
}

// Align builds the feature vector for rec. It is a pure function of its inputs.
func Align(rec types.PatientRecord, cols *schema.Columns) (Vector, error) {
	if cols == nil || cols.Len() == 0 {
		return Vector{}, ErrNoSchema
	}
	produced, err := encode(rec)
	if err != nil {
		return Vector{}, err
	}
	names := cols.Names()
	values := make([]float64, len(names))
	for i, n := range names {
		values[i] = produced[n] // missing -> 0
	}
	return Vector{cols: cols, values: values}, nil
}

// IsInvalidValue reports whether err was caused by an unknown categorical value.
func IsInvalidValue(err error) bool {
	var iv invalidValueError
	return errors.As(err, &iv)
}

// Values returns a copy of the values in schema order.
func (v Vector) Values() []float64 { return append([]float64(nil), v.values...) }

// Len is the number of columns.
func (v Vector) Len() int { return len(v.values) }

// Columns returns the column names in order.
func (v Vector) Columns() []string {
	if v.cols == nil {
		return nil
	}
	return v.cols.Names()
}

// Get returns the value of the named column.
func (v Vector) Get(name string) (float64, bool) {
	if v.cols == nil {
		return 0, false
	}
	i := v.cols.Index(name)
	if i < 0 {
		return 0, false
	}
	return v.values[i], true
}

// Map returns the vector as a column -> value map, for logging.
func (v Vector) Map() map[string]float64 {
	out := make(map[string]float64, len(v.values))
	for i, n := range v.Columns() {
		out[n] = v.values[i]
	}
	return out
}
