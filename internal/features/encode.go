package features

import (
	"fmt"

	"costd/internal/schema"
	"costd/pkg/types"
)

// EncodeSex maps male to 0 and female to 1, matching the training pipeline.
func EncodeSex(s types.Sex) (float64, error) {
	switch s {
	case types.SexMale:
		return 0, nil
	case types.SexFemale:
		return 1, nil
	}
	return 0, invalidValueError{field: "sex", value: string(s)}
}

// EncodeSmoker maps yes to 1 and no to 0.
func EncodeSmoker(s types.Smoker) (float64, error) {
	switch s {
	case types.SmokerYes:
		return 1, nil
	case types.SmokerNo:
		return 0, nil
	}
	return 0, invalidValueError{field: "smoker", value: string(s)}
}

// RegionColumn is the one-hot indicator column for r. Whether the column exists
// is decided by the schema: the reference level has none.
func RegionColumn(r types.Region) (string, error) {
	if !r.Valid() {
		return "", invalidValueError{field: "region", value: string(r)}
	}
	return schema.RegionPrefix + string(r), nil
}

// encode produces every column derivable from rec, keyed by column name.
func encode(rec types.PatientRecord) (map[string]float64, error) {
	sex, err := EncodeSex(rec.Sex)
	if err != nil {
		return nil, err
	}
	smoker, err := EncodeSmoker(rec.Smoker)
	if err != nil {
		return nil, err
	}
	region, err := RegionColumn(rec.Region)
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"age":      float64(rec.Age),
		"sex":      sex,
		"bmi":      rec.BMI,
		"children": float64(rec.Children),
		"smoker":   smoker,
		region:     1,
	}, nil
}

type invalidValueError struct {
	field string
	value string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.field, e.value)
}
