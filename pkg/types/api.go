package types

import (
	"fmt"
	"strings"
)

// PredictRequest is the POST /predict_cost payload. Pointer fields let the
// server tell a missing field apart from a zero value.
type PredictRequest struct {
	Age      *int     `json:"age" example:"30"`
	Sex      *string  `json:"sex" example:"male"`
	BMI      *float64 `json:"bmi" example:"25.0"`
	Children *int     `json:"children" example:"0"`
	Smoker   *string  `json:"smoker" example:"no"`
	Region   *string  `json:"region" example:"southwest"`
}

// Record converts the request into a PatientRecord. Every field is required and
// enum values must be known; the returned error lists all problems found.
func (r PredictRequest) Record() (PatientRecord, error) {
	var problems []string
	var rec PatientRecord
	if r.Age == nil {
		problems = append(problems, "age is required")
	} else {
		rec.Age = *r.Age
	}
	if r.Sex == nil {
		problems = append(problems, "sex is required")
	} else if rec.Sex = Sex(*r.Sex); !rec.Sex.Valid() {
		problems = append(problems, fmt.Sprintf("sex must be male or female, got %q", *r.Sex))
	}
	if r.BMI == nil {
		problems = append(problems, "bmi is required")
	} else {
		rec.BMI = *r.BMI
	}
	if r.Children == nil {
		problems = append(problems, "children is required")
	} else {
		rec.Children = *r.Children
	}
	if r.Smoker == nil {
		problems = append(problems, "smoker is required")
	} else if rec.Smoker = Smoker(*r.Smoker); !rec.Smoker.Valid() {
		problems = append(problems, fmt.Sprintf("smoker must be yes or no, got %q", *r.Smoker))
	}
	if r.Region == nil {
		problems = append(problems, "region is required")
	} else if rec.Region = Region(*r.Region); !rec.Region.Valid() {
		problems = append(problems, fmt.Sprintf("region must be one of southwest, southeast, northwest, northeast, got %q", *r.Region))
	}
	if len(problems) > 0 {
		return PatientRecord{}, fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return rec, nil
}

// PredictResponse is returned by POST /predict_cost on success.
type PredictResponse struct {
	// Predicted yearly charge in USD, rounded to cents.
	// example: 4215.37
	PredictedChargeUSD float64 `json:"predicted_charge_usd" example:"4215.37"`
	// Human-readable description of the model that produced the prediction.
	// example: Random Forest Regressor (Log-Transform)
	ModelUsed string `json:"model_used" example:"Random Forest Regressor (Log-Transform)"`
	// Echo of the record the prediction was made for.
	InputData PatientRecord `json:"input_data"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: model not loaded
	Error string `json:"error" example:"model not loaded"`
	// HTTP status code.
	// example: 503
	Code int `json:"code" example:"503"`
}

// RootResponse is the static message served by GET /.
type RootResponse struct {
	// example: insurance cost prediction API is running
	Message string `json:"message" example:"insurance cost prediction API is running"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall state: ready or degraded.
	// example: ready
	State string `json:"state" example:"ready"`
	// example: Random Forest Regressor (Log-Transform)
	Model string `json:"model,omitempty" example:"Random Forest Regressor (Log-Transform)"`
	// Model kind from the artifact (random_forest, linear).
	// example: random_forest
	Kind string `json:"kind,omitempty" example:"random_forest"`
	// Target transform undone after prediction.
	// example: log1p
	TargetTransform string `json:"target_transform,omitempty" example:"log1p"`
	// Ordered feature columns the model was trained on.
	Columns []string `json:"columns,omitempty"`
	// Region implied when every region indicator is zero.
	// example: northeast
	ReferenceRegion string `json:"reference_region,omitempty" example:"northeast"`
	// Artifacts directory the bundle was loaded from.
	ArtifactsDir string `json:"artifacts_dir,omitempty"`
	// Load time of the artifacts (unix seconds).
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty"`
	// Error that left the service degraded, if any.
	Error string `json:"error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
}
