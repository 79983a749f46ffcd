package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeRequest(t *testing.T, body string) PredictRequest {
	t.Helper()
	var r PredictRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return r
}

func TestRecordComplete(t *testing.T) {
	r := decodeRequest(t, `{"age":30,"sex":"male","bmi":25.0,"children":0,"smoker":"no","region":"southwest"}`)
	rec, err := r.Record()
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	want := PatientRecord{Age: 30, Sex: SexMale, BMI: 25, Children: 0, Smoker: SmokerNo, Region: RegionSouthwest}
	if rec != want {
		t.Fatalf("got %+v want %+v", rec, want)
	}
}

func TestRecordZeroValuesArePresent(t *testing.T) {
	r := decodeRequest(t, `{"age":0,"sex":"female","bmi":0,"children":0,"smoker":"yes","region":"northeast"}`)
	if _, err := r.Record(); err != nil {
		t.Fatalf("zero values must be accepted: %v", err)
	}
}

func TestRecordMissingFields(t *testing.T) {
	r := decodeRequest(t, `{"age":30,"sex":"male"}`)
	_, err := r.Record()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, f := range []string{"bmi", "children", "smoker", "region"} {
		if !strings.Contains(err.Error(), f+" is required") {
			t.Fatalf("missing %s not reported: %v", f, err)
		}
	}
	if strings.Contains(err.Error(), "age") {
		t.Fatalf("age reported although present: %v", err)
	}
}

func TestRecordInvalidEnums(t *testing.T) {
	r := decodeRequest(t, `{"age":30,"sex":"M","bmi":25,"children":0,"smoker":"maybe","region":"central"}`)
	_, err := r.Record()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{`got "M"`, `got "maybe"`, `got "central"`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%s not in %v", want, err)
		}
	}
}

func TestEnumValid(t *testing.T) {
	for _, r := range Regions {
		if !r.Valid() {
			t.Fatalf("%s should be valid", r)
		}
	}
	if Region("Southwest").Valid() || Sex("").Valid() || Smoker("true").Valid() {
		t.Fatalf("enum validation is case sensitive and strict")
	}
}
