package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r, LevelInfo); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r, LevelInfo); got != LevelDebug {
		t.Fatalf("short query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r, LevelInfo); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r, LevelOff); got != LevelOff {
		t.Fatalf("default not used: %v", got)
	}
}

func TestPredictLogsFeaturesAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	r := NewMux(&mockService{ready: true, charge: 10}, Options{Logger: &l})
	req := httptest.NewRequest(http.MethodPost, "/predict_cost?log=debug", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	out := buf.String()
	if !strings.Contains(out, "predict features") || !strings.Contains(out, "predict end") {
		t.Fatalf("expected debug and summary lines, got: %s", out)
	}
}

func TestPredictLogOff(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	r := NewMux(&mockService{ready: true, charge: 10}, Options{Logger: &l, RequestLogLevel: "off"})
	w := postPredict(t, r, validBody)
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	if buf.Len() != 0 { t.Fatalf("expected no logs, got: %s", buf.String()) }
}
