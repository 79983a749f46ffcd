package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"costd/internal/artifacts"
	"costd/internal/artifacts/artifactstest"
	"costd/internal/httpapi"
	"costd/internal/predictor"
)

// newServer wires the real artifact loader, predictor and router, the same way
// `costd serve` does, on top of the fixture artifacts.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	b, err := artifacts.Load(artifacts.Options{Dir: artifactstest.Write(t)})
	if err != nil {
		t.Fatalf("load artifacts: %v", err)
	}
	return serve(t, predictor.New(predictor.Config{Bundle: b}))
}

// newDegradedServer starts a server whose artifacts directory is empty.
func newDegradedServer(t *testing.T) *httptest.Server {
	t.Helper()
	_, err := artifacts.Load(artifacts.Options{Dir: t.TempDir()})
	if err == nil {
		t.Fatalf("expected load error for empty dir")
	}
	return serve(t, predictor.New(predictor.Config{LoadErr: err}))
}

func serve(t *testing.T, svc *predictor.Service) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewMux(svc, httpapi.Options{}))
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil { t.Fatalf("new req: %v", err) }
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func httpPostJSON(t *testing.T, url string, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewBufferString(body))
	if err != nil { t.Fatalf("new req: %v", err) }
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do req: %v", err) }
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}
