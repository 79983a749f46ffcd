package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	cases := []struct{ in string; want []string }{
		{"a,b,c", []string{"a","b","c"}},
		{" a , b , c ", []string{"a","b","c"}},
		{"a,,c", []string{"a","c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) { t.Fatalf("%q -> %v, want %v", c.in, got, c.want) }
		for i := range got {
			if got[i] != c.want[i] { t.Fatalf("%q -> %v, want %v", c.in, got, c.want) }
		}
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	t.Setenv("COSTD_ADDR", "")
	t.Setenv("COSTD_ARTIFACTS_DIR", "")
	d := t.TempDir()
	p := filepath.Join(d, "costd.yaml")
	if err := os.WriteFile(p, []byte("addr: :9000\nartifacts_dir: /from/file\nlog:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := newServeCmd()
	if err := cmd.ParseFlags([]string{"--config", p, "--addr", ":9100", "--cors-origins", "http://a, http://b"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Addr != ":9100" { t.Fatalf("flag did not override file: %q", cfg.Addr) }
	if cfg.ArtifactsDir != "/from/file" { t.Fatalf("file value lost: %q", cfg.ArtifactsDir) }
	if cfg.Log.Level != "warn" { t.Fatalf("log level=%q", cfg.Log.Level) }
	if !cfg.CORS.Enabled || len(cfg.CORS.AllowedOrigins) != 2 { t.Fatalf("cors=%+v", cfg.CORS) }
}

func TestResolveConfig_EnvBeatsFileDefaultsApplied(t *testing.T) {
	t.Setenv("COSTD_ARTIFACTS_DIR", "/from/env")
	t.Setenv("COSTD_ADDR", "")
	cmd := newServeCmd()
	if err := cmd.ParseFlags(nil); err != nil { t.Fatalf("parse: %v", err) }
	cfg, err := resolveConfig(cmd)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.ArtifactsDir != "/from/env" { t.Fatalf("artifacts dir=%q", cfg.ArtifactsDir) }
	if cfg.Addr != ":8080" || cfg.MaxBodyBytes != 1<<20 { t.Fatalf("defaults not applied: %+v", cfg) }
}

func TestRecordFlagsRejectUnknownRegion(t *testing.T) {
	rf := recordFlags{age: 30, sex: "male", bmi: 25, smoker: "no", region: "central"}
	if _, err := rf.record(); err == nil { t.Fatalf("expected error for unknown region") }
}
