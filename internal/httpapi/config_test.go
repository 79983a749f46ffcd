package httpapi

import "testing"

func TestOptionsDefaults(t *testing.T) {
	o := Options{MaxBodyBytes: -1}.withDefaults()
	if o.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", o.MaxBodyBytes)
	}
	if o.Logger == nil {
		t.Fatalf("expected a no-op logger")
	}
	if o.RequestLogLevel != "info" {
		t.Fatalf("expected info request log level, got %q", o.RequestLogLevel)
	}
	o = Options{MaxBodyBytes: 1234}.withDefaults()
	if o.MaxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", o.MaxBodyBytes)
	}
}
