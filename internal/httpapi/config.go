package httpapi

import (
	"github.com/rs/zerolog"
)

// Options configures the HTTP layer. Zero values are replaced by defaults in NewMux.
type Options struct {
	// Logger receives request logs. Defaults to a disabled logger.
	Logger *zerolog.Logger
	// MaxBodyBytes limits JSON request bodies (default 1 MiB).
	MaxBodyBytes int64
	// RequestLogLevel is the default per-request log level: off|error|info|debug.
	// Clients may override it with ?log= or the X-Log-Level header.
	RequestLogLevel string
	CORS            CORSOptions
}

// CORSOptions are opt-in; when Enabled is false no CORS middleware is added.
type CORSOptions struct {
	Enabled        bool
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

const defaultMaxBodyBytes int64 = 1 << 20

func (o Options) withDefaults() Options {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.Logger == nil {
		l := zerolog.Nop()
		o.Logger = &l
	}
	if o.RequestLogLevel == "" {
		o.RequestLogLevel = "info"
	}
	return o
}
