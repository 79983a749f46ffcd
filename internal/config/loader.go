package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified"; WithDefaults fills them.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	ArtifactsDir string `json:"artifacts_dir" yaml:"artifacts_dir" toml:"artifacts_dir"`
	ModelFile    string `json:"model_file" yaml:"model_file" toml:"model_file"`
	ColumnsFile  string `json:"columns_file" yaml:"columns_file" toml:"columns_file"`
	ModelName    string `json:"model_name" yaml:"model_name" toml:"model_name"`
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`

	Log  LogConfig  `json:"log" yaml:"log" toml:"log"`
	CORS CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `json:"level" yaml:"level" toml:"level"`
	Format     string `json:"format" yaml:"format" toml:"format"`
	File       string `json:"file" yaml:"file" toml:"file"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}

// CORSConfig enables cross-origin access for browser form clients.
type CORSConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

// Defaults.
const (
	DefaultAddr         = ":8080"
	DefaultArtifactsDir = "model_artifacts/"
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with COSTD_* environment variables read through getenv.
func ApplyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv("COSTD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("COSTD_ARTIFACTS_DIR"); v != "" {
		cfg.ArtifactsDir = v
	}
	if v := getenv("COSTD_MODEL_FILE"); v != "" {
		cfg.ModelFile = v
	}
	if v := getenv("COSTD_COLUMNS_FILE"); v != "" {
		cfg.ColumnsFile = v
	}
	if v := getenv("COSTD_MODEL_NAME"); v != "" {
		cfg.ModelName = v
	}
	if v := getenv("COSTD_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("COSTD_MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}
	if v := getenv("COSTD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("COSTD_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := getenv("COSTD_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := getenv("COSTD_CORS_ORIGINS"); v != "" {
		cfg.CORS.Enabled = true
		cfg.CORS.AllowedOrigins = splitList(v)
	}
	return cfg, nil
}

// WithDefaults fills unspecified fields.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ArtifactsDir == "" {
		c.ArtifactsDir = DefaultArtifactsDir
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.File != "" {
		if c.Log.MaxSizeMB <= 0 {
			c.Log.MaxSizeMB = 100
		}
		if c.Log.MaxBackups <= 0 {
			c.Log.MaxBackups = 3
		}
	}
	if c.CORS.Enabled {
		if len(c.CORS.AllowedOrigins) == 0 {
			c.CORS.AllowedOrigins = []string{"*"}
		}
		if len(c.CORS.AllowedMethods) == 0 {
			c.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
		}
		if len(c.CORS.AllowedHeaders) == 0 {
			c.CORS.AllowedHeaders = []string{"Content-Type", "X-Log-Level", "X-Request-Id"}
		}
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
