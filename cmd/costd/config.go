package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"costd/internal/artifacts"
	"costd/internal/config"
)

// bindConfigFlags registers the flags shared by commands that read artifacts or serve.
func bindConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "Config file (.yaml, .yml, .json, .toml)")
	f.String("artifacts-dir", config.DefaultArtifactsDir, "Directory holding the model and column schema artifacts (env COSTD_ARTIFACTS_DIR)")
	f.String("model-file", artifacts.DefaultModelFile, "Model artifact file name inside the artifacts dir")
	f.String("columns-file", artifacts.DefaultColumnsFile, "Column schema file name inside the artifacts dir")
	f.String("model-name", "", "Override the model name reported in responses")
}

// resolveConfig layers defaults < config file < COSTD_* env < explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	f := cmd.Flags()
	if p, _ := f.GetString("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := config.ApplyEnv(cfg, os.Getenv)
	if err != nil {
		return cfg, err
	}
	str := func(name string, dst *string) {
		if fl := f.Lookup(name); fl != nil && fl.Changed {
			*dst = fl.Value.String()
		}
	}
	str("addr", &cfg.Addr)
	str("artifacts-dir", &cfg.ArtifactsDir)
	str("model-file", &cfg.ModelFile)
	str("columns-file", &cfg.ColumnsFile)
	str("model-name", &cfg.ModelName)
	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)
	str("log-file", &cfg.Log.File)
	if fl := f.Lookup("max-body-bytes"); fl != nil && fl.Changed {
		cfg.MaxBodyBytes, _ = f.GetInt64("max-body-bytes")
	}
	if fl := f.Lookup("cors-origins"); fl != nil && fl.Changed {
		cfg.CORS.AllowedOrigins = splitCSV(fl.Value.String())
		cfg.CORS.Enabled = len(cfg.CORS.AllowedOrigins) > 0
	}
	return cfg.WithDefaults(), nil
}

func artifactOptions(cfg config.Config) artifacts.Options {
	return artifacts.Options{
		Dir:         cfg.ArtifactsDir,
		ModelFile:   cfg.ModelFile,
		ColumnsFile: cfg.ColumnsFile,
		ModelName:   cfg.ModelName,
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
