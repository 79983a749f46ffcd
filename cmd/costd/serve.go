package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"costd/internal/artifacts"
	"costd/internal/config"
	"costd/internal/httpapi"
	"costd/internal/logging"
	"costd/internal/predictor"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction API",
		Example: "  costd serve --addr :8080 --artifacts-dir model_artifacts/\n" +
			"  costd serve --config costd.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	bindConfigFlags(cmd)
	f := cmd.Flags()
	f.String("addr", config.DefaultAddr, "HTTP listen address, e.g. :8080 (env COSTD_ADDR)")
	f.Int64("max-body-bytes", config.DefaultMaxBodyBytes, "Maximum JSON request body size")
	f.String("log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error")
	f.String("log-format", config.DefaultLogFormat, "Log format: console|json")
	f.String("log-file", "", "Also write JSON logs to this rotated file")
	f.String("cors-origins", "", "Comma-separated origins allowed by CORS (enables CORS)")
	return cmd
}

// loadService loads artifacts once. A load failure is logged and yields a
// degraded service instead of an error.
func loadService(log zerolog.Logger, cfg config.Config) *predictor.Service {
	bundle, err := artifacts.Load(artifactOptions(cfg))
	if err != nil {
		ev := log.Error().Err(err).Str("artifacts_dir", cfg.ArtifactsDir)
		if artifacts.IsMissing(err) {
			ev = ev.Bool("missing", true)
		}
		ev.Msg("artifacts not loaded; serving in degraded mode")
		return predictor.New(predictor.Config{LoadErr: err})
	}
	ev := log.Info().
		Str("dir", bundle.Dir).
		Str("model", bundle.ModelName).
		Str("kind", bundle.Regressor.Kind()).
		Str("target_transform", string(bundle.Transform)).
		Strs("columns", bundle.Schema.Names())
	if ref, ok := bundle.ReferenceRegion(); ok {
		ev = ev.Str("reference_region", string(ref))
	}
	ev.Msg("artifacts loaded")
	if _, ok := bundle.ReferenceRegion(); !ok {
		log.Warn().Strs("region_columns", bundle.Schema.RegionColumns()).
			Msg("schema does not drop exactly one region; region encoding follows schema columns as-is")
	}
	if cols := bundle.Schema.Unreachable(); len(cols) > 0 {
		log.Warn().Strs("columns", cols).Msg("schema columns no request can populate; they are always 0")
	}
	return predictor.New(predictor.Config{Bundle: bundle})
}

func serve(ctx context.Context, cfg config.Config) error {
	log, closer := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer closer.Close()

	svc := loadService(log, cfg)
	mux := httpapi.NewMux(svc, httpapi.Options{
		Logger:       &log,
		MaxBodyBytes: cfg.MaxBodyBytes,
		CORS: httpapi.CORSOptions{
			Enabled:        cfg.CORS.Enabled,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
		},
	})
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Bool("ready", svc.Ready()).Msg("costd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown error")
			return err
		}
		log.Info().Msg("server stopped")
		return nil
	})
	return g.Wait()
}
