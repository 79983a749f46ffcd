package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"costd/internal/predictor"
	"costd/pkg/types"
)

// RootMessage is the static body of GET /.
const RootMessage = "insurance cost prediction API is running"

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Predict(ctx context.Context, rec types.PatientRecord) (predictor.Result, error)
	Status() types.StatusResponse
	Ready() bool
}

type handlers struct {
	svc      Service
	log      *zerolog.Logger
	maxBody  int64
	defLevel LogLevel
}

func NewMux(svc Service, opts Options) http.Handler {
	opts = opts.withDefaults()
	h := &handlers{
		svc:      svc,
		log:      opts.Logger,
		maxBody:  opts.MaxBodyBytes,
		defLevel: parseLevel(opts.RequestLogLevel),
	}
	setModelLoaded(svc.Ready())

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if opts.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORS.AllowedOrigins,
			AllowedMethods: opts.CORS.AllowedMethods,
			AllowedHeaders: opts.CORS.AllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Get("/", h.root)
	r.Post("/predict_cost", h.predict)
	r.Get("/status", h.status)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("model not loaded"))
	})
	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

// root godoc
// @Summary      Service banner
// @Description  Static message confirming the API is up.
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.RootResponse
// @Router       / [get]
func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.RootResponse{Message: RootMessage})
}

// status godoc
// @Summary      Loaded model and schema
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// predict godoc
// @Summary      Predict yearly insurance charge
// @Description  Aligns the patient record to the model's training columns and returns the predicted charge in USD.
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        record  body      types.PatientRecord  true  "Patient attributes"
// @Success      200     {object}  types.PredictResponse
// @Failure      400     {object}  types.ErrorResponse
// @Failure      415     {object}  types.ErrorResponse
// @Failure      500     {object}  types.ErrorResponse
// @Failure      503     {object}  types.ErrorResponse
// @Router       /predict_cost [post]
func (h *handlers) predict(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	var req types.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// oversized bodies also land here; report 400 without size details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	lvl := requestLogLevel(r, h.defLevel)
	start := time.Now()
	rec, err := req.Record()
	if err != nil {
		observePrediction(outcomeInvalidInput, 0)
		h.logEnd(r, lvl, http.StatusBadRequest, start, err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Predict(r.Context(), rec)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		status := statusFor(err)
		observePrediction(outcomeOf(err), 0)
		h.logEnd(r, lvl, status, start, err)
		writeJSONError(w, status, err.Error())
		return
	}
	observePrediction(outcomeOK, res.ChargeUSD)
	if lvl >= LevelDebug {
		z := h.log.Debug().Interface("features", res.Features.Map()).Float64("raw", res.Raw)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("predict features")
	}
	h.logEnd(r, lvl, http.StatusOK, start, nil)
	writeJSON(w, http.StatusOK, types.PredictResponse{
		PredictedChargeUSD: res.ChargeUSD,
		ModelUsed:          res.ModelName,
		InputData:          res.Record,
	})
}

func outcomeOf(err error) string {
	switch {
	case predictor.IsModelNotLoaded(err):
		return outcomeModelNotLoaded
	case predictor.IsInvalidInput(err):
		return outcomeInvalidInput
	default:
		return outcomeFailed
	}
}

// logEnd writes the per-request summary line. Failures are logged at error
// level so they survive LevelError; successes need LevelInfo.
func (h *handlers) logEnd(r *http.Request, lvl LogLevel, status int, start time.Time, err error) {
	if lvl == LevelOff || (err == nil && lvl < LevelInfo) {
		return
	}
	var z *zerolog.Event
	switch {
	case err == nil:
		z = h.log.Info()
	case status >= http.StatusInternalServerError:
		z = h.log.Error().Err(err)
	default:
		z = h.log.Warn().Err(err)
	}
	z = z.Str("path", r.URL.Path).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("predict end")
}
