// Package api serves the classifier over HTTP using the chi router.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

// Classifier is the service the handlers call. *lovetype.Lovetype
// satisfies it.
type Classifier interface {
	Classify(typeA, typeB string) (lovetype.Result, error)
	Types() ([]string, error)
	Health() map[string]string
}

// Config holds router settings.
type Config struct {
	CORSOrigins []string
	RateLimit   int // requests per minute per client IP on /score; 0 disables
	Logger      *slog.Logger
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	svc    Classifier
	logger *slog.Logger
}

// NewRouter builds the HTTP handler for the classifier service.
func NewRouter(svc Classifier, cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.Root)
	r.Get("/favicon.ico", h.Favicon)
	r.Get("/health", h.Health)
	r.Get("/types", h.Types)
	r.With(rateLimit(cfg.RateLimit)).Post("/score", h.Score)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit limits requests per client IP per minute. A limit of 0 or less
// disables limiting.
func rateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
