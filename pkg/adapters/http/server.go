package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/parse"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Coercer is the part of the coercion API the HTTP layer needs.
type Coercer interface {
	CoerceQuery(values url.Values) (map[string]any, error)
	CoerceStructure(x any) (any, error)
}

// Server serves coercion over HTTP.
type Server struct {
	Coercer  Coercer
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics exposes the collectors of g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates the HTTP handler.
//
//	GET  /healthz  liveness probe
//	GET  /query    coerced query parameters as JSON
//	POST /coerce   coerced JSON body
//	GET  /metrics  prometheus metrics, when enabled
func NewHandler(c Coercer, opts ...Option) http.Handler {
	s := &Server{
		Coercer: c,
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.With(Query(c)).Get("/query", s.Query)
	r.Post("/coerce", s.Coerce)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

type queryKey struct{}

// Query returns middleware that coerces the request query parameters and
// stores the result in the request context. Values that fail to parse are
// answered with 400.
func Query(c Coercer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := c.CoerceQuery(r.URL.Query())
			if err != nil {
				writeError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), queryKey{}, params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// QueryFrom returns the parameters stored by the Query middleware.
func QueryFrom(ctx context.Context) (map[string]any, bool) {
	params, ok := ctx.Value(queryKey{}).(map[string]any)
	return params, ok
}

// Query handles GET /query.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	params, _ := QueryFrom(r.Context())
	s.writeJSON(w, params)
}

// Coerce handles POST /coerce.
func (s *Server) Coerce(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Coerce: Invalid request body", "error", err)
		return
	}

	out, err := s.Coercer.CoerceStructure(body)
	if err != nil {
		s.Logger.Debug("Coerce: rejected value", "error", err)
		writeError(w, err)
		return
	}
	s.writeJSON(w, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Plain(v)); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var perr *parse.Error
	if errors.As(err, &perr) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Plain rewrites coerced values whose JSON form would be unreadable.
func Plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Plain(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	case *url.URL:
		return t.String()
	case ident.Symbol:
		return t.String()
	default:
		return v
	}
}
