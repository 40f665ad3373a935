package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Options configures a Server. Zero values fall back to defaults:
// the latest tax year, a no-op logger, no cache and no rate limit.
type Options struct {
	Engine  *calculation.CalculationEngine
	Logger  *zap.Logger
	Cache   Cache
	Limiter *RateLimiter
	Version string
}

// Server exposes the calculators as a stateless JSON API
type Server struct {
	engine  *calculation.CalculationEngine
	logger  *zap.Logger
	cache   Cache
	limiter *RateLimiter
	parser  *config.InputParser
	version string
	handler http.Handler
}

func NewServer(opts Options) *Server {
	s := &Server{
		engine:  opts.Engine,
		logger:  opts.Logger,
		cache:   opts.Cache,
		limiter: opts.Limiter,
		parser:  config.NewInputParser(),
		version: opts.Version,
	}
	if s.engine == nil {
		s.engine = calculation.NewCalculationEngine()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.version == "" {
		s.version = "dev"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/rent-vs-buy", s.handleRentVsBuy)
	mux.HandleFunc("/api/validate", s.handleValidate)
	mux.HandleFunc("/api/tax", s.handleTax)
	mux.HandleFunc("/api/fire", s.handleFIRE)
	mux.HandleFunc("/healthz", s.handleHealth)

	// outermost first: ids for everything, then logging, recovery, limits
	s.handler = withRequestID(s.withLogging(s.withRecovery(s.withRateLimit(mux))))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// NewHTTPServer wraps the handler with the timeouts used in production
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type errorResponse struct {
	Error     string   `json:"error"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id"`
}

type healthResponse struct {
	Status  string `json:"status"`
	TaxYear int    `json:"taxYear"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", TaxYear: s.engine.Policy.Year, Version: s.version})
}

func (s *Server) handleRentVsBuy(w http.ResponseWriter, r *http.Request) {
	var in domain.ProjectionInputs
	if !s.decode(w, r, &in) {
		return
	}

	validation := s.engine.ValidateInputs(in)
	if !validation.IsValid {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:     "invalid inputs",
			Errors:    validation.Errors,
			RequestID: RequestIDFromContext(r.Context()),
		})
		return
	}

	s.cached(w, r, "rent-vs-buy", in, func() any {
		return s.engine.CalculateRentVsBuy(in)
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var in domain.ProjectionInputs
	if !s.decode(w, r, &in) {
		return
	}
	s.writeJSON(w, http.StatusOK, s.engine.ValidateInputs(in))
}

func (s *Server) handleTax(w http.ResponseWriter, r *http.Request) {
	var user domain.UserState
	if !s.decode(w, r, &user) {
		return
	}

	status, err := domain.ParseFilingStatus(string(user.FilingStatus))
	if err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user.FilingStatus = status
	if err := s.parser.ValidateConfiguration(&domain.Configuration{Tax: &user}); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.cached(w, r, "tax", user, func() any {
		return s.engine.CalculateTaxResults(user)
	})
}

func (s *Server) handleFIRE(w http.ResponseWriter, r *http.Request) {
	var in domain.FIREInputs
	if !s.decode(w, r, &in) {
		return
	}
	if err := s.parser.ValidateConfiguration(&domain.Configuration{FIRE: &in}); err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.cached(w, r, "fire", in, func() any {
		return s.engine.CalculateFIRE(in)
	})
}

// decode reads a POSTed JSON body into v, answering the request itself on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		s.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// cached answers from the cache when the canonical form of req was seen
// before, otherwise computes, stores and answers. The canonical form is the
// decoded request re-encoded, so formatting and key order do not matter.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, endpoint string, req any, compute func() any) {
	if s.cache == nil {
		s.writeJSON(w, http.StatusOK, compute())
		return
	}

	canonical, err := json.Marshal(req)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to encode request")
		return
	}
	key := CacheKey(endpoint, canonical)

	if body, ok := s.cache.Get(r.Context(), key); ok {
		w.Header().Set("X-Cache", "HIT")
		s.writeRaw(w, http.StatusOK, body)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(compute()); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to encode response")
		return
	}
	if err := s.cache.Set(r.Context(), key, buf.Bytes()); err != nil {
		s.logger.Warn("cache write failed",
			zap.String("endpoint", endpoint),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
	w.Header().Set("X-Cache", "MISS")
	s.writeRaw(w, http.StatusOK, buf.Bytes())
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	requestID := RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("request_id", requestID),
			zap.String("error", msg),
		)
	}
	s.writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (s *Server) writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}
