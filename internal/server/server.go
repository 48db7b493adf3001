// Package server exposes the annotation engine as a JSON HTTP API.
//
// Endpoints:
//
//	GET  /api/phases
//	GET  /api/operations
//	POST /api/analyze/{op}   body: {"text":"...", "stripHtml":false}
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cognicore/nlplab/pkg/nlplab"
	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Config configures a Server.
type Config struct {
	Addr        string
	RateLimit   float64 // requests per second; 0 disables limiting
	RateBurst   int
	CORSOrigins []string
	Timeout     time.Duration
}

// Server serves the analysis API.
type Server struct {
	engine  *nlplab.Engine
	logger  *zap.Logger
	cfg     Config
	metrics *Metrics
	limiter *rate.Limiter
	handler http.Handler
}

// New creates a server. A nil registry gets a fresh prometheus registry.
func New(engine *nlplab.Engine, logger *zap.Logger, cfg Config, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	s := &Server{
		engine:  engine,
		logger:  logger,
		cfg:     cfg,
		metrics: NewMetrics(reg),
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/phases", s.handlePhases)
	mux.HandleFunc("GET /api/operations", s.handleOperations)
	mux.HandleFunc("POST /api/analyze/{op}", s.handleAnalyze)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.handler = c.Handler(s.logRequests(s.rateLimit(mux)))
	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type phasesResponse struct {
	Phases []nlplab.Phase `json:"phases"`
}

type operationsResponse struct {
	Operations []nlplab.Operation `json:"operations"`
}

type analyzeRequest struct {
	Text      string `json:"text"`
	StripHTML bool   `json:"stripHtml"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, phasesResponse{Phases: nlplab.Phases()})
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, operationsResponse{Operations: nlplab.Operations()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	op := r.PathValue("op")
	if _, ok := nlplab.Lookup(op); !ok {
		s.metrics.observeError("unknown", "unknown_operation")
		s.writeError(w, http.StatusNotFound, "unknown operation "+op)
		return
	}

	var body analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		s.metrics.observeError(op, "invalid_input")
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	res, err := s.engine.Analyze(ctx, nlplab.Request{Op: op, Text: body.Text, StripHTML: body.StripHTML})
	switch {
	case err == nil:
	case errors.Is(err, internalerr.ErrEmptyInput):
		s.metrics.observeError(op, "empty_input")
		s.writeError(w, http.StatusBadRequest, internalerr.ErrEmptyInput.Error())
		return
	case errors.Is(err, context.DeadlineExceeded):
		s.metrics.observeError(op, "timeout")
		s.writeError(w, http.StatusGatewayTimeout, "analysis timed out")
		return
	case errors.Is(err, context.Canceled):
		// client went away
		s.metrics.observeError(op, "canceled")
		return
	default:
		s.metrics.observeError(op, "internal")
		s.logger.Error("analyze", zap.String("op", op), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.metrics.observe(op, time.Since(start), res.Card.Empty)
	s.writeJSON(w, http.StatusOK, res)
}
