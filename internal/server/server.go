// Package server exposes the section catalog and the capacity checks as a
// JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/config"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/diagram"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/loads"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

const maxBodyBytes = 64 << 10

// Server routes API requests to the check evaluator.
type Server struct {
	eval    *check.Evaluator
	logger  *zap.Logger
	limiter *IPRateLimiter
	router  *mux.Router
}

// New builds the router. rps and burst configure the per-client limiter.
func New(eval *check.Evaluator, logger *zap.Logger, rps float64, burst int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		eval:    eval,
		logger:  logger,
		limiter: NewIPRateLimiter(rate.Limit(rps), burst),
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestID, accessLog(s.logger))

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)

	limited := api.NewRoute().Subrouter()
	limited.Use(s.limiter.LimitMiddleware)

	limited.HandleFunc("/profiles", s.listProfiles).Methods(http.MethodGet)
	limited.HandleFunc("/profiles/{name}", s.getProfile).Methods(http.MethodGet)
	limited.HandleFunc("/profiles/{name}/diagram.png", s.profileDiagram).Methods(http.MethodGet)
	limited.HandleFunc("/checks", s.listKinds).Methods(http.MethodGet)
	limited.HandleFunc("/checks/{kind}", s.runCheck).Methods(http.MethodPost)
	limited.HandleFunc("/checks/{kind}/pdf", s.checkPDF).Methods(http.MethodPost)
	limited.HandleFunc("/loads", s.factorLoads).Methods(http.MethodPost)
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  version.Version,
		"profiles": s.eval.Catalog.Len(),
	})
}

func (s *Server) listProfiles(w http.ResponseWriter, r *http.Request) {
	sections := s.eval.Catalog.All()
	if prefix := r.URL.Query().Get("prefix"); prefix != "" {
		sections = s.eval.Catalog.Filter(prefix)
	}
	writeJSON(w, http.StatusOK, sections)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	sec, err := s.eval.Catalog.Get(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) profileDiagram(w http.ResponseWriter, r *http.Request) {
	sec, err := s.eval.Catalog.Get(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := diagram.WriteSectionPNG(w, sec); err != nil {
		s.logger.Error("render diagram", zap.String("profile", sec.Name()), zap.Error(err))
	}
}

func (s *Server) listKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, check.Kinds)
}

func (s *Server) runCheck(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report.Map(ev.Record))
}

func (s *Server) checkPDF(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.evaluate(w, r)
	if !ok {
		return
	}

	doc := report.NewDocument(r.URL.Query().Get("project"), ev.Inputs, ev.Record)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.ID+".pdf"))
	if err := doc.WritePDF(w); err != nil {
		s.logger.Error("render pdf", zap.String("report", doc.ID), zap.Error(err))
	}
}

type combinationJSON struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

func toCombinationJSON(f loads.Factored) combinationJSON {
	return combinationJSON{ID: f.Combination.ID, Description: f.Combination.Description, Value: f.Value}
}

// factorLoads applies the strength design combinations to the unfactored
// effects in the body. ?set=gravity restricts them to 1.4D and 1.2D + 1.6L.
func (s *Server) factorLoads(w http.ResponseWriter, r *http.Request) {
	var e loads.Effects
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	combinations := loads.Basic
	if r.URL.Query().Get("set") == "gravity" {
		combinations = loads.Gravity
	}
	env, err := loads.Factor(e, combinations)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	values := make([]combinationJSON, len(env.Values))
	for i, f := range env.Values {
		values[i] = toCombinationJSON(f)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"combinations": values,
		"max":          toCombinationJSON(env.Max),
		"min":          toCombinationJSON(env.Min),
		"governing":    toCombinationJSON(env.Governing()),
	})
}

// evaluate decodes the request body as a check of the kind named in the
// path. On failure it writes the error response and returns false.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (*check.Evaluation, bool) {
	kind, err := check.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}

	var c check.Check
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	c.Kind = kind

	ev, err := s.eval.Evaluate(c)
	if err != nil {
		s.logger.Debug("check rejected",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("kind", string(kind)),
			zap.Error(err))
		writeError(w, statusFor(err), err.Error())
		return nil, false
	}
	return ev, true
}

func statusFor(err error) int {
	if errors.Is(err, profile.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}
