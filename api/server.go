// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"outliner/pipeline"
)

// Runner is the slice of the pipeline the handlers need.
type Runner interface {
	Run(ctx context.Context, req *pipeline.Request) (*pipeline.Result, error)
}

// Server serves the outline API.
type Server struct {
	runner Runner
	logger *zap.Logger
	port   int
}

func NewServer(runner Runner, logger *zap.Logger, port int) *Server {
	return &Server{runner: runner, logger: logger, port: port}
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/outline", s.outlineHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server_started", zap.Int("port", s.port))
	return srv.ListenAndServe()
}

func (s *Server) outlineHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "missing query parameter", http.StatusBadRequest)
		return
	}

	result, err := s.runner.Run(r.Context(), &req)
	switch {
	case errors.Is(err, pipeline.ErrEmptyQuery):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, pipeline.ErrNoResults):
		http.Error(w, "search returned no results", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("run_failed", zap.Error(err))
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Error("response_encode_failed", zap.Error(err))
	}
}
