// Package server provides the HTTP exposition server for kea-exporter:
// the metrics endpoint with update-on-scrape semantics, a health endpoint,
// and optional basic authentication.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kea-exporter/kea-exporter/internal/config"
	"github.com/kea-exporter/kea-exporter/internal/exporter"
)

// Updater runs one statistics update cycle. Implemented by
// *exporter.Translator.
type Updater interface {
	Update(ctx context.Context) error
}

// Server serves the translated metrics over HTTP. Each scrape of the
// metrics path first runs an update cycle, then gathers the registry.
type Server struct {
	cfg        config.ServerConfig
	logger     *slog.Logger
	updater    Updater
	gatherer   prometheus.Gatherer
	httpServer *http.Server

	// onFatal is invoked when an update cycle hits a fatal configuration
	// error; the process owner decides the exit.
	onFatal func(error)
}

// New creates the exposition server.
func New(cfg config.ServerConfig, logger *slog.Logger, gatherer prometheus.Gatherer, updater Updater, onFatal func(error)) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		gatherer: gatherer,
		updater:  updater,
		onFatal:  onFatal,
	}
}

// Listen binds the server to its configured address and prepares routes.
// Call this synchronously to catch port conflicts before serving.
func (s *Server) Listen() (net.Listener, error) {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("binding metrics server to %s: %w", s.cfg.ListenAddress, err)
	}

	s.logger.Info("metrics server listening", "address", ln.Addr().String(), "path", s.cfg.MetricsPath)
	return ln, nil
}

// Serve accepts connections on the listener. Blocks until shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Start is a convenience that calls Listen + Serve. Blocks until shutdown.
func (s *Server) Start() error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// registerRoutes sets up the metrics and health endpoints.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	metricsHandler := promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})

	handler := s.updateThenServe(metricsHandler)
	if s.cfg.Auth.Enabled {
		handler = basicAuth(s.cfg.Auth, s.logger, handler)
	}
	mux.Handle(s.cfg.MetricsPath, handler)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
}

// updateThenServe runs one update cycle before gathering, so every scrape
// reflects the current statistics.
func (s *Server) updateThenServe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.updater.Update(r.Context()); err != nil {
			var fatal *exporter.UnsupportedConfigError
			if errors.As(err, &fatal) && s.onFatal != nil {
				s.onFatal(err)
			}
			http.Error(w, "update cycle failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}
