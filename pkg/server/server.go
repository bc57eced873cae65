// Package server exposes the pipeline over HTTP.
//
//	GET  /healthz      liveness probe with the build version
//	POST /v1/render    chart in, image out (?format=svg|json|png|pdf)
//	POST /v1/layout    chart in, scene geometry out as JSON
//
// Both POST routes accept the chart as JSON, YAML or TOML, selected by the
// Content-Type header (JSON when absent). Optional query parameters:
// view, rtl, now (RFC 3339).
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ganttline/pkg/pipeline"
)

// maxBodyBytes caps the size of an uploaded chart.
const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	Addr        string
	ReadTimeout time.Duration

	// Defaults holds the pipeline options every request starts from.
	Defaults pipeline.Options
}

// Server is the render API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New creates a server around runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	s := &Server{runner: runner, logger: logger, opts: opts}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/layout", s.handleLayout)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
	}

	errs := make(chan error, 1)
	go func() { errs <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", s.opts.Addr)

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
