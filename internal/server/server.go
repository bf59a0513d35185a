// Package server exposes the explorer use cases as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
)

// Server routes API requests to the explorer service. Successful responses
// are cached by request shape; errors are never cached.
type Server struct {
	service *explorer.Service
	cache   cache.Cache
	ttl     time.Duration
	logger  *log.Logger
	router  *chi.Mux
}

// Options configures optional server collaborators.
type Options struct {
	Cache  cache.Cache   // nil disables caching
	TTL    time.Duration // cache TTL for successful responses
	Logger *log.Logger   // nil falls back to the default logger
}

// New creates a server over the given use-case service.
func New(service *explorer.Service, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{
		service: service,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		logger:  opts.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/users/{username}", s.handleGetUser)
		r.Get("/users/{username}/repos", s.handleGetRepositories)
		r.Get("/users/{username}/languages", s.handleGetLanguages)
		r.Get("/search/users", s.handleSearchUsers)
	})
	return r
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
