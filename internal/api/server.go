// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the composition root for the chi router.
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/catalog/internal/core/category"
	"github.com/taibuivan/catalog/internal/core/country"
	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/middleware"
)

// DictionariesPrefix is the mount point of every catalog route.
const DictionariesPrefix = "/api/Dictionaries"

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is up.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when PostgreSQL and Redis answer.
	Readiness http.HandlerFunc

	// Category serves the category tree and its maintenance.
	Category *category.Handler

	// Product serves the product listing and its maintenance.
	Product *product.Handler

	// Country serves the country dictionary.
	Country *country.Handler
}

// # Server Initialization

// NewRouter builds the chi router with the full middleware chain and every
// route group registered.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route(DictionariesPrefix, func(api chi.Router) {
		api.Mount("/Category", h.Category.Routes())
		api.Mount("/Products", h.Product.Routes())
		api.Mount("/Country", h.Country.Routes())
	})

	return r
}

// NewServer wraps [NewRouter] in an [http.Server] listening on cfg.ServerPort.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := NewRouter(context, cfg, log, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
