package server

import (
	"context"
	"net/http"
	"time"

	"github.com/motionmatrix/factory-portal/internal/auth"
	"github.com/motionmatrix/factory-portal/internal/config"
	"github.com/motionmatrix/factory-portal/internal/http/handlers"
	"github.com/motionmatrix/factory-portal/internal/middleware"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.AccountStore) *Server {
	mux := http.NewServeMux()

	handlers.NewHealthHandler(time.Now()).Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	handlers.NewAuthHandler(store, tokens).Register(mux)
	handlers.NewFormsHandler().Register(mux)
	handlers.NewUsersHandler(store).Register(mux)
	handlers.NewRecoverHandler(store).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
