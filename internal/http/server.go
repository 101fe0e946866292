package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tala-app/backend/internal/auth"
	"github.com/tala-app/backend/internal/config"
	"github.com/tala-app/backend/internal/http/middleware"
	"github.com/tala-app/backend/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	jwt         *auth.JWTManager
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
	jwt *auth.JWTManager,
) *Server {
	return &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
		jwt:         jwt,
		srv:         nil,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(s.jwt)

	// Register routes.
	mux.HandleFunc("POST /api/register", s.handler.HandleRegister)
	mux.HandleFunc("POST /api/login", s.handler.HandleLogin)

	mux.HandleFunc("POST /api/scenarios/random", s.handler.HandleScenario)
	mux.HandleFunc("POST /api/example_dialogue", s.handler.HandleExampleDialogue)
	mux.HandleFunc("POST /api/review/performance", s.handler.HandleReview)
	mux.Handle("POST /api/translate", authed(http.HandlerFunc(s.handler.HandleTranslate)))

	mux.HandleFunc("GET /api/search", s.handler.HandleSearch)
	mux.Handle("POST /api/word-report", authed(http.HandlerFunc(s.handler.HandleWordReport)))

	mux.Handle("GET /api/wordbook", authed(http.HandlerFunc(s.handler.HandleWordbookList)))
	mux.Handle("POST /api/wordbook", authed(http.HandlerFunc(s.handler.HandleWordbookAdd)))
	mux.Handle("DELETE /api/wordbook/{id}", authed(http.HandlerFunc(s.handler.HandleWordbookDelete)))

	mux.HandleFunc("GET /audio_cache/{filename}", s.handler.HandleAudio)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)

	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(mux)

	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
