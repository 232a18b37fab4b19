// Package server provides HTTP handlers for the quiz and moderation endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/majiinB/Deck-AI-API-Service/internal/config"
	"github.com/majiinB/Deck-AI-API-Service/internal/moderation"
	"github.com/majiinB/Deck-AI-API-Service/internal/quiz"
)

// QuizReconciler is the quiz capability consumed by the HTTP layer.
type QuizReconciler interface {
	Reconcile(ctx context.Context, req quiz.ReconcileRequest) (*quiz.ReconcileResult, error)
}

// DeckModerator is the moderation capability consumed by the HTTP layer.
type DeckModerator interface {
	Moderate(ctx context.Context, deckID string) (*moderation.ModerateResult, error)
}

// Server routes quiz and moderation requests to the injected capabilities.
type Server struct {
	router     chi.Router
	reconciler QuizReconciler
	moderator  DeckModerator
}

// NewServer creates a new Server.
func NewServer(cfg config.ServerConfig, reconciler QuizReconciler, moderator DeckModerator) *Server {
	s := &Server{
		reconciler: reconciler,
		moderator:  moderator,
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-User-ID"},
			MaxAge:         3600,
		}))
	}

	router.Get("/healthz", s.handleHealth)
	router.Post("/v1/quiz", s.handleQuiz)
	router.Post("/v1/moderation", s.handleModeration)

	s.router = router
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		slog.Default().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	})
}
