package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"plagiarism-checker/internal/config"
	"plagiarism-checker/internal/limiter"
	"plagiarism-checker/internal/plagiarism"
	"plagiarism-checker/internal/search"
)

// Checker runs a plagiarism check over a block of text.
type Checker interface {
	Check(ctx context.Context, text string) (*plagiarism.Report, error)
}

// Server holds the HTTP server and its dependencies
type Server struct {
	config  *config.Config
	checker Checker
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config) (*Server, error) {
	searchClient, err := search.New(
		search.Provider(cfg.SearchProvider),
		cfg.APIKey(),
		time.Duration(cfg.SearchTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("creating search client: %w", err)
	}

	queryLimiter := limiter.NewProductionQueryLimiter(time.Duration(cfg.QueryDelayMillis) * time.Millisecond)
	checker := plagiarism.NewChecker(searchClient, queryLimiter, cfg.SearchResultCount, cfg.MinSentenceWords)

	return &Server{
		config:  cfg,
		checker: checker,
	}, nil
}

// NewServerWithChecker creates a server around an existing checker. Used by
// tests to substitute a fake pipeline.
func NewServerWithChecker(cfg *config.Config, checker Checker) *Server {
	return &Server{
		config:  cfg,
		checker: checker,
	}
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/check-plagiarism", s.checkPlagiarismHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/health", s.healthHandler).Methods("GET")

	return r
}

// healthHandler provides health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   "v1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Middleware functions

// corsMiddleware adds CORS headers so browser frontends can call the API
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the ResponseWriter to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
