// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *scoring.Engine
	embedder   llm.EmbeddingClient
	db         *db.DB
	validator  *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port            int
	DatabaseURL     string // optional; score history endpoints disabled when empty
	APIKey          string // optional; semantic scoring degrades when empty
	EmbeddingModel  string
	CacheSize       int
	TaxonomyOverlay string // optional path to a taxonomy overlay JSON file
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyOverlay != "" {
		overlay, err := schemas.LoadOverlay(cfg.TaxonomyOverlay)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy overlay: %w", err)
		}
		tax = tax.WithOverlay(overlay)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		llmConfig = llmConfig.WithModel(cfg.EmbeddingModel)
	}
	embedder, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	cacheSize := cfg.CacheSize
	if cacheSize == 0 {
		cacheSize = semantic.DefaultCacheSize
	}
	engine := scoring.NewEngine(tax, embedder, semantic.NewCache(cacheSize))

	s := &Server{
		engine:    engine,
		embedder:  embedder,
		validator: validator.New(),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("GET /scores", s.handleListScores)
	mux.HandleFunc("GET /scores/{id}", s.handleGetScore)
	mux.HandleFunc("DELETE /scores/{id}", s.handleDeleteScore)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.embedder != nil {
		if err := s.embedder.Close(); err != nil {
			log.Printf("Error closing embedding client: %v", err)
		}
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	semanticAvailable := s.embedder != nil && s.embedder.Available()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"semantic_available": semanticAvailable,
		"history_enabled":    s.db != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
