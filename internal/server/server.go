// Package server provides the HTTP API of the fancyword daemon.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/fancyword/internal/config"
	"github.com/at-ishikawa/fancyword/internal/lexicon"
	"github.com/at-ishikawa/fancyword/internal/suggest"
)

const requestTimeout = 30 * time.Second

type Suggester interface {
	SuggestWord(ctx context.Context, word string, topN int) (suggest.List, error)
	DefineWord(ctx context.Context, word string) ([]lexicon.Definition, error)
}

type StatusReporter interface {
	Status() string
}

type Server struct {
	suggester Suggester
	word2vec  StatusReporter
	config    config.ServerConfig
	server    *http.Server
}

func NewServer(suggester Suggester, word2vec StatusReporter, cfg config.ServerConfig) *Server {
	s := &Server{
		suggester: suggester,
		word2vec:  word2vec,
		config:    cfg,
	}
	s.server = &http.Server{
		Addr:              s.Addr(),
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/api/v1/similar", s.handleSimilar)
	r.Get("/api/v1/definitions", s.handleDefinitions)
	r.Get("/health", s.handleHealth)
	return r
}

func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start serves the API and blocks until the server stops.
func (s *Server) Start() error {
	slog.Default().Info("starting server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe > %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
