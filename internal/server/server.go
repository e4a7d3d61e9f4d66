// Package server exposes the keyword and answer collections over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/keyquiz/keyquiz/internal/docs"
)

// Config holds configuration for the document server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// RateLimitRPS is the sustained request rate allowed per client IP.
	RateLimitRPS int

	// RateLimitBurst is the burst allowance per client IP.
	RateLimitBurst int

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves document collections.
type Server struct {
	cfg      Config
	keywords docs.KeywordSource
	answers  docs.AnswerSource
	logger   *slog.Logger
	started  time.Time

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter

	engine *gin.Engine
}

// New creates a Server reading from the given collections.
func New(cfg Config, keywords docs.KeywordSource, answers docs.AnswerSource, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		keywords: keywords,
		answers:  answers,
		logger:   logger,
		started:  time.Now(),
		limiters: make(map[string]*rate.Limiter),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), s.logMiddleware())
	r.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	r.GET("/healthz", s.healthHandler)

	v1 := r.Group("/v1/collections", s.rateLimitMiddleware(), noStore())
	v1.GET("/keyword", s.keywordsHandler)
	v1.GET("/answer/:problem", s.answerHandler)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("document server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down document server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
