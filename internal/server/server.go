// Package server exposes the extractor over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Server holds the HTTP API dependencies.
type Server struct {
	gin        *gin.Engine
	l          *zap.Logger
	addr       string
	dateLayout string
	now        func() time.Time
	cache      *lru.Cache[string, extractData]
	limiter    *rateLimiter
}

// Config is the dependency bag passed to New.
type Config struct {
	Logger          *zap.Logger
	Addr            string
	Mode            string // gin mode
	DateLayout      string // layout of the report lines
	RateLimitPerMin int    // 0 disables rate limiting
	CacheSize       int    // 0 disables the result cache
	Now             func() time.Time
}

// New creates a Server and registers its routes.
func New(cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)

	srv := &Server{
		gin:        gin.New(),
		l:          cfg.Logger,
		addr:       cfg.Addr,
		dateLayout: cfg.DateLayout,
		now:        cfg.Now,
	}
	if srv.now == nil {
		srv.now = time.Now
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, extractData](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
		srv.cache = cache
	}
	if cfg.RateLimitPerMin > 0 {
		srv.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	srv.mapHandlers()
	return srv, nil
}

func (cfg Config) validate() error {
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.Mode == "" {
		return errors.New("mode is required")
	}
	if cfg.Addr == "" {
		return errors.New("addr is required")
	}
	return nil
}

// Handler returns the HTTP handler serving the API.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Info("server listening", zap.String("addr", srv.addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	srv.l.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
