package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/tabletally/internal/services/notify"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
)

// DefaultHeartbeatInterval is how often idle event streams receive a ping
const DefaultHeartbeatInterval = 30 * time.Second

// Subscriber hands out leaderboard change subscriptions
type Subscriber interface {
	Subscribe() *notify.Subscription
}

// Config holds configuration for the web server
type Config struct {
	// Addr is the listen address, e.g. 127.0.0.1:5000
	Addr string

	// ScoringService computes the leaderboard
	ScoringService scoring.Service

	// Events delivers a signal after every ledger change
	Events Subscriber

	// HeartbeatInterval defaults to DefaultHeartbeatInterval
	HeartbeatInterval time.Duration
}

// Server serves the leaderboard page, its JSON API and the change stream
type Server struct {
	scoringService    scoring.Service
	events            Subscriber
	heartbeatInterval time.Duration
	httpServer        *http.Server

	// done is closed on shutdown to end open event streams
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a new web server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ScoringService == nil {
		return nil, errors.New("scoring service cannot be nil")
	}

	if cfg.Events == nil {
		return nil, errors.New("events cannot be nil")
	}

	heartbeat := cfg.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeatInterval
	}

	s := &Server{
		scoringService:    cfg.ScoringService,
		events:            cfg.Events,
		heartbeatInterval: heartbeat,
		done:              make(chan struct{}),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the routes served by the web server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboardAPI)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /{$}", s.handlePage)
	return mux
}

// Start listens and serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Web server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Shutdown ends open event streams and stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.httpServer.Shutdown(ctx)
}
