package net

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ShapeBoard/internal/config"
)

//go:embed web
var webFS embed.FS

const shutdownGrace = 5 * time.Second

// Server serves the browser page and one websocket session per tab.
type Server struct {
	cfg      config.Config
	sessions *SessionManager
	upgrader websocket.Upgrader
	ctx      context.Context
	wg       sync.WaitGroup
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:      cfg,
		sessions: NewSessionManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		ctx: context.Background(),
	}
}

func (s *Server) Sessions() *SessionManager { return s.sessions }

// Handler routes "/" to the embedded page and "/ws" to the session endpoint.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}
	session := NewSession(conn, s.cfg)
	s.sessions.Add(session)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.sessions.Remove(session)
		if err := session.Run(s.ctx); err != nil {
			log.Printf("[WS] %v", err)
		}
	}()
}

// ListenAndServe blocks until ctx is cancelled, then closes every session and
// shuts the listener down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.ctx = ctx
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[WS] listening on %s", s.cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", s.cfg.Server.Addr, err)
	case <-ctx.Done():
	}

	log.Println("[WS] shutting down")
	s.sessions.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
