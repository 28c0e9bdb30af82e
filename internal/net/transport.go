package net

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/drag"
	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"
)

// ClientMessage is a UI event sent by the browser page.
type ClientMessage struct {
	Type      string          `json:"type"`
	Kind      string          `json:"kind,omitempty"`
	Color     string          `json:"color,omitempty"`
	LineWidth float64         `json:"line_width,omitempty"`
	Target    string          `json:"target,omitempty"`
	X         float64         `json:"x,omitempty"`
	Y         float64         `json:"y,omitempty"`
	CTM       *drag.Transform `json:"ctm,omitempty"`
	Width     float64         `json:"width,omitempty"`
	Height    float64         `json:"height,omitempty"`
}

// ServerMessage is pushed to the browser page.
type ServerMessage struct {
	Type      string  `json:"type"`
	Revision  uint64  `json:"revision,omitempty"`
	SVG       string  `json:"svg,omitempty"`
	Color     string  `json:"color,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	Filename  string  `json:"filename,omitempty"`
	Data      string  `json:"data,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// Session is one browser tab with its own board.
type Session struct {
	ID       string
	conn     *websocket.Conn
	editor   *editor.Editor
	exporter *export.Exporter
	cfg      config.Config
	writeMu  sync.Mutex
}

func NewSession(conn *websocket.Conn, cfg config.Config) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		conn:     conn,
		editor:   editor.New(cfg),
		exporter: export.NewExporter(cfg.Export.JPEGQuality),
		cfg:      cfg,
	}
	s.editor.OnChange = s.render
	return s
}

// Run reads client messages until the connection drops or ctx ends.
func (s *Session) Run(ctx context.Context) error {
	defer s.conn.Close()
	defer s.exporter.Wait()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.conn.Close()
		case <-stop:
		}
	}()

	s.render()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("session %s: read: %w", s.ID, err)
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("session %s: decode: %w", s.ID, err)
		}
		if err := s.handle(msg); err != nil {
			log.Printf("[WS] %s: %s: %v", s.ID, msg.Type, err)
			s.send(ServerMessage{Type: "error", Message: err.Error()})
		}
	}
}

func (s *Session) handle(msg ClientMessage) error {
	ctm := drag.Identity
	if msg.CTM != nil {
		ctm = *msg.CTM
	}
	pointer := state.Point{X: msg.X, Y: msg.Y}

	switch msg.Type {
	case "add":
		var err error
		switch state.Kind(msg.Kind) {
		case state.KindRect:
			_, err = s.editor.AddRect()
		case state.KindCircle:
			_, err = s.editor.AddCircle()
		case state.KindLine:
			_, err = s.editor.AddLine()
		default:
			return fmt.Errorf("unknown shape kind %q", msg.Kind)
		}
		return err
	case "color":
		return s.editor.SetColor(msg.Color)
	case "width":
		return s.editor.SetLineWidth(msg.LineWidth)
	case "undo":
		_, err := s.editor.Undo()
		return err
	case "down":
		if msg.Target != "" {
			s.editor.PointerDownOn(msg.Target, pointer, ctm)
		} else {
			s.editor.PointerDown(pointer, ctm)
		}
	case "move":
		s.editor.PointerMove(pointer, ctm)
	case "up":
		s.editor.PointerUp()
	case "leave":
		s.editor.PointerLeave()
	case "save":
		job := s.editor.ExportJob(msg.Width, msg.Height, s.cfg.Export.Filename)
		s.exporter.Submit(job, s.deliver)
	default:
		log.Printf("[WS] %s: ignoring message type %q", s.ID, msg.Type)
	}
	return nil
}

func (s *Session) render() {
	s.send(ServerMessage{
		Type:      "render",
		Revision:  s.editor.Board().Revision(),
		SVG:       s.editor.SVG(s.cfg.Canvas.Width, s.cfg.Canvas.Height),
		Color:     s.editor.Color(),
		LineWidth: s.editor.LineWidth(),
	})
}

func (s *Session) deliver(res export.Result) {
	if res.Err != nil {
		s.send(ServerMessage{Type: "error", Message: res.Err.Error()})
		return
	}
	s.send(ServerMessage{
		Type:     "saved",
		Filename: res.Filename,
		Data:     base64.StdEncoding.EncodeToString(res.Data),
	})
}

// send is called from the read loop and from export completions.
func (s *Session) send(msg ServerMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		log.Printf("[WS] %s: write %s: %v", s.ID, msg.Type, err)
	}
}

// Close asks the peer to go away and drops the connection.
func (s *Session) Close() {
	s.writeMu.Lock()
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
	s.writeMu.Unlock()
	s.conn.Close()
}

// SessionManager tracks live browser sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

func (sm *SessionManager) Add(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s.ID] = s
	log.Printf("[WS] session %s opened from %s", s.ID, s.conn.RemoteAddr())
}

func (sm *SessionManager) Remove(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, s.ID)
	log.Printf("[WS] session %s closed", s.ID)
}

func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CloseAll closes every live session.
func (sm *SessionManager) CloseAll() {
	sm.mu.RLock()
	live := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		live = append(live, s)
	}
	sm.mu.RUnlock()

	for _, s := range live {
		s.Close()
	}
}
