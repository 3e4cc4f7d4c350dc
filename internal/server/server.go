package server

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"settlers/internal/config"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	config   config.Config
	static   fs.FS
}

// New creates a server. static must contain web/static.
func New(cfg config.Config, static fs.FS) *Server {
	return &Server{
		handlers: NewHandlers(cfg),
		config:   cfg,
		static:   static,
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// Static files from embedded FS
	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	// API routes
	mux.HandleFunc("/api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	mux.HandleFunc("/health", s.handlers.HandleHealth)
	return mux, nil
}

// Close stops every room.
func (s *Server) Close() {
	s.handlers.Close()
}

func (s *Server) Start() error {
	mux, err := s.Handler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Settlers server starting on http://localhost%s", addr)
	log.Printf("Open http://localhost%s/api/create to create a new game", addr)
	return http.ListenAndServe(addr, mux)
}
