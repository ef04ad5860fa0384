package webserver

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/psidex/graphed/internal/config"
	"github.com/psidex/graphed/internal/editor"
	"github.com/psidex/graphed/internal/graph"
	"github.com/psidex/graphed/internal/host"
	"github.com/psidex/graphed/internal/lib"
)

//go:embed static
var staticFS embed.FS

// Server serves the editor page on / and one editing session per websocket
// connection on /ws. Every session edits its own graph, seeded from config.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
	sessions atomic.Int64
}

var _ http.Handler = (*Server)(nil)

// NewServer checks the seed graph once up front so sessions cannot fail on it.
func NewServer(cfg *config.Config, log *slog.Logger) (*Server, error) {
	if _, err := graph.Seed(cfg.Seed.Points, cfg.Seed.Segments); err != nil {
		return nil, err
	}

	s := &Server{
		cfg: cfg,
		log: log,
		mux: http.NewServeMux(),
	}
	s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	if cfg.Server.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	} else {
		sub, err := fs.Sub(staticFS, "static")
		if err != nil {
			return nil, err
		}
		s.mux.Handle("/", http.FileServer(http.FS(sub)))
	}
	s.mux.HandleFunc("/ws", s.editorSession)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ActiveSessions returns the number of connected editors.
func (s *Server) ActiveSessions() int64 {
	return s.sessions.Load()
}

func (s *Server) editorSession(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade err", "err", err)
		return
	}
	ws := lib.NewThreadSafeWebSocket(c)
	defer ws.Close()

	active := s.sessions.Add(1)
	defer s.sessions.Add(-1)
	log := s.log.With("session", r.RemoteAddr)
	log.Info("Session started", "active", active)

	g, err := graph.Seed(s.cfg.Seed.Points, s.cfg.Seed.Segments)
	if err != nil {
		log.Error("Seed graph", "err", err)
		return
	}
	ed := editor.New(g,
		editor.WithHoverThreshold(s.cfg.Editor.HoverThreshold),
		editor.WithCheckedPlacement(s.cfg.Editor.CheckedPlacement),
		editor.WithLogger(log),
	)

	if err := ws.WriteJSON(newHello(s.cfg.Canvas.Width, s.cfg.Canvas.Height)); err != nil {
		log.Warn("ws hello write err", "err", err)
		return
	}

	drv := host.NewDriver(ed, newFrameSurface(ws),
		host.WithInterval(s.cfg.Editor.FrameInterval.Duration),
		host.WithLogger(log),
	)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		// The browser closing the socket ends the session.
		defer cancel()
		readEvents(ws, drv, log)
	}()

	if err := drv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("Session ended", "err", err)
		return
	}
	log.Info("Session ended", "frames", drv.Frames())
}

func readEvents(ws lib.ThreadSafeWebSocket, drv *host.Driver, log *slog.Logger) {
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("ws read err", "err", err)
			}
			return
		}

		var ev editor.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Warn("Dropping malformed message", "err", err)
			continue
		}
		if err := ev.Validate(); err != nil {
			log.Warn("Dropping message", "err", err)
			continue
		}
		drv.Dispatch(ev)
	}
}
