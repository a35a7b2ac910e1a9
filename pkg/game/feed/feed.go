// Package feed streams a session's events to websocket observers as JSON.
package feed

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/events"
)

const (
	writeTimeout = 5 * time.Second
	queueSize    = 128
)

// Handler upgrades requests to websockets and forwards every event published
// on the bus until the client goes away or the bus closes.
type Handler struct {
	bus       *events.Bus
	sessionID string
	origins   []string
	log       *logrus.Entry
}

// NewHandler returns a handler bound to bus. Origins lists the allowed
// cross-origin hosts; an empty list only admits same-origin clients.
func NewHandler(bus *events.Bus, sessionID string, origins ...string) *Handler {
	return &Handler{
		bus:       bus,
		sessionID: sessionID,
		origins:   origins,
		log:       logger.WithComponent("feed"),
	}
}

// Hello is the first message a client receives.
type Hello struct {
	Type    string `json:"type"`
	Session string `json:"session"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Subscribe first so nothing published during the handshake is lost.
	ch, cancel := h.bus.Subscribe(queueSize)
	defer cancel()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.origins})
	if err != nil {
		h.log.WithError(err).Warn("failed to accept")
		return
	}
	defer conn.CloseNow()

	ctx := conn.CloseRead(r.Context())
	log := h.log.WithField("remote", r.RemoteAddr)
	log.Debug("observer connected")

	if err := write(ctx, conn, Hello{Type: "hello", Session: h.sessionID}); err != nil {
		log.WithError(err).Debug("hello failed")
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug("observer left")
			return
		case ev, ok := <-ch:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "session closed")
				return
			}
			if err := write(ctx, conn, ev); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.WithError(err).Debug("write failed")
				}
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, v any) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, v)
}

// Server serves the feed on a single path.
type Server struct {
	srv *http.Server
	log *logrus.Entry
}

// NewServer returns a server listening on addr with the handler mounted at
// /events.
func NewServer(addr string, h *Handler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/events", h)
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: logger.WithComponent("feed"),
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.srv.Addr).Info("event feed listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
