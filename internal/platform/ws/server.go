// Package ws serves board sessions over WebSocket with a JSON protocol.
// Each connection owns one game; its messages are handled in order and
// every request gets exactly one reply.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/storage"
)

// Config contains the connection timing and defaults of a Server.
type Config struct {
	// ReadWait is how long a connection may stay silent, pongs included.
	ReadWait time.Duration
	// WriteWait is how long a single write may take.
	WriteWait time.Duration
	// PingPeriod is how often pings are sent. Must be less than ReadWait.
	PingPeriod time.Duration
	// DefaultVariant is used by "new" messages without a variant.
	DefaultVariant string
	// ReadLimit caps the size of an incoming message in bytes.
	ReadLimit int64
}

// DefaultConfig returns timings suitable for browsers on a LAN or the internet.
func DefaultConfig() Config {
	return Config{
		ReadWait:       60 * time.Second,
		WriteWait:      10 * time.Second,
		PingPeriod:     50 * time.Second,
		DefaultVariant: "2048",
		ReadLimit:      1024,
	}
}

func (cfg Config) validate() error {
	switch {
	case cfg.ReadWait <= 0:
		return fmt.Errorf("positive read wait period required")
	case cfg.WriteWait <= 0:
		return fmt.Errorf("positive write wait period required")
	case cfg.PingPeriod <= 0:
		return fmt.Errorf("positive ping period required")
	case cfg.PingPeriod >= cfg.ReadWait:
		return fmt.Errorf("ping period should be less than read wait")
	case cfg.ReadLimit <= 0:
		return fmt.Errorf("positive read limit required")
	case !registry.Exists(cfg.DefaultVariant):
		return fmt.Errorf("unknown default variant %q", cfg.DefaultVariant)
	}
	return nil
}

// Server upgrades HTTP requests to WebSocket board sessions.
type Server struct {
	cfg      Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server. store may be nil to run without result persistence.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ws: invalid config: %w", err)
	}
	return &Server{
		cfg:    cfg,
		store:  store,
		logger: logger.WithPrefix("ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}, nil
}

// Handler returns the HTTP routes: /ws for sessions and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ServeHTTP upgrades the request and runs the session until the client leaves.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id[:8])
	sess := &session{
		id:             id,
		defaultVariant: s.cfg.DefaultVariant,
		store:          s.store,
		log:            logger,
	}

	logger.Info("session started", "remote", conn.RemoteAddr().String())
	start := time.Now()
	s.run(r.Context(), conn, sess)
	sess.finish()
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// run reads requests and writes replies until the connection fails or ctx ends.
func (s *Server) run(ctx context.Context, conn *websocket.Conn, sess *session) {
	defer conn.Close()

	conn.SetReadLimit(s.cfg.ReadLimit)
	//nolint:errcheck // A failed deadline surfaces on the next read
	conn.SetReadDeadline(time.Now().Add(s.cfg.ReadWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.cfg.ReadWait))
	})

	done := make(chan struct{})
	defer close(done)
	go s.ping(ctx, conn, done)

	for {
		var msg ClientMessage
		err := conn.ReadJSON(&msg)
		var reply ServerMessage
		switch {
		case err == nil:
			reply = sess.handle(msg)
		case isDecodeError(err):
			reply = errorMessage(fmt.Errorf("malformed message: %w", err))
		default:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				sess.log.Warn("connection closed", "error", err)
			}
			return
		}

		//nolint:errcheck // A failed deadline surfaces on the write
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadWait))
		//nolint:errcheck // A failed deadline surfaces on the write
		conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			sess.log.Warn("write failed", "error", err)
			return
		}
	}
}

// ping keeps the connection alive. WriteControl is safe alongside the read loop's writes.
func (s *Server) ping(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			data := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			//nolint:errcheck // Best-effort close notice
			conn.WriteControl(websocket.CloseMessage, data, time.Now().Add(s.cfg.WriteWait))
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteWait)); err != nil {
				return
			}
		}
	}
}

// isDecodeError reports whether err came from JSON decoding of an otherwise intact frame.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting WebSocket server", "address", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
