// Package server streams debug frames of a running world to websocket
// viewers.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/pkg/generic"
)

// Frame is one tick's worth of debug drawing.
type Frame struct {
	Session  string           `json:"session,omitempty"`
	Tick     uint64           `json:"tick"`
	Digest   uint64           `json:"digest"`
	Commands []render.Command `json:"commands"`
}

// Config holds debug server configuration
type Config struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	Path       string `json:"path" yaml:"path"`
	MaxClients int    `json:"max_clients" yaml:"max_clients"`

	// WriteTimeout bounds a single frame write to a viewer.
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	// SendBuffer is the number of frames queued per viewer. Frames for a
	// viewer with a full queue are dropped.
	SendBuffer int `json:"send_buffer" yaml:"send_buffer"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:   "127.0.0.1:8080",
		Path:         "/ws",
		MaxClients:   64,
		WriteTimeout: 2 * time.Second,
		SendBuffer:   16,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Path == "" || c.Path[0] != '/':
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidConfig, c.Path)
	case c.MaxClients <= 0:
		return fmt.Errorf("%w: max_clients must be positive", ErrInvalidConfig)
	case c.WriteTimeout <= 0:
		return fmt.Errorf("%w: write_timeout must be positive", ErrInvalidConfig)
	case c.SendBuffer <= 0:
		return fmt.Errorf("%w: send_buffer must be positive", ErrInvalidConfig)
	}
	return nil
}

// Stats counts broadcast activity.
type Stats struct {
	Clients   int64
	Broadcast uint64
	Dropped   uint64
}

// DebugServer fans frames out to every connected viewer. Broadcast never
// blocks on a viewer.
type DebugServer struct {
	config   Config
	logger   log.Log
	upgrader websocket.Upgrader
	buffers  *generic.Pool[*bytes.Buffer]

	httpServer *http.Server
	listener   net.Listener
	closed     bool
	mu         sync.Mutex

	clients     sync.Map // map[string]*viewer
	clientCount atomic.Int64
	last        atomic.Pointer[[]byte]

	broadcast atomic.Uint64
	dropped   atomic.Uint64

	running atomic.Bool
	workers sync.WaitGroup
}

func NewDebugServer(config Config, logger log.Log) (*DebugServer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &DebugServer{
		config: config,
		logger: log.OrNop(logger).Named("debug-server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		buffers: generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset),
	}, nil
}

// Handler serves the websocket endpoint. It can be mounted without Start.
func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleWebSocket)
	return mux
}

// Start listens on addr, or on the configured address when addr is empty,
// and serves until Stop.
func (s *DebugServer) Start(_ context.Context, addr string) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}
	if addr == "" {
		addr = s.config.ListenAddr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.running.Store(false)
		s.logger.Error("Failed to create listener", log.String("addr", addr), log.Error(err))
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.closed = false
	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	httpServer := s.httpServer
	s.mu.Unlock()

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Debug server stopped unexpectedly", log.Error(err))
		}
	}()

	s.logger.Info("Debug server listening", log.String("addr", listener.Addr().String()), log.String("path", s.config.Path))
	return nil
}

func (s *DebugServer) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Addr returns the listening address, or nil before Start.
func (s *DebugServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop shuts the HTTP server down, disconnects every viewer and waits for
// their goroutines to exit.
func (s *DebugServer) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrServerNotRunning
	}
	s.logger.Info("Stopping debug server")

	s.mu.Lock()
	s.closed = true
	httpServer := s.httpServer
	s.mu.Unlock()

	err := httpServer.Shutdown(ctx)
	s.clients.Range(func(_, value any) bool {
		s.disconnect(value.(*viewer))
		return true
	})

	done := make(chan struct{})
	go func() {
		s.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}

	s.logger.Info("Debug server stopped")
	return err
}

// Broadcast encodes frame once and queues it for every viewer. New viewers
// receive the latest frame on connect.
func (s *DebugServer) Broadcast(frame Frame) error {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(frame); err != nil {
		return fmt.Errorf("encode frame %d: %w", frame.Tick, err)
	}
	msg := bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	s.last.Store(&msg)
	s.broadcast.Add(1)

	s.clients.Range(func(_, value any) bool {
		s.enqueue(value.(*viewer), msg)
		return true
	})
	return nil
}

func (s *DebugServer) Clients() int {
	return int(s.clientCount.Load())
}

func (s *DebugServer) Stats() Stats {
	return Stats{
		Clients:   s.clientCount.Load(),
		Broadcast: s.broadcast.Load(),
		Dropped:   s.dropped.Load(),
	}
}
