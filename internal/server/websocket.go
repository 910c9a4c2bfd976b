package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zeusync/collide/internal/core/observability/log"
)

// viewer is one websocket client. send is never closed; done is closed once
// on disconnect.
type viewer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (s *DebugServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.isClosed() {
		http.Error(w, ErrServerNotRunning.Error(), http.StatusServiceUnavailable)
		return
	}
	// the slot is reserved before the upgrade and released on every failure path
	if s.clientCount.Add(1) > int64(s.config.MaxClients) {
		s.clientCount.Add(-1)
		s.logger.Warn("Maximum clients reached, rejecting viewer", log.String("remote_addr", r.RemoteAddr))
		http.Error(w, ErrMaxClientsReached.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.clientCount.Add(-1)
		s.logger.Debug("Websocket upgrade failed", log.Error(err))
		return
	}

	v := &viewer{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, s.config.SendBuffer),
		done: make(chan struct{}),
	}
	if last := s.last.Load(); last != nil {
		v.send <- *last
	}

	// Stop flips closed under mu before it waits on workers.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.clientCount.Add(-1)
		_ = conn.Close()
		return
	}
	s.clients.Store(v.id, v)
	s.workers.Add(2)
	s.mu.Unlock()

	s.logger.Info("Viewer connected",
		log.String("client_id", v.id),
		log.String("remote_addr", conn.RemoteAddr().String()),
		log.Int64("total_clients", s.clientCount.Load()))

	go s.writeLoop(v)
	go s.readLoop(v)
}

func (s *DebugServer) enqueue(v *viewer, msg []byte) {
	select {
	case <-v.done:
	case v.send <- msg:
	default:
		s.dropped.Add(1)
	}
}

// readLoop discards viewer input and notices when the viewer goes away.
func (s *DebugServer) readLoop(v *viewer) {
	defer s.workers.Done()
	defer s.disconnect(v)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *DebugServer) writeLoop(v *viewer) {
	defer s.workers.Done()
	for {
		select {
		case <-v.done:
			return
		case msg := <-v.send:
			_ = v.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.logger.Debug("Frame write failed", log.String("client_id", v.id), log.Error(err))
				s.disconnect(v)
				return
			}
		}
	}
}

func (s *DebugServer) disconnect(v *viewer) {
	v.once.Do(func() {
		close(v.done)
		_ = v.conn.Close()
		s.clients.Delete(v.id)
		total := s.clientCount.Add(-1)
		s.logger.Info("Viewer disconnected",
			log.String("client_id", v.id),
			log.Int64("total_clients", total))
	})
}
