package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/collide/internal/core/render"
)

func newTestServer(t *testing.T, config Config) (*DebugServer, string) {
	t.Helper()
	s, err := NewDebugServer(config, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, "ws" + strings.TrimPrefix(ts.URL, "http") + config.Path
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sampleFrame(tick uint64) Frame {
	rec := render.NewRecorder()
	rec.Push()
	rec.SetHexColor("#ff0000")
	rec.DrawCircle(10, 20, 5)
	_ = rec.Stroke()
	rec.Pop()
	return Frame{Session: "s1", Tick: tick, Digest: 0xfeed, Commands: rec.Commands()}
}

func TestBroadcastReachesViewers(t *testing.T) {
	s, url := newTestServer(t, DefaultConfig())
	a := dial(t, url)
	b := dial(t, url)
	require.Eventually(t, func() bool { return s.Clients() == 2 }, time.Second, 5*time.Millisecond)

	want := sampleFrame(7)
	require.NoError(t, s.Broadcast(want))

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		var got Frame
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, want, got)
	}
	assert.Equal(t, uint64(1), s.Stats().Broadcast)
}

func TestLateViewerGetsLastFrame(t *testing.T) {
	s, url := newTestServer(t, DefaultConfig())
	require.NoError(t, s.Broadcast(sampleFrame(1)))
	require.NoError(t, s.Broadcast(sampleFrame(2)))

	conn := dial(t, url)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got Frame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(2), got.Tick)
}

func TestMaxClients(t *testing.T) {
	config := DefaultConfig()
	config.MaxClients = 1
	s, url := newTestServer(t, config)

	dial(t, url)
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 5*time.Millisecond)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMaxClientsUnderConcurrentDials(t *testing.T) {
	config := DefaultConfig()
	config.MaxClients = 3
	s, url := newTestServer(t, config)

	const dialers = 12
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []*websocket.Conn
		rejected int
	)
	for range dialers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if resp != nil && resp.StatusCode == http.StatusServiceUnavailable {
					rejected++
				}
				return
			}
			accepted = append(accepted, conn)
		}()
	}
	wg.Wait()
	t.Cleanup(func() {
		for _, conn := range accepted {
			_ = conn.Close()
		}
	})

	assert.Len(t, accepted, config.MaxClients)
	assert.Equal(t, dialers-config.MaxClients, rejected)
	assert.Equal(t, config.MaxClients, s.Clients())
}

func TestViewerDisconnect(t *testing.T) {
	s, url := newTestServer(t, DefaultConfig())
	conn := dial(t, url)
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return s.Clients() == 0 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, s.Broadcast(sampleFrame(3)))
}

func TestStartStop(t *testing.T) {
	s, err := NewDebugServer(DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Nil(t, s.Addr())

	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "127.0.0.1:0"))
	assert.ErrorIs(t, s.Start(ctx, "127.0.0.1:0"), ErrServerAlreadyRunning)

	conn := dial(t, "ws://"+s.Addr().String()+"/ws")
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
	assert.Zero(t, s.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)

	assert.ErrorIs(t, s.Stop(ctx), ErrServerNotRunning)
}

func TestViewerAfterStopIsRejected(t *testing.T) {
	s, err := NewDebugServer(DefaultConfig(), nil)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "127.0.0.1:0"))
	require.NoError(t, s.Stop(ctx))

	// the handler outlives Shutdown when mounted on another server
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Zero(t, s.Clients())

	// a restart accepts viewers again
	require.NoError(t, s.Start(ctx, "127.0.0.1:0"))
	dial(t, url)
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(ctx))
	assert.Zero(t, s.Clients())
}

func TestStartListenerFailure(t *testing.T) {
	s, err := NewDebugServer(DefaultConfig(), nil)
	require.NoError(t, err)

	err = s.Start(context.Background(), "127.0.0.1:99999")
	assert.ErrorIs(t, err, ErrListenerFailed)
	assert.ErrorIs(t, s.Stop(context.Background()), ErrServerNotRunning)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, mutate := range []func(*Config){
		func(c *Config) { c.Path = "ws" },
		func(c *Config) { c.MaxClients = 0 },
		func(c *Config) { c.WriteTimeout = 0 },
		func(c *Config) { c.SendBuffer = 0 },
	} {
		c := DefaultConfig()
		mutate(&c)
		_, err := NewDebugServer(c, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}
