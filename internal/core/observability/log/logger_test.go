package log

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(String("component", "resolver")).Warn("pair skipped",
		String("shape", "hexagon"),
		Int("index", 3),
		Float64("overlap", 1.5),
		Bool("ok", false),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "pair skipped", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "resolver", ctx["component"])
	assert.Equal(t, "hexagon", ctx["shape"])
	assert.Equal(t, int64(3), ctx["index"])
	assert.Equal(t, 1.5, ctx["overlap"])
	assert.Equal(t, false, ctx["ok"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := FromZap(zap.New(core))

	assert.False(t, l.Enabled(LevelDebug))
	assert.True(t, l.Enabled(LevelError))

	l.Log(LevelInfo, "dropped")
	l.Log(LevelError, "kept")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestNopAndOrNop(t *testing.T) {
	assert.False(t, Nop().Enabled(LevelError))
	assert.NotNil(t, OrNop(nil))
	l := Nop()
	assert.Same(t, l, OrNop(l))
}

func TestProvideWhileBuilding(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NotNil(t, Provide())
		}()
		go func() {
			defer wg.Done()
			New(LevelError)
		}()
	}
	wg.Wait()

	first := Provide()
	assert.NotNil(t, first.Zap())
	assert.Same(t, first, Provide())
}
