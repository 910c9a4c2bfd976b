package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsCallOrder(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.SetHexColor("#ff0000")
	r.DrawCircle(1, 2, 3)
	require.NoError(t, r.Stroke())
	r.Pop()

	cmds := r.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, OpPush, cmds[0].Op)
	assert.Equal(t, "#ff0000", cmds[1].Color)
	assert.Equal(t, []float64{1, 2, 3}, cmds[2].Args)
	assert.Equal(t, 1, r.Count(OpStroke))

	drained := r.Reset()
	assert.Len(t, drained, 5)
	assert.Empty(t, r.Commands())
}

func TestReplayOntoRecorder(t *testing.T) {
	src := NewRecorder()
	src.Push()
	src.Translate(10, 20)
	src.Rotate(0.5)
	src.SetLineWidth(2)
	src.DrawRectangle(-5, -5, 10, 10)
	_ = src.Stroke()
	src.Pop()
	src.MoveTo(0, 0)
	src.LineTo(1, 1)
	_ = src.Fill()

	dst := NewRecorder()
	require.NoError(t, Replay(dst, src.Commands()))
	assert.Equal(t, src.Commands(), dst.Commands())
}

func TestCanvasAcceptsReplay(t *testing.T) {
	dc := NewCanvas(64, 64)
	rec := NewRecorder()
	rec.SetHexColor("#00ff00")
	rec.DrawCircle(32, 32, 10)
	_ = rec.Fill()

	require.NoError(t, Replay(dc, rec.Commands()))
	assert.Equal(t, 64, dc.Width())
}

func TestReplayRejectsMalformedCommands(t *testing.T) {
	tests := []struct {
		name     string
		commands []Command
	}{
		{"short rect", []Command{{Op: OpPush}, {Op: OpRect, Args: []float64{1, 2}}}},
		{"bare translate", []Command{{Op: OpTranslate}}},
		{"unknown op", []Command{{Op: "bezier", Args: []float64{1, 2, 3}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewRecorder()
			err := Replay(dst, tt.commands)
			assert.ErrorIs(t, err, ErrMalformedCommand)
			assert.Empty(t, dst.Commands())
		})
	}
}

func TestReplayDecodedFrame(t *testing.T) {
	var commands []Command
	require.NoError(t, json.Unmarshal([]byte(`[{"op":"circle","args":[1,2]}]`), &commands))

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, Replay(NewRecorder(), commands), ErrMalformedCommand)
	})
}
