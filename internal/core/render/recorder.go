package render

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand is returned by Replay for an unknown op or an op with
// too few arguments.
var ErrMalformedCommand = errors.New("malformed draw command")

// Op names a recorded drawing call.
type Op string

const (
	OpPush      Op = "push"
	OpPop       Op = "pop"
	OpTranslate Op = "translate"
	OpRotate    Op = "rotate"
	OpLineWidth Op = "lineWidth"
	OpColor     Op = "color"
	OpMoveTo    Op = "moveTo"
	OpLineTo    Op = "lineTo"
	OpCircle    Op = "circle"
	OpRect      Op = "rect"
	OpStroke    Op = "stroke"
	OpFill      Op = "fill"
)

// Command is one recorded call with its numeric arguments.
type Command struct {
	Op    Op        `json:"op"`
	Args  []float64 `json:"args,omitempty"`
	Color string    `json:"color,omitempty"`
}

// Recorder is a Surface that keeps the calls made against it, for replay on
// a remote viewer or inspection in tests.
type Recorder struct {
	commands []Command
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op, args ...float64) {
	r.commands = append(r.commands, Command{Op: op, Args: args})
}

func (r *Recorder) Push()                      { r.add(OpPush) }
func (r *Recorder) Pop()                       { r.add(OpPop) }
func (r *Recorder) Translate(x, y float64)     { r.add(OpTranslate, x, y) }
func (r *Recorder) Rotate(angle float64)       { r.add(OpRotate, angle) }
func (r *Recorder) SetLineWidth(width float64) { r.add(OpLineWidth, width) }
func (r *Recorder) MoveTo(x, y float64)        { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)        { r.add(OpLineTo, x, y) }
func (r *Recorder) DrawCircle(x, y, rad float64) {
	r.add(OpCircle, x, y, rad)
}
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.add(OpRect, x, y, w, h)
}

func (r *Recorder) SetHexColor(hex string) {
	r.commands = append(r.commands, Command{Op: OpColor, Color: hex})
}

func (r *Recorder) Stroke() error {
	r.add(OpStroke)
	return nil
}

func (r *Recorder) Fill() error {
	r.add(OpFill)
	return nil
}

// Commands returns the recorded calls. The slice is owned by the recorder
// until Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops the recorded calls and hands them to the caller.
func (r *Recorder) Reset() []Command {
	out := r.commands
	r.commands = nil
	return out
}

var arity = map[Op]int{
	OpPush:      0,
	OpPop:       0,
	OpTranslate: 2,
	OpRotate:    1,
	OpLineWidth: 1,
	OpColor:     0,
	OpMoveTo:    2,
	OpLineTo:    2,
	OpCircle:    3,
	OpRect:      4,
	OpStroke:    0,
	OpFill:      0,
}

// Validate checks that c names a known op and carries its arguments.
func (c Command) Validate() error {
	n, ok := arity[c.Op]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrMalformedCommand, c.Op)
	}
	if len(c.Args) < n {
		return fmt.Errorf("%w: %s takes %d args, got %d", ErrMalformedCommand, c.Op, n, len(c.Args))
	}
	return nil
}

// Replay issues the given commands against another surface. Every command is
// validated first, so a malformed list draws nothing.
func Replay(dst Surface, commands []Command) error {
	for i, c := range commands {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	for _, c := range commands {
		switch c.Op {
		case OpPush:
			dst.Push()
		case OpPop:
			dst.Pop()
		case OpTranslate:
			dst.Translate(c.Args[0], c.Args[1])
		case OpRotate:
			dst.Rotate(c.Args[0])
		case OpLineWidth:
			dst.SetLineWidth(c.Args[0])
		case OpColor:
			dst.SetHexColor(c.Color)
		case OpMoveTo:
			dst.MoveTo(c.Args[0], c.Args[1])
		case OpLineTo:
			dst.LineTo(c.Args[0], c.Args[1])
		case OpCircle:
			dst.DrawCircle(c.Args[0], c.Args[1], c.Args[2])
		case OpRect:
			dst.DrawRectangle(c.Args[0], c.Args[1], c.Args[2], c.Args[3])
		case OpStroke:
			if err := dst.Stroke(); err != nil {
				return err
			}
		case OpFill:
			if err := dst.Fill(); err != nil {
				return err
			}
		}
	}
	return nil
}
