package colliders

import (
	"math"

	"github.com/zeusync/collide/internal/core/collision"
	"github.com/zeusync/collide/internal/core/render"
	"github.com/zeusync/collide/internal/core/systems/physics"
)

// Boxed is the shape data the rectangle strategy reads. Origin is the
// unrotated top-left corner; the rectangle rotates about
// Origin + (width/2, height/2). Angle is in degrees.
type Boxed interface {
	Origin() physics.Vector2
	Size() (width, height float64)
	Angle() float64
}

// Rectangle is the shape strategy for KindRectangle.
type Rectangle struct{}

var (
	_ collision.ShapeStrategy = Rectangle{}
	_ collision.DebugDrawer   = Rectangle{}
)

type frame struct {
	center physics.Vector2
	hw, hh float64
	rad    float64
}

func frameOf(self collision.Collidable) frame {
	b := self.(Boxed)
	w, h := b.Size()
	return frame{
		center: b.Origin().Add(physics.Vec(w/2, h/2)),
		hw:     w / 2,
		hh:     h / 2,
		rad:    physics.Radians(b.Angle()),
	}
}

func (Rectangle) Accepts(c collision.Collidable) bool {
	_, ok := c.(Boxed)
	return ok
}

// Normals returns the rectangle's two local axes rotated into world space.
// The opponent plays no part.
func (Rectangle) Normals(self, _ collision.Collidable, _ collision.ShapeStrategy) []physics.Vector2 {
	rad := physics.Radians(self.(Boxed).Angle())
	return []physics.Vector2{
		physics.Vec(0, 1).Rotate(rad),
		physics.Vec(1, 0).Rotate(rad),
	}
}

// ClosestPoint clamps p to the rectangle in its local frame.
func (Rectangle) ClosestPoint(self collision.Collidable, p physics.Vector2) physics.Vector2 {
	f := frameOf(self)
	local := p.Sub(f.center).Rotate(-f.rad)
	clamped := physics.Vec(
		math.Max(-f.hw, math.Min(f.hw, local.X)),
		math.Max(-f.hh, math.Min(f.hh, local.Y)),
	)
	return f.center.Add(clamped.Rotate(f.rad))
}

func (Rectangle) Project(self collision.Collidable, axis physics.Vector2) collision.Interval {
	corners := Corners(self)
	iv := collision.Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, c := range corners {
		d := c.Dot(axis)
		iv.Min = math.Min(iv.Min, d)
		iv.Max = math.Max(iv.Max, d)
	}
	return iv
}

// Corners returns the four world-space corners of a Boxed collidable.
func Corners(self collision.Collidable) [4]physics.Vector2 {
	f := frameOf(self)
	local := [4]physics.Vector2{
		physics.Vec(-f.hw, -f.hh),
		physics.Vec(f.hw, -f.hh),
		physics.Vec(f.hw, f.hh),
		physics.Vec(-f.hw, f.hh),
	}
	var out [4]physics.Vector2
	for i, c := range local {
		out[i] = f.center.Add(c.Rotate(f.rad))
	}
	return out
}

func (Rectangle) DebugDraw(self collision.Collidable, s render.Surface) {
	f := frameOf(self)

	s.Push()
	s.SetHexColor(outlineColor)
	s.SetLineWidth(lineWidth)
	s.Translate(f.center.X, f.center.Y)
	s.Rotate(f.rad)
	s.DrawRectangle(-f.hw, -f.hh, 2*f.hw, 2*f.hh)
	_ = s.Stroke()
	s.Pop()

	drawCenter(s, f.center)
	drawVelocity(s, self, f.center)
}
