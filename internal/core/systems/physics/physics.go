package physics

// Lightweight 2D math used by the collision engine and its callers, backed by
// mgl64. Every operation is pure: inputs are never mutated and results are
// new values.

import "github.com/go-gl/mathgl/mgl64"

// Vector2 is an immutable 2D value. It keeps named fields for callers and
// config files and converts to mgl64.Vec2 for arithmetic.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero is the zero vector.
var Zero = Vector2{}

// Vec returns a Vector2 from its components.
func Vec(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// FromVec2 converts an mgl64 vector.
func FromVec2(m mgl64.Vec2) Vector2 { return Vector2{X: m[0], Y: m[1]} }

// Vec2 returns v as an mgl64 vector.
func (v Vector2) Vec2() mgl64.Vec2 { return mgl64.Vec2{v.X, v.Y} }

func (v Vector2) Add(o Vector2) Vector2   { return FromVec2(v.Vec2().Add(o.Vec2())) }
func (v Vector2) Sub(o Vector2) Vector2   { return FromVec2(v.Vec2().Sub(o.Vec2())) }
func (v Vector2) Scale(s float64) Vector2 { return FromVec2(v.Vec2().Mul(s)) }
func (v Vector2) Dot(o Vector2) float64   { return v.Vec2().Dot(o.Vec2()) }

// Length returns the Euclidean norm.
func (v Vector2) Length() float64 { return v.Vec2().Len() }

// LengthSq returns the squared norm.
func (v Vector2) LengthSq() float64 { return v.Vec2().LenSqr() }

// Normalize returns the unit vector in the direction of v.
// A vector of exactly zero length normalizes to Zero, so callers that need a
// direction must check Length first.
func (v Vector2) Normalize() Vector2 {
	if v.IsZero() {
		return Zero
	}
	return FromVec2(v.Vec2().Normalize())
}

// Perp rotates v by 90 degrees: (x, y) -> (-y, x).
func (v Vector2) Perp() Vector2 { return Vector2{X: -v.Y, Y: v.X} }

// Limit clamps the length of v to max.
func (v Vector2) Limit(max float64) Vector2 {
	if v.Length() <= max {
		return v
	}
	return v.Normalize().Scale(max)
}

// Distance computes Euclidean distance between two points.
func (v Vector2) Distance(o Vector2) float64 { return o.Sub(v).Length() }

// DistanceSq computes the squared distance between two points.
func (v Vector2) DistanceSq(o Vector2) float64 { return o.Sub(v).LengthSq() }

// Clone returns a copy of v. Vector2 is a value type; Clone exists for
// callers that keep a stored vector and want the copy to be explicit.
func (v Vector2) Clone() Vector2 { return v }

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rotate rotates v counter-clockwise by rad radians.
func (v Vector2) Rotate(rad float64) Vector2 {
	return FromVec2(mgl64.Rotate2D(rad).Mul2x1(v.Vec2()))
}

// Radians converts degrees to radians as angle * pi / 180.
func Radians(deg float64) float64 { return mgl64.DegToRad(deg) }

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return Vec(x1, y1).Distance(Vec(x2, y2)) }
