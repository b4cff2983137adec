package mines

import (
	"fmt"
	"math"
)

// Vec2 is a point or an extent in world space.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by f.
func (v Vec2) Scale(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Vec2 implements [fmt.Stringer]
func (v Vec2) String() string {
	return fmt.Sprintf("[%g, %g]", v.X, v.Y)
}

// Bounds2 is an axis-aligned rectangle anchored at its bottom-left corner.
type Bounds2 struct {
	Position Vec2
	Size     Vec2
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds2) Contains(p Vec2) bool {
	return b.Position.X <= p.X && p.X <= b.Position.X+b.Size.X &&
		b.Position.Y <= p.Y && p.Y <= b.Position.Y+b.Size.Y
}

// RelativePosition returns the offset of p from the anchor. ok is false when
// p lies outside of b.
func (b Bounds2) RelativePosition(p Vec2) (offset Vec2, ok bool) {
	if !b.Contains(p) {
		return Vec2{}, false
	}
	return p.Sub(b.Position), true
}

// Window holds the display metrics of the host window.
type Window struct {
	Width, Height float32
}

// WorldPosition converts a cursor position in window space, origin at the
// bottom-left corner, to world space where the origin is the window center.
func (w Window) WorldPosition(cursor Vec2) Vec2 {
	return cursor.Sub(Vec2{w.Width, w.Height}.Scale(0.5))
}

func floor32(f float32) int {
	return int(math.Floor(float64(f)))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
