// Package geom holds the small amount of 2D math the simulation needs. Every
// helper degrades to a safe value instead of producing NaN or Inf.
package geom

import "math"

// Vec is a 2D vector in arena units.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Len returns the euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite reports whether both components are finite.
func (v Vec) Finite() bool {
	return Finite(v.X) && Finite(v.Y)
}

// IsZero reports whether v is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v. ok is false when v has zero or
// non-finite length, in which case the zero vector is returned.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if !Finite(l) || l == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// Sanitize replaces non-finite components with zero.
func (v Vec) Sanitize() Vec {
	if !Finite(v.X) {
		v.X = 0
	}
	if !Finite(v.Y) {
		v.Y = 0
	}
	return v
}

// Dist returns the distance between a and b.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// AngleTo returns the heading from -> to in radians, or 0 when it is undefined.
func AngleTo(from, to Vec) float64 {
	d := to.Sub(from)
	if d.IsZero() {
		return 0
	}
	a := math.Atan2(d.Y, d.X)
	if !Finite(a) {
		return 0
	}
	return a
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec {
	if !Finite(angle) {
		angle = 0
	}
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Rotate rotates v by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Min Vec `json:"min"`
	Max Vec `json:"max"`
}

// NewRect returns the rectangle spanning (0,0) to (w,h).
func NewRect(w, h float64) Rect {
	return Rect{Max: Vec{X: w, Y: h}}
}

// Width of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r grown by margin on every side.
func (r Rect) Contains(p Vec, margin float64) bool {
	return p.X >= r.Min.X-margin && p.X <= r.Max.X+margin &&
		p.Y >= r.Min.Y-margin && p.Y <= r.Max.Y+margin
}

// Clamp keeps p inside r shrunk by inset.
func (r Rect) Clamp(p Vec, inset float64) Vec {
	p = p.Sanitize()
	p.X = math.Max(r.Min.X+inset, math.Min(r.Max.X-inset, p.X))
	p.Y = math.Max(r.Min.Y+inset, math.Min(r.Max.Y-inset, p.Y))
	return p
}
