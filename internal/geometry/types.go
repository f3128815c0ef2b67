// Package geometry provides the 2D primitives the sight engine is built on:
// points, displacement vectors, lengths with explicit units, segments, and
// the intersection/reflection/interpolation operations over them. Everything
// in this package is pure; no function mutates its inputs.
package geometry

import "math"

// Meters is a length in scene units. Keeping lengths as a distinct type
// prevents meter values from being mixed with pixels or radians by accident.
type Meters float64

// StandardItemRadius is the default radius of a point-like item in a room.
const StandardItemRadius Meters = 0.1

// closeTolerance is the single closeness tolerance used for every
// overlap/closeness judgement in the engine: twice the standard item radius.
// Sharing one value keeps visual and logical hit-testing consistent.
const closeTolerance = 2 * float64(StandardItemRadius)

// Close reports whether two scalar distances are within the shared tolerance.
func Close(a, b float64) bool {
	return math.Abs(a-b) <= closeTolerance
}

// Close reports whether two lengths are within the shared tolerance.
func (m Meters) Close(o Meters) bool {
	return Close(float64(m), float64(o))
}

// Point is a 2D position in scene coordinates (meters).
type Point struct {
	X, Y float64
}

// Vec is a 2D displacement. A direction is a unit Vec, obtained from
// Normalize or FromAngle.
type Vec struct {
	X, Y float64
}

// Add returns the point shifted by a displacement.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) Meters {
	return Meters(p.Sub(q).Length())
}

// Add returns the sum of two displacements.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the displacement scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two displacements.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z component of the 3D one).
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the displacement.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit displacement in the same direction. The zero
// vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Perp returns the displacement rotated a quarter turn counter-clockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Angle returns the direction of the displacement in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit displacement pointing along the given angle.
func FromAngle(rad float64) Vec {
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Segment is an ordered pair of points.
type Segment struct {
	A, B Point
}

// Vec returns the displacement from the segment's start to its end.
func (s Segment) Vec() Vec {
	return s.B.Sub(s.A)
}

// Length returns the length of the segment.
func (s Segment) Length() Meters {
	return Meters(s.Vec().Length())
}

// Midpoint returns the center of the segment.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Normal returns the unit normal of the segment's supporting line. A
// zero-length segment has a zero normal, which makes the reflection
// operations below degrade to the identity instead of failing.
func (s Segment) Normal() Vec {
	return s.Vec().Perp().Normalize()
}

// ReflectPoint mirrors p across the segment's supporting line.
func (s Segment) ReflectPoint(p Point) Point {
	n := s.Normal()
	d := p.Sub(s.A).Dot(n)
	return p.Add(n.Scale(-2 * d))
}

// ReflectVec mirrors a displacement across the segment's supporting line.
// Applied to an incoming ray direction this yields the bounced direction.
func (s Segment) ReflectVec(v Vec) Vec {
	n := s.Normal()
	return v.Add(n.Scale(-2 * v.Dot(n)))
}
