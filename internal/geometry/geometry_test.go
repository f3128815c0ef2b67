package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func pointsEqual(a, b Point) bool {
	return closeEnough(a.X, b.X) && closeEnough(a.Y, b.Y)
}

func TestVecNormalize(t *testing.T) {
	v := Vec{X: 3, Y: 4}.Normalize()
	if !closeEnough(v.Length(), 1) {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if !closeEnough(v.X, 0.6) || !closeEnough(v.Y, 0.8) {
		t.Errorf("Expected (0.6, 0.8), got %v", v)
	}

	zero := Vec{}.Normalize()
	if zero != (Vec{}) {
		t.Errorf("Zero vector should normalize to itself, got %v", zero)
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3} {
		v := FromAngle(angle)
		if !closeEnough(v.Length(), 1) {
			t.Errorf("FromAngle(%v) is not unit length: %v", angle, v.Length())
		}
		if !closeEnough(v.Angle(), angle) {
			t.Errorf("Angle round trip for %v gave %v", angle, v.Angle())
		}
	}
}

func TestRaySegmentBasic(t *testing.T) {
	seg := Segment{A: Point{X: 5, Y: -1}, B: Point{X: 5, Y: 1}}
	hit, ok := RaySegment(Point{}, Vec{X: 1, Y: 0}, seg, 0)
	if !ok {
		t.Fatal("Expected an intersection")
	}
	if !closeEnough(hit.Dist, 5) {
		t.Errorf("Expected distance 5, got %v", hit.Dist)
	}
	if !pointsEqual(hit.Point, Point{X: 5, Y: 0}) {
		t.Errorf("Expected hit at (5,0), got %v", hit.Point)
	}
}

func TestRaySegmentParallel(t *testing.T) {
	seg := Segment{A: Point{X: 0, Y: 1}, B: Point{X: 10, Y: 1}}
	if _, ok := RaySegment(Point{}, Vec{X: 1, Y: 0}, seg, 0); ok {
		t.Error("Parallel ray should not intersect")
	}
}

func TestRaySegmentBehindAndBeside(t *testing.T) {
	seg := Segment{A: Point{X: -5, Y: -1}, B: Point{X: -5, Y: 1}}
	if _, ok := RaySegment(Point{}, Vec{X: 1, Y: 0}, seg, 0); ok {
		t.Error("Segment behind the ray should not intersect")
	}

	beside := Segment{A: Point{X: 5, Y: 1}, B: Point{X: 5, Y: 3}}
	if _, ok := RaySegment(Point{}, Vec{X: 1, Y: 0}, beside, 0); ok {
		t.Error("Ray passing beside the segment should not intersect")
	}
}

func TestRaySegmentMinDist(t *testing.T) {
	// A ray starting exactly on a segment must not re-hit it when a minimum
	// distance is supplied.
	seg := Segment{A: Point{X: 0, Y: -1}, B: Point{X: 0, Y: 1}}
	if _, ok := RaySegment(Point{}, Vec{X: 1, Y: 0}, seg, 1e-7); ok {
		t.Error("Hit below minDist should be ignored")
	}
}

func TestRayCircle(t *testing.T) {
	hit, ok := RayCircle(Point{}, Vec{X: 1, Y: 0}, Point{X: 5, Y: 0}, 1)
	if !ok {
		t.Fatal("Expected an intersection")
	}
	if !closeEnough(hit.Dist, 4) {
		t.Errorf("Expected entry at distance 4, got %v", hit.Dist)
	}
	if !pointsEqual(hit.Point, Point{X: 4, Y: 0}) {
		t.Errorf("Expected entry point (4,0), got %v", hit.Point)
	}
}

func TestRayCircleMiss(t *testing.T) {
	if _, ok := RayCircle(Point{}, Vec{X: 1, Y: 0}, Point{X: 5, Y: 3}, 1); ok {
		t.Error("Ray missing the circle should not intersect")
	}
	if _, ok := RayCircle(Point{}, Vec{X: -1, Y: 0}, Point{X: 5, Y: 0}, 1); ok {
		t.Error("Circle behind the ray should not intersect")
	}
}

func TestRayCircleFromInside(t *testing.T) {
	if _, ok := RayCircle(Point{X: 5, Y: 0}, Vec{X: 1, Y: 0}, Point{X: 5, Y: 0}, 1); ok {
		t.Error("Ray starting inside the circle should not intersect")
	}
}

func TestReflectPoint(t *testing.T) {
	// Vertical line x=5.
	line := Segment{A: Point{X: 5, Y: 0}, B: Point{X: 5, Y: 10}}
	got := line.ReflectPoint(Point{X: 2, Y: 3})
	if !pointsEqual(got, Point{X: 8, Y: 3}) {
		t.Errorf("Expected (8,3), got %v", got)
	}

	// A point on the line is its own reflection.
	on := line.ReflectPoint(Point{X: 5, Y: 7})
	if !pointsEqual(on, Point{X: 5, Y: 7}) {
		t.Errorf("Point on the line moved to %v", on)
	}

	// Reflecting twice is the identity.
	p := Point{X: 1.25, Y: -4.5}
	back := line.ReflectPoint(line.ReflectPoint(p))
	if !pointsEqual(back, p) {
		t.Errorf("Double reflection moved %v to %v", p, back)
	}
}

func TestReflectVecPerpendicular(t *testing.T) {
	// A direction perpendicular to the mirror reflects to its exact negation.
	line := Segment{A: Point{X: 5, Y: 0}, B: Point{X: 5, Y: 10}}
	got := line.ReflectVec(Vec{X: 1, Y: 0})
	if !closeEnough(got.X, -1) || !closeEnough(got.Y, 0) {
		t.Errorf("Expected (-1,0), got %v", got)
	}
}

func TestReflectVecGrazing(t *testing.T) {
	// A direction along the mirror is unchanged.
	line := Segment{A: Point{X: 5, Y: 0}, B: Point{X: 5, Y: 10}}
	got := line.ReflectVec(Vec{X: 0, Y: 1})
	if !closeEnough(got.X, 0) || !closeEnough(got.Y, 1) {
		t.Errorf("Expected (0,1), got %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 5, Y: -2}
	if got := LerpPoint(a, b, 0); !pointsEqual(got, a) {
		t.Errorf("t=0 should yield a, got %v", got)
	}
	if got := LerpPoint(a, b, 1); !pointsEqual(got, b) {
		t.Errorf("t=1 should yield b, got %v", got)
	}
	if got := LerpPoint(a, b, 0.5); !pointsEqual(got, Point{X: 3, Y: 0}) {
		t.Errorf("t=0.5 should yield midpoint, got %v", got)
	}
}

func TestLerpAngleShorterArc(t *testing.T) {
	a := 350 * math.Pi / 180
	b := 10 * math.Pi / 180
	mid := LerpAngle(a, b, 0.5)
	// Normalize to [0, 2pi) for comparison; the blend must pass through 0.
	mid = math.Mod(mid+2*math.Pi, 2*math.Pi)
	if !closeEnough(mid, 0) {
		t.Errorf("Expected blend through 0, got %v", mid)
	}
}

func TestClose(t *testing.T) {
	// The shared tolerance is twice the standard item radius.
	tol := 2 * float64(StandardItemRadius)
	if !Close(1.0, 1.0+tol) {
		t.Error("Difference exactly at tolerance should be close")
	}
	if Close(1.0, 1.0+tol+1e-6) {
		t.Error("Difference beyond tolerance should not be close")
	}
	if !Meters(3).Close(Meters(3.1)) {
		t.Error("Lengths within tolerance should be close")
	}
}

func TestSegmentLengthAndMidpoint(t *testing.T) {
	s := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 3, Y: 4}}
	if !closeEnough(float64(s.Length()), 5) {
		t.Errorf("Expected length 5, got %v", s.Length())
	}
	if !pointsEqual(s.Midpoint(), Point{X: 1.5, Y: 2}) {
		t.Errorf("Expected midpoint (1.5,2), got %v", s.Midpoint())
	}
}
