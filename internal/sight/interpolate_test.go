package sight

import (
	"errors"
	"testing"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

func TestInterpolateRayEndpoints(t *testing.T) {
	rm := squareRoom(t, true)
	ray := Trace(rm, geometry.Point{X: 5, Y: 5}, geometry.Vec{X: 1, Y: 0.41}, 30)

	// The tail of a ray and its uncurled form share a shape; they are what
	// the unfolding animation blends between.
	tail, _ := ray.Tail()
	un, _ := Uncurl(ray)

	at0, err := InterpolateRay(tail, un, 0)
	if err != nil {
		t.Fatalf("InterpolateRay failed: %v", err)
	}
	if !pointsEqual(at0.End(), tail.End()) {
		t.Errorf("t=0 end %v, want %v", at0.End(), tail.End())
	}
	for i := range at0.Bounces {
		if !pointsEqual(at0.Bounces[i], tail.Bounces[i]) {
			t.Errorf("t=0 bounce %d is %v, want %v", i, at0.Bounces[i], tail.Bounces[i])
		}
	}

	at1, err := InterpolateRay(tail, un, 1)
	if err != nil {
		t.Fatalf("InterpolateRay failed: %v", err)
	}
	if !pointsEqual(at1.End(), un.End()) {
		t.Errorf("t=1 end %v, want %v", at1.End(), un.End())
	}
	if at1.Terminal.Kind != un.Terminal.Kind {
		t.Errorf("t=1 termination kind %v, want %v", at1.Terminal.Kind, un.Terminal.Kind)
	}
}

func TestInterpolateRayMidpoint(t *testing.T) {
	a := Ray{
		Start:    geometry.Point{X: 0, Y: 0},
		Terminal: Termination{Kind: ExhaustedBudget, At: geometry.Point{X: 10, Y: 0}},
	}
	b := Ray{
		Start:    geometry.Point{X: 0, Y: 2},
		Terminal: Termination{Kind: ExhaustedBudget, At: geometry.Point{X: 10, Y: 2}},
	}
	mid, err := InterpolateRay(a, b, 0.5)
	if err != nil {
		t.Fatalf("InterpolateRay failed: %v", err)
	}
	if !pointsEqual(mid.Start, (geometry.Point{X: 0, Y: 1})) {
		t.Errorf("Midpoint start %v, want (0,1)", mid.Start)
	}
	if !pointsEqual(mid.End(), (geometry.Point{X: 10, Y: 1})) {
		t.Errorf("Midpoint end %v, want (10,1)", mid.End())
	}
}

func TestInterpolateRayShapeMismatch(t *testing.T) {
	rm := squareRoom(t, true)
	ray := Trace(rm, geometry.Point{X: 5, Y: 5}, east, 12)
	un, _ := Uncurl(ray)

	// One bounce versus zero bounces cannot be blended.
	if _, err := InterpolateRay(ray, un, 0.5); !errors.Is(err, room.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}
