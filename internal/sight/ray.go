// Package sight implements the reflection engine: tracing a budgeted
// sight-line through a mirrored room, unfolding the bounced path into a
// hallway of reflected room images, and interpolating between unfolding
// depths for animation. Every function is pure and synchronous; callers
// re-derive results whenever their inputs change.
package sight

import (
	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

// TerminationKind says how a traced sight-line ended. The two kinds are a
// closed set; consumers should handle both.
type TerminationKind int

const (
	// ExhaustedBudget means the ray spent its travel budget, or was stopped
	// by a solid wall, without reaching an item.
	ExhaustedBudget TerminationKind = iota
	// HitItem means the ray reached an item's surface.
	HitItem
)

// Termination records where a traced sight-line stopped and, for HitItem,
// which item it reached.
type Termination struct {
	Kind TerminationKind
	At   geometry.Point
	Item room.Item // meaningful only when Kind == HitItem
}

// Ray is a traced ("curled") sight-line: the start position, each mirror
// bounce in order, and the termination. Mirrors records the boundary edge
// hit at each bounce, expressed in the same frame as the bounce point; it
// always has the same length as Bounces.
type Ray struct {
	Start    geometry.Point
	Bounces  []geometry.Point
	Mirrors  []room.Edge
	Terminal Termination
}

// Points returns the full polyline from the start through every bounce to
// the terminal point.
func (r Ray) Points() []geometry.Point {
	pts := make([]geometry.Point, 0, len(r.Bounces)+2)
	pts = append(pts, r.Start)
	pts = append(pts, r.Bounces...)
	return append(pts, r.Terminal.At)
}

// Length returns the total travel distance of the polyline, including the
// final partial segment to the terminal point.
func (r Ray) Length() geometry.Meters {
	var total geometry.Meters
	pts := r.Points()
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].DistanceTo(pts[i])
	}
	return total
}

// End returns the terminal point of the ray.
func (r Ray) End() geometry.Point {
	return r.Terminal.At
}

// Item returns the item the ray terminated on, if any.
func (r Ray) Item() (room.Item, bool) {
	if r.Terminal.Kind != HitItem {
		return room.Item{}, false
	}
	return r.Terminal.Item, true
}

// Tail drops the first segment of the ray without changing frames: the
// result is the remainder of the path, starting at the first bounce point.
// It is the curled counterpart of Uncurl; the unfolding animation blends
// between the two. Returns false when the ray has no bounces.
func (r Ray) Tail() (Ray, bool) {
	if len(r.Bounces) == 0 {
		return Ray{}, false
	}
	return Ray{
		Start:    r.Bounces[0],
		Bounces:  append([]geometry.Point(nil), r.Bounces[1:]...),
		Mirrors:  append([]room.Edge(nil), r.Mirrors[1:]...),
		Terminal: r.Terminal,
	}, true
}
