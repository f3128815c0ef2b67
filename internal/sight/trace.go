package sight

import (
	"math"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

const (
	// maxBounces caps the trace loop. A room that produces more reflections
	// than this is degenerate, and the trace gives up where it stands
	// instead of looping forever.
	maxBounces = 64

	// castEpsilon is the minimum parametric distance for wall hits, so a
	// ray leaving a bounce point does not immediately re-hit the edge it
	// just bounced off.
	castEpsilon = 1e-7
)

// Trace casts a sight-line from start along dir and follows it through
// mirror reflections until it reaches an item, is stopped by a solid wall,
// or spends its whole travel budget. The function is pure: identical inputs
// always produce the identical Ray.
func Trace(rm room.Room, start geometry.Point, dir geometry.Vec, budget geometry.Meters) Ray {
	pos := start
	d := dir.Normalize()
	remaining := float64(budget)
	ray := Ray{Start: start}

	if d == (geometry.Vec{}) || remaining <= 0 {
		ray.Terminal = Termination{Kind: ExhaustedBudget, At: pos}
		return ray
	}

	for {
		edgeHit, edge, edgeOK := nearestEdge(rm, pos, d)
		itemHit, item, itemOK := nearestItem(rm, pos, d)

		// Items win ties: an object sitting against a wall is seen, not the
		// wall behind it.
		if itemOK && itemHit.Dist <= remaining &&
			(!edgeOK || itemHit.Dist < edgeHit.Dist || geometry.Close(itemHit.Dist, edgeHit.Dist)) {
			ray.Terminal = Termination{Kind: HitItem, At: itemHit.Point, Item: item}
			return ray
		}

		// A closed boundary is always ahead of an interior ray. Losing it
		// means a degenerate corner hit sent us outside; stop where we
		// stand instead of traveling beyond the room.
		if !edgeOK {
			ray.Terminal = Termination{Kind: ExhaustedBudget, At: pos}
			return ray
		}

		if edgeHit.Dist > remaining {
			ray.Terminal = Termination{Kind: ExhaustedBudget, At: pos.Add(d.Scale(remaining))}
			return ray
		}

		remaining -= edgeHit.Dist
		if !edge.Mirror {
			ray.Terminal = Termination{Kind: ExhaustedBudget, At: edgeHit.Point}
			return ray
		}

		if len(ray.Bounces) >= maxBounces {
			ray.Terminal = Termination{Kind: ExhaustedBudget, At: pos}
			return ray
		}

		ray.Bounces = append(ray.Bounces, edgeHit.Point)
		ray.Mirrors = append(ray.Mirrors, edge)
		d = edge.ReflectVec(d)
		pos = edgeHit.Point
	}
}

func nearestEdge(rm room.Room, pos geometry.Point, d geometry.Vec) (geometry.RayHit, room.Edge, bool) {
	best := geometry.RayHit{Dist: math.Inf(1)}
	var bestEdge room.Edge
	found := false
	for _, e := range rm.Edges() {
		if hit, ok := geometry.RaySegment(pos, d, e.Segment, castEpsilon); ok && hit.Dist < best.Dist {
			best, bestEdge, found = hit, e, true
		}
	}
	return best, bestEdge, found
}

func nearestItem(rm room.Room, pos geometry.Point, d geometry.Vec) (geometry.RayHit, room.Item, bool) {
	best := geometry.RayHit{Dist: math.Inf(1)}
	var bestItem room.Item
	found := false
	for _, it := range rm.Items() {
		if hit, ok := geometry.RayCircle(pos, d, it.Pos, float64(it.Radius)); ok && hit.Dist < best.Dist {
			best, bestItem, found = hit, it, true
		}
	}
	return best, bestItem, found
}
