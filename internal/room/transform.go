package room

import (
	"errors"
	"fmt"

	"github.com/glasshouse/mirrorsight/internal/geometry"
)

// ErrShapeMismatch is returned when two values cannot be interpolated
// because their structure differs.
var ErrShapeMismatch = errors.New("shape mismatch")

// ReflectAcross returns the mirror image of the room across the supporting
// line of the given edge. Every boundary vertex and item position is
// reflected; mirror/solid tags are preserved. The winding of the boundary
// flips, which is expected for a mirror image.
func (r Room) ReflectAcross(e Edge) Room {
	edges := make([]Edge, len(r.edges))
	for i, re := range r.edges {
		edges[i] = Edge{
			Segment: geometry.Segment{A: e.ReflectPoint(re.A), B: e.ReflectPoint(re.B)},
			Mirror:  re.Mirror,
		}
	}
	items := make([]Item, len(r.items))
	for i, it := range r.items {
		it.Pos = e.ReflectPoint(it.Pos)
		items[i] = it
	}
	return Room{edges: edges, items: items, player: r.player, target: r.target}
}

// Interpolate blends two structurally identical rooms: every corresponding
// vertex and item position is lerped by t. t=0 yields the receiver, t=1
// yields other. The caller guarantees matching edge and item counts;
// a mismatch is reported as an error wrapping ErrShapeMismatch.
func (r Room) Interpolate(other Room, t float64) (Room, error) {
	if len(r.edges) != len(other.edges) || len(r.items) != len(other.items) {
		return Room{}, fmt.Errorf("interpolating rooms with %d/%d edges and %d/%d items: %w",
			len(r.edges), len(other.edges), len(r.items), len(other.items), ErrShapeMismatch)
	}
	edges := make([]Edge, len(r.edges))
	for i := range r.edges {
		edges[i] = Edge{
			Segment: geometry.Segment{
				A: geometry.LerpPoint(r.edges[i].A, other.edges[i].A, t),
				B: geometry.LerpPoint(r.edges[i].B, other.edges[i].B, t),
			},
			Mirror: r.edges[i].Mirror,
		}
	}
	items := make([]Item, len(r.items))
	for i := range r.items {
		it := r.items[i]
		it.Pos = geometry.LerpPoint(r.items[i].Pos, other.items[i].Pos, t)
		it.Radius = geometry.Meters(geometry.Lerp(float64(r.items[i].Radius), float64(other.items[i].Radius), t))
		items[i] = it
	}
	return Room{edges: edges, items: items, player: r.player, target: r.target}, nil
}
