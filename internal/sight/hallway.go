package sight

import (
	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

// Hallway unfolds the rooms a curled ray passes through. Element 0 is the
// original room; element i+1 is element i reflected across the mirror hit
// at bounce i, with that mirror expressed in the already-unfolded frame.
// The result always has len(ray.Bounces)+1 elements.
func Hallway(rm room.Room, ray Ray) []room.Room {
	rooms := make([]room.Room, 0, len(ray.Mirrors)+1)
	rooms = append(rooms, rm)
	mirrors := append([]room.Edge(nil), ray.Mirrors...)
	for i := range mirrors {
		cur := mirrors[i]
		rooms = append(rooms, rooms[len(rooms)-1].ReflectAcross(cur))
		// Later mirrors move with the room image they belong to.
		for j := i + 1; j < len(mirrors); j++ {
			mirrors[j] = reflectEdge(mirrors[j], cur)
		}
	}
	return rooms
}

// Uncurl removes the earliest bounce from a ray: the remainder of the path
// is mirrored across the first bounce edge so that it continues straight
// through the bounce point instead of folding back into the room. Returns
// false when the ray has no bounces left to remove.
func Uncurl(r Ray) (Ray, bool) {
	if len(r.Bounces) == 0 {
		return Ray{}, false
	}
	across := r.Mirrors[0]
	out := Ray{Start: r.Bounces[0]}
	for _, b := range r.Bounces[1:] {
		out.Bounces = append(out.Bounces, across.ReflectPoint(b))
	}
	for _, m := range r.Mirrors[1:] {
		out.Mirrors = append(out.Mirrors, reflectEdge(m, across))
	}
	term := r.Terminal
	term.At = across.ReflectPoint(term.At)
	if term.Kind == HitItem {
		term.Item.Pos = across.ReflectPoint(term.Item.Pos)
	}
	out.Terminal = term
	return out, true
}

// UncurledSeries applies Uncurl repeatedly: element k is the sight-line as
// seen from the k-th mirror image onward, and element k's start together
// with all earlier starts lie on one straight line from the original start.
// Its length always matches the hallway of the same ray.
func UncurledSeries(r Ray) []Ray {
	series := []Ray{r}
	for {
		next, ok := Uncurl(series[len(series)-1])
		if !ok {
			return series
		}
		series = append(series, next)
	}
}

func reflectEdge(e, across room.Edge) room.Edge {
	return room.Edge{
		Segment: geometry.Segment{
			A: across.ReflectPoint(e.A),
			B: across.ReflectPoint(e.B),
		},
		Mirror: e.Mirror,
	}
}
