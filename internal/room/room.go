// Package room models the static scene a sight-line travels through: a
// closed boundary of mirror and solid wall edges plus the point-like items
// inside it. A Room is immutable; the transform methods return new values.
package room

import (
	"errors"
	"fmt"

	"github.com/glasshouse/mirrorsight/internal/geometry"
)

// ItemKind classifies an item in a room. The three kinds are a closed set;
// code switching on an ItemKind should handle all of them.
type ItemKind int

const (
	// Player is the item the viewer sights from. Exactly one per room.
	Player ItemKind = iota
	// Target is the item a photo must capture. Exactly one per room.
	Target
	// Decoy is an item that spoils a photo when captured instead.
	Decoy
)

// String returns the lowercase name of the kind, matching the level file
// vocabulary.
func (k ItemKind) String() string {
	switch k {
	case Player:
		return "player"
	case Target:
		return "target"
	case Decoy:
		return "decoy"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Item is a point-like object inside the room, rendered as a disk.
type Item struct {
	Pos    geometry.Point
	Radius geometry.Meters
	Kind   ItemKind
}

// Edge is one wall of the room boundary. Mirror edges reflect a sight-line;
// solid edges stop it.
type Edge struct {
	geometry.Segment
	Mirror bool
}

// Room is an immutable scene: the boundary polygon as an ordered, closed
// edge list, and the items it encloses.
type Room struct {
	edges  []Edge
	items  []Item
	player int
	target int
}

// closureEpsilon is the largest gap allowed between one edge's end and the
// next edge's start for the boundary to count as closed.
const closureEpsilon = 1e-9

// New validates the boundary and item set and builds a Room. The boundary
// must be a closed polygon of at least 3 non-degenerate edges, every item
// needs a positive radius, and there must be exactly one Player and exactly
// one Target item.
func New(edges []Edge, items []Item) (Room, error) {
	if len(edges) < 3 {
		return Room{}, fmt.Errorf("room boundary needs at least 3 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e.Segment.Length() == 0 {
			return Room{}, fmt.Errorf("boundary edge %d has zero length", i)
		}
		next := edges[(i+1)%len(edges)]
		if e.B.Sub(next.A).Length() > closureEpsilon {
			return Room{}, fmt.Errorf("boundary is not closed: edge %d ends at (%g, %g) but the next edge starts at (%g, %g)",
				i, e.B.X, e.B.Y, next.A.X, next.A.Y)
		}
	}

	player, target := -1, -1
	for i, it := range items {
		if it.Radius <= 0 {
			return Room{}, fmt.Errorf("item %d (%s): radius must be positive, got %g", i, it.Kind, float64(it.Radius))
		}
		switch it.Kind {
		case Player:
			if player >= 0 {
				return Room{}, errors.New("room has more than one player item")
			}
			player = i
		case Target:
			if target >= 0 {
				return Room{}, errors.New("room has more than one target item")
			}
			target = i
		}
	}
	if player < 0 {
		return Room{}, errors.New("room has no player item")
	}
	if target < 0 {
		return Room{}, errors.New("room has no target item")
	}

	return Room{
		edges:  append([]Edge(nil), edges...),
		items:  append([]Item(nil), items...),
		player: player,
		target: target,
	}, nil
}

// Edges returns a copy of the boundary edges in winding order.
func (r Room) Edges() []Edge {
	return append([]Edge(nil), r.edges...)
}

// Items returns a copy of the room's items.
func (r Room) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Player returns the viewer item.
func (r Room) Player() Item {
	return r.items[r.player]
}

// Target returns the photo target item.
func (r Room) Target() Item {
	return r.items[r.target]
}

// Vertices returns the boundary polygon vertices in winding order, one per
// edge (each edge's start point).
func (r Room) Vertices() []geometry.Point {
	pts := make([]geometry.Point, len(r.edges))
	for i, e := range r.edges {
		pts[i] = e.A
	}
	return pts
}

// Contains reports whether p lies inside the boundary polygon, using the
// even-odd ray casting rule.
func (r Room) Contains(p geometry.Point) bool {
	inside := false
	j := len(r.edges) - 1
	for i := 0; i < len(r.edges); i++ {
		xi, yi := r.edges[i].A.X, r.edges[i].A.Y
		xj, yj := r.edges[j].A.X, r.edges[j].A.Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
