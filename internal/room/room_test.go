package room

import (
	"errors"
	"math"
	"testing"

	"github.com/glasshouse/mirrorsight/internal/geometry"
)

const eps = 1e-9

func pointsEqual(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// squareEdges returns the boundary of a 10x10 square with corners at (0,0)
// and (10,10), every edge tagged with the given mirror flag.
func squareEdges(mirror bool) []Edge {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	edges := make([]Edge, len(pts))
	for i := range pts {
		edges[i] = Edge{
			Segment: geometry.Segment{A: pts[i], B: pts[(i+1)%len(pts)]},
			Mirror:  mirror,
		}
	}
	return edges
}

func defaultItems() []Item {
	return []Item{
		{Pos: geometry.Point{X: 5, Y: 5}, Radius: geometry.StandardItemRadius, Kind: Player},
		{Pos: geometry.Point{X: 2, Y: 8}, Radius: geometry.StandardItemRadius, Kind: Target},
	}
}

func mustRoom(t *testing.T, edges []Edge, items []Item) Room {
	t.Helper()
	r, err := New(edges, items)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func TestNewValidRoom(t *testing.T) {
	r := mustRoom(t, squareEdges(true), defaultItems())
	if got := len(r.Edges()); got != 4 {
		t.Errorf("Expected 4 edges, got %d", got)
	}
	if got := r.Player().Pos; !pointsEqual(got, geometry.Point{X: 5, Y: 5}) {
		t.Errorf("Unexpected player position %v", got)
	}
	if got := r.Target().Pos; !pointsEqual(got, geometry.Point{X: 2, Y: 8}) {
		t.Errorf("Unexpected target position %v", got)
	}
}

func TestNewRejectsInvalidRooms(t *testing.T) {
	open := squareEdges(true)
	open[1].B = geometry.Point{X: 11, Y: 11}

	tests := []struct {
		name  string
		edges []Edge
		items []Item
	}{
		{"too few edges", squareEdges(true)[:2], defaultItems()},
		{"open boundary", open, defaultItems()},
		{"no player", squareEdges(true), []Item{
			{Pos: geometry.Point{X: 2, Y: 2}, Radius: 0.1, Kind: Target},
		}},
		{"no target", squareEdges(true), []Item{
			{Pos: geometry.Point{X: 2, Y: 2}, Radius: 0.1, Kind: Player},
		}},
		{"two players", squareEdges(true), append(defaultItems(),
			Item{Pos: geometry.Point{X: 3, Y: 3}, Radius: 0.1, Kind: Player})},
		{"two targets", squareEdges(true), append(defaultItems(),
			Item{Pos: geometry.Point{X: 3, Y: 3}, Radius: 0.1, Kind: Target})},
		{"zero radius", squareEdges(true), []Item{
			{Pos: geometry.Point{X: 5, Y: 5}, Radius: 0, Kind: Player},
			{Pos: geometry.Point{X: 2, Y: 8}, Radius: 0.1, Kind: Target},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.edges, tc.items); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestReflectAcross(t *testing.T) {
	r := mustRoom(t, squareEdges(true), defaultItems())
	east := r.Edges()[1] // edge from (10,0) to (10,10)

	mirror := r.ReflectAcross(east)

	// Every vertex lands in the x range [10, 20]; y is unchanged.
	for _, v := range mirror.Vertices() {
		if v.X < 10-eps || v.X > 20+eps {
			t.Errorf("Vertex %v outside reflected range", v)
		}
	}
	if got := mirror.Player().Pos; !pointsEqual(got, geometry.Point{X: 15, Y: 5}) {
		t.Errorf("Expected player image at (15,5), got %v", got)
	}
	if got := mirror.Target().Pos; !pointsEqual(got, geometry.Point{X: 18, Y: 8}) {
		t.Errorf("Expected target image at (18,8), got %v", got)
	}

	// Tags survive the reflection.
	for i, e := range mirror.Edges() {
		if !e.Mirror {
			t.Errorf("Edge %d lost its mirror tag", i)
		}
	}

	// Reflecting back across the same line restores the original.
	back := mirror.ReflectAcross(east)
	orig := r.Vertices()
	for i, v := range back.Vertices() {
		if !pointsEqual(v, orig[i]) {
			t.Errorf("Vertex %d did not return: %v vs %v", i, v, orig[i])
		}
	}
}

func TestReflectAcrossDoesNotMutate(t *testing.T) {
	r := mustRoom(t, squareEdges(true), defaultItems())
	before := r.Player().Pos
	_ = r.ReflectAcross(r.Edges()[1])
	if got := r.Player().Pos; !pointsEqual(got, before) {
		t.Errorf("ReflectAcross mutated the receiver: %v", got)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a := mustRoom(t, squareEdges(true), defaultItems())
	b := a.ReflectAcross(a.Edges()[1])

	at0, err := a.Interpolate(b, 0)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if got := at0.Player().Pos; !pointsEqual(got, a.Player().Pos) {
		t.Errorf("t=0 should yield the receiver, got player at %v", got)
	}

	at1, err := a.Interpolate(b, 1)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if got := at1.Player().Pos; !pointsEqual(got, b.Player().Pos) {
		t.Errorf("t=1 should yield the other room, got player at %v", got)
	}

	mid, err := a.Interpolate(b, 0.5)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if got := mid.Player().Pos; !pointsEqual(got, geometry.Point{X: 10, Y: 5}) {
		t.Errorf("Expected midpoint player at (10,5), got %v", got)
	}
}

func TestInterpolateShapeMismatch(t *testing.T) {
	a := mustRoom(t, squareEdges(true), defaultItems())

	pts := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	tri := make([]Edge, len(pts))
	for i := range pts {
		tri[i] = Edge{Segment: geometry.Segment{A: pts[i], B: pts[(i+1)%len(pts)]}, Mirror: true}
	}
	b := mustRoom(t, tri, []Item{
		{Pos: geometry.Point{X: 5, Y: 3}, Radius: 0.1, Kind: Player},
		{Pos: geometry.Point{X: 4, Y: 5}, Radius: 0.1, Kind: Target},
	})

	if _, err := a.Interpolate(b, 0.5); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

func TestContains(t *testing.T) {
	r := mustRoom(t, squareEdges(false), defaultItems())
	if !r.Contains(geometry.Point{X: 5, Y: 5}) {
		t.Error("Center should be inside")
	}
	if r.Contains(geometry.Point{X: 15, Y: 5}) {
		t.Error("Point east of the room should be outside")
	}
	if r.Contains(geometry.Point{X: -1, Y: -1}) {
		t.Error("Point outside the corner should be outside")
	}
}

func TestItemKindString(t *testing.T) {
	if Player.String() != "player" || Target.String() != "target" || Decoy.String() != "decoy" {
		t.Error("Unexpected kind names")
	}
}
