// Package level loads playable level definitions from JSON files and turns
// them into engine scenes. A level file describes the room boundary with
// per-edge mirror tags, the items inside it, the viewer's starting aim and
// sight budget, and how the scene maps onto the screen.
package level

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

// VertexDef is one boundary vertex. Mirror tags the edge running from this
// vertex to the next one (the last vertex closes back to the first).
type VertexDef struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Mirror bool    `json:"mirror"`
}

// ItemDef is one item placement. Kind is "player", "target" or "decoy";
// Radius defaults to the standard item radius when omitted.
type ItemDef struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// ViewDef controls how the scene maps onto the screen.
type ViewDef struct {
	PixelsPerMeter float64 `json:"pixels_per_meter"`
	CenterX        float64 `json:"center_x"` // world point shown at the view center
	CenterY        float64 `json:"center_y"`
}

// Definition is the raw JSON form of a level.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Vertices    []VertexDef `json:"vertices"`
	Items       []ItemDef   `json:"items"`
	AimDegrees  float64     `json:"aim_degrees"`  // initial aim direction
	SightBudget float64     `json:"sight_budget"` // meters
	View        ViewDef     `json:"view"`
}

// Level is a validated, playable scene.
type Level struct {
	Name           string
	Description    string
	Room           room.Room
	Aim            geometry.Vec
	Budget         geometry.Meters
	PixelsPerMeter float64
	Center         geometry.Point
}

// Load reads, parses, validates, and builds a level from a JSON file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	lvl, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid level in %s: %w", path, err)
	}
	return lvl, nil
}

// Validate checks the schema-level constraints of a definition. The room
// constructor re-checks its own structural invariants on Build.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("level name is required")
	}
	if len(d.Vertices) < 3 {
		return fmt.Errorf("level %s: boundary needs at least 3 vertices, got %d", d.Name, len(d.Vertices))
	}
	mirrors := 0
	for _, v := range d.Vertices {
		if v.Mirror {
			mirrors++
		}
	}
	if mirrors == 0 {
		return fmt.Errorf("level %s: boundary needs at least one mirror edge", d.Name)
	}
	if d.SightBudget <= 0 {
		return fmt.Errorf("level %s: sight budget must be positive, got %g", d.Name, d.SightBudget)
	}
	if d.View.PixelsPerMeter <= 0 {
		return fmt.Errorf("level %s: pixels_per_meter must be positive, got %g", d.Name, d.View.PixelsPerMeter)
	}
	for i, it := range d.Items {
		if _, err := parseKind(it.Kind); err != nil {
			return fmt.Errorf("level %s: item %d: %w", d.Name, i, err)
		}
		if it.Radius < 0 {
			return fmt.Errorf("level %s: item %d: radius must not be negative, got %g", d.Name, i, it.Radius)
		}
	}
	return nil
}

// Build validates the definition and converts it into a Level.
func (d *Definition) Build() (*Level, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	edges := make([]room.Edge, len(d.Vertices))
	for i, v := range d.Vertices {
		next := d.Vertices[(i+1)%len(d.Vertices)]
		edges[i] = room.Edge{
			Segment: geometry.Segment{
				A: geometry.Point{X: v.X, Y: v.Y},
				B: geometry.Point{X: next.X, Y: next.Y},
			},
			Mirror: v.Mirror,
		}
	}

	items := make([]room.Item, len(d.Items))
	for i, it := range d.Items {
		kind, err := parseKind(it.Kind)
		if err != nil {
			return nil, err
		}
		radius := geometry.Meters(it.Radius)
		if radius == 0 {
			radius = geometry.StandardItemRadius
		}
		items[i] = room.Item{
			Pos:    geometry.Point{X: it.X, Y: it.Y},
			Radius: radius,
			Kind:   kind,
		}
	}

	rm, err := room.New(edges, items)
	if err != nil {
		return nil, err
	}
	for i, it := range rm.Items() {
		if !rm.Contains(it.Pos) {
			return nil, fmt.Errorf("level %s: item %d (%s) at (%g, %g) lies outside the boundary",
				d.Name, i, it.Kind, it.Pos.X, it.Pos.Y)
		}
	}

	return &Level{
		Name:           d.Name,
		Description:    d.Description,
		Room:           rm,
		Aim:            geometry.FromAngle(d.AimDegrees * math.Pi / 180),
		Budget:         geometry.Meters(d.SightBudget),
		PixelsPerMeter: d.View.PixelsPerMeter,
		Center:         geometry.Point{X: d.View.CenterX, Y: d.View.CenterY},
	}, nil
}

func parseKind(s string) (room.ItemKind, error) {
	switch s {
	case "player":
		return room.Player, nil
	case "target":
		return room.Target, nil
	case "decoy":
		return room.Decoy, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}
