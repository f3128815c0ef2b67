package sight

import (
	"fmt"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
)

// InterpolateRay blends two rays of the same shape: every corresponding
// point is lerped by t, so t=0 yields a and t=1 yields b. The blend is a
// pure geometric lerp; easing curves are the caller's business, applied to
// t before calling. Rays with different bounce counts cannot be blended and
// produce an error wrapping room.ErrShapeMismatch.
func InterpolateRay(a, b Ray, t float64) (Ray, error) {
	if len(a.Bounces) != len(b.Bounces) || len(a.Mirrors) != len(b.Mirrors) {
		return Ray{}, fmt.Errorf("interpolating rays with %d and %d bounces: %w",
			len(a.Bounces), len(b.Bounces), room.ErrShapeMismatch)
	}

	out := Ray{Start: geometry.LerpPoint(a.Start, b.Start, t)}
	for i := range a.Bounces {
		out.Bounces = append(out.Bounces, geometry.LerpPoint(a.Bounces[i], b.Bounces[i], t))
	}
	for i := range a.Mirrors {
		out.Mirrors = append(out.Mirrors, room.Edge{
			Segment: geometry.Segment{
				A: geometry.LerpPoint(a.Mirrors[i].A, b.Mirrors[i].A, t),
				B: geometry.LerpPoint(a.Mirrors[i].B, b.Mirrors[i].B, t),
			},
			Mirror: a.Mirrors[i].Mirror,
		})
	}

	// Discrete termination fields come from a until the blend completes.
	term := a.Terminal
	if t >= 1 {
		term = b.Terminal
	}
	term.At = geometry.LerpPoint(a.Terminal.At, b.Terminal.At, t)
	if a.Terminal.Kind == HitItem && b.Terminal.Kind == HitItem {
		term.Item.Pos = geometry.LerpPoint(a.Terminal.Item.Pos, b.Terminal.Item.Pos, t)
	}
	out.Terminal = term
	return out, nil
}
