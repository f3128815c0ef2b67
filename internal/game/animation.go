package game

import (
	"fmt"

	"github.com/glasshouse/mirrorsight/internal/geometry"
	"github.com/glasshouse/mirrorsight/internal/room"
	"github.com/glasshouse/mirrorsight/internal/sight"
)

// stepDuration is how long one reflection takes to straighten, in seconds.
const stepDuration = 0.8

// unfolding animates a bounced sight-line straightening out. Step k blends
// the curled tail of the k-times-uncurled ray into its once-more-uncurled
// form while the matching hallway room swings into place. Steps run
// strictly in order; step k+1 starts only after step k reaches t=1.
type unfolding struct {
	hallway  []room.Room
	series   []sight.Ray
	step     int
	progress float64 // 0..1 within the current step
}

// frame is one drawable snapshot of the animation.
type frame struct {
	// Head is the already-straightened polyline, drawn statically.
	Head []geometry.Point
	// Tail is the still-curled remainder, blended toward its uncurled form.
	// Empty shape (no points beyond Start) when the ray had no bounces.
	Tail sight.Ray
	// Ghost is the hallway room swinging into place this step. Nil when
	// the animation is done.
	Ghost *room.Room
}

// newUnfolding builds the animation for a traced ray. A bounce-free ray
// produces an already-finished animation.
func newUnfolding(rm room.Room, ray sight.Ray) *unfolding {
	return &unfolding{
		hallway: sight.Hallway(rm, ray),
		series:  sight.UncurledSeries(ray),
	}
}

// done reports whether every reflection has straightened.
func (u *unfolding) done() bool {
	return u.step >= len(u.series)-1
}

// skip jumps to the fully straightened state.
func (u *unfolding) skip() {
	u.step = len(u.series) - 1
	u.progress = 0
}

// advance moves the animation forward by dt seconds.
func (u *unfolding) advance(dt float64) {
	if u.done() {
		return
	}
	u.progress += dt / stepDuration
	for u.progress >= 1 && !u.done() {
		u.progress -= 1
		u.step++
	}
	if u.done() {
		u.progress = 0
	}
}

// frame renders the current animation state into drawable geometry.
func (u *unfolding) frame() (frame, error) {
	// The straight head runs through the starts of every finished stage.
	var head []geometry.Point
	for k := 0; k <= u.step; k++ {
		head = append(head, u.series[k].Start)
	}

	if u.done() {
		head = append(head, u.series[u.step].End())
		return frame{Head: head}, nil
	}

	cur := u.series[u.step]
	next := u.series[u.step+1]

	tail, ok := cur.Tail()
	if !ok {
		return frame{}, fmt.Errorf("unfolding step %d has no tail to straighten", u.step)
	}
	// The head's last static segment reaches the bounce where the tail
	// starts.
	head = append(head, tail.Start)

	t := easeInOut(u.progress)
	blended, err := sight.InterpolateRay(tail, next, t)
	if err != nil {
		return frame{}, fmt.Errorf("failed to blend unfolding step %d: %w", u.step, err)
	}
	ghost, err := u.hallway[u.step].Interpolate(u.hallway[u.step+1], t)
	if err != nil {
		return frame{}, fmt.Errorf("failed to blend hallway room %d: %w", u.step, err)
	}

	return frame{Head: head, Tail: blended, Ghost: &ghost}, nil
}

// easeInOut is the smoothstep curve: slow at both ends of a step.
func easeInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
