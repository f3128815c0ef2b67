package geometry

import "math"

// parallelEpsilon is the cross-product magnitude below which a ray and a
// segment are treated as parallel and reported as non-intersecting.
const parallelEpsilon = 1e-12

// RayHit is the nearest intersection of a ray with an obstacle. Dist is the
// parametric distance along the ray's unit direction, so it is also the
// travel distance in meters.
type RayHit struct {
	Dist  float64
	Point Point
}

// RaySegment intersects a ray (origin plus unit direction) with a segment.
// Hits closer than minDist are ignored, which keeps a reflected ray from
// immediately re-hitting the bounce point it just left. Parallel and
// out-of-range pairs report no hit.
func RaySegment(origin Point, dir Vec, seg Segment, minDist float64) (RayHit, bool) {
	sv := seg.Vec()
	denom := dir.Cross(sv)
	if math.Abs(denom) < parallelEpsilon {
		return RayHit{}, false
	}
	ao := seg.A.Sub(origin)
	t := ao.Cross(sv) / denom
	u := ao.Cross(dir) / denom
	if t < minDist || u < 0 || u > 1 {
		return RayHit{}, false
	}
	return RayHit{Dist: t, Point: origin.Add(dir.Scale(t))}, true
}

// RayCircle intersects a ray (origin plus unit direction) with a circle and
// returns the nearest entry point. A ray starting inside the circle reports
// no hit, so the viewer's own disk never blocks the first leg of a
// sight-line while a ray bounced back toward it still can.
func RayCircle(origin Point, dir Vec, center Point, radius float64) (RayHit, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return RayHit{}, false
	}
	t := -b - math.Sqrt(disc)
	if t <= 0 {
		return RayHit{}, false
	}
	return RayHit{Dist: t, Point: origin.Add(dir.Scale(t))}, true
}
