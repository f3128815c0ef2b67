package geometry

import "math"

// Lerp linearly interpolates between two scalars. t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two points.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpVec linearly interpolates between two displacements.
func LerpVec(a, b Vec, t float64) Vec {
	return Vec{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpAngle interpolates between two angles along the shorter arc, so a
// blend from 350 to 10 degrees passes through 0 rather than 180.
func LerpAngle(a, b, t float64) float64 {
	diff := math.Mod(b-a+3*math.Pi, 2*math.Pi) - math.Pi
	return a + diff*t
}
