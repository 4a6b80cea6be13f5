package path

import (
	"fmt"
	"math"
)

// Point is a location or displacement in 3D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Splat returns the point's coordinates.
func (p Point) Splat() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns p − o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Mul returns the point scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Hypot returns the magnitude of p treated as a vector.
func (p Point) Hypot() float64 {
	return math.Sqrt(p.Dot(p))
}

// Hypot2 returns the squared magnitude of p treated as a vector.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (p Point) Hypot2() float64 {
	return p.Dot(p)
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Hypot()
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	// p + t * (o-p)
	return p.Add(o.Sub(p).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as p.
// This produces a NaN vector if the magnitude is 0.
func (p Point) Normalize() Point {
	return p.Mul(1.0 / p.Hypot())
}
