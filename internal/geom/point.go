package geom

import "math"

// Point is a location on the drawing surface. Two points are equal when their
// coordinates match exactly.
type Point struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
