package geom

import "math"

// Unbounded is the threshold to pass to Nearest when any distance is accepted.
var Unbounded = math.Inf(1)

// Nearest returns the index of the point in points closest to loc, provided
// that distance is strictly less than threshold. On exact ties the earliest
// point wins.
func Nearest(loc Point, points []Point, threshold float64) (int, bool) {
	minDist := math.Inf(1)
	nearest := -1
	for i, p := range points {
		dist := Distance(p, loc)
		if dist < minDist && dist < threshold {
			minDist = dist
			nearest = i
		}
	}
	return nearest, nearest >= 0
}
