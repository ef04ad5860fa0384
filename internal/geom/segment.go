package geom

// Segment is an unordered pair of points. {A, B} and {B, A} are the same
// segment.
type Segment struct {
	P1 Point
	P2 Point
}

func Seg(p1, p2 Point) Segment {
	return Segment{P1: p1, P2: p2}
}

// Includes reports whether either endpoint equals p.
func (s Segment) Includes(p Point) bool {
	return s.P1.Equal(p) || s.P2.Equal(p)
}

// Equal reports whether s and o join the same two points, in either order.
func (s Segment) Equal(o Segment) bool {
	return s.Includes(o.P1) && s.Includes(o.P2) &&
		o.Includes(s.P1) && o.Includes(s.P2)
}

// Degenerate reports whether both endpoints are the same point.
func (s Segment) Degenerate() bool {
	return s.P1.Equal(s.P2)
}
