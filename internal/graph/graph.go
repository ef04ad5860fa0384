package graph

import (
	"errors"
	"fmt"

	"github.com/psidex/graphed/internal/geom"
)

// ErrInvalidSeed is returned by Seed when the initial points and segments
// would break the graph invariants.
var ErrInvalidSeed = errors.New("invalid seed graph")

// PointID is a handle to a point owned by a Graph. IDs are never reused, so a
// handle to a removed point stays dead.
type PointID uint64

// NoPoint is the zero PointID and never refers to a live point.
const NoPoint PointID = 0

// Segment joins two points of the same Graph.
type Segment struct {
	P1 PointID
	P2 PointID
}

type pointRecord struct {
	id  PointID
	pos geom.Point
}

// Graph owns an ordered set of points and the segments between them. Point
// membership and segment equality are decided by coordinates; callers hold on
// to points through their PointID.
//
// Graph is not safe for concurrent use. It is meant to have a single writer.
type Graph struct {
	points   []pointRecord
	segments []Segment
	lastID   PointID
}

func New() *Graph {
	return &Graph{}
}

// Seed builds a graph from initial points and segments given as index pairs
// into points. Every point and segment must be unique and no segment may join
// a point to itself.
func Seed(points []geom.Point, segments [][2]int) (*Graph, error) {
	g := New()
	ids := make([]PointID, 0, len(points))
	for i, p := range points {
		id, ok := g.TryAddPoint(p)
		if !ok {
			return nil, fmt.Errorf("%w: point %d (%g, %g) is a duplicate", ErrInvalidSeed, i, p.X, p.Y)
		}
		ids = append(ids, id)
	}

	for i, pair := range segments {
		for _, idx := range pair {
			if idx < 0 || idx >= len(ids) {
				return nil, fmt.Errorf("%w: segment %d references point %d of %d", ErrInvalidSeed, i, idx, len(ids))
			}
		}
		if !g.TryAddSegment(Segment{P1: ids[pair[0]], P2: ids[pair[1]]}) {
			return nil, fmt.Errorf("%w: segment %d (%d-%d) is degenerate or a duplicate", ErrInvalidSeed, i, pair[0], pair[1])
		}
	}

	return g, nil
}

func (g *Graph) indexOf(id PointID) int {
	if id == NoPoint {
		return -1
	}
	for i, rec := range g.points {
		if rec.id == id {
			return i
		}
	}
	return -1
}

// AddPoint appends p without checking for duplicates. Use TryAddPoint to keep
// the points unique.
func (g *Graph) AddPoint(p geom.Point) PointID {
	g.lastID++
	g.points = append(g.points, pointRecord{id: g.lastID, pos: p})
	return g.lastID
}

// ContainsPoint reports whether a point with the same coordinates as p exists.
func (g *Graph) ContainsPoint(p geom.Point) bool {
	_, ok := g.Find(p)
	return ok
}

// Find returns the first point with the same coordinates as p.
func (g *Graph) Find(p geom.Point) (PointID, bool) {
	for _, rec := range g.points {
		if rec.pos.Equal(p) {
			return rec.id, true
		}
	}
	return NoPoint, false
}

// TryAddPoint adds p unless a point with the same coordinates already exists.
func (g *Graph) TryAddPoint(p geom.Point) (PointID, bool) {
	if g.ContainsPoint(p) {
		return NoPoint, false
	}
	return g.AddPoint(p), true
}

// RemovePoint removes every segment touching the point and then the point
// itself. It returns false and leaves the graph untouched when id is not live.
func (g *Graph) RemovePoint(id PointID) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}

	for _, seg := range g.SegmentsWithPoint(g.points[i].pos) {
		g.RemoveSegment(seg)
	}
	g.points = append(g.points[:i], g.points[i+1:]...)
	return true
}

// Point returns the coordinates of a live point.
func (g *Graph) Point(id PointID) (geom.Point, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return geom.Point{}, false
	}
	return g.points[i].pos, true
}

// MovePoint sets the coordinates of a live point. Segments follow the point
// since they hold its handle.
func (g *Graph) MovePoint(id PointID, to geom.Point) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.points[i].pos = to
	return true
}

// AddSegment appends s without any checks. Use TryAddSegment to keep the
// segment invariants.
func (g *Graph) AddSegment(s Segment) {
	g.segments = append(g.segments, s)
}

// ContainsSegment reports whether a segment joining the same coordinates as s,
// in either direction, exists.
func (g *Graph) ContainsSegment(s Segment) bool {
	want := g.Resolve(s)
	for _, seg := range g.segments {
		if g.Resolve(seg).Equal(want) {
			return true
		}
	}
	return false
}

// TryAddSegment adds s when both endpoints are live, it is not degenerate and
// no equal segment exists.
func (g *Graph) TryAddSegment(s Segment) bool {
	if g.indexOf(s.P1) < 0 || g.indexOf(s.P2) < 0 {
		return false
	}
	if g.Resolve(s).Degenerate() || g.ContainsSegment(s) {
		return false
	}
	g.AddSegment(s)
	return true
}

// RemoveSegment removes the first stored segment with the same handles as s.
func (g *Graph) RemoveSegment(s Segment) bool {
	for i, seg := range g.segments {
		if seg == s {
			g.segments = append(g.segments[:i], g.segments[i+1:]...)
			return true
		}
	}
	return false
}

// SegmentsWithPoint returns every segment with an endpoint at p.
func (g *Graph) SegmentsWithPoint(p geom.Point) []Segment {
	var segs []Segment
	for _, seg := range g.segments {
		if g.Resolve(seg).Includes(p) {
			segs = append(segs, seg)
		}
	}
	return segs
}

// Degree returns the number of segments touching a live point.
func (g *Graph) Degree(id PointID) int {
	p, ok := g.Point(id)
	if !ok {
		return 0
	}
	return len(g.SegmentsWithPoint(p))
}

// Resolve turns a segment's handles into coordinates. A dead handle resolves
// to the zero point.
func (g *Graph) Resolve(s Segment) geom.Segment {
	p1, _ := g.Point(s.P1)
	p2, _ := g.Point(s.P2)
	return geom.Seg(p1, p2)
}

// Nearest returns the point closest to loc within threshold.
func (g *Graph) Nearest(loc geom.Point, threshold float64) (PointID, bool) {
	i, ok := geom.Nearest(loc, g.Positions(), threshold)
	if !ok {
		return NoPoint, false
	}
	return g.points[i].id, true
}

// IDs returns the handles of all points in insertion order.
func (g *Graph) IDs() []PointID {
	ids := make([]PointID, len(g.points))
	for i, rec := range g.points {
		ids[i] = rec.id
	}
	return ids
}

// Positions returns the coordinates of all points in insertion order.
func (g *Graph) Positions() []geom.Point {
	pos := make([]geom.Point, len(g.points))
	for i, rec := range g.points {
		pos[i] = rec.pos
	}
	return pos
}

// Segments returns a copy of the stored segments in insertion order.
func (g *Graph) Segments() []Segment {
	return append([]Segment(nil), g.segments...)
}

func (g *Graph) Len() int {
	return len(g.points)
}

func (g *Graph) SegmentCount() int {
	return len(g.segments)
}

// Dispose empties the graph in place. Handles issued before Dispose stay dead.
func (g *Graph) Dispose() {
	g.points = g.points[:0]
	g.segments = g.segments[:0]
}
