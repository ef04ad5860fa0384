package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/graphed/internal/geom"
)

// createTestGraph seeds the four point, four segment graph the editor starts with.
func createTestGraph(t *testing.T) (*Graph, []PointID) {
	t.Helper()
	g, err := Seed(
		[]geom.Point{geom.Pt(200, 200), geom.Pt(500, 200), geom.Pt(400, 400), geom.Pt(100, 300)},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}},
	)
	require.NoError(t, err)
	return g, g.IDs()
}

func TestSeed(t *testing.T) {
	g, ids := createTestGraph(t)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 4, g.SegmentCount())
	assert.Equal(t, 3, g.Degree(ids[0]))
	assert.Equal(t, 1, g.Degree(ids[3]))
}

func TestSeedRejectsInvalidInput(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}

	tests := []struct {
		name     string
		points   []geom.Point
		segments [][2]int
	}{
		{"duplicate point", []geom.Point{geom.Pt(0, 0), geom.Pt(0, 0)}, nil},
		{"index out of range", pts, [][2]int{{0, 2}}},
		{"negative index", pts, [][2]int{{-1, 0}}},
		{"self loop", pts, [][2]int{{1, 1}}},
		{"duplicate segment", pts, [][2]int{{0, 1}, {1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Seed(tt.points, tt.segments)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSeed))
			assert.Nil(t, g)
		})
	}
}

func TestAddPointIsUnconditional(t *testing.T) {
	g := New()
	a := g.AddPoint(geom.Pt(1, 1))
	b := g.AddPoint(geom.Pt(1, 1))

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, g.Len())
}

func TestTryAddPointIsIdempotent(t *testing.T) {
	g := New()

	id, ok := g.TryAddPoint(geom.Pt(5, 5))
	require.True(t, ok)
	assert.NotEqual(t, NoPoint, id)

	id, ok = g.TryAddPoint(geom.Pt(5, 5))
	assert.False(t, ok)
	assert.Equal(t, NoPoint, id)
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.ContainsPoint(geom.Pt(5, 5)))
}

func TestTryAddSegmentRejectsSelfLoop(t *testing.T) {
	g, ids := createTestGraph(t)
	before := g.Segments()

	assert.False(t, g.TryAddSegment(Segment{ids[0], ids[0]}))
	assert.Equal(t, before, g.Segments())
}

func TestTryAddSegmentRejectsCoincidentEndpoints(t *testing.T) {
	g := New()
	a := g.AddPoint(geom.Pt(1, 1))
	b := g.AddPoint(geom.Pt(1, 1))

	assert.False(t, g.TryAddSegment(Segment{a, b}), "endpoints at the same coordinates are degenerate")
	assert.Equal(t, 0, g.SegmentCount())
}

func TestTryAddSegmentRejectsDuplicates(t *testing.T) {
	g, ids := createTestGraph(t)

	assert.False(t, g.TryAddSegment(Segment{ids[1], ids[0]}))
	assert.True(t, g.ContainsSegment(Segment{ids[1], ids[0]}))
	assert.True(t, g.TryAddSegment(Segment{ids[3], ids[2]}))
	assert.Equal(t, 5, g.SegmentCount())
}

func TestTryAddSegmentRejectsDeadHandles(t *testing.T) {
	g, ids := createTestGraph(t)

	assert.False(t, g.TryAddSegment(Segment{ids[0], PointID(999)}))
	assert.False(t, g.TryAddSegment(Segment{NoPoint, ids[1]}))
}

func TestRemovePointCascades(t *testing.T) {
	g, ids := createTestGraph(t)
	removed, _ := g.Point(ids[0])

	require.True(t, g.RemovePoint(ids[0]))

	assert.Equal(t, 3, g.Len())
	assert.Empty(t, g.SegmentsWithPoint(removed))
	for _, seg := range g.Segments() {
		assert.NotEqual(t, ids[0], seg.P1)
		assert.NotEqual(t, ids[0], seg.P2)
	}
	assert.Equal(t, []Segment{{ids[1], ids[2]}}, g.Segments())

	_, ok := g.Point(ids[0])
	assert.False(t, ok)
}

func TestRemovePointUnknownIsNoop(t *testing.T) {
	g, ids := createTestGraph(t)

	assert.False(t, g.RemovePoint(PointID(999)))
	assert.False(t, g.RemovePoint(NoPoint))
	require.True(t, g.RemovePoint(ids[3]))
	assert.False(t, g.RemovePoint(ids[3]), "a removed handle stays dead")

	assert.Equal(t, ids[:3], g.IDs())
	assert.Equal(t, 3, g.SegmentCount())
}

func TestRemoveSegment(t *testing.T) {
	g, ids := createTestGraph(t)

	assert.True(t, g.RemoveSegment(Segment{ids[0], ids[2]}))
	assert.False(t, g.RemoveSegment(Segment{ids[0], ids[2]}))
	assert.Equal(t, 3, g.SegmentCount())
	assert.Equal(t, 4, g.Len())
}

func TestMovePoint(t *testing.T) {
	g, ids := createTestGraph(t)

	require.True(t, g.MovePoint(ids[0], geom.Pt(10, 10)))

	p, ok := g.Point(ids[0])
	require.True(t, ok)
	assert.Equal(t, geom.Pt(10, 10), p)
	assert.Len(t, g.SegmentsWithPoint(geom.Pt(10, 10)), 3)
	assert.Equal(t, geom.Seg(geom.Pt(10, 10), geom.Pt(500, 200)), g.Resolve(Segment{ids[0], ids[1]}))

	assert.False(t, g.MovePoint(PointID(999), geom.Pt(0, 0)))
}

func TestNearest(t *testing.T) {
	g, ids := createTestGraph(t)

	id, ok := g.Nearest(geom.Pt(495, 205), 10)
	require.True(t, ok)
	assert.Equal(t, ids[1], id)

	_, ok = g.Nearest(geom.Pt(300, 300), 10)
	assert.False(t, ok)
}

func TestDisposeClearsInPlace(t *testing.T) {
	g, _ := createTestGraph(t)
	alias := g

	g.Dispose()

	assert.Equal(t, 0, alias.Len())
	assert.Equal(t, 0, alias.SegmentCount())

	id := g.AddPoint(geom.Pt(1, 1))
	assert.Equal(t, PointID(5), id, "handles are not reused after dispose")
}
