package editor

import (
	"github.com/psidex/graphed/internal/geom"
	"github.com/psidex/graphed/internal/surface"
)

// Display draws the graph and the interaction state onto s. Segments go first
// so points sit on top of them. Display only reads state.
func (e *Editor) Display(s surface.Surface) {
	for _, seg := range e.graph.Segments() {
		s.Line(surface.SegmentLine(e.graph.Resolve(seg)))
	}
	for _, p := range e.graph.Positions() {
		s.Circle(surface.PointCircle(p))
	}

	if hovered, ok := e.graph.Point(e.hovered); ok {
		c := surface.PointCircle(hovered)
		c.InnerDot = true
		s.Circle(c)
	}

	selected, ok := e.graph.Point(e.selected)
	if !ok {
		return
	}

	intent, ok := e.graph.Point(e.hovered)
	if !ok {
		intent = e.cursor
	}
	pending := surface.SegmentLine(geom.Seg(selected, intent))
	pending.Dash = surface.PendingDash
	s.Line(pending)

	c := surface.PointCircle(selected)
	c.Outline = true
	s.Circle(c)
}
