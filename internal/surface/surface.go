// Package surface defines the drawing requests the editor issues each frame and
// the surfaces that carry them out.
package surface

import "github.com/psidex/graphed/internal/geom"

// Default styles for points and segments.
const (
	PointSize    = 18.0
	PointRadius  = PointSize / 2
	SegmentWidth = 2.0

	ColorInk       = "black"
	ColorHighlight = "yellow"

	OutlineWidth  = 2.0
	OutlineScale  = 0.6
	InnerDotScale = 0.4
)

// PendingDash is the dash pattern of the segment between the selected point and
// the cursor.
var PendingDash = []float64{3, 3}

// Circle is a filled circle, optionally decorated with a highlight ring
// (Outline) and a highlight dot in its middle (InnerDot).
type Circle struct {
	Center   geom.Point `json:"center"`
	Radius   float64    `json:"radius"`
	Color    string     `json:"color"`
	Outline  bool       `json:"outline,omitempty"`
	InnerDot bool       `json:"innerDot,omitempty"`
}

// Line is a straight stroke between two points. An empty Dash draws a solid
// line.
type Line struct {
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
	Width float64    `json:"width"`
	Color string     `json:"color"`
	Dash  []float64  `json:"dash,omitempty"`
}

// Surface receives draw requests. Implementations only draw; they must not
// call back into the editor.
type Surface interface {
	Clear()
	Circle(c Circle)
	Line(l Line)
}

// Flusher is implemented by surfaces that need to be told a frame is complete.
type Flusher interface {
	Flush() error
}

// PointCircle returns the default circle for a point.
func PointCircle(p geom.Point) Circle {
	return Circle{Center: p, Radius: PointRadius, Color: ColorInk}
}

// SegmentLine returns the default line for a segment.
func SegmentLine(s geom.Segment) Line {
	return Line{From: s.P1, To: s.P2, Width: SegmentWidth, Color: ColorInk}
}
