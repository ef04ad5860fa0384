package editor

import (
	"log/slog"

	"github.com/psidex/graphed/internal/geom"
	"github.com/psidex/graphed/internal/graph"
)

// DefaultHoverThreshold is how close, in surface units, the cursor must be to a
// point for it to be hovered.
const DefaultHoverThreshold = 10.0

// Editor turns pointer events into edits of a Graph. It holds the hover and
// selection state; the graph is supplied by the caller and never replaced.
//
// An Editor must only be used from one goroutine at a time.
type Editor struct {
	graph *graph.Graph
	log   *slog.Logger

	hoverThreshold   float64
	checkedPlacement bool

	hovered   graph.PointID
	selected  graph.PointID
	dragging  bool
	cursor    geom.Point
	hasCursor bool
}

type Option func(*Editor)

func WithHoverThreshold(threshold float64) Option {
	return func(e *Editor) {
		e.hoverThreshold = threshold
	}
}

// WithCheckedPlacement makes clicks on empty space go through
// Graph.TryAddPoint. When a point already sits at the exact click position it
// is selected instead of adding a duplicate.
func WithCheckedPlacement(checked bool) Option {
	return func(e *Editor) {
		e.checkedPlacement = checked
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

func New(g *graph.Graph, opts ...Option) *Editor {
	e := &Editor{
		graph:          g,
		log:            slog.Default(),
		hoverThreshold: DefaultHoverThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Graph() *graph.Graph {
	return e.graph
}

// Hovered returns the point under the cursor, if any.
func (e *Editor) Hovered() (graph.PointID, bool) {
	return e.hovered, e.hovered != graph.NoPoint
}

// Selected returns the selected point, if any.
func (e *Editor) Selected() (graph.PointID, bool) {
	return e.selected, e.selected != graph.NoPoint
}

func (e *Editor) Dragging() bool {
	return e.dragging
}

// Cursor returns the last pointer position, false before the first event.
func (e *Editor) Cursor() (geom.Point, bool) {
	return e.cursor, e.hasCursor
}

// PointerMove records the cursor, recomputes the hovered point and, while
// dragging, moves the selected point to the cursor.
func (e *Editor) PointerMove(x, y float64) {
	e.cursor = geom.Pt(x, y)
	e.hasCursor = true

	e.hovered, _ = e.graph.Nearest(e.cursor, e.hoverThreshold)

	if e.dragging {
		if !e.graph.MovePoint(e.selected, e.cursor) {
			// The selection is gone, nothing left to drag.
			e.dragging = false
		}
	}
}

// PointerDown handles a button press at (x, y).
func (e *Editor) PointerDown(button Button, x, y float64) {
	e.PointerMove(x, y)

	switch button {
	case ButtonSecondary:
		e.secondaryDown()
	case ButtonPrimary:
		e.primaryDown()
	default:
		e.log.Debug("Ignoring pointer button", "button", button)
	}
}

func (e *Editor) secondaryDown() {
	if e.selected != graph.NoPoint {
		e.selected = graph.NoPoint
		return
	}
	if e.hovered != graph.NoPoint {
		e.removePoint(e.hovered)
	}
}

func (e *Editor) primaryDown() {
	if e.hovered != graph.NoPoint {
		e.selectPoint(e.hovered)
		e.dragging = true
		return
	}

	id := e.placePoint(e.cursor)
	e.selectPoint(id)
	e.hovered = id
}

// placePoint adds a point for a click on empty space. Hover normally catches
// clicks near existing points before this, so the default is the unchecked add.
func (e *Editor) placePoint(p geom.Point) graph.PointID {
	if !e.checkedPlacement {
		return e.graph.AddPoint(p)
	}
	if id, ok := e.graph.TryAddPoint(p); ok {
		return id
	}
	id, _ := e.graph.Find(p)
	return id
}

// PointerUp ends any drag, whatever the button.
func (e *Editor) PointerUp() {
	e.dragging = false
}

// ContextMenu is a no-op; the input source suppresses the menu itself.
func (e *Editor) ContextMenu() {}

// selectPoint connects the previous selection to id, when there is one, and
// then selects id. Duplicate and self segments are dropped by the graph.
func (e *Editor) selectPoint(id graph.PointID) {
	if e.selected != graph.NoPoint {
		if e.graph.TryAddSegment(graph.Segment{P1: e.selected, P2: id}) {
			e.log.Debug("Added segment", "from", e.selected, "to", id)
		}
	}
	e.selected = id
}

func (e *Editor) removePoint(id graph.PointID) {
	e.graph.RemovePoint(id)
	e.hovered = graph.NoPoint
	if e.selected == id {
		e.selected = graph.NoPoint
	}
	e.log.Debug("Removed point", "point", id)
}

// Handle applies a single event.
func (e *Editor) Handle(ev Event) {
	switch ev.Kind {
	case PointerMove:
		e.PointerMove(ev.X, ev.Y)
	case PointerDown:
		e.PointerDown(ev.Button, ev.X, ev.Y)
	case PointerUp:
		e.PointerUp()
	case ContextMenu:
		e.ContextMenu()
	default:
		e.log.Warn("Unknown event kind", "kind", ev.Kind)
	}
}
