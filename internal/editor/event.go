package editor

import "fmt"

// Button identifies a pointer button using the DOM MouseEvent.button numbering.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

type EventKind string

const (
	PointerMove EventKind = "pointermove"
	PointerDown EventKind = "pointerdown"
	PointerUp   EventKind = "pointerup"
	ContextMenu EventKind = "contextmenu"
)

// Event is a pointer event delivered by an input source. X and Y are only
// meaningful for PointerMove and PointerDown, Button only for PointerDown.
type Event struct {
	Kind   EventKind `json:"type" toml:"type"`
	X      float64   `json:"x" toml:"x"`
	Y      float64   `json:"y" toml:"y"`
	Button Button    `json:"button" toml:"button"`
}

func Move(x, y float64) Event {
	return Event{Kind: PointerMove, X: x, Y: y}
}

func Down(button Button, x, y float64) Event {
	return Event{Kind: PointerDown, X: x, Y: y, Button: button}
}

func Up() Event {
	return Event{Kind: PointerUp}
}

// Validate reports events an Editor would not understand.
func (ev Event) Validate() error {
	switch ev.Kind {
	case PointerMove, PointerUp, ContextMenu:
		return nil
	case PointerDown:
		if ev.Button < ButtonPrimary || ev.Button > ButtonSecondary {
			return fmt.Errorf("unsupported button %d", ev.Button)
		}
		return nil
	default:
		return fmt.Errorf("unknown event type %q", ev.Kind)
	}
}
