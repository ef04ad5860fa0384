package webserver

import (
	"github.com/psidex/graphed/internal/surface"
)

// Messages sent to the browser. Messages from the browser decode straight into
// editor.Event.

type helloMessage struct {
	Type   string `json:"type"` // always "hello"
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func newHello(width, height int) helloMessage {
	return helloMessage{Type: "hello", Width: width, Height: height}
}

type frameMessage struct {
	Type string       `json:"type"` // always "frame"
	Ops  []surface.Op `json:"ops"`
}

func newFrame(ops []surface.Op) frameMessage {
	return frameMessage{Type: "frame", Ops: ops}
}
