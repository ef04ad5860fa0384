package webserver

import (
	"reflect"

	"github.com/psidex/graphed/internal/surface"
)

type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// frameSurface records a frame's draw requests and sends them to the browser
// as one message on Flush. Frames identical to the last one sent are skipped.
type frameSurface struct {
	*surface.Recorder
	ws   jsonWriter
	last []surface.Op
	sent int
}

var _ surface.Flusher = (*frameSurface)(nil)

func newFrameSurface(ws jsonWriter) *frameSurface {
	return &frameSurface{
		Recorder: surface.NewRecorder(),
		ws:       ws,
	}
}

func (f *frameSurface) Flush() error {
	ops := f.Ops()
	if f.sent > 0 && reflect.DeepEqual(ops, f.last) {
		return nil
	}
	if err := f.ws.WriteJSON(newFrame(ops)); err != nil {
		return err
	}
	f.last = ops
	f.sent++
	return nil
}
