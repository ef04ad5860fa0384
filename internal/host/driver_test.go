package host

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/graphed/internal/editor"
	"github.com/psidex/graphed/internal/geom"
	"github.com/psidex/graphed/internal/graph"
	"github.com/psidex/graphed/internal/lib"
	"github.com/psidex/graphed/internal/surface"
)

type flushingRecorder struct {
	*surface.Recorder
	flushed int
	err     error
}

func (f *flushingRecorder) Flush() error {
	f.flushed++
	return f.err
}

func TestTickAppliesEventsInOrderBeforeDrawing(t *testing.T) {
	g := graph.New()
	rec := surface.NewRecorder()
	d := NewDriver(editor.New(g), rec, WithLogger(lib.DiscardLogger()))

	d.Dispatch(editor.Down(editor.ButtonPrimary, 10, 10))
	d.Dispatch(editor.Up())
	d.Dispatch(editor.Down(editor.ButtonPrimary, 100, 10))
	assert.Equal(t, 3, d.Pending())
	assert.Equal(t, 0, g.Len(), "nothing happens before the tick")

	require.NoError(t, d.Tick())

	assert.Equal(t, 0, d.Pending())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.SegmentCount())
	assert.Equal(t, uint64(1), d.Frames())

	ops := rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, surface.OpClear, ops[0].Kind)
	assert.Equal(t, surface.OpLine, ops[1].Kind)
	assert.Equal(t, geom.Seg(geom.Pt(10, 10), geom.Pt(100, 10)), geom.Seg(ops[1].Line.From, ops[1].Line.To))
}

func TestTickFlushes(t *testing.T) {
	s := &flushingRecorder{Recorder: surface.NewRecorder()}
	d := NewDriver(editor.New(graph.New()), s)

	require.NoError(t, d.Tick())
	require.NoError(t, d.Tick())
	assert.Equal(t, 2, s.flushed)

	s.err = errors.New("closed")
	err := d.Tick()
	require.Error(t, err)
	assert.ErrorIs(t, err, s.err)
}

func TestRunStopsOnCancel(t *testing.T) {
	d := NewDriver(editor.New(graph.New()), surface.NewRecorder(),
		WithInterval(time.Millisecond), WithLogger(lib.DiscardLogger()))
	ctx, cancel := context.WithCancel(context.Background())

	var runErr error
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = d.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.ErrorIs(t, runErr, context.Canceled)
	assert.Greater(t, d.Frames(), uint64(0))
}

func TestRunStopsOnFlushError(t *testing.T) {
	s := &flushingRecorder{Recorder: surface.NewRecorder(), err: errors.New("gone")}
	d := NewDriver(editor.New(graph.New()), s, WithInterval(time.Millisecond))

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, s.err)
	assert.Equal(t, 1, s.flushed)
}
