// Package host owns the frame loop. Input sources hand events to a Driver from
// any goroutine; the Driver applies them and draws frames on its own.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/psidex/graphed/internal/editor"
	"github.com/psidex/graphed/internal/lib"
	"github.com/psidex/graphed/internal/surface"
)

const DefaultInterval = time.Second / 60

// Driver serialises events into an Editor and redraws it on a fixed cadence.
// Only the goroutine calling Tick or Run touches the editor and its graph.
type Driver struct {
	editor   *editor.Editor
	surface  surface.Surface
	events   *lib.Queue[editor.Event]
	interval time.Duration
	log      *slog.Logger
	frames   uint64
}

type Option func(*Driver)

func WithInterval(interval time.Duration) Option {
	return func(d *Driver) {
		d.interval = interval
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(d *Driver) {
		d.log = log
	}
}

func NewDriver(ed *editor.Editor, s surface.Surface, opts ...Option) *Driver {
	d := &Driver{
		editor:   ed,
		surface:  s,
		events:   lib.NewQueue[editor.Event](),
		interval: DefaultInterval,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch queues an event for the next tick. It is safe to call from any
// goroutine.
func (d *Driver) Dispatch(ev editor.Event) {
	d.events.Enqueue(ev)
}

// Pending returns the number of events waiting for the next tick.
func (d *Driver) Pending() int {
	return d.events.Size()
}

// Frames returns how many frames have been drawn.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Tick applies every queued event in arrival order and then draws one frame.
func (d *Driver) Tick() error {
	for _, ev := range d.events.Drain() {
		d.editor.Handle(ev)
	}

	d.surface.Clear()
	d.editor.Display(d.surface)
	d.frames++

	if f, ok := d.surface.(surface.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush frame %d: %w", d.frames, err)
		}
	}
	return nil
}

// Run ticks until ctx is done or a frame fails to flush. It returns ctx.Err()
// on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.Debug("Frame loop started", "interval", d.interval)

	for {
		select {
		case <-ctx.Done():
			d.log.Debug("Frame loop stopped", "frames", d.frames)
			return ctx.Err()
		case <-ticker.C:
			if err := d.Tick(); err != nil {
				return err
			}
		}
	}
}
