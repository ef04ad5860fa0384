package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// script is a recorded sequence of pointer events, written as a TOML array of
// tables:
//
//	[[event]]
//	type = "pointerdown"
//	button = 0
//	x = 50
//	y = 50
type script struct {
	Events []Event `toml:"event"`
}

// ParseScript reads a TOML event script.
func ParseScript(r io.Reader) ([]Event, error) {
	var s script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode event script: %w", err)
	}
	for i, ev := range s.Events {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return s.Events, nil
}

func LoadScript(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScript(f)
}

// Replay applies events in order.
func (e *Editor) Replay(events []Event) {
	for _, ev := range events {
		e.Handle(ev)
	}
}
