// Package replay feeds scripted raw input through a Controls value and
// collects the semantic events each frame produces.
//
// A script is YAML (or JSON):
//
//	frames:
//	  - name: aim
//	    events:
//	      - {device: 2, button: 3, state: pressed}
//	      - {device: 2, mouse: {dx: 4, dy: -1}}
//	    expect: ["Switch(RMBSwitch, Active)", "Value(MouseX, 1)"]
//	  - name: unplug
//	    events:
//	      - {device: 2, removed: true}
package replay

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

// Script is an ordered list of frames. Events are drained after every frame.
type Script struct {
	Frames []Frame `yaml:"frames" json:"frames"`
}

type Frame struct {
	Name   string   `yaml:"name" json:"name"`
	Events []Step   `yaml:"events" json:"events"`
	Expect []string `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Step describes a single raw event. Exactly one of the event fields must be
// set.
type Step struct {
	Device   input.DeviceID `yaml:"device" json:"device"`
	Button   *uint32        `yaml:"button,omitempty" json:"button,omitempty"`
	Key      string         `yaml:"key,omitempty" json:"key,omitempty"`
	ScanCode *uint32        `yaml:"scancode,omitempty" json:"scancode,omitempty"`
	State    string         `yaml:"state,omitempty" json:"state,omitempty"`
	Motion   *Motion        `yaml:"motion,omitempty" json:"motion,omitempty"`
	Wheel    *Wheel         `yaml:"wheel,omitempty" json:"wheel,omitempty"`
	Mouse    *Mouse         `yaml:"mouse,omitempty" json:"mouse,omitempty"`
	Removed  bool           `yaml:"removed,omitempty" json:"removed,omitempty"`
}

type Motion struct {
	Axis  uint32  `yaml:"axis" json:"axis"`
	Value float64 `yaml:"value" json:"value"`
}

type Wheel struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Pixels bool    `yaml:"pixels,omitempty" json:"pixels,omitempty"`
}

type Mouse struct {
	DX float64 `yaml:"dx" json:"dx"`
	DY float64 `yaml:"dy" json:"dy"`
}

var errNoEvent = errors.New("step sets no event")

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a script and checks that every step converts to an event.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	for i, f := range s.Frames {
		for j, st := range f.Events {
			if _, err := st.Event(); err != nil {
				return nil, fmt.Errorf("frame %d (%s) step %d: %w", i, f.Name, j, err)
			}
		}
	}
	return &s, nil
}

// Event converts the step to a raw input event.
func (s Step) Event() (input.Event, error) {
	var out []input.Event
	isKey := s.Key != "" || s.ScanCode != nil
	if s.Button != nil || isKey {
		state, err := parseState(s.State)
		if err != nil {
			return nil, err
		}
		if s.Button != nil {
			out = append(out, input.Button{Button: *s.Button, State: state})
		}
		if isKey {
			k := input.Key{State: state}
			if s.ScanCode != nil {
				k.ScanCode = *s.ScanCode
			}
			if s.Key != "" {
				vk, ok := trigger.ParseKeyCode(s.Key)
				if !ok {
					return nil, fmt.Errorf("unknown key %q", s.Key)
				}
				k.VirtualKey = vk
			}
			out = append(out, k)
		}
	} else if s.State != "" {
		return nil, fmt.Errorf("state %q without button or key", s.State)
	}
	if s.Motion != nil {
		out = append(out, input.Motion{Axis: s.Motion.Axis, Value: s.Motion.Value})
	}
	if s.Wheel != nil {
		d := input.Lines(s.Wheel.X, s.Wheel.Y)
		if s.Wheel.Pixels {
			d = input.Pixels(s.Wheel.X, s.Wheel.Y)
		}
		out = append(out, input.MouseWheel{Delta: d})
	}
	if s.Mouse != nil {
		out = append(out, input.MouseMotion{DX: s.Mouse.DX, DY: s.Mouse.DY})
	}
	if s.Removed {
		out = append(out, input.Removed{})
	}

	switch len(out) {
	case 0:
		return nil, errNoEvent
	case 1:
		return out[0], nil
	default:
		return nil, fmt.Errorf("step sets %d events, want one", len(out))
	}
}

func parseState(s string) (input.ElementState, error) {
	switch s {
	case "pressed", "press", "down":
		return input.Pressed, nil
	case "released", "release", "up":
		return input.Released, nil
	case "":
		return 0, errors.New("missing state")
	default:
		return 0, fmt.Errorf("unknown state %q", s)
	}
}
