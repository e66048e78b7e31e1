// Package input defines the raw device-event vocabulary consumed by
// controls.Controls. Hosts translate their window-system or device events
// into these types and deliver them together with the originating DeviceID.
package input

import (
	"fmt"

	"github.com/Alia5/ctrlbind/trigger"
)

// DeviceID identifies a physical input device for the lifetime of its
// connection. Values are chosen by the host.
type DeviceID uint64

// ElementState is the edge reported for a holdable input.
type ElementState uint8

const (
	Pressed ElementState = iota + 1
	Released
)

func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("ElementState(%d)", uint8(s))
	}
}

// Event is a raw device event. The set of implementations is closed.
type Event interface {
	isEvent()
}

// ScrollKind discriminates wheel deltas.
type ScrollKind uint8

const (
	// LineDelta counts wheel notches (lines).
	LineDelta ScrollKind = iota + 1
	// PixelDelta is a precise, pixel based scroll amount.
	PixelDelta
)

// ScrollDelta is the amount scrolled by a single wheel event.
type ScrollDelta struct {
	Kind ScrollKind
	X, Y float64
}

// Lines builds a line based delta.
func Lines(x, y float64) ScrollDelta {
	return ScrollDelta{Kind: LineDelta, X: x, Y: y}
}

// Pixels builds a pixel based delta.
func Pixels(x, y float64) ScrollDelta {
	return ScrollDelta{Kind: PixelDelta, X: x, Y: y}
}

// MouseWheel reports wheel movement.
type MouseWheel struct {
	Delta ScrollDelta
}

// Motion reports a new sample on a raw device axis.
type Motion struct {
	Axis  uint32
	Value float64
}

// MouseMotion reports relative pointer movement.
type MouseMotion struct {
	DX, DY float64
}

// Button reports a device button edge.
type Button struct {
	Button uint32
	State  ElementState
}

// Key reports a keyboard edge. VirtualKey is trigger.KeyNone when the host
// could not map the scan code to a virtual key.
type Key struct {
	ScanCode   uint32
	VirtualKey trigger.KeyCode
	State      ElementState
}

// Removed reports that the device disconnected.
type Removed struct{}

func (MouseWheel) isEvent()  {}
func (Motion) isEvent()      {}
func (MouseMotion) isEvent() {}
func (Button) isEvent()      {}
func (Key) isEvent()         {}
func (Removed) isEvent()     {}

// Describe renders an event for logs and traces.
func Describe(ev Event) string {
	switch e := ev.(type) {
	case MouseWheel:
		if e.Delta.Kind == PixelDelta {
			return fmt.Sprintf("wheel px(%g,%g)", e.Delta.X, e.Delta.Y)
		}
		return fmt.Sprintf("wheel lines(%g,%g)", e.Delta.X, e.Delta.Y)
	case Motion:
		return fmt.Sprintf("motion axis=%d value=%g", e.Axis, e.Value)
	case MouseMotion:
		return fmt.Sprintf("mouse-motion dx=%g dy=%g", e.DX, e.DY)
	case Button:
		return fmt.Sprintf("button %d %s", e.Button, e.State)
	case Key:
		if e.VirtualKey == trigger.KeyNone {
			return fmt.Sprintf("key sc=%d %s", e.ScanCode, e.State)
		}
		return fmt.Sprintf("key sc=%d vk=%s %s", e.ScanCode, e.VirtualKey, e.State)
	case Removed:
		return "removed"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
