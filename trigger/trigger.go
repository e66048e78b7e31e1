// Package trigger defines the closed set of physical triggers a binding can
// reference.
//
// Triggers come in three capability groups:
//
//   - Holdable: inputs with pressed and released edges (scan codes, virtual
//     key codes, device buttons).
//   - Wheel ticks: discrete mouse-wheel notches without a held state.
//   - Values: continuous scalar inputs (raw axes, the wheel as a scalar, and
//     relative mouse motion on X and Y).
//
// All trigger types are small comparable values and may be used as map keys.
package trigger

import (
	"fmt"
	"strconv"
)

// HoldableKind discriminates the channel a Holdable trigger is read from.
type HoldableKind uint8

const (
	HoldableScanCode HoldableKind = iota + 1
	HoldableKeyCode
	HoldableButton
)

func (k HoldableKind) String() string {
	switch k {
	case HoldableScanCode:
		return "ScanCode"
	case HoldableKeyCode:
		return "KeyCode"
	case HoldableButton:
		return "Button"
	default:
		return "HoldableKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Holdable is a physical input with pressed and released edges.
type Holdable struct {
	Kind HoldableKind
	Code uint32
}

// ScanCode returns the holdable trigger for a raw keyboard scan code.
func ScanCode(sc uint32) Holdable {
	return Holdable{Kind: HoldableScanCode, Code: sc}
}

// Key returns the holdable trigger for a virtual key code.
func Key(k KeyCode) Holdable {
	return Holdable{Kind: HoldableKeyCode, Code: uint32(k)}
}

// Button returns the holdable trigger for a device button id.
func Button(id uint32) Holdable {
	return Holdable{Kind: HoldableButton, Code: id}
}

// KeyCode returns the virtual key of a HoldableKeyCode trigger, KeyNone otherwise.
func (h Holdable) KeyCode() KeyCode {
	if h.Kind != HoldableKeyCode {
		return KeyNone
	}
	return KeyCode(h.Code)
}

func (h Holdable) String() string {
	switch h.Kind {
	case HoldableKeyCode:
		return "Key(" + KeyCode(h.Code).String() + ")"
	default:
		return fmt.Sprintf("%s(%d)", h.Kind, h.Code)
	}
}

// WheelDirection is the direction of a single mouse-wheel notch.
type WheelDirection uint8

const (
	WheelUp WheelDirection = iota + 1
	WheelDown
)

func (d WheelDirection) String() string {
	switch d {
	case WheelUp:
		return "Up"
	case WheelDown:
		return "Down"
	default:
		return "WheelDirection(" + strconv.Itoa(int(d)) + ")"
	}
}

// FireKind discriminates Fire triggers.
type FireKind uint8

const (
	FireHoldable FireKind = iota + 1
	FireWheelTick
)

// Fire is a trigger able to produce one-shot events: the press edge of a
// holdable trigger, or a wheel notch.
type Fire struct {
	Kind      FireKind
	Holdable  Holdable
	Direction WheelDirection
}

// OnPress fires on the press edge of h.
func OnPress(h Holdable) Fire {
	return Fire{Kind: FireHoldable, Holdable: h}
}

// WheelTick fires once per wheel notch in direction d.
func WheelTick(d WheelDirection) Fire {
	return Fire{Kind: FireWheelTick, Direction: d}
}

func (f Fire) String() string {
	switch f.Kind {
	case FireHoldable:
		return f.Holdable.String()
	case FireWheelTick:
		return "MouseWheel" + f.Direction.String()
	default:
		return "Fire(?)"
	}
}

// ValueKind discriminates Value triggers.
type ValueKind uint8

const (
	ValueMouseX ValueKind = iota + 1
	ValueMouseY
	ValueMouseWheel
	ValueAxis
)

// Value is a trigger producing a continuous scalar.
// Axis is only meaningful for ValueAxis.
type Value struct {
	Kind ValueKind
	Axis uint32
}

// MouseX is relative horizontal mouse motion.
func MouseX() Value { return Value{Kind: ValueMouseX} }

// MouseY is relative vertical mouse motion.
func MouseY() Value { return Value{Kind: ValueMouseY} }

// MouseWheel is the vertical wheel delta read as a scalar.
func MouseWheel() Value { return Value{Kind: ValueMouseWheel} }

// Axis is a raw device axis.
func Axis(id uint32) Value { return Value{Kind: ValueAxis, Axis: id} }

func (v Value) String() string {
	switch v.Kind {
	case ValueMouseX:
		return "MouseX"
	case ValueMouseY:
		return "MouseY"
	case ValueMouseWheel:
		return "MouseWheel"
	case ValueAxis:
		return "Axis(" + strconv.FormatUint(uint64(v.Axis), 10) + ")"
	default:
		return "Value(?)"
	}
}
