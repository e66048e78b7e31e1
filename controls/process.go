package controls

import (
	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

// Process translates one raw event from dev and queues the resulting
// semantic events. Unknown event types are ignored.
func (c *Controls[F, S, V]) Process(dev input.DeviceID, ev input.Event) {
	switch e := ev.(type) {
	case input.MouseWheel:
		c.onMouseWheel(e.Delta)
	case input.Motion:
		c.onMotion(e.Axis, e.Value)
	case input.MouseMotion:
		c.onMouseMotion(e.DX, e.DY)
	case input.Button:
		c.handleHoldable(trigger.Button(e.Button), dev, e.State)
	case input.Key:
		c.handleHoldable(trigger.ScanCode(e.ScanCode), dev, e.State)
		if e.VirtualKey != trigger.KeyNone {
			c.handleHoldable(trigger.Key(e.VirtualKey), dev, e.State)
		}
	case input.Removed:
		c.removeDevice(dev)
	}
}

func (c *Controls[F, S, V]) onMouseWheel(delta input.ScrollDelta) {
	// Pixel deltas have no notch semantics.
	if delta.Kind != input.LineDelta {
		return
	}
	y := delta.Y
	up, down := y < 0, y > 0
	if c.opts.naturalWheel {
		up, down = down, up
	}
	if up {
		for _, target := range c.wheel.onUp.items {
			c.events.push(Event[F, S, V]{Kind: EventFire, Fire: target})
		}
	}
	if down {
		for _, target := range c.wheel.onDown.items {
			c.events.push(Event[F, S, V]{Kind: EventFire, Fire: target})
		}
	}
	for _, target := range c.wheel.onChange.items {
		if c.opts.scaledWheel {
			c.pushScaled(target, y)
		} else if y != 0 {
			c.events.push(Event[F, S, V]{Kind: EventValue, Value: target, Amount: y})
		}
	}
}

func (c *Controls[F, S, V]) onMotion(axis uint32, value float64) {
	set, ok := c.axes[axis]
	if !ok {
		return
	}
	for _, target := range set.items {
		c.pushScaled(target, value)
	}
}

func (c *Controls[F, S, V]) onMouseMotion(dx, dy float64) {
	for _, target := range c.mouseX.items {
		c.pushScaled(target, dx)
	}
	for _, target := range c.mouseY.items {
		c.pushScaled(target, dy)
	}
}

// pushScaled queues raw * factor * base factor unless the result is zero.
func (c *Controls[F, S, V]) pushScaled(target V, raw float64) {
	v := raw * c.Factor(target) * target.BaseFactor()
	if v == 0 {
		return
	}
	c.events.push(Event[F, S, V]{Kind: EventValue, Value: target, Amount: v})
}
