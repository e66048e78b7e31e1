package controls

import (
	"fmt"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

// handleHoldable advances the press counters of h for one edge on dev.
// Only the 0->1 and 1->0 transitions of the overall counter emit events.
func (c *Controls[F, S, V]) handleHoldable(h trigger.Holdable, dev input.DeviceID, state input.ElementState) {
	st := c.holdable(h)
	switch state {
	case input.Pressed:
		st.devices[dev]++
		st.overall++
		if st.overall != 1 {
			return
		}
		for _, target := range st.onPress.items {
			c.events.push(Event[F, S, V]{Kind: EventFire, Fire: target})
		}
		for _, target := range st.whileDown.items {
			c.switchInc(target)
		}

	case input.Released:
		if st.devices[dev] == 0 || st.overall == 0 {
			c.violation("release", fmt.Sprintf("%s released on device %d while not held (device=%d overall=%d)",
				h, dev, st.devices[dev], st.overall))
			return
		}
		st.devices[dev]--
		if st.devices[dev] == 0 {
			delete(st.devices, dev)
		}
		st.overall--
		if st.overall != 0 {
			return
		}
		for _, target := range st.whileDown.items {
			c.switchDec(target)
		}
	}
}

// removeDevice forgets every press attributed to dev. Holdables that drop to
// zero release their Switch targets like a regular release would.
func (c *Controls[F, S, V]) removeDevice(dev input.DeviceID) {
	for _, h := range c.holdableOrder {
		st := c.holdables[h]
		n := st.devices[dev]
		if n == 0 {
			continue
		}
		delete(st.devices, dev)
		st.overall -= n
		c.logger.Debug("device removed while holding trigger", "device", dev, "trigger", h, "presses", n)
		if st.overall != 0 {
			continue
		}
		for _, target := range st.whileDown.items {
			c.switchDec(target)
		}
	}
}

func (c *Controls[F, S, V]) switchInc(target S) {
	c.switches[target]++
	if c.switches[target] == 1 {
		c.events.push(Event[F, S, V]{Kind: EventSwitch, Switch: target, State: Active})
	}
}

func (c *Controls[F, S, V]) switchDec(target S) {
	if c.switches[target] == 0 {
		c.violation("switch", fmt.Sprintf("switch counter of %s is already 0", target))
		return
	}
	c.switches[target]--
	if c.switches[target] == 0 {
		c.events.push(Event[F, S, V]{Kind: EventSwitch, Switch: target, State: Inactive})
	}
}

// violation reports a broken press/release protocol.
func (c *Controls[F, S, V]) violation(op, detail string) {
	if c.opts.strict {
		panic(&AssertionError{Op: op, Detail: detail})
	}
	c.logger.Warn("dropping unbalanced input", "op", op, "detail", detail)
}
