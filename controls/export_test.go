package controls

import (
	"maps"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

// Test hooks into the press counters.

func (c *Controls[F, S, V]) OverallCount(h trigger.Holdable) uint32 {
	if st, ok := c.holdables[h]; ok {
		return st.overall
	}
	return 0
}

func (c *Controls[F, S, V]) DeviceCounts(h trigger.Holdable) map[input.DeviceID]uint32 {
	if st, ok := c.holdables[h]; ok {
		return maps.Clone(st.devices)
	}
	return nil
}

func (c *Controls[F, S, V]) SwitchCount(s S) uint32 {
	return c.switches[s]
}

func (c *Controls[F, S, V]) Holdables() []trigger.Holdable {
	return append([]trigger.Holdable(nil), c.holdableOrder...)
}

func (c *Controls[F, S, V]) WhileDown(h trigger.Holdable) []S {
	if st, ok := c.holdables[h]; ok {
		return append([]S(nil), st.whileDown.items...)
	}
	return nil
}
