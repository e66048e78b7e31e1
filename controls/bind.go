package controls

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Alia5/ctrlbind/trigger"
)

// Bind associates one trigger with one target. Kind selects which trigger
// and target fields are meaningful.
type Bind[F Target, S Target, V ValueTarget] struct {
	Kind TargetKind

	FireTrigger trigger.Fire
	FireTarget  F

	SwitchTrigger trigger.Holdable
	SwitchTarget  S

	ValueTrigger trigger.Value
	ValueTarget  V
}

// TargetName is the name of the bound target.
func (b Bind[F, S, V]) TargetName() string {
	switch b.Kind {
	case TargetFire:
		return b.FireTarget.String()
	case TargetSwitch:
		return b.SwitchTarget.String()
	case TargetValue:
		return b.ValueTarget.String()
	default:
		return ""
	}
}

// TriggerName renders the bound trigger.
func (b Bind[F, S, V]) TriggerName() string {
	switch b.Kind {
	case TargetFire:
		return b.FireTrigger.String()
	case TargetSwitch:
		return b.SwitchTrigger.String()
	case TargetValue:
		return b.ValueTrigger.String()
	default:
		return ""
	}
}

func (b Bind[F, S, V]) String() string {
	return fmt.Sprintf("%s %s <- %s", b.Kind, b.TargetName(), b.TriggerName())
}

// AddBind inserts b. Adding an existing binding is a no-op.
func (c *Controls[F, S, V]) AddBind(b Bind[F, S, V]) {
	switch b.Kind {
	case TargetFire:
		c.AddFireBind(b.FireTrigger, b.FireTarget)
	case TargetSwitch:
		c.AddSwitchBind(b.SwitchTrigger, b.SwitchTarget)
	case TargetValue:
		c.AddValueBind(b.ValueTrigger, b.ValueTarget)
	}
}

// RemoveBind deletes b. Removing an absent binding is a no-op.
func (c *Controls[F, S, V]) RemoveBind(b Bind[F, S, V]) {
	switch b.Kind {
	case TargetFire:
		c.RemoveFireBind(b.FireTrigger, b.FireTarget)
	case TargetSwitch:
		c.RemoveSwitchBind(b.SwitchTrigger, b.SwitchTarget)
	case TargetValue:
		c.RemoveValueBind(b.ValueTrigger, b.ValueTarget)
	}
}

// AddFireBind fires target on the press edge of a holdable trigger or on
// every wheel notch in the trigger's direction.
func (c *Controls[F, S, V]) AddFireBind(t trigger.Fire, target F) {
	switch t.Kind {
	case trigger.FireHoldable:
		c.holdable(t.Holdable).onPress.add(target)
	case trigger.FireWheelTick:
		switch t.Direction {
		case trigger.WheelUp:
			c.wheel.onUp.add(target)
		case trigger.WheelDown:
			c.wheel.onDown.add(target)
		}
	}
}

// AddSwitchBind keeps target Active while h is held. If h is already held
// and the binding is new, target is activated immediately.
func (c *Controls[F, S, V]) AddSwitchBind(h trigger.Holdable, target S) {
	st := c.holdable(h)
	if st.whileDown.add(target) && st.overall > 0 {
		c.logger.Debug("switch bound to held trigger", "trigger", h, "target", target)
		c.switchInc(target)
	}
}

// AddValueBind routes samples of t to target.
func (c *Controls[F, S, V]) AddValueBind(t trigger.Value, target V) {
	switch t.Kind {
	case trigger.ValueAxis:
		set, ok := c.axes[t.Axis]
		if !ok {
			set = &orderedSet[V]{}
			c.axes[t.Axis] = set
		}
		set.add(target)
	case trigger.ValueMouseWheel:
		c.wheel.onChange.add(target)
	case trigger.ValueMouseX:
		c.mouseX.add(target)
	case trigger.ValueMouseY:
		c.mouseY.add(target)
	}
}

// RemoveFireBind is the inverse of AddFireBind.
func (c *Controls[F, S, V]) RemoveFireBind(t trigger.Fire, target F) {
	switch t.Kind {
	case trigger.FireHoldable:
		if st, ok := c.holdables[t.Holdable]; ok {
			st.onPress.remove(target)
		}
	case trigger.FireWheelTick:
		switch t.Direction {
		case trigger.WheelUp:
			c.wheel.onUp.remove(target)
		case trigger.WheelDown:
			c.wheel.onDown.remove(target)
		}
	}
}

// RemoveSwitchBind is the inverse of AddSwitchBind. If h is held while the
// binding is removed, target loses one active trigger and may go Inactive.
func (c *Controls[F, S, V]) RemoveSwitchBind(h trigger.Holdable, target S) {
	st, ok := c.holdables[h]
	if !ok {
		return
	}
	if st.whileDown.remove(target) && st.overall > 0 {
		c.logger.Debug("switch unbound from held trigger", "trigger", h, "target", target)
		c.switchDec(target)
	}
}

// RemoveValueBind is the inverse of AddValueBind.
func (c *Controls[F, S, V]) RemoveValueBind(t trigger.Value, target V) {
	switch t.Kind {
	case trigger.ValueAxis:
		if set, ok := c.axes[t.Axis]; ok {
			set.remove(target)
		}
	case trigger.ValueMouseWheel:
		c.wheel.onChange.remove(target)
	case trigger.ValueMouseX:
		c.mouseX.remove(target)
	case trigger.ValueMouseY:
		c.mouseY.remove(target)
	}
}

// Binds lists every binding, sorted by target name, then family, then
// trigger.
func (c *Controls[F, S, V]) Binds() []Bind[F, S, V] {
	var out []Bind[F, S, V]
	fire := func(t trigger.Fire, target F) {
		out = append(out, Bind[F, S, V]{Kind: TargetFire, FireTrigger: t, FireTarget: target})
	}
	value := func(t trigger.Value, set *orderedSet[V]) {
		for _, target := range set.items {
			out = append(out, Bind[F, S, V]{Kind: TargetValue, ValueTrigger: t, ValueTarget: target})
		}
	}

	for _, h := range c.holdableOrder {
		st := c.holdables[h]
		for _, target := range st.onPress.items {
			fire(trigger.OnPress(h), target)
		}
		for _, target := range st.whileDown.items {
			out = append(out, Bind[F, S, V]{Kind: TargetSwitch, SwitchTrigger: h, SwitchTarget: target})
		}
	}
	for _, target := range c.wheel.onUp.items {
		fire(trigger.WheelTick(trigger.WheelUp), target)
	}
	for _, target := range c.wheel.onDown.items {
		fire(trigger.WheelTick(trigger.WheelDown), target)
	}
	value(trigger.MouseWheel(), &c.wheel.onChange)
	value(trigger.MouseX(), &c.mouseX)
	value(trigger.MouseY(), &c.mouseY)
	for axis, set := range c.axes {
		value(trigger.Axis(axis), set)
	}

	slices.SortStableFunc(out, func(a, b Bind[F, S, V]) int {
		return cmp.Or(
			cmp.Compare(a.TargetName(), b.TargetName()),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.TriggerName(), b.TriggerName()),
		)
	})
	return out
}
