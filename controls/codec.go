package controls

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"

	"github.com/Alia5/ctrlbind/trigger"
)

// Section names of a controls document.
const (
	SectionBinds   = "binds"
	SectionFactors = "factors"
)

// Trigger names reserved for non-holdable triggers.
const (
	nameWheelUp   = "MouseWheelUp"
	nameWheelDown = "MouseWheelDown"
	nameWheel     = "MouseWheel"
	nameMouseX    = "MouseX"
	nameMouseY    = "MouseY"
	prefixButton  = "Button"
)

// Decode parses a TOML controls document into a fresh Controls.
func Decode[F Target, S Target, V ValueTarget](data []byte, names Names[F, S, V], opts ...Option) (*Controls[F, S, V], error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, configErr(ErrConfigShape, "%s", err.Error())
	}
	return FromTOML(tree, names, opts...)
}

// FromTOML builds a Controls from a parsed document with a [binds] and a
// [factors] table. Nothing is returned unless the whole document is valid.
func FromTOML[F Target, S Target, V ValueTarget](tree *toml.Tree, names Names[F, S, V], opts ...Option) (*Controls[F, S, V], error) {
	if tree == nil {
		return nil, configErr(ErrConfigShape, "controls must be a table")
	}
	binds, err := section(tree, SectionBinds)
	if err != nil {
		return nil, err
	}
	factors, err := section(tree, SectionFactors)
	if err != nil {
		return nil, err
	}

	c := New[F, S, V](opts...)

	for _, name := range sortedKeys(binds) {
		target, ok := names.parse(name)
		if !ok {
			return nil, configErr(ErrUnknownTarget, "%q", name)
		}
		raw := binds.GetPath([]string{name})
		switch target.kind {
		case TargetFire:
			t, err := fireFromTOML(raw)
			if err != nil {
				return nil, err
			}
			c.AddFireBind(t, target.fire)
		case TargetSwitch:
			t, err := holdableFromTOML(raw, TargetSwitch)
			if err != nil {
				return nil, err
			}
			c.AddSwitchBind(t, target.sw)
		case TargetValue:
			t, err := valueFromTOML(raw)
			if err != nil {
				return nil, err
			}
			c.AddValueBind(t, target.val)
		}
	}

	for _, name := range sortedKeys(factors) {
		target, ok := names.parse(name)
		if !ok {
			return nil, configErr(ErrUnknownTarget, "%q", name)
		}
		if target.kind != TargetValue {
			return nil, configErr(ErrTriggerKindMismatch, "factor for %s target %q, expected value target", target.kind, name)
		}
		switch f := factors.GetPath([]string{name}).(type) {
		case float64:
			c.SetFactor(target.val, f)
		case int64:
			c.SetFactor(target.val, float64(f))
		default:
			return nil, configErr(ErrTriggerKindMismatch, "factor for %q must be a float, got %s", name, describeTOML(f))
		}
	}

	return c, nil
}

// Encode renders the bindings and factors as a TOML document with keys in
// sorted order.
func (c *Controls[F, S, V]) Encode() ([]byte, error) {
	tree, err := c.ToTOML()
	if err != nil {
		return nil, err
	}
	return tree.Marshal()
}

// ToTOML is the inverse of FromTOML. A document key holds a single trigger,
// so when a target is bound several times only the first binding in Binds
// order is written.
func (c *Controls[F, S, V]) ToTOML() (*toml.Tree, error) {
	binds := map[string]any{}
	for _, b := range c.Binds() {
		name := b.TargetName()
		if _, dup := binds[name]; dup {
			c.logger.Warn("target bound more than once, dropping binding from document", "bind", b.String())
			continue
		}
		switch b.Kind {
		case TargetFire:
			binds[name] = fireToTOML(b.FireTrigger)
		case TargetSwitch:
			binds[name] = holdableToTOML(b.SwitchTrigger)
		case TargetValue:
			binds[name] = valueToTOML(b.ValueTrigger)
		}
	}
	factors := map[string]any{}
	for target, f := range c.factors {
		factors[target.String()] = f
	}
	return toml.TreeFromMap(map[string]any{
		SectionBinds:   binds,
		SectionFactors: factors,
	})
}

func section(tree *toml.Tree, name string) (*toml.Tree, error) {
	if !tree.Has(name) {
		return nil, configErr(ErrConfigShape, "no %q section found", name)
	}
	sub, ok := tree.GetPath([]string{name}).(*toml.Tree)
	if !ok {
		return nil, configErr(ErrConfigShape, "%q must be a table", name)
	}
	return sub, nil
}

func sortedKeys(tree *toml.Tree) []string {
	keys := tree.Keys()
	slices.Sort(keys)
	return keys
}

func describeTOML(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case *toml.Tree:
		return "table"
	case nil:
		return "nothing"
	default:
		return "array"
	}
}

func idFromTOML(i int64, what string) (uint32, error) {
	if i < 0 || i > math.MaxUint32 {
		return 0, configErr(ErrOutOfRange, "invalid %s %d", what, i)
	}
	return uint32(i), nil
}

// isValueTriggerName reports names that only value targets accept.
func isValueTriggerName(s string) bool {
	return s == nameWheel || s == nameMouseX || s == nameMouseY
}

func isWheelTickName(s string) bool {
	return s == nameWheelUp || s == nameWheelDown
}

// holdableFromTOML accepts an integer scan code, "Button<N>" or a named key.
// family is the target family asking, used to classify mismatches.
func holdableFromTOML(raw any, family TargetKind) (trigger.Holdable, error) {
	switch v := raw.(type) {
	case int64:
		sc, err := idFromTOML(v, "scan code")
		if err != nil {
			return trigger.Holdable{}, err
		}
		return trigger.ScanCode(sc), nil
	case string:
		if digits, ok := strings.CutPrefix(v, prefixButton); ok && digits != "" {
			n, err := strconv.ParseUint(digits, 10, 32)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return trigger.Holdable{}, configErr(ErrOutOfRange, "invalid button %q", v)
				}
				return trigger.Holdable{}, configErr(ErrUnknownTrigger, "unknown push button %q", v)
			}
			return trigger.Button(uint32(n)), nil
		}
		if k, ok := trigger.ParseKeyCode(v); ok {
			return trigger.Key(k), nil
		}
		if isValueTriggerName(v) || (family == TargetSwitch && isWheelTickName(v)) {
			return trigger.Holdable{}, configErr(ErrTriggerKindMismatch, "%q cannot be bound to a %s target", v, family)
		}
		return trigger.Holdable{}, configErr(ErrUnknownTrigger, "unknown push button %q", v)
	default:
		return trigger.Holdable{}, configErr(ErrTriggerKindMismatch, "%s trigger must be an integer or a string, got %s", family, describeTOML(raw))
	}
}

func fireFromTOML(raw any) (trigger.Fire, error) {
	if s, ok := raw.(string); ok {
		switch s {
		case nameWheelUp:
			return trigger.WheelTick(trigger.WheelUp), nil
		case nameWheelDown:
			return trigger.WheelTick(trigger.WheelDown), nil
		}
	}
	h, err := holdableFromTOML(raw, TargetFire)
	if err != nil {
		return trigger.Fire{}, err
	}
	return trigger.OnPress(h), nil
}

func valueFromTOML(raw any) (trigger.Value, error) {
	switch v := raw.(type) {
	case int64:
		axis, err := idFromTOML(v, "axis id")
		if err != nil {
			return trigger.Value{}, err
		}
		return trigger.Axis(axis), nil
	case string:
		switch v {
		case nameWheel:
			return trigger.MouseWheel(), nil
		case nameMouseX:
			return trigger.MouseX(), nil
		case nameMouseY:
			return trigger.MouseY(), nil
		}
		if _, err := fireFromTOML(v); err == nil {
			return trigger.Value{}, configErr(ErrTriggerKindMismatch, "%q cannot be bound to a value target", v)
		}
		return trigger.Value{}, configErr(ErrUnknownTrigger, "unknown axis %q", v)
	default:
		return trigger.Value{}, configErr(ErrTriggerKindMismatch, "axis must be an integer or a string, got %s", describeTOML(raw))
	}
}

func holdableToTOML(h trigger.Holdable) any {
	switch h.Kind {
	case trigger.HoldableScanCode:
		return int64(h.Code)
	case trigger.HoldableKeyCode:
		return h.KeyCode().String()
	default:
		return prefixButton + strconv.FormatUint(uint64(h.Code), 10)
	}
}

func fireToTOML(f trigger.Fire) any {
	if f.Kind == trigger.FireWheelTick {
		if f.Direction == trigger.WheelUp {
			return nameWheelUp
		}
		return nameWheelDown
	}
	return holdableToTOML(f.Holdable)
}

func valueToTOML(v trigger.Value) any {
	switch v.Kind {
	case trigger.ValueMouseX:
		return nameMouseX
	case trigger.ValueMouseY:
		return nameMouseY
	case trigger.ValueMouseWheel:
		return nameWheel
	default:
		return int64(v.Axis)
	}
}
