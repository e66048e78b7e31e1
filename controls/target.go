package controls

// Target is an application-defined identifier for a semantic action.
// String must return the name used in binding documents.
type Target interface {
	comparable
	String() string
}

// ValueTarget is a Target for scalar channels. BaseFactor is multiplied into
// every scaled sample in addition to the configurable per-target factor.
type ValueTarget interface {
	Target
	BaseFactor() float64
}

// Names parses textual target names back into targets. A nil parser never
// matches. Parsers are tried in the order Fire, Switch, Value; the first
// match wins.
type Names[F Target, S Target, V ValueTarget] struct {
	Fire   func(name string) (F, bool)
	Switch func(name string) (S, bool)
	Value  func(name string) (V, bool)
}

// TargetKind is the family a parsed target belongs to.
type TargetKind uint8

const (
	TargetFire TargetKind = iota + 1
	TargetSwitch
	TargetValue
)

func (k TargetKind) String() string {
	switch k {
	case TargetFire:
		return "fire"
	case TargetSwitch:
		return "switch"
	case TargetValue:
		return "value"
	default:
		return "unknown"
	}
}

// parsedTarget carries whichever target a name resolved to.
type parsedTarget[F Target, S Target, V ValueTarget] struct {
	kind TargetKind
	fire F
	sw   S
	val  V
}

func (n Names[F, S, V]) parse(name string) (parsedTarget[F, S, V], bool) {
	var p parsedTarget[F, S, V]
	if n.Fire != nil {
		if f, ok := n.Fire(name); ok {
			p.kind, p.fire = TargetFire, f
			return p, true
		}
	}
	if n.Switch != nil {
		if s, ok := n.Switch(name); ok {
			p.kind, p.sw = TargetSwitch, s
			return p, true
		}
	}
	if n.Value != nil {
		if v, ok := n.Value(name); ok {
			p.kind, p.val = TargetValue, v
			return p, true
		}
	}
	return p, false
}

// Kind reports which family name resolves to, or 0 if none.
func (n Names[F, S, V]) Kind(name string) TargetKind {
	p, ok := n.parse(name)
	if !ok {
		return 0
	}
	return p.kind
}
