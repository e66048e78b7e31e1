package controls

import "fmt"

// SwitchState is the held state reported for a Switch target.
type SwitchState uint8

const (
	Active SwitchState = iota + 1
	Inactive
)

func (s SwitchState) String() string {
	switch s {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	default:
		return fmt.Sprintf("SwitchState(%d)", uint8(s))
	}
}

// EventKind discriminates semantic events.
type EventKind uint8

const (
	EventFire EventKind = iota + 1
	EventSwitch
	EventValue
)

// Event is a semantic control event. Only the fields belonging to Kind are
// set:
//
//	EventFire:   Fire
//	EventSwitch: Switch, State
//	EventValue:  Value, Amount
type Event[F Target, S Target, V ValueTarget] struct {
	Kind   EventKind
	Fire   F
	Switch S
	State  SwitchState
	Value  V
	Amount float64
}

func (e Event[F, S, V]) String() string {
	switch e.Kind {
	case EventFire:
		return fmt.Sprintf("Fire(%s)", e.Fire)
	case EventSwitch:
		return fmt.Sprintf("Switch(%s, %s)", e.Switch, e.State)
	case EventValue:
		return fmt.Sprintf("Value(%s, %g)", e.Value, e.Amount)
	default:
		return "Event(?)"
	}
}

// queue is the FIFO of produced events. It has no capacity bound.
type queue[E any] struct {
	items []E
}

func (q *queue[E]) push(e E) {
	q.items = append(q.items, e)
}

func (q *queue[E]) len() int {
	return len(q.items)
}

// drain hands the pending events to the caller and starts a fresh buffer.
func (q *queue[E]) drain() []E {
	out := q.items
	q.items = nil
	return out
}

// drainInto appends pending events to dst and keeps the internal buffer for
// reuse.
func (q *queue[E]) drainInto(dst []E) []E {
	dst = append(dst, q.items...)
	clear(q.items)
	q.items = q.items[:0]
	return dst
}
