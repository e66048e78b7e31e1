// Package controls translates raw device events into semantic control events
// according to a user-configurable binding table.
//
// Applications define three families of targets: Fire targets receive a
// single event on the press edge of a holdable trigger or on a wheel notch,
// Switch targets are Active while at least one bound trigger is held, and
// Value targets receive scaled scalar samples. Press counting is per trigger
// and per device, so several keys (or the same key on several keyboards)
// bound to one Switch produce exactly one Active and one Inactive event.
//
// A Controls value is not safe for concurrent use. The host calls Process for
// every raw event and drains the produced events once per frame.
package controls

import (
	"log/slog"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/trigger"
)

type options struct {
	logger       *slog.Logger
	strict       bool
	scaledWheel  bool
	naturalWheel bool
}

// Option configures a Controls.
type Option func(*options)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict makes protocol violations (releasing a trigger that is not
// held) panic with an *AssertionError instead of being dropped and logged.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithScaledWheel applies the per-target factor and base factor to wheel
// Value events, as is done for axis samples. Off by default.
func WithScaledWheel(scaled bool) Option {
	return func(o *options) { o.scaledWheel = scaled }
}

// WithNaturalWheel fires MouseWheelUp targets for a positive vertical line
// delta. By default a negative delta fires MouseWheelUp.
func WithNaturalWheel(natural bool) Option {
	return func(o *options) { o.naturalWheel = natural }
}

type holdableState[F Target, S Target] struct {
	onPress   orderedSet[F]
	whileDown orderedSet[S]
	devices   map[input.DeviceID]uint32
	overall   uint32
}

type wheelMapping[F Target, V ValueTarget] struct {
	onUp     orderedSet[F]
	onDown   orderedSet[F]
	onChange orderedSet[V]
}

// Controls owns the binding tables, the press counters and the event queue.
type Controls[F Target, S Target, V ValueTarget] struct {
	holdables map[trigger.Holdable]*holdableState[F, S]
	// holdableOrder lists holdables in creation order for deterministic scans.
	holdableOrder []trigger.Holdable

	axes     map[uint32]*orderedSet[V]
	wheel    wheelMapping[F, V]
	mouseX   orderedSet[V]
	mouseY   orderedSet[V]
	switches map[S]uint32
	factors  map[V]float64

	events queue[Event[F, S, V]]

	opts   options
	logger *slog.Logger
}

// New returns an empty Controls.
func New[F Target, S Target, V ValueTarget](opts ...Option) *Controls[F, S, V] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controls[F, S, V]{
		holdables: make(map[trigger.Holdable]*holdableState[F, S]),
		axes:      make(map[uint32]*orderedSet[V]),
		switches:  make(map[S]uint32),
		factors:   make(map[V]float64),
		opts:      o,
		logger:    o.logger,
	}
}

// SetFactor sets the multiplicative factor for a Value target.
func (c *Controls[F, S, V]) SetFactor(target V, factor float64) {
	c.factors[target] = factor
}

// Factor returns the factor for target, 1.0 if none was set.
func (c *Controls[F, S, V]) Factor(target V) float64 {
	if f, ok := c.factors[target]; ok {
		return f
	}
	return 1.0
}

// IsActive reports whether at least one held trigger is bound to target.
func (c *Controls[F, S, V]) IsActive(target S) bool {
	return c.switches[target] > 0
}

// Pending returns the number of events waiting to be drained.
func (c *Controls[F, S, V]) Pending() int {
	return c.events.len()
}

// Drain returns all pending events in production order and empties the
// queue. The returned slice belongs to the caller. Drain must not be called
// from within Process.
func (c *Controls[F, S, V]) Drain() []Event[F, S, V] {
	return c.events.drain()
}

// DrainInto appends all pending events to dst and empties the queue, reusing
// the internal buffer for subsequent events.
func (c *Controls[F, S, V]) DrainInto(dst []Event[F, S, V]) []Event[F, S, V] {
	return c.events.drainInto(dst)
}

func (c *Controls[F, S, V]) holdable(h trigger.Holdable) *holdableState[F, S] {
	st, ok := c.holdables[h]
	if !ok {
		st = &holdableState[F, S]{devices: make(map[input.DeviceID]uint32)}
		c.holdables[h] = st
		c.holdableOrder = append(c.holdableOrder, h)
	}
	return st
}
