// Package testing holds target fixtures shared by package tests.
package testing

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/Alia5/ctrlbind/controls"
)

type FireTarget uint8

const (
	LMBFire FireTarget = iota + 1
	MWUpFire
	MWDownFire
	GHFire
)

var fireNames = map[FireTarget]string{
	LMBFire:    "LMBFire",
	MWUpFire:   "MWUpFire",
	MWDownFire: "MWDownFire",
	GHFire:     "GHFire",
}

func (f FireTarget) String() string { return fireNames[f] }

type SwitchTarget uint8

const (
	RMBSwitch SwitchTarget = iota + 1
	GHSwitch
	Key0Switch
	AMMBSwitch
)

var switchNames = map[SwitchTarget]string{
	RMBSwitch:  "RMBSwitch",
	GHSwitch:   "GHSwitch",
	Key0Switch: "Key0Switch",
	AMMBSwitch: "AMMBSwitch",
}

func (s SwitchTarget) String() string { return switchNames[s] }

type ValueTarget uint8

const (
	MouseX ValueTarget = iota + 1
	LookY
	Zoom
)

var valueNames = map[ValueTarget]string{
	MouseX: "MouseX",
	LookY:  "LookY",
	Zoom:   "Zoom",
}

func (v ValueTarget) String() string { return valueNames[v] }

// BaseFactor is 1 except for LookY, which is inverted.
func (v ValueTarget) BaseFactor() float64 {
	if v == LookY {
		return -1
	}
	return 1
}

func lookup[T comparable](names map[T]string) func(string) (T, bool) {
	return func(s string) (T, bool) {
		for t, name := range names {
			if name == s {
				return t, true
			}
		}
		var zero T
		return zero, false
	}
}

type (
	Controls = controls.Controls[FireTarget, SwitchTarget, ValueTarget]
	Event    = controls.Event[FireTarget, SwitchTarget, ValueTarget]
	Bind     = controls.Bind[FireTarget, SwitchTarget, ValueTarget]
)

// Names resolves the fixture target names.
func Names() controls.Names[FireTarget, SwitchTarget, ValueTarget] {
	return controls.Names[FireTarget, SwitchTarget, ValueTarget]{
		Fire:   lookup(fireNames),
		Switch: lookup(switchNames),
		Value:  lookup(valueNames),
	}
}

// NewControls returns strict Controls logging to the test output.
func NewControls(t testing.TB, opts ...controls.Option) *Controls {
	t.Helper()
	base := []controls.Option{controls.WithStrict(true), controls.WithLogger(Logger(t))}
	return controls.New[FireTarget, SwitchTarget, ValueTarget](append(base, opts...)...)
}

// Logger writes debug logs through t.Log.
func Logger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(tbWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type tbWriter struct{ t testing.TB }

func (w tbWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func Fire(f FireTarget) Event {
	return Event{Kind: controls.EventFire, Fire: f}
}

func Switch(s SwitchTarget, state controls.SwitchState) Event {
	return Event{Kind: controls.EventSwitch, Switch: s, State: state}
}

func Value(v ValueTarget, amount float64) Event {
	return Event{Kind: controls.EventValue, Value: v, Amount: amount}
}
