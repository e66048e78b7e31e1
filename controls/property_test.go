package controls_test

import (
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/ctrlbind/controls"
	"github.com/Alia5/ctrlbind/input"
	th "github.com/Alia5/ctrlbind/internal/testing"
	"github.com/Alia5/ctrlbind/trigger"
)

var (
	propHoldables = []trigger.Holdable{
		trigger.Button(1), trigger.Button(2), trigger.Button(3),
		trigger.Key(trigger.KeyG), trigger.Key(trigger.KeyH),
	}
	propSwitches = []th.SwitchTarget{th.RMBSwitch, th.GHSwitch, th.Key0Switch, th.AMMBSwitch}
	propFires    = []th.FireTarget{th.LMBFire, th.GHFire}
	propValues   = []th.ValueTarget{th.MouseX, th.LookY, th.Zoom}
	propDevices  = []input.DeviceID{1, 2, 3}
)

func pressEvent(h trigger.Holdable, state input.ElementState) input.Event {
	if h.Kind == trigger.HoldableKeyCode {
		return input.Key{ScanCode: 500 + h.Code, VirtualKey: h.KeyCode(), State: state}
	}
	return input.Button{Button: h.Code, State: state}
}

type holdKey struct {
	h   trigger.Holdable
	dev input.DeviceID
}

// checkInvariants verifies the per-trigger and per-switch counter invariants.
func checkInvariants(t *testing.T, c *th.Controls) {
	t.Helper()
	for _, h := range c.Holdables() {
		var sum uint32
		for _, n := range c.DeviceCounts(h) {
			sum += n
		}
		require.Equal(t, sum, c.OverallCount(h), "overall counter of %s", h)
	}
	for _, s := range propSwitches {
		var want uint32
		for _, h := range c.Holdables() {
			if c.OverallCount(h) == 0 {
				continue
			}
			for _, bound := range c.WhileDown(h) {
				if bound == s {
					want++
				}
			}
		}
		require.Equal(t, want, c.SwitchCount(s), "switch counter of %s", s)
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0x5eed))
		c := th.NewControls(t, controls.WithLogger(slog.New(slog.DiscardHandler)))
		held := map[holdKey]int{}
		lastState := map[th.SwitchTarget]controls.SwitchState{}
		axisBinds := map[uint32]map[th.ValueTarget]bool{}
		wantValues := map[th.ValueTarget]int{}
		gotValues := map[th.ValueTarget]int{}

		drain := func() {
			for _, ev := range c.Drain() {
				switch ev.Kind {
				case controls.EventSwitch:
					prev := lastState[ev.Switch]
					if ev.State == controls.Active {
						require.NotEqual(t, controls.Active, prev, "double Active for %s (seed %d)", ev.Switch, seed)
					} else {
						require.Equal(t, controls.Active, prev, "Inactive without Active for %s (seed %d)", ev.Switch, seed)
					}
					lastState[ev.Switch] = ev.State
				case controls.EventValue:
					gotValues[ev.Value]++
				}
			}
		}

		for step := 0; step < 400; step++ {
			h := propHoldables[rng.IntN(len(propHoldables))]
			dev := propDevices[rng.IntN(len(propDevices))]
			switch op := rng.IntN(10); op {
			case 0:
				c.AddSwitchBind(h, propSwitches[rng.IntN(len(propSwitches))])
			case 1:
				c.RemoveSwitchBind(h, propSwitches[rng.IntN(len(propSwitches))])
			case 2:
				c.AddFireBind(trigger.OnPress(h), propFires[rng.IntN(len(propFires))])
			case 3, 4, 5:
				c.Process(dev, pressEvent(h, input.Pressed))
				held[holdKey{h, dev}]++
			case 6, 7:
				k := holdKey{h, dev}
				if held[k] > 0 {
					c.Process(dev, pressEvent(h, input.Released))
					held[k]--
				}
			case 8:
				if rng.IntN(4) == 0 {
					c.Process(dev, input.Removed{})
					for k := range held {
						if k.dev == dev {
							delete(held, k)
						}
					}
				}
			case 9:
				axis := uint32(rng.IntN(2))
				target := propValues[rng.IntN(len(propValues))]
				if rng.IntN(3) == 0 {
					c.AddValueBind(trigger.Axis(axis), target)
					if axisBinds[axis] == nil {
						axisBinds[axis] = map[th.ValueTarget]bool{}
					}
					axisBinds[axis][target] = true
				}
				value := float64(rng.IntN(3) - 1)
				c.Process(dev, input.Motion{Axis: axis, Value: value})
				if value != 0 {
					for bound := range axisBinds[axis] {
						wantValues[bound]++
					}
				}
			}
			checkInvariants(t, c)
			drain()
		}
		assert.Equal(t, wantValues, gotValues, "value events (seed %d)", seed)
	}
}

func TestAddBindIdempotent(t *testing.T) {
	binds := []th.Bind{
		{Kind: controls.TargetFire, FireTrigger: trigger.OnPress(trigger.Button(1)), FireTarget: th.LMBFire},
		{Kind: controls.TargetSwitch, SwitchTrigger: trigger.Key(trigger.KeyG), SwitchTarget: th.GHSwitch},
		{Kind: controls.TargetValue, ValueTrigger: trigger.Axis(0), ValueTarget: th.MouseX},
		{Kind: controls.TargetFire, FireTrigger: trigger.WheelTick(trigger.WheelDown), FireTarget: th.MWDownFire},
	}
	for _, b := range binds {
		t.Run(b.String(), func(t *testing.T) {
			once := th.NewControls(t)
			twice := th.NewControls(t)
			for _, c := range []*th.Controls{once, twice} {
				c.Process(1, input.Key{ScanCode: 34, VirtualKey: trigger.KeyG, State: input.Pressed})
			}
			once.AddBind(b)
			twice.AddBind(b)
			twice.AddBind(b)

			assert.Equal(t, once.Binds(), twice.Binds())
			assert.Equal(t, once.Drain(), twice.Drain())
			assert.Equal(t, once.SwitchCount(th.GHSwitch), twice.SwitchCount(th.GHSwitch))
		})
	}
}

func TestAddRemoveRestoresState(t *testing.T) {
	c := th.NewControls(t)
	c.AddSwitchBind(trigger.Key(trigger.KeyH), th.GHSwitch)
	c.AddFireBind(trigger.OnPress(trigger.Button(1)), th.LMBFire)
	c.Process(1, input.Key{ScanCode: 34, VirtualKey: trigger.KeyG, State: input.Pressed})
	before := c.Binds()
	require.Empty(t, c.Drain())

	b := th.Bind{Kind: controls.TargetSwitch, SwitchTrigger: trigger.Key(trigger.KeyG), SwitchTarget: th.GHSwitch}
	c.AddBind(b)
	c.RemoveBind(b)

	assert.Equal(t, before, c.Binds())
	assert.Equal(t, uint32(0), c.SwitchCount(th.GHSwitch))
	assert.Equal(t, []th.Event{
		th.Switch(th.GHSwitch, controls.Active),
		th.Switch(th.GHSwitch, controls.Inactive),
	}, c.Drain())
}
