package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/ctrlbind/trigger"
)

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   trigger.KeyCode
		wantOK bool
	}{
		{name: "letter", input: "G", want: trigger.KeyG, wantOK: true},
		{name: "digit", input: "0", want: trigger.Key0, wantOK: true},
		{name: "function key", input: "F24", want: trigger.KeyF24, wantOK: true},
		{name: "numpad", input: "Numpad7", want: trigger.KeyNumpad7, wantOK: true},
		{name: "modifier", input: "RControl", want: trigger.KeyRControl, wantOK: true},
		{name: "web key", input: "WebStop", want: trigger.KeyWebStop, wantOK: true},
		{name: "case sensitive", input: "g", wantOK: false},
		{name: "unknown", input: "Hyper", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := trigger.ParseKeyCode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	names := trigger.KeyNames()
	assert.Len(t, names, 161)
	assert.IsNonDecreasing(t, names)
	for _, name := range names {
		k, ok := trigger.ParseKeyCode(name)
		if assert.True(t, ok, name) {
			assert.True(t, k.Valid())
			assert.Equal(t, name, k.String())
		}
	}
	assert.False(t, trigger.KeyNone.Valid())
	assert.Equal(t, "KeyCode(0)", trigger.KeyNone.String())
}

func TestTriggerStrings(t *testing.T) {
	assert.Equal(t, "ScanCode(30)", trigger.ScanCode(30).String())
	assert.Equal(t, "Key(G)", trigger.Key(trigger.KeyG).String())
	assert.Equal(t, "Button(3)", trigger.Button(3).String())
	assert.Equal(t, "MouseWheelUp", trigger.WheelTick(trigger.WheelUp).String())
	assert.Equal(t, "Button(1)", trigger.OnPress(trigger.Button(1)).String())
	assert.Equal(t, "Axis(4)", trigger.Axis(4).String())
	assert.Equal(t, "MouseWheel", trigger.MouseWheel().String())
}

func TestHoldableKeyCode(t *testing.T) {
	assert.Equal(t, trigger.KeyH, trigger.Key(trigger.KeyH).KeyCode())
	assert.Equal(t, trigger.KeyNone, trigger.ScanCode(uint32(trigger.KeyH)).KeyCode())
	assert.NotEqual(t, trigger.Key(trigger.KeyH), trigger.ScanCode(uint32(trigger.KeyH)))
}
