package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/ctrlbind/controls"
	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/internal/targets"
)

const manifest = `
fire: [LMBFire, GHFire]
switch: [RMBSwitch]
value:
  MouseX: 1.0
  LookY: -0.5
`

func TestParseManifest(t *testing.T) {
	m, err := targets.Parse([]byte(manifest))
	require.NoError(t, err)

	assert.Equal(t, []string{"GHFire", "LMBFire", "LookY", "MouseX", "RMBSwitch"}, m.All())

	names := m.Names()
	assert.Equal(t, controls.TargetFire, names.Kind("LMBFire"))
	assert.Equal(t, controls.TargetSwitch, names.Kind("RMBSwitch"))
	assert.Equal(t, controls.TargetValue, names.Kind("LookY"))
	assert.Equal(t, controls.TargetKind(0), names.Kind("Jump"))

	v, ok := m.ValueTarget("LookY")
	require.True(t, ok)
	assert.Equal(t, -0.5, v.BaseFactor())
}

func TestParseManifestJSON(t *testing.T) {
	m, err := targets.Parse([]byte(`{"fire": ["A"], "value": {"V": 2}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "V"}, m.All())
}

func TestManifestValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  string
	}{
		{name: "empty", doc: "{}", err: "target manifest declares no targets"},
		{name: "duplicate across families", doc: "fire: [X]\nswitch: [X]\n", err: `target "X" declared as fire and switch`},
		{name: "empty name", doc: "fire: ['']\n", err: "empty fire target name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := targets.Parse([]byte(tt.doc))
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestManifestDrivesControls(t *testing.T) {
	m, err := targets.Parse([]byte(manifest))
	require.NoError(t, err)

	c, err := controls.Decode([]byte(`
[binds]
LMBFire = "Button1"
LookY = 1

[factors]
LookY = 4.0
`), m.Names())
	require.NoError(t, err)

	c.Process(1, input.Button{Button: 1, State: input.Pressed})
	c.Process(1, input.Motion{Axis: 1, Value: 1})

	lookY, _ := m.ValueTarget("LookY")
	assert.Equal(t, []targets.Event{
		{Kind: controls.EventFire, Fire: "LMBFire"},
		{Kind: controls.EventValue, Value: lookY, Amount: -2},
	}, c.Drain())
}
