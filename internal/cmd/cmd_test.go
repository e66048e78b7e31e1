package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/ctrlbind/controls"
	"github.com/Alia5/ctrlbind/internal/targets"
	"github.com/Alia5/ctrlbind/internal/termsource"
)

const testManifest = `
fire: [LMBFire, MWUpFire, GHFire]
switch: [RMBSwitch, GHSwitch]
value:
  MouseX: 1.0
  Zoom: 1.0
`

const testControls = `[binds]
RMBSwitch = "Button3"
LMBFire = "Button1"
GHSwitch = "G"
MouseX = "MouseX"
MWUpFire = "MouseWheelUp"

[factors]
MouseX = 0.5
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func fixture(t *testing.T, doc string) (ControlsFlags, string) {
	t.Helper()
	dir := t.TempDir()
	return ControlsFlags{Targets: writeFile(t, dir, "targets.yaml", testManifest)},
		writeFile(t, dir, "controls.toml", doc)
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestCheckListsBinds(t *testing.T) {
	flags, path := fixture(t, testControls)
	var out bytes.Buffer
	c := &Check{ControlsFlags: flags, Controls: path}
	require.NoError(t, c.run(&out, discard()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"TARGET", "KIND", "TRIGGER"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"GHSwitch", "switch", "Key(G)"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"RMBSwitch", "switch", "Button(3)"}, strings.Fields(lines[5]))
}

func TestCheckQuiet(t *testing.T) {
	flags, path := fixture(t, testControls)
	var out bytes.Buffer
	c := &Check{ControlsFlags: flags, Controls: path, Quiet: true}
	require.NoError(t, c.run(&out, discard()))
	assert.Empty(t, out.String())
}

func TestCheckReportsConfigError(t *testing.T) {
	flags, path := fixture(t, "[binds]\nJump = \"G\"\n[factors]\n")
	c := &Check{ControlsFlags: flags, Controls: path}
	err := c.run(&bytes.Buffer{}, discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, controls.ErrUnknownTarget)
	assert.Contains(t, err.Error(), path)
}

func TestFmt(t *testing.T) {
	const canonical = "\n[binds]\n  GHSwitch = \"G\"\n  LMBFire = \"Button1\"\n  MWUpFire = \"MouseWheelUp\"\n  MouseX = \"MouseX\"\n  RMBSwitch = \"Button3\"\n\n[factors]\n  MouseX = 0.5\n"

	t.Run("stdout", func(t *testing.T) {
		flags, path := fixture(t, testControls)
		var out bytes.Buffer
		require.NoError(t, (&Fmt{ControlsFlags: flags, Controls: path}).run(&out, discard()))
		assert.Equal(t, canonical, out.String())
	})

	t.Run("check fails on non canonical", func(t *testing.T) {
		flags, path := fixture(t, testControls)
		err := (&Fmt{ControlsFlags: flags, Controls: path, Check: true}).run(&bytes.Buffer{}, discard())
		assert.ErrorIs(t, err, errNotCanonical)
	})

	t.Run("write then check", func(t *testing.T) {
		flags, path := fixture(t, testControls)
		require.NoError(t, (&Fmt{ControlsFlags: flags, Controls: path, Write: true}).run(&bytes.Buffer{}, discard()))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, canonical, string(data))
		assert.NoError(t, (&Fmt{ControlsFlags: flags, Controls: path, Check: true}).run(&bytes.Buffer{}, discard()))
	})
}

const testScript = `
frames:
  - name: aim
    events:
      - {device: 2, button: 3, state: pressed}
      - {device: 2, mouse: {dx: 4, dy: 0}}
    expect: ["Switch(RMBSwitch, Active)", "Value(MouseX, 2)"]
  - name: release
    events:
      - {device: 2, button: 3, state: released}
`

func TestReplay(t *testing.T) {
	flags, path := fixture(t, testControls)
	script := writeFile(t, t.TempDir(), "script.yaml", testScript)

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		r := &Replay{ControlsFlags: flags, Script: script, Controls: path, Format: "text"}
		require.NoError(t, r.run(&out, discard(), nil))
		assert.Equal(t, "== aim\n  Switch(RMBSwitch, Active)\n  Value(MouseX, 2)\n== release\n  Switch(RMBSwitch, Inactive)\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		r := &Replay{ControlsFlags: flags, Script: script, Controls: path, Format: "json"}
		require.NoError(t, r.run(&out, discard(), nil))
		var frames []frameOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &frames))
		assert.Equal(t, []frameOutput{
			{Frame: "aim", Events: []string{"Switch(RMBSwitch, Active)", "Value(MouseX, 2)"}},
			{Frame: "release", Events: []string{"Switch(RMBSwitch, Inactive)"}},
		}, frames)
	})
}

func TestReplayMismatch(t *testing.T) {
	flags, path := fixture(t, testControls)
	script := writeFile(t, t.TempDir(), "script.yaml", `
frames:
  - name: click
    events:
      - {device: 1, button: 1, state: pressed}
    expect: []
`)
	r := &Replay{ControlsFlags: flags, Script: script, Controls: path, Format: "text"}
	assert.EqualError(t, r.run(&bytes.Buffer{}, discard(), nil), "1 of 1 frames did not match their expectation")
}

func TestKeys(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Keys{}).run(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "MouseWheelUp", lines[0])
	assert.Contains(t, lines, "G")
	assert.Contains(t, lines, "Numpad0")
}

func TestConfigInit(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sub", "ctrlbind.json")
	c := &ConfigInit{Command: "watch", Format: "json", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, map[string]any{"level": "info", "file": "", "trace_file": ""}, got["log"])
	assert.Equal(t, "", got["targets"])
	assert.Equal(t, false, got["natural_wheel"])
	assert.Equal(t, float64(1), got["keyboard"])
	assert.Equal(t, float64(500), got["history"])
	assert.NotContains(t, got, "controls")

	assert.EqualError(t, c.Run(), "destination exists; use --force to overwrite")
	c.Force = true
	assert.NoError(t, c.Run())
}

func TestConfigInitUnknownFormat(t *testing.T) {
	c := &ConfigInit{Command: "check", Format: "ini"}
	assert.EqualError(t, c.Run(), "unsupported format: ini")
}

func newTestWatcher(t *testing.T) *watcher {
	t.Helper()
	m, err := targets.Parse([]byte(testManifest))
	require.NoError(t, err)
	ctrl, err := controls.Decode([]byte(testControls), m.Names(), controls.WithLogger(discard()))
	require.NoError(t, err)
	return newWatcher(ctrl, m, termsource.New(1, 2), nil, discard(), 3)
}

func TestWatcher(t *testing.T) {
	w := newTestWatcher(t)

	assert.True(t, w.handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone)))
	assert.Equal(t, []string{"RMBSwitch"}, w.active())
	assert.True(t, w.frame())
	assert.Equal(t, []string{"     1  Switch(RMBSwitch, Active)"}, w.lines)

	assert.True(t, w.handle(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)))
	assert.True(t, w.frame())
	assert.Equal(t, []string{
		"     1  Switch(RMBSwitch, Active)",
		"     2  Switch(GHSwitch, Active)",
		"     2  Switch(GHSwitch, Inactive)",
	}, w.lines)

	assert.False(t, w.frame())

	assert.True(t, w.handle(tcell.NewEventFocus(false)))
	assert.Empty(t, w.active())
	assert.True(t, w.frame())
	assert.Len(t, w.lines, 3)
	assert.Equal(t, "     4  Switch(RMBSwitch, Inactive)", w.lines[2])

	assert.False(t, w.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestWatcherDraw(t *testing.T) {
	w := newTestWatcher(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 4)

	w.handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	w.frame()
	w.draw(screen)

	row := func(y int) string {
		cells, width, _ := screen.GetContents()
		var b strings.Builder
		for _, c := range cells[y*width : (y+1)*width] {
			b.WriteString(string(c.Runes))
		}
		return strings.TrimRight(b.String(), " ")
	}
	assert.Equal(t, "ctrlbind watch  (Ctrl-C quits)", row(0))
	assert.Equal(t, "active: RMBSwitch", row(1))
	assert.Equal(t, "     1  Switch(RMBSwitch, Active)", row(2))
}
