package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Alia5/ctrlbind/input"
	"github.com/Alia5/ctrlbind/internal/log"
	"github.com/Alia5/ctrlbind/internal/targets"
	"github.com/Alia5/ctrlbind/internal/termsource"
)

const frameInterval = 16 * time.Millisecond

type Watch struct {
	ControlsFlags `embed:""`
	Controls      string `arg:"" optional:"" help:"Controls document (defaults to the user config dir)" type:"path"`
	Keyboard      uint64 `help:"Device id reported for terminal keys" default:"1"`
	Mouse         uint64 `help:"Device id reported for the terminal mouse" default:"2"`
	History       int    `help:"Number of semantic events kept on screen" default:"500"`
}

// Run is called by Kong when the watch command is executed.
func (wc *Watch) Run(logger *slog.Logger, tracer log.Tracer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs an interactive terminal")
	}
	ctrl, m, err := wc.load(wc.Controls, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := newWatcher(ctrl, m, termsource.New(input.DeviceID(wc.Keyboard), input.DeviceID(wc.Mouse)), tracer, logger, wc.History)
	return w.loop(ctx, screen)
}

// watcher feeds terminal events through the controls and keeps the recent
// semantic events for display.
type watcher struct {
	ctrl     *targets.Controls
	manifest *targets.Manifest
	src      *termsource.Source
	tracer   log.Tracer
	logger   *slog.Logger

	history int
	lines   []string
	frames  uint64
}

func newWatcher(ctrl *targets.Controls, m *targets.Manifest, src *termsource.Source, tracer log.Tracer, logger *slog.Logger, history int) *watcher {
	if history <= 0 {
		history = 1
	}
	return &watcher{ctrl: ctrl, manifest: m, src: src, tracer: tracer, logger: logger, history: history}
}

func (w *watcher) loop(ctx context.Context, screen tcell.Screen) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	w.draw(screen)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !w.handle(ev) {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case <-ticker.C:
			if w.frame() {
				w.draw(screen)
			}
		}
	}
}

// handle processes one terminal event. It returns false when the user asked
// to quit.
func (w *watcher) handle(ev tcell.Event) bool {
	if k, ok := ev.(*tcell.EventKey); ok && (k.Key() == tcell.KeyCtrlC || k.Key() == tcell.KeyETX) {
		return false
	}
	if f, ok := ev.(*tcell.EventFocus); ok && !f.Focused {
		// Button releases are not reported while unfocused.
		w.deliver(w.src.Reset())
		return true
	}
	w.deliver(w.src.Convert(ev))
	return true
}

func (w *watcher) deliver(ds []termsource.Delivery) {
	for _, d := range ds {
		if w.tracer != nil {
			w.tracer.In(d.Device, d.Event)
		}
		w.logger.Log(context.Background(), log.LevelTrace, "Raw input", "device", d.Device, "event", input.Describe(d.Event))
		w.ctrl.Process(d.Device, d.Event)
	}
}

// frame drains the queue and reports whether anything changed.
func (w *watcher) frame() bool {
	w.frames++
	events := w.ctrl.Drain()
	for _, ev := range events {
		if w.tracer != nil {
			w.tracer.Out(ev)
		}
		w.lines = append(w.lines, fmt.Sprintf("%6d  %s", w.frames, ev))
	}
	if over := len(w.lines) - w.history; over > 0 {
		w.lines = append(w.lines[:0], w.lines[over:]...)
	}
	return len(events) > 0
}

func (w *watcher) active() []string {
	var out []string
	for _, name := range w.manifest.Switch {
		if w.ctrl.IsActive(targets.Switch(name)) {
			out = append(out, name)
		}
	}
	return out
}

func (w *watcher) draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	header := tcell.StyleDefault.Reverse(true)

	putLine(screen, 0, width, "ctrlbind watch  (Ctrl-C quits)", header)
	putLine(screen, 1, width, "active: "+strings.Join(w.active(), " "), tcell.StyleDefault)

	rows := height - 2
	start := max(len(w.lines)-rows, 0)
	for i, line := range w.lines[start:] {
		putLine(screen, 2+i, width, line, tcell.StyleDefault)
	}
	screen.Show()
}

func putLine(screen tcell.Screen, y, width int, s string, style tcell.Style) {
	x := 0
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
