package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/ctrlbind/input"
)

// Tracer records raw events going into the engine and semantic events coming
// out of it.
type Tracer interface {
	In(dev input.DeviceID, ev input.Event)
	Out(ev fmt.Stringer)
}

// tracer writes one timestamped line per event.
type tracer struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewTrace creates a Tracer writing to w. If w is nil, returns a no-op tracer.
func NewTrace(w io.Writer) Tracer {
	return &tracer{w: w, now: time.Now}
}

// In logs a raw event delivered by dev.
func (t *tracer) In(dev input.DeviceID, ev input.Event) {
	t.line(fmt.Sprintf("IN  dev=%d %s", dev, input.Describe(ev)))
}

// Out logs a semantic event taken from the queue.
func (t *tracer) Out(ev fmt.Stringer) {
	t.line("OUT " + ev.String())
}

func (t *tracer) line(s string) {
	if t.w == nil {
		return
	}
	line := t.now().Format("2006/01/02 15:04:05.000") + " " + s + "\n"

	t.mu.Lock()
	_, _ = io.WriteString(t.w, line)
	t.mu.Unlock()
}
