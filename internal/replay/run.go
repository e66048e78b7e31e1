package replay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Alia5/ctrlbind/controls"
	"github.com/Alia5/ctrlbind/internal/log"
)

// Result holds the semantic events drained after one frame.
type Result[F controls.Target, S controls.Target, V controls.ValueTarget] struct {
	Frame  string
	Events []controls.Event[F, S, V]
}

// Strings renders the events the same way frame expectations are written.
func (r Result[F, S, V]) Strings() []string {
	out := make([]string, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.String()
	}
	return out
}

// Mismatch describes a frame whose events differ from its expectation.
type Mismatch struct {
	Frame string
	Want  []string
	Got   []string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("frame %q: want [%s], got [%s]", m.Frame, strings.Join(m.Want, ", "), strings.Join(m.Got, ", "))
}

// Run processes every frame of s through c. tr may be nil.
func Run[F controls.Target, S controls.Target, V controls.ValueTarget](c *controls.Controls[F, S, V], s *Script, tr log.Tracer) ([]Result[F, S, V], error) {
	results := make([]Result[F, S, V], 0, len(s.Frames))
	for i, f := range s.Frames {
		for j, st := range f.Events {
			ev, err := st.Event()
			if err != nil {
				return results, fmt.Errorf("frame %d (%s) step %d: %w", i, f.Name, j, err)
			}
			if tr != nil {
				tr.In(st.Device, ev)
			}
			c.Process(st.Device, ev)
		}
		events := c.Drain()
		if tr != nil {
			for _, ev := range events {
				tr.Out(ev)
			}
		}
		results = append(results, Result[F, S, V]{Frame: f.Name, Events: events})
	}
	return results, nil
}

// Verify compares results with the expectations of s. Frames without an
// expect list are not checked.
func Verify[F controls.Target, S controls.Target, V controls.ValueTarget](s *Script, results []Result[F, S, V]) []Mismatch {
	var out []Mismatch
	for i, f := range s.Frames {
		if f.Expect == nil || i >= len(results) {
			continue
		}
		got := results[i].Strings()
		if !slices.Equal(f.Expect, got) {
			out = append(out, Mismatch{Frame: f.Name, Want: f.Expect, Got: got})
		}
	}
	return out
}
