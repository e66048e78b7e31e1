package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/ctrlbind/internal/log"
	"github.com/Alia5/ctrlbind/internal/replay"
)

type Replay struct {
	ControlsFlags `embed:""`
	Script        string `arg:"" help:"Replay script (yaml or json)" type:"existingfile"`
	Controls      string `arg:"" optional:"" help:"Controls document (defaults to the user config dir)" type:"path"`
	Format        string `help:"Output format" enum:"text,json,yaml" default:"text"`
}

type frameOutput struct {
	Frame  string   `json:"frame" yaml:"frame"`
	Events []string `json:"events" yaml:"events"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, tracer log.Tracer) error {
	return r.run(os.Stdout, logger, tracer)
}

func (r *Replay) run(w io.Writer, logger *slog.Logger, tracer log.Tracer) error {
	script, err := replay.Load(r.Script)
	if err != nil {
		return err
	}
	ctrl, _, err := r.load(r.Controls, logger)
	if err != nil {
		return err
	}
	results, err := replay.Run(ctrl, script, tracer)
	if err != nil {
		return err
	}

	out := make([]frameOutput, len(results))
	for i, res := range results {
		out[i] = frameOutput{Frame: res.Frame, Events: res.Strings()}
	}
	if err := writeFrames(w, r.Format, out); err != nil {
		return err
	}

	mismatches := replay.Verify(script, results)
	for _, m := range mismatches {
		logger.Error("Unexpected events", "mismatch", m.String())
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d frames did not match their expectation", len(mismatches), len(results))
	}
	return nil
}

func writeFrames(w io.Writer, format string, frames []frameOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(frames); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, f := range frames {
			if _, err := fmt.Fprintf(w, "== %s\n", f.Frame); err != nil {
				return err
			}
			for _, ev := range f.Events {
				if _, err := fmt.Fprintf(w, "  %s\n", ev); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
