package cmd

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
)

var errNotCanonical = errors.New("controls document is not in canonical form")

type Fmt struct {
	ControlsFlags `embed:""`
	Controls      string `arg:"" optional:"" help:"Controls document (defaults to the user config dir)" type:"path"`
	Write         bool   `short:"w" help:"Write the result back to the document instead of stdout"`
	Check         bool   `help:"Fail if the document would change"`
}

// Run is called by Kong when the fmt command is executed.
func (f *Fmt) Run(logger *slog.Logger) error {
	return f.run(os.Stdout, logger)
}

func (f *Fmt) run(w io.Writer, logger *slog.Logger) error {
	path, err := controlsPath(f.Controls)
	if err != nil {
		return err
	}
	ctrl, _, err := f.load(path, logger)
	if err != nil {
		return err
	}
	out, err := ctrl.Encode()
	if err != nil {
		return err
	}

	if f.Check {
		orig, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !bytes.Equal(orig, out) {
			return errNotCanonical
		}
		return nil
	}
	if f.Write {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		logger.Info("Formatted controls", "path", path)
		return nil
	}
	_, err = w.Write(out)
	return err
}
