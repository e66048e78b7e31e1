package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/ctrlbind/controls"
	"github.com/Alia5/ctrlbind/internal/configpaths"
	"github.com/Alia5/ctrlbind/internal/targets"
)

// ControlsFlags selects the targets and engine options shared by commands
// that load a controls document.
type ControlsFlags struct {
	Targets      string `help:"Target manifest declaring fire, switch and value targets" type:"existingfile" required:"" env:"CTRLBIND_TARGETS"`
	Strict       bool   `help:"Abort on unbalanced input instead of dropping it" env:"CTRLBIND_STRICT"`
	ScaledWheel  bool   `help:"Apply factors to wheel values" env:"CTRLBIND_SCALED_WHEEL"`
	NaturalWheel bool   `help:"Treat a positive vertical wheel delta as up" env:"CTRLBIND_NATURAL_WHEEL"`
}

func (f *ControlsFlags) options(logger *slog.Logger) []controls.Option {
	return []controls.Option{
		controls.WithLogger(logger),
		controls.WithStrict(f.Strict),
		controls.WithScaledWheel(f.ScaledWheel),
		controls.WithNaturalWheel(f.NaturalWheel),
	}
}

// controlsPath falls back to the per-user controls document.
func controlsPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := configpaths.DefaultControlsPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve default controls path: %w", err)
	}
	return p, nil
}

// load reads the manifest and the controls document at path.
func (f *ControlsFlags) load(path string, logger *slog.Logger) (*targets.Controls, *targets.Manifest, error) {
	m, err := targets.Load(f.Targets)
	if err != nil {
		return nil, nil, err
	}
	path, err = controlsPath(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	c, err := controls.Decode(data, m.Names(), f.options(logger)...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Loaded controls", "path", path, "binds", len(c.Binds()))
	return c, m, nil
}
