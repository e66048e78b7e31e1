package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
)

type Check struct {
	ControlsFlags `embed:""`
	Controls      string `arg:"" optional:"" help:"Controls document (defaults to the user config dir)" type:"path"`
	Quiet         bool   `short:"q" help:"Only report errors"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	return c.run(os.Stdout, logger)
}

func (c *Check) run(w io.Writer, logger *slog.Logger) error {
	ctrl, m, err := c.load(c.Controls, logger)
	if err != nil {
		return err
	}
	if c.Quiet {
		return nil
	}

	binds := ctrl.Binds()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tKIND\tTRIGGER")
	bound := map[string]bool{}
	for _, b := range binds {
		bound[b.TargetName()] = true
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.TargetName(), b.Kind, b.TriggerName())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, name := range m.All() {
		if !bound[name] {
			logger.Warn("Target has no binding", "target", name)
		}
	}
	return nil
}
