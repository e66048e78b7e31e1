package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/ctrlbind/trigger"
)

type Keys struct{}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	return k.run(os.Stdout)
}

func (k *Keys) run(w io.Writer) error {
	fixed := []string{
		"MouseWheelUp", "MouseWheelDown", "MouseWheel", "MouseX", "MouseY",
		"Button<n>", "<scancode integer>", "<axis integer>",
	}
	for _, n := range fixed {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	for _, n := range trigger.KeyNames() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
