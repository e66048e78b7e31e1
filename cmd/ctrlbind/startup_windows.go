//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/ctrlbind/internal/util"
)

func init() {
	if util.LaunchedFromExplorer() && len(os.Args) < 2 {
		slog.Info("Detected GUI startup, running 'watch'")
		os.Args = append(os.Args, "watch")
	}
}
