package main

import (
	"os"
	"strings"

	"github.com/Alia5/ctrlbind/internal/cmd"
	"github.com/Alia5/ctrlbind/internal/configpaths"
	"github.com/Alia5/ctrlbind/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("ctrlbind"),
		kong.Description("Input binding engine tools"),
		kong.UsageOnError(),
		// Load settings from JSON/YAML/TOML in priority order; flags/env override them.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	// watch owns the terminal, so it only logs to files.
	console := !strings.HasPrefix(ctx.Command(), "watch")
	logger, closeFiles, err := log.SetupLogger(cli.Log, console)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var tracer log.Tracer
	switch {
	case cli.Log.TraceFile != "":
		f, err := os.OpenFile(cli.Log.TraceFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open trace file", "file", cli.Log.TraceFile, "error", err)
			tracer = log.NewTrace(nil)
		} else {
			tracer = log.NewTrace(f)
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace" && console:
		tracer = log.NewTrace(os.Stdout)
	default:
		tracer = log.NewTrace(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(tracer, (*log.Tracer)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("CTRLBIND_CONFIG")
}
