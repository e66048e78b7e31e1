package cmd

import (
	"github.com/Alia5/ctrlbind/internal/log"
)

// CLI is the root command tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"Settings file (json, yaml or toml) providing flag defaults" type:"path" env:"CTRLBIND_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Check  Check         `cmd:"" help:"Validate a controls document"`
	Fmt    Fmt           `cmd:"" help:"Rewrite a controls document in canonical form"`
	Replay Replay        `cmd:"" help:"Feed a scripted input sequence through a controls document"`
	Watch  Watch         `cmd:"" help:"Show semantic events for live terminal input"`
	Keys   Keys          `cmd:"" help:"List trigger names usable in controls documents"`
	Config ConfigCommand `cmd:"" help:"Settings file helpers"`
}
