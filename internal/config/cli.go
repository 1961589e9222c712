// Package config declares the sdlkey command line. Every flag can also be
// set from a JSON, YAML or TOML config file or from SDLKEY_* variables.
package config

import (
	"github.com/keybind/sdlkey/internal/cmd"
	"github.com/keybind/sdlkey/internal/log"
)

type CLI struct {
	ConfigFile string     `name:"config" help:"Config file (json, yaml or toml)" type:"path" env:"SDLKEY_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Lookup cmd.Lookup        `cmd:"" help:"Resolve raw key code values or names"`
	List   cmd.List          `cmd:"" help:"List the SDL key code table"`
	Gen    cmd.Gen           `cmd:"" help:"Regenerate the key code table from SDL headers"`
	Verify cmd.Verify        `cmd:"" help:"Check the compiled table against SDL headers"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
