// Package config defines the top-level CLI/configuration surface parsed by
// Kong. Values come from config files (JSON/YAML/TOML), environment and
// flags, in that override order.
package config

import "github.com/Alia5/KEYPER/internal/cmd"

// Log groups the logging options shared by all commands.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"KEYPER_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"KEYPER_LOG_FILE"`
	RawFile string `help:"Write raw scancode byte traces to this file" env:"KEYPER_LOG_RAW_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Config string `help:"Path to a config file" env:"KEYPER_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Replay    cmd.Replay        `cmd:"" help:"Translate a scancode capture into key events"`
	Tty       cmd.Tty           `cmd:"" help:"Translate live terminal input interactively"`
	Keys      cmd.Keys          `cmd:"" help:"Dump the keycode table and character mappings"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}
