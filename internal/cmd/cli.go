package cmd

import "github.com/dps-sim/ps2scan/internal/log"

// CLI is the kong root of the ps2scan command line.
type CLI struct {
	Config string     `help:"Config file (json, yaml or toml)" type:"path" env:"PS2SCAN_CONFIG"`
	Log    log.Config `embed:"" prefix:"log-"`

	Break Break         `cmd:"" help:"Print PS/2 break codes for hardware key codes"`
	Make  Make          `cmd:"" help:"Print PS/2 make codes for hardware key codes"`
	Table Table         `cmd:"" help:"Dump the hardware key code to scan code table"`
	Send  Send          `cmd:"" help:"Type keys into a simulator SCI socket"`
	Cfg   ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
