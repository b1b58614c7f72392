package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dps-sim/ps2scan/internal/configpaths"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"send,table"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// setting is one configurable flag with its default value.
type setting struct {
	name  string
	value any
}

// Run writes every flag of the command and the global log flags, with
// their defaults, in the key layout the matching kong loader resolves.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	global, local, err := commandSettings(c.Command)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + configpaths.Ext(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		// kong.JSON looks flags up by name with '-' replaced by '_'.
		doc := map[string]any{}
		for _, s := range append(global, local...) {
			doc[strings.ReplaceAll(s.name, "-", "_")] = s.value
		}
		data, err = json.MarshalIndent(doc, "", "  ")
	case "yaml":
		// kong-yaml resolves command flags below a key named after the command.
		doc := map[string]any{}
		for _, s := range global {
			doc[s.name] = s.value
		}
		sub := map[string]any{}
		for _, s := range local {
			sub[s.name] = s.value
		}
		doc[c.Command] = sub
		data, err = yaml.Marshal(doc)
	case "toml":
		// kong-toml rejects any key that does not flatten to a flag name.
		doc := map[string]any{}
		for _, s := range append(global, local...) {
			doc[s.name] = s.value
		}
		data, err = toml.Marshal(doc)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// commandSettings reads flag names and defaults from the kong model of CLI,
// so the scaffold always uses the names the parser matches against.
// Positional arguments, --help and --config are left out.
func commandSettings(command string) (global, local []setting, err error) {
	parser, err := kong.New(&CLI{}, kong.Name("ps2scan"))
	if err != nil {
		return nil, nil, err
	}
	app := parser.Model

	var node *kong.Node
	for _, child := range app.Children {
		if child.Name == command {
			node = child
			break
		}
	}
	if node == nil {
		return nil, nil, fmt.Errorf("unknown command %q", command)
	}

	for _, f := range app.Flags {
		if f == app.HelpFlag || f.Name == "help" || f.Name == "config" || f.Hidden {
			continue
		}
		global = append(global, setting{name: f.Name, value: flagDefault(f)})
	}
	for _, f := range node.Flags {
		if f.Hidden {
			continue
		}
		local = append(local, setting{name: f.Name, value: flagDefault(f)})
	}
	return global, local, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// flagDefault converts the default tag of f into a value of the flag's kind.
func flagDefault(f *kong.Flag) any {
	def := f.Default
	t := f.Target.Type()
	if t == durationType {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	default:
		return def
	}
}
