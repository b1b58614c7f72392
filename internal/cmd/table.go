package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/dps-sim/ps2scan/device/ps2"
	"github.com/dps-sim/ps2scan/internal/log"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Table dumps every mapped key code.
type Table struct {
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"PS2SCAN_TABLE_FORMAT"`
	All    bool   `help:"Include key codes without a mapping"`
}

type tableEntry struct {
	Keycode int    `json:"keycode" yaml:"keycode" toml:"keycode"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Make    string `json:"make,omitempty" yaml:"make,omitempty" toml:"make,omitempty"`
	Break   string `json:"break,omitempty" yaml:"break,omitempty" toml:"break,omitempty"`
}

type tableDoc struct {
	Keys []tableEntry `json:"keys" yaml:"keys" toml:"keys"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger, out io.Writer) error {
	doc := buildTable(t.All)
	logger.Debug("dumping scancode table", "entries", len(doc.Keys), "format", t.Format)

	var data []byte
	var err error
	switch t.Format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	case "text", "":
		return writeTableText(out, doc)
	default:
		return fmt.Errorf("unsupported format: %s", t.Format)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func buildTable(all bool) tableDoc {
	var doc tableDoc
	for k := 0; k < ps2.TableSize; k++ {
		sc, _ := ps2.Lookup(k)
		if sc.IsAbsent() && !all {
			continue
		}
		doc.Keys = append(doc.Keys, tableEntry{
			Keycode: k,
			Name:    ps2.KeyName[uint8(k)],
			Kind:    sc.Kind().String(),
			Make:    log.Hex(sc.Make()),
			Break:   log.Hex(sc.Break()),
		})
	}
	return doc
}

func writeTableText(out io.Writer, doc tableDoc) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEYCODE\tNAME\tKIND\tMAKE\tBREAK")
	for _, e := range doc.Keys {
		fmt.Fprintf(w, "0x%02x\t%s\t%s\t%s\t%s\n", e.Keycode, dash(e.Name), e.Kind, dash(e.Make), dash(e.Break))
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
