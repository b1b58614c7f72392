package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dps-sim/ps2scan/device/ps2"
	"github.com/dps-sim/ps2scan/internal/log"
)

// Break prints the release sequence of each key, one line per key.
type Break struct {
	Keys []string `arg:"" name:"key" help:"Key code (decimal, 0x hex) or key name"`
}

// Run is called by Kong when the break command is executed.
func (b *Break) Run(logger *slog.Logger, out io.Writer) error {
	return printCodes(logger, out, "break", b.Keys, ps2.BreakCode)
}

// Make prints the press sequence of each key, one line per key.
type Make struct {
	Keys []string `arg:"" name:"key" help:"Key code (decimal, 0x hex) or key name"`
}

// Run is called by Kong when the make command is executed.
func (m *Make) Run(logger *slog.Logger, out io.Writer) error {
	return printCodes(logger, out, "make", m.Keys, ps2.MakeCode)
}

// printCodes resolves every key before writing anything, so a bad argument
// never leaves partial output behind. Unmapped keys print "-".
func printCodes(logger *slog.Logger, out io.Writer, what string, keys []string, conv func(int) ([]byte, error)) error {
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		code, err := ps2.ParseKeycode(k)
		if err != nil {
			return err
		}
		seq, err := conv(code)
		if err != nil {
			return fmt.Errorf("%s code for %s: %w", what, k, err)
		}
		if seq == nil {
			logger.Debug("no PS/2 mapping", "key", k, "keycode", code)
			lines = append(lines, "-")
			continue
		}
		logger.Debug("resolved", "kind", what, "key", k, "keycode", code, "bytes", log.Hex(seq))
		lines = append(lines, log.Hex(seq))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
