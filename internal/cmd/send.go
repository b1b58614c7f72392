package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dps-sim/ps2scan/device/ps2"
	"github.com/dps-sim/ps2scan/internal/log"
)

// Send types keys into the SCI socket of a running simulator.
type Send struct {
	Socket      string        `help:"SCI Unix socket of the simulator" default:"/tmp/sci.sock" env:"PS2SCAN_SOCKET"`
	Timeout     time.Duration `help:"Dial timeout" default:"5s" env:"PS2SCAN_TIMEOUT"`
	Delay       time.Duration `help:"Pause between keys" default:"20ms" env:"PS2SCAN_DELAY"`
	ReleaseOnly bool          `help:"Send break codes only" env:"PS2SCAN_RELEASE_ONLY"`
	Keys        []string      `arg:"" name:"key" help:"Key code (decimal, 0x hex) or key name"`
}

// Run is called by Kong when the send command is executed.
func (s *Send) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seqs, err := s.sequences()
	if err != nil {
		return err
	}

	d := net.Dialer{Timeout: s.Timeout}
	conn, err := d.DialContext(ctx, "unix", s.Socket)
	if err != nil {
		return fmt.Errorf("failed to connect to SCI socket %s: %w", s.Socket, err)
	}
	defer conn.Close()

	logger.Info("Connected to SCI socket", "socket", s.Socket, "keys", len(seqs))
	return s.write(ctx, conn, seqs, logger, rawLogger)
}

// sequences resolves all keys up front. Unmapped keys yield nil entries.
func (s *Send) sequences() ([][]byte, error) {
	if len(s.Keys) == 0 {
		return nil, errors.New("no keys given")
	}
	out := make([][]byte, len(s.Keys))
	for i, k := range s.Keys {
		code, err := ps2.ParseKeycode(k)
		if err != nil {
			return nil, err
		}
		if s.ReleaseOnly {
			out[i], err = ps2.BreakCode(code)
		} else {
			out[i], err = ps2.Stroke(code)
		}
		if err != nil {
			return nil, fmt.Errorf("scan code for %s: %w", k, err)
		}
	}
	return out, nil
}

func (s *Send) write(ctx context.Context, w io.Writer, seqs [][]byte, logger *slog.Logger, rawLogger log.RawLogger) error {
	sent := 0
	for i, seq := range seqs {
		if seq == nil {
			logger.Warn("Skipping key without PS/2 mapping", "key", s.Keys[i])
			continue
		}
		if sent > 0 && s.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.Delay):
			}
		}
		if _, err := w.Write(seq); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.Keys[i], err)
		}
		rawLogger.Log(s.Socket, seq)
		logger.Debug("Sent key", "key", s.Keys[i], "bytes", log.Hex(seq))
		sent++
	}
	logger.Info("Done", "sent", sent, "skipped", len(seqs)-sent)
	return nil
}
