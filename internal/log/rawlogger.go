package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records scan code chunks written to a target.
type RawLogger interface {
	Log(target string, data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits a single-line log entry with timestamp, target and hex dump.
func (r *rawLogger) Log(target string, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	line := fmt.Sprintf("%s ->%s chunk: %d bytes, hex: %s\n",
		r.now().Format("2006/01/02 15:04:05"),
		target,
		len(data),
		Hex(data))

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}

// Hex formats data as space separated lowercase byte pairs ("e0 f0 75").
func Hex(data []byte) string {
	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}
	return hexbuf.String()
}
