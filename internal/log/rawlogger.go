package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger handles raw scancode stream log with optional file output.
type RawLogger interface {
	Log(fromDevice bool, data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line raw byte log with timestamp and hex dump.
// fromDevice=true means bytes read off the keyboard, false means command
// bytes sent towards it.
func (r *rawLogger) Log(fromDevice bool, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	dir := "HOST->KBD"
	if fromDevice {
		dir = "KBD->HOST"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s chunk: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
