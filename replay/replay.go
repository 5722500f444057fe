// Package replay implements a ps2.KeyboardPort backed by a textual scancode
// capture instead of hardware. Captures are whitespace-separated hex bytes
// with '#' line comments, exactly as they appear on the wire: 0xE0 prefixes
// the extended space and 0xF0 prefixes a break, so "e0 f0 75" is the release
// of the Up arrow.
//
// A replay port is inherently attached, so the listener registered via
// Subscribe fires immediately, which lets a keyboard session issue its
// set-scanset request the same way it would against a real controller.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Alia5/KEYPER/ps2"
)

// Port replays decoded scancodes one per poll. Implements ps2.KeyboardPort.
type Port struct {
	pending  []ps2.Scancode
	dirty    bool
	scanset  ps2.Scanset
	listener ps2.AttachListener
}

var _ ps2.KeyboardPort = (*Port)(nil)

// New parses a capture from r and returns a port that replays it. Parsing
// is eager so malformed captures fail at construction, not mid-replay.
func New(r io.Reader) (*Port, error) {
	raw, err := ParseCapture(r)
	if err != nil {
		return nil, err
	}
	return &Port{pending: DecodeWire(raw)}, nil
}

// NewFromBytes builds a port straight from raw wire bytes.
func NewFromBytes(raw []byte) *Port {
	return &Port{pending: DecodeWire(raw)}
}

// ParseCapture reads whitespace-separated hex bytes from r, skipping '#'
// comments to end of line. A "0x" prefix on tokens is accepted.
func ParseCapture(r io.Reader) ([]byte, error) {
	var raw []byte
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, token := range strings.Fields(text) {
			token = strings.TrimPrefix(strings.ToLower(token), "0x")
			value, err := strconv.ParseUint(token, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("replay: line %d: bad byte %q: %w", line, token, err)
			}
			raw = append(raw, byte(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: reading capture: %w", err)
	}
	return raw, nil
}

// DecodeWire folds set 2 wire framing into scancodes: 0xE0 selects the
// extended space and 0xF0 marks the following code as a break. Prefixes
// compose, so E0 F0 xx is an extended break.
func DecodeWire(raw []byte) []ps2.Scancode {
	var out []ps2.Scancode
	extended := false
	brk := false
	for _, b := range raw {
		switch b {
		case 0xE0:
			extended = true
		case 0xF0:
			brk = true
		default:
			out = append(out, ps2.Scancode{Code: b, Extended: extended, Make: !brk})
			extended = false
			brk = false
		}
	}
	return out
}

// ReadScancode pops the next scancode. Exhaustion is the normal steady
// state, reported as nil, nil.
func (p *Port) ReadScancode() (*ps2.Scancode, error) {
	if len(p.pending) == 0 {
		return nil, nil
	}
	scancode := p.pending[0]
	p.pending = p.pending[1:]
	return &scancode, nil
}

// Remaining reports how many scancodes are left to replay.
func (p *Port) Remaining() int { return len(p.pending) }

// SetPortDirty records the re-validation request. A capture has no device
// to re-identify, so the flag is only observable via Dirty.
func (p *Port) SetPortDirty(dirty bool) { p.dirty = dirty }

// Dirty reports whether the consumer asked for device re-validation.
func (p *Port) Dirty() bool { return p.dirty }

// SetScanset records the requested scancode dialect.
func (p *Port) SetScanset(set ps2.Scanset) error {
	p.scanset = set
	return nil
}

// Scanset returns the last requested scancode dialect, 0 if none.
func (p *Port) Scanset() ps2.Scanset { return p.scanset }

// Subscribe registers the attach listener and fires it at once: the capture
// device is already attached by definition. The listener's error is returned
// to the subscriber.
func (p *Port) Subscribe(l ps2.AttachListener) error {
	p.listener = l
	if l == nil {
		return nil
	}
	return l(p)
}
