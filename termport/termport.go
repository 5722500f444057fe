// Package termport implements a ps2.KeyboardPort over a byte stream of typed
// characters, synthesizing the scan code set 2 transitions a real keyboard
// would have produced. Open puts the controlling terminal into raw mode so
// the whole translation pipeline can be exercised interactively without
// hardware; New works over any io.Reader for tests and scripted input.
package termport

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/KEYPER/keymap"
	"github.com/Alia5/KEYPER/ps2"
)

// end of text, Ctrl-C in a raw terminal
const etx = 0x03

// Port synthesizes scancodes from typed characters. Implements
// ps2.KeyboardPort.
type Port struct {
	in       *bufio.Reader
	restore  func() error
	pending  []ps2.Scancode
	dirty    bool
	scanset  ps2.Scanset
	listener ps2.AttachListener
}

var _ ps2.KeyboardPort = (*Port)(nil)

// New creates a port reading typed characters from r. No terminal state is
// touched; input ends at EOF or a 0x03 (Ctrl-C) byte.
func New(r io.Reader) *Port {
	return &Port{in: bufio.NewReader(r)}
}

// Open creates a port over stdin and switches the terminal into raw mode.
// Close must be called to restore the previous terminal state.
func Open() (*Port, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	p := New(os.Stdin)
	p.restore = func() error { return term.Restore(fd, oldState) }
	return p, nil
}

// Close restores the terminal state if Open changed it.
func (p *Port) Close() error {
	if p.restore == nil {
		return nil
	}
	restore := p.restore
	p.restore = nil
	return restore()
}

// Synthesize returns the set 2 wire transitions for one typed character: a
// make/break pair, wrapped in a left-shift make/break pair when the US
// QWERTY layout reaches the character through shift. Characters with no key
// behind them synthesize nothing.
func Synthesize(c rune) []ps2.Scancode {
	keycode, shift, ok := keymap.KeyForChar(c)
	if !ok {
		return nil
	}
	code, extended, ok := keymap.MakeCode(keycode)
	if !ok {
		return nil
	}
	var out []ps2.Scancode
	if shift {
		shiftCode, _, _ := keymap.MakeCode(keymap.KeyLeftShift)
		out = append(out, ps2.Scancode{Code: shiftCode, Make: true})
		out = append(out,
			ps2.Scancode{Code: code, Extended: extended, Make: true},
			ps2.Scancode{Code: code, Extended: extended, Make: false},
			ps2.Scancode{Code: shiftCode, Make: false})
		return out
	}
	return append(out,
		ps2.Scancode{Code: code, Extended: extended, Make: true},
		ps2.Scancode{Code: code, Extended: extended, Make: false})
}

// ReadScancode returns the next pending transition, reading further typed
// characters as needed. End of input is reported as io.EOF; unmappable
// characters are skipped.
func (p *Port) ReadScancode() (*ps2.Scancode, error) {
	for len(p.pending) == 0 {
		c, _, err := p.in.ReadRune()
		if err != nil {
			return nil, err
		}
		if c == etx {
			return nil, io.EOF
		}
		p.pending = Synthesize(c)
	}
	scancode := p.pending[0]
	p.pending = p.pending[1:]
	return &scancode, nil
}

// SetPortDirty records the re-validation request.
func (p *Port) SetPortDirty(dirty bool) { p.dirty = dirty }

// Dirty reports whether the consumer asked for device re-validation.
func (p *Port) Dirty() bool { return p.dirty }

// SetScanset records the requested scancode dialect. Synthesis always
// speaks set 2, which is the set the session asks for.
func (p *Port) SetScanset(set ps2.Scanset) error {
	p.scanset = set
	return nil
}

// Scanset returns the last requested scancode dialect, 0 if none.
func (p *Port) Scanset() ps2.Scanset { return p.scanset }

// Subscribe registers the attach listener and fires it at once, mirroring a
// device that is already present when the session comes up. The listener's
// error is returned to the subscriber.
func (p *Port) Subscribe(l ps2.AttachListener) error {
	p.listener = l
	if l == nil {
		return nil
	}
	return l(p)
}
