// Package ps2 defines the PS/2 protocol vocabulary and the controller-side
// boundary the keyboard session is driven through.
//
// The package owns no hardware I/O of its own: command and response codes are
// plain data, and register-level port management is delegated to whatever
// implements KeyboardPort (a real controller, a capture replay, a terminal
// shim, ...).
package ps2

import "fmt"

// Scancode is a single raw key transition as reported by the device, after
// the wire prefixes have been folded in: Extended marks codes from the
// 0xE0-prefixed space, Make distinguishes press from release (0xF0 prefix).
type Scancode struct {
	Code     byte
	Extended bool
	Make     bool
}

func (s Scancode) String() string {
	space := "plain"
	if s.Extended {
		space = "extended"
	}
	kind := "break"
	if s.Make {
		kind = "make"
	}
	return fmt.Sprintf("%s %s 0x%02X", space, kind, s.Code)
}

// Scanset identifies a scancode dialect the keyboard can be asked to emit.
type Scanset byte

const (
	ScansetOne   Scanset = 1
	ScansetTwo   Scanset = 2
	ScansetThree Scanset = 3
)
