// Package keymap owns the driver's dense keycode namespace, the static scan
// code set 2 lookup tables, and the keycode-to-character resolution rules for
// a US QWERTY layout. Everything here is immutable data and pure functions;
// session state lives in the keyboard package.
package keymap

import "strings"

// ModifierFlags is a snapshot of the modifiers that influence character
// resolution. It is recomputed by the session for every scancode and never
// stored on its own.
type ModifierFlags uint8

const (
	modShift    ModifierFlags = 1 << 0
	modNumLock  ModifierFlags = 1 << 1
	modCapsLock ModifierFlags = 1 << 2
)

// Modifiers builds a ModifierFlags value from its three components.
func Modifiers(shift, numLock, capsLock bool) ModifierFlags {
	var f ModifierFlags
	if shift {
		f |= modShift
	}
	if numLock {
		f |= modNumLock
	}
	if capsLock {
		f |= modCapsLock
	}
	return f
}

// Shift reports whether a shift key is held.
func (f ModifierFlags) Shift() bool { return f&modShift != 0 }

// NumLock reports whether num lock is engaged.
func (f ModifierFlags) NumLock() bool { return f&modNumLock != 0 }

// CapsLock reports whether caps lock is engaged.
func (f ModifierFlags) CapsLock() bool { return f&modCapsLock != 0 }

func (f ModifierFlags) String() string {
	var parts []string
	if f.Shift() {
		parts = append(parts, "shift")
	}
	if f.NumLock() {
		parts = append(parts, "num")
	}
	if f.CapsLock() {
		parts = append(parts, "caps")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
