// Package keyboard turns raw PS/2 scancodes into key events: keycode,
// resolved character, make/break/repeat classification and a modifier
// snapshot, while tracking pressed keys and the persistent lock toggles.
//
// The package is single-threaded by design: a session is driven by exactly
// one polling loop (or, in a future revision, one interrupt handler) and
// never blocks of its own accord.
package keyboard

import "github.com/Alia5/KEYPER/keymap"

// Keyboard is the generic keyboard surface exposed to the input consumer.
// PS2Keyboard implements it over a ps2.KeyboardPort; alternate transports
// (USB) can implement it without touching event synthesis.
type Keyboard interface {
	// ReadEvent polls for the next key event. A nil event with a nil error
	// is the normal "nothing pending" steady state. Errors are transport
	// failures from the underlying port; translation itself cannot fail.
	ReadEvent() (*KeyEvent, error)

	// Pressed reports whether the key is currently held. Out-of-range
	// keycodes read as not pressed.
	Pressed(keycode keymap.Keycode) bool

	NumLock() bool
	ScrollLock() bool
	CapsLock() bool
	FunctionLock() bool
}
