package keyboard

import (
	"fmt"

	"github.com/Alia5/KEYPER/keymap"
)

// KeyEventType classifies a key transition.
type KeyEventType uint8

const (
	// Make is the first press of a key.
	Make KeyEventType = iota
	// Break is a key release.
	Break
	// Repeat is a held-down re-fire of a key that is already pressed.
	Repeat
)

func (t KeyEventType) String() string {
	switch t {
	case Make:
		return "make"
	case Break:
		return "break"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("KeyEventType(%d)", uint8(t))
	}
}

// KeyEvent is one translated key transition. It is immutable once produced;
// Char is 0 when the key resolves to no character under the modifiers that
// were active at the time of the event.
type KeyEvent struct {
	Keycode   keymap.Keycode
	Char      rune
	Type      KeyEventType
	Modifiers keymap.ModifierFlags
}

// HasChar reports whether the event carries a resolved character.
func (e KeyEvent) HasChar() bool { return e.Char != 0 }

func (e KeyEvent) String() string {
	if e.HasChar() {
		return fmt.Sprintf("%s %s %q (%s)", e.Type, e.Keycode.Name(), e.Char, e.Modifiers)
	}
	return fmt.Sprintf("%s %s (%s)", e.Type, e.Keycode.Name(), e.Modifiers)
}
