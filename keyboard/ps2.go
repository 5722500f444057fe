package keyboard

import (
	"log/slog"

	"github.com/Alia5/KEYPER/keymap"
	"github.com/Alia5/KEYPER/ps2"
)

// keyStateLength is the pressed-key bitset size: one bit per keycode.
const keyStateLength = 0xFF / 8

// PS2Keyboard is the stateful event synthesizer over a PS/2 port. It owns
// the pressed-key bitset and the lock-toggle flags; nothing else reads or
// writes them. Not safe for concurrent use; one poll loop owns it.
type PS2Keyboard struct {
	port     ps2.KeyboardPort
	logger   *slog.Logger
	keyState [keyStateLength]byte
	state    StateFlags
}

var _ Keyboard = (*PS2Keyboard)(nil)

// NewPS2 creates a session over the given port and subscribes for attach
// notifications so scan code set 2 is requested whenever the device appears
// or changes identity. The port handle is held for the session's lifetime;
// the caller is responsible for serializing access around each poll.
func NewPS2(port ps2.KeyboardPort, logger *slog.Logger) *PS2Keyboard {
	if logger == nil {
		logger = slog.Default()
	}
	k := &PS2Keyboard{port: port, logger: logger}
	err := port.Subscribe(func(p ps2.KeyboardPort) error {
		return p.SetScanset(ps2.ScansetTwo)
	})
	if err != nil {
		// The device may still recover on a later attach; the session keeps
		// polling either way.
		logger.Warn("kbd: initial scanset request failed", "error", err)
	}
	return k
}

// ReadEvent polls the port for one scancode and translates it. A nil event
// with nil error means either no scancode was pending or the scancode was
// unrecognized (in which case the port has been marked dirty).
func (k *PS2Keyboard) ReadEvent() (*KeyEvent, error) {
	scancode, err := k.port.ReadScancode()
	if err != nil {
		return nil, err
	}
	if scancode == nil {
		return nil, nil
	}
	return k.Consume(*scancode), nil
}

// Consume translates a single scancode, updates lock and pressed state, and
// returns the resulting event, or nil if the scancode is unknown. Scancodes
// must arrive in hardware order; classification is order-dependent.
func (k *PS2Keyboard) Consume(scancode ps2.Scancode) *KeyEvent {
	shift := k.Pressed(keymap.KeyLeftShift) || k.Pressed(keymap.KeyRightShift)
	modifiers := keymap.Modifiers(shift, k.state.NumLock(), k.state.CapsLock())

	keycode, err := keymap.Lookup(scancode.Code, scancode.Extended)
	if err != nil {
		// An unrecognized code usually means the device identity or mode
		// changed underneath us. No event, no state change; ask the
		// controller to re-validate the port.
		k.logger.Debug("kbd: unrecognized scancode", "scancode", scancode.String())
		k.port.SetPortDirty(true)
		return nil
	}

	char, _ := keymap.CharFor(keycode, modifiers)

	// A make for a key whose bit is already set is a typematic repeat.
	var eventType KeyEventType
	switch {
	case scancode.Make && k.Pressed(keycode):
		eventType = Repeat
	case scancode.Make:
		eventType = Make
	default:
		eventType = Break
	}

	event := &KeyEvent{
		Keycode:   keycode,
		Char:      char,
		Type:      eventType,
		Modifiers: modifiers,
	}

	k.handleState(event)
	k.setPressed(keycode, scancode.Make)
	return event
}

// handleState applies lock toggles. Toggles fire exactly once per
// qualifying make event, never on break or repeat.
// TODO: push LEDBits through KbdCmdSetLeds once a port grows a command path.
func (k *PS2Keyboard) handleState(event *KeyEvent) {
	if event.Type != Make {
		return
	}
	switch event.Keycode {
	case keymap.KeyScrollLock:
		k.state.toggleScrollLock()
	case keymap.KeyNumLock:
		k.state.toggleNumLock()
	case keymap.KeyCapsLock:
		k.state.toggleCapsLock()
	case keymap.KeyEscape:
		if k.Pressed(keymap.KeyFunction) {
			k.state.toggleFunctionLock()
		}
	}
}

func (k *PS2Keyboard) setPressed(keycode keymap.Keycode, pressed bool) {
	index := int(keycode)
	bucket := index / 8
	if bucket >= keyStateLength {
		return
	}
	bit := byte(1) << (index % 8)
	if pressed {
		k.keyState[bucket] |= bit
	} else {
		k.keyState[bucket] &^= bit
	}
}

// Pressed reports whether the key's bit is set. Reads outside the bitset
// return not-pressed rather than failing; a stale read beats a crash here.
func (k *PS2Keyboard) Pressed(keycode keymap.Keycode) bool {
	index := int(keycode)
	bucket := index / 8
	if bucket >= keyStateLength {
		return false
	}
	return k.keyState[bucket]>>(index%8)&1 != 0
}

// NumLock reports the num lock toggle.
func (k *PS2Keyboard) NumLock() bool { return k.state.NumLock() }

// ScrollLock reports the scroll lock toggle.
func (k *PS2Keyboard) ScrollLock() bool { return k.state.ScrollLock() }

// CapsLock reports the caps lock toggle.
func (k *PS2Keyboard) CapsLock() bool { return k.state.CapsLock() }

// FunctionLock reports the function lock toggle.
func (k *PS2Keyboard) FunctionLock() bool { return k.state.FunctionLock() }

// State returns the current lock flags as a value snapshot.
func (k *PS2Keyboard) State() StateFlags { return k.state }
