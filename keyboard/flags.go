package keyboard

import "strings"

// StateFlags holds the keyboard's persistent lock toggles. It survives
// across polls and is owned exclusively by one session; the only mutations
// are the toggle methods, applied on qualifying make events.
type StateFlags uint8

const (
	stateNumLock      StateFlags = 1 << 0
	stateScrollLock   StateFlags = 1 << 1
	stateCapsLock     StateFlags = 1 << 2
	stateFunctionLock StateFlags = 1 << 3
)

// NumLock reports whether num lock is engaged.
func (f StateFlags) NumLock() bool { return f&stateNumLock != 0 }

// ScrollLock reports whether scroll lock is engaged.
func (f StateFlags) ScrollLock() bool { return f&stateScrollLock != 0 }

// CapsLock reports whether caps lock is engaged.
func (f StateFlags) CapsLock() bool { return f&stateCapsLock != 0 }

// FunctionLock reports whether function lock is engaged.
func (f StateFlags) FunctionLock() bool { return f&stateFunctionLock != 0 }

func (f *StateFlags) toggleNumLock()      { *f ^= stateNumLock }
func (f *StateFlags) toggleScrollLock()   { *f ^= stateScrollLock }
func (f *StateFlags) toggleCapsLock()     { *f ^= stateCapsLock }
func (f *StateFlags) toggleFunctionLock() { *f ^= stateFunctionLock }

// LEDBits packs the lock state into the payload byte of the keyboard
// set-LEDs command: scroll lock bit 0, num lock bit 1, caps lock bit 2.
// Nothing pushes this to hardware yet; the encoding is kept with the state
// so a transport that does can use it directly.
func (f StateFlags) LEDBits() byte {
	var b byte
	if f.ScrollLock() {
		b |= 1 << 0
	}
	if f.NumLock() {
		b |= 1 << 1
	}
	if f.CapsLock() {
		b |= 1 << 2
	}
	return b
}

func (f StateFlags) String() string {
	var parts []string
	if f.NumLock() {
		parts = append(parts, "num")
	}
	if f.ScrollLock() {
		parts = append(parts, "scroll")
	}
	if f.CapsLock() {
		parts = append(parts, "caps")
	}
	if f.FunctionLock() {
		parts = append(parts, "function")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
