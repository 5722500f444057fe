package keymap

import "fmt"

// UnknownScancodeError reports a scancode byte absent from the lookup table
// for its space. The two spaces are distinct failure reasons: an unknown
// plain code and an unknown extended code point at different recovery paths
// for the controller.
type UnknownScancodeError struct {
	Code     byte
	Extended bool
}

func (e *UnknownScancodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("keymap: unknown extended scancode 0x%02X", e.Code)
	}
	return fmt.Sprintf("keymap: unknown plain scancode 0x%02X", e.Code)
}

// Lookup translates a scan code set 2 byte into a keycode. The plain and
// extended (0xE0-prefixed) spaces are disjoint tables; a miss in the selected
// table is definitive for this layer and reported as UnknownScancodeError.
func Lookup(code byte, extended bool) (Keycode, error) {
	table := set2Plain
	if extended {
		table = set2Extended
	}
	keycode, ok := table[code]
	if !ok {
		return 0, &UnknownScancodeError{Code: code, Extended: extended}
	}
	return keycode, nil
}

// Scan code set 2, plain space.
var set2Plain = map[byte]Keycode{
	0x01: KeyF9,
	0x03: KeyF5,
	0x04: KeyF3,
	0x05: KeyF1,
	0x06: KeyF2,
	0x07: KeyF12,
	0x09: KeyF10,
	0x0A: KeyF8,
	0x0B: KeyF6,
	0x0C: KeyF4,
	0x0D: KeyTab,
	0x0E: KeyBackTick,
	0x11: KeyLeftAlt,
	0x12: KeyLeftShift,
	0x14: KeyLeftControl,
	0x15: KeyQ,
	0x16: Key1,
	0x1A: KeyZ,
	0x1B: KeyS,
	0x1C: KeyA,
	0x1D: KeyW,
	0x1E: Key2,
	0x21: KeyC,
	0x22: KeyX,
	0x23: KeyD,
	0x24: KeyE,
	0x25: Key4,
	0x26: Key3,
	0x29: KeySpace,
	0x2A: KeyV,
	0x2B: KeyF,
	0x2C: KeyT,
	0x2D: KeyR,
	0x2E: Key5,
	0x31: KeyN,
	0x32: KeyB,
	0x33: KeyH,
	0x34: KeyG,
	0x35: KeyY,
	0x36: Key6,
	0x3A: KeyM,
	0x3B: KeyJ,
	0x3C: KeyU,
	0x3D: Key7,
	0x3E: Key8,
	0x41: KeyComma,
	0x42: KeyK,
	0x43: KeyI,
	0x44: KeyO,
	0x45: Key0,
	0x46: Key9,
	0x49: KeyPeriod,
	0x4A: KeySlash,
	0x4B: KeyL,
	0x4C: KeySemicolon,
	0x4D: KeyP,
	0x4E: KeyMinus,
	0x52: KeyApostrophe,
	0x54: KeyLeftBracket,
	0x55: KeyEquals,
	0x58: KeyCapsLock,
	0x59: KeyRightShift,
	0x5A: KeyEnter,
	0x5B: KeyRightBracket,
	0x5D: KeyBackSlash,
	0x66: KeyBackspace,
	0x69: KeyKp1,
	0x6B: KeyKp4,
	0x6C: KeyKp7,
	0x70: KeyKp0,
	0x71: KeyKpPeriod,
	0x72: KeyKp2,
	0x73: KeyKp5,
	0x74: KeyKp6,
	0x75: KeyKp8,
	0x76: KeyEscape,
	0x77: KeyNumLock,
	0x78: KeyF11,
	0x79: KeyKpPlus,
	0x7A: KeyKp3,
	0x7B: KeyKpMinus,
	0x7C: KeyKpAsterisk,
	0x7D: KeyKp9,
	0x7E: KeyScrollLock,
	0x83: KeyF7,
}

// Scan code set 2, extended (0xE0-prefixed) space. Multi-byte oddities
// (PrintScreen, Pause) are not representable as a single extended byte and
// are intentionally absent.
var set2Extended = map[byte]Keycode{
	0x10: KeyWWWSearch,
	0x11: KeyRightAlt,
	0x14: KeyRightControl,
	0x15: KeyPreviousTrack,
	0x18: KeyWWWFavorites,
	0x1F: KeyLeftWin,
	0x20: KeyWWWRefresh,
	0x21: KeyVolumeDown,
	0x23: KeyMute,
	0x27: KeyRightWin,
	0x28: KeyWWWStop,
	0x2B: KeyCalculator,
	0x2F: KeyMenus,
	0x30: KeyWWWForward,
	0x32: KeyVolumeUp,
	0x34: KeyPlayPause,
	0x37: KeyPower,
	0x38: KeyWWWBack,
	0x3A: KeyWWWHome,
	0x3B: KeyStop,
	0x3F: KeySleep,
	0x40: KeyMyComputer,
	0x48: KeyEmail,
	0x4A: KeyKpSlash,
	0x4D: KeyNextTrack,
	0x50: KeyMediaSelect,
	0x5A: KeyKpEnter,
	0x5E: KeyWake,
	// Some laptop boards report the Fn key here.
	0x63: KeyFunction,
	0x69: KeyEnd,
	0x6B: KeyLeft,
	0x6C: KeyHome,
	0x70: KeyInsert,
	0x71: KeyDelete,
	0x72: KeyDown,
	0x74: KeyRight,
	0x75: KeyUp,
	0x7A: KeyPageDown,
	0x7D: KeyPageUp,
}

// Reverse tables, built once for scancode synthesis (termport) and tooling.
var (
	set2PlainReverse    = make(map[Keycode]byte, len(set2Plain))
	set2ExtendedReverse = make(map[Keycode]byte, len(set2Extended))
)

func init() {
	for code, keycode := range set2Plain {
		set2PlainReverse[keycode] = code
	}
	for code, keycode := range set2Extended {
		set2ExtendedReverse[keycode] = code
	}
}

// MakeCode returns the set 2 make code for a keycode along with whether it
// lives in the extended space. ok is false for keycodes with no set 2
// encoding.
func MakeCode(keycode Keycode) (code byte, extended bool, ok bool) {
	if code, ok := set2PlainReverse[keycode]; ok {
		return code, false, true
	}
	if code, ok := set2ExtendedReverse[keycode]; ok {
		return code, true, true
	}
	return 0, false, false
}
