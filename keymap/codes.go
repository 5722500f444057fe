package keymap

// Keycode is the driver's own dense identifier for a logical key. Values are
// assigned by this package and carry no relation to hardware scancodes.
type Keycode byte

// Keycode assignments, grouped by keyboard region.
const (
	KeyEscape Keycode = 0x00

	// Function row
	KeyF1  Keycode = 0x01
	KeyF2  Keycode = 0x02
	KeyF3  Keycode = 0x03
	KeyF4  Keycode = 0x04
	KeyF5  Keycode = 0x05
	KeyF6  Keycode = 0x06
	KeyF7  Keycode = 0x07
	KeyF8  Keycode = 0x08
	KeyF9  Keycode = 0x09
	KeyF10 Keycode = 0x0A
	KeyF11 Keycode = 0x0B
	KeyF12 Keycode = 0x0C

	KeyPrintScreen Keycode = 0x0D
	KeyScrollLock  Keycode = 0x0E
	KeyPauseBreak  Keycode = 0x0F

	// Number row
	KeyBackTick  Keycode = 0x10
	Key1         Keycode = 0x11
	Key2         Keycode = 0x12
	Key3         Keycode = 0x13
	Key4         Keycode = 0x14
	Key5         Keycode = 0x15
	Key6         Keycode = 0x16
	Key7         Keycode = 0x17
	Key8         Keycode = 0x18
	Key9         Keycode = 0x19
	Key0         Keycode = 0x1A
	KeyMinus     Keycode = 0x1B
	KeyEquals    Keycode = 0x1C
	KeyBackspace Keycode = 0x1D

	// Top letter row
	KeyTab          Keycode = 0x1E
	KeyQ            Keycode = 0x1F
	KeyW            Keycode = 0x20
	KeyE            Keycode = 0x21
	KeyR            Keycode = 0x22
	KeyT            Keycode = 0x23
	KeyY            Keycode = 0x24
	KeyU            Keycode = 0x25
	KeyI            Keycode = 0x26
	KeyO            Keycode = 0x27
	KeyP            Keycode = 0x28
	KeyLeftBracket  Keycode = 0x29
	KeyRightBracket Keycode = 0x2A
	KeyEnter        Keycode = 0x2B

	// Home letter row
	KeyCapsLock   Keycode = 0x2C
	KeyA          Keycode = 0x2D
	KeyS          Keycode = 0x2E
	KeyD          Keycode = 0x2F
	KeyF          Keycode = 0x30
	KeyG          Keycode = 0x31
	KeyH          Keycode = 0x32
	KeyJ          Keycode = 0x33
	KeyK          Keycode = 0x34
	KeyL          Keycode = 0x35
	KeySemicolon  Keycode = 0x36
	KeyApostrophe Keycode = 0x37
	KeyBackSlash  Keycode = 0x38

	// Bottom letter row
	KeyLeftShift  Keycode = 0x39
	KeyZ          Keycode = 0x3A
	KeyX          Keycode = 0x3B
	KeyC          Keycode = 0x3C
	KeyV          Keycode = 0x3D
	KeyB          Keycode = 0x3E
	KeyN          Keycode = 0x3F
	KeyM          Keycode = 0x40
	KeyComma      Keycode = 0x41
	KeyPeriod     Keycode = 0x42
	KeySlash      Keycode = 0x43
	KeyRightShift Keycode = 0x44

	// Bottom modifier row
	KeyLeftControl  Keycode = 0x45
	KeyLeftWin      Keycode = 0x46
	KeyLeftAlt      Keycode = 0x47
	KeySpace        Keycode = 0x48
	KeyRightAlt     Keycode = 0x49
	KeyRightWin     Keycode = 0x4A
	KeyMenus        Keycode = 0x4B
	KeyRightControl Keycode = 0x4C

	// Navigation block
	KeyInsert   Keycode = 0x4D
	KeyHome     Keycode = 0x4E
	KeyPageUp   Keycode = 0x4F
	KeyDelete   Keycode = 0x50
	KeyEnd      Keycode = 0x51
	KeyPageDown Keycode = 0x52
	KeyUp       Keycode = 0x53
	KeyLeft     Keycode = 0x54
	KeyDown     Keycode = 0x55
	KeyRight    Keycode = 0x56

	// Keypad
	KeyNumLock    Keycode = 0x57
	KeyKpSlash    Keycode = 0x58
	KeyKpAsterisk Keycode = 0x59
	KeyKpMinus    Keycode = 0x5A
	KeyKpPlus     Keycode = 0x5B
	KeyKpEnter    Keycode = 0x5C
	KeyKp0        Keycode = 0x5D
	KeyKp1        Keycode = 0x5E
	KeyKp2        Keycode = 0x5F
	KeyKp3        Keycode = 0x60
	KeyKp4        Keycode = 0x61
	KeyKp5        Keycode = 0x62
	KeyKp6        Keycode = 0x63
	KeyKp7        Keycode = 0x64
	KeyKp8        Keycode = 0x65
	KeyKp9        Keycode = 0x66
	KeyKpPeriod   Keycode = 0x67

	// Fn on boards that report it at all
	KeyFunction Keycode = 0x68

	// ACPI keys
	KeyPower Keycode = 0x69
	KeySleep Keycode = 0x6A
	KeyWake  Keycode = 0x6B

	// Media keys
	KeyNextTrack     Keycode = 0x6C
	KeyPreviousTrack Keycode = 0x6D
	KeyStop          Keycode = 0x6E
	KeyPlayPause     Keycode = 0x6F
	KeyMute          Keycode = 0x70
	KeyVolumeUp      Keycode = 0x71
	KeyVolumeDown    Keycode = 0x72
	KeyMediaSelect   Keycode = 0x73

	// Application launch keys
	KeyEmail      Keycode = 0x74
	KeyCalculator Keycode = 0x75
	KeyMyComputer Keycode = 0x76

	// Browser keys
	KeyWWWSearch    Keycode = 0x77
	KeyWWWHome      Keycode = 0x78
	KeyWWWBack      Keycode = 0x79
	KeyWWWForward   Keycode = 0x7A
	KeyWWWStop      Keycode = 0x7B
	KeyWWWRefresh   Keycode = 0x7C
	KeyWWWFavorites Keycode = 0x7D
)

// KeyName maps keycodes to human-readable key names.
var KeyName = map[Keycode]string{
	KeyEscape: "Escape",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPauseBreak:  "PauseBreak",

	KeyBackTick: "BackTick",
	Key1:        "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyMinus:     "Minus",
	KeyEquals:    "Equals",
	KeyBackspace: "Backspace",

	KeyTab: "Tab",
	KeyQ:   "Q", KeyW: "W", KeyE: "E", KeyR: "R", KeyT: "T", KeyY: "Y", KeyU: "U",
	KeyI: "I", KeyO: "O", KeyP: "P",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyEnter:        "Enter",

	KeyCapsLock: "CapsLock",
	KeyA:        "A", KeyS: "S", KeyD: "D", KeyF: "F", KeyG: "G", KeyH: "H",
	KeyJ: "J", KeyK: "K", KeyL: "L",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyBackSlash:  "BackSlash",

	KeyLeftShift: "LeftShift",
	KeyZ:         "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B", KeyN: "N", KeyM: "M",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyRightShift: "RightShift",

	KeyLeftControl:  "LeftControl",
	KeyLeftWin:      "LeftWin",
	KeyLeftAlt:      "LeftAlt",
	KeySpace:        "Space",
	KeyRightAlt:     "RightAlt",
	KeyRightWin:     "RightWin",
	KeyMenus:        "Menus",
	KeyRightControl: "RightControl",

	KeyInsert:   "Insert",
	KeyHome:     "Home",
	KeyPageUp:   "PageUp",
	KeyDelete:   "Delete",
	KeyEnd:      "End",
	KeyPageDown: "PageDown",
	KeyUp:       "Up",
	KeyLeft:     "Left",
	KeyDown:     "Down",
	KeyRight:    "Right",

	KeyNumLock:    "NumLock",
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp0:        "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpPeriod: "Kp.",

	KeyFunction: "Function",

	KeyPower: "Power",
	KeySleep: "Sleep",
	KeyWake:  "Wake",

	KeyNextTrack:     "NextTrack",
	KeyPreviousTrack: "PreviousTrack",
	KeyStop:          "Stop",
	KeyPlayPause:     "PlayPause",
	KeyMute:          "Mute",
	KeyVolumeUp:      "VolumeUp",
	KeyVolumeDown:    "VolumeDown",
	KeyMediaSelect:   "MediaSelect",

	KeyEmail:      "Email",
	KeyCalculator: "Calculator",
	KeyMyComputer: "MyComputer",

	KeyWWWSearch:    "WWWSearch",
	KeyWWWHome:      "WWWHome",
	KeyWWWBack:      "WWWBack",
	KeyWWWForward:   "WWWForward",
	KeyWWWStop:      "WWWStop",
	KeyWWWRefresh:   "WWWRefresh",
	KeyWWWFavorites: "WWWFavorites",
}

// Name returns the human-readable name for a keycode, or a hex fallback for
// codes outside the table.
func (k Keycode) Name() string {
	if name, ok := KeyName[k]; ok {
		return name
	}
	return "Key(0x" + hexByte(byte(k)) + ")"
}

const hexdigits = "0123456789ABCDEF"

func hexByte(b byte) string {
	return string([]byte{hexdigits[b>>4], hexdigits[b&0x0F]})
}
