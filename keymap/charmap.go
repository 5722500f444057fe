package keymap

type mappingKind uint8

const (
	mappingEmpty mappingKind = iota
	mappingSingle
	mappingShifted
	mappingCapitalized
	mappingNumLocked
)

// KeyCharMapping is the character-production policy attached to a keycode.
// It is immutable data; Char evaluates it against a modifier snapshot.
type KeyCharMapping struct {
	kind mappingKind
	base rune
	alt  rune
}

// Empty is a key that never produces a character.
func Empty() KeyCharMapping { return KeyCharMapping{} }

// Single is a key with a constant character, regardless of modifiers.
func Single(c rune) KeyCharMapping {
	return KeyCharMapping{kind: mappingSingle, base: c}
}

// Shifted is a key with an alternate character while shift is held.
func Shifted(c, shifted rune) KeyCharMapping {
	return KeyCharMapping{kind: mappingShifted, base: c, alt: shifted}
}

// Capitalized is a key whose alternate is selected by caps lock XOR shift,
// so holding shift under caps lock cancels back to the base character.
func Capitalized(c, capital rune) KeyCharMapping {
	return KeyCharMapping{kind: mappingCapitalized, base: c, alt: capital}
}

// NumLocked is a key that only produces its character while num lock is
// disengaged (the dual-function keypad keys).
func NumLocked(c rune) KeyCharMapping {
	return KeyCharMapping{kind: mappingNumLocked, base: c}
}

// Char resolves the mapping against a modifier snapshot. The second return
// is false when the key produces no character under those modifiers.
func (m KeyCharMapping) Char(modifiers ModifierFlags) (rune, bool) {
	switch m.kind {
	case mappingSingle:
		return m.base, true
	case mappingShifted:
		if modifiers.Shift() {
			return m.alt, true
		}
		return m.base, true
	case mappingCapitalized:
		if modifiers.CapsLock() != modifiers.Shift() {
			return m.alt, true
		}
		return m.base, true
	case mappingNumLocked:
		if !modifiers.NumLock() {
			return m.base, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// CharFor resolves the US QWERTY character for a keycode under the given
// modifiers. Pure function; it never consults session state.
func CharFor(keycode Keycode, modifiers ModifierFlags) (rune, bool) {
	return usQwerty[keycode].Char(modifiers)
}

// MappingFor returns the US QWERTY mapping attached to a keycode. Keycodes
// outside the table resolve as Empty.
func MappingFor(keycode Keycode) KeyCharMapping {
	return usQwerty[keycode]
}

// US QWERTY character table. Keycodes absent here (modifiers, locks,
// function keys, navigation, media) produce no character.
var usQwerty = map[Keycode]KeyCharMapping{
	KeyBackTick:  Shifted('`', '~'),
	Key1:         Shifted('1', '!'),
	Key2:         Shifted('2', '@'),
	Key3:         Shifted('3', '#'),
	Key4:         Shifted('4', '$'),
	Key5:         Shifted('5', '%'),
	Key6:         Shifted('6', '^'),
	Key7:         Shifted('7', '&'),
	Key8:         Shifted('8', '*'),
	Key9:         Shifted('9', '('),
	Key0:         Shifted('0', ')'),
	KeyMinus:     Shifted('-', '_'),
	KeyEquals:    Shifted('=', '+'),
	KeyBackspace: Single('\x08'),

	KeyTab: Single('\t'),
	KeyQ:   Capitalized('q', 'Q'),
	KeyW:   Capitalized('w', 'W'),
	KeyE:   Capitalized('e', 'E'),
	KeyR:   Capitalized('r', 'R'),
	KeyT:   Capitalized('t', 'T'),
	KeyY:   Capitalized('y', 'Y'),
	KeyU:   Capitalized('u', 'U'),
	KeyI:   Capitalized('i', 'I'),
	KeyO:   Capitalized('o', 'O'),
	KeyP:   Capitalized('p', 'P'),

	KeyLeftBracket:  Shifted('[', '{'),
	KeyRightBracket: Shifted(']', '}'),
	KeyEnter:        Single('\n'),

	KeyA: Capitalized('a', 'A'),
	KeyS: Capitalized('s', 'S'),
	KeyD: Capitalized('d', 'D'),
	KeyF: Capitalized('f', 'F'),
	KeyG: Capitalized('g', 'G'),
	KeyH: Capitalized('h', 'H'),
	KeyJ: Capitalized('j', 'J'),
	KeyK: Capitalized('k', 'K'),
	KeyL: Capitalized('l', 'L'),

	KeySemicolon:  Shifted(';', ':'),
	KeyApostrophe: Shifted('\'', '"'),
	KeyBackSlash:  Shifted('\\', '|'),

	KeyZ: Capitalized('z', 'Z'),
	KeyX: Capitalized('x', 'X'),
	KeyC: Capitalized('c', 'C'),
	KeyV: Capitalized('v', 'V'),
	KeyB: Capitalized('b', 'B'),
	KeyN: Capitalized('n', 'N'),
	KeyM: Capitalized('m', 'M'),

	KeyComma:  Shifted(',', '<'),
	KeyPeriod: Shifted('.', '>'),
	KeySlash:  Shifted('/', '?'),

	KeySpace: Single(' '),

	KeyKpSlash:    Single('/'),
	KeyKpAsterisk: Single('*'),
	KeyKpMinus:    Single('-'),
	KeyKpPlus:     Single('+'),
	KeyKpEnter:    Single('\n'),
	KeyKp0:        NumLocked('0'),
	KeyKp1:        NumLocked('1'),
	KeyKp2:        NumLocked('2'),
	KeyKp3:        NumLocked('3'),
	KeyKp4:        NumLocked('4'),
	KeyKp5:        NumLocked('5'),
	KeyKp6:        NumLocked('6'),
	KeyKp7:        NumLocked('7'),
	KeyKp8:        NumLocked('8'),
	KeyKp9:        NumLocked('9'),
	KeyKpPeriod:   NumLocked('.'),
}

// KeyForChar maps a typed character back to the keycode that produces it and
// whether shift must be held. Used when synthesizing scancodes from text
// input; lookup is over the same US QWERTY table character resolution uses.
func KeyForChar(c rune) (keycode Keycode, shift bool, ok bool) {
	k, ok := charToKey[c]
	return k.keycode, k.shift, ok
}

type charKey struct {
	keycode Keycode
	shift   bool
}

var charToKey = buildCharToKey()

func buildCharToKey() map[rune]charKey {
	m := make(map[rune]charKey, 2*len(usQwerty))
	unshifted := Modifiers(false, false, false)
	shifted := Modifiers(true, false, false)
	for keycode, mapping := range usQwerty {
		// Keypad keys overlap the main block; prefer main-block keycodes.
		if keycode >= KeyNumLock && keycode <= KeyKpPeriod {
			continue
		}
		if c, ok := mapping.Char(unshifted); ok {
			if _, dup := m[c]; !dup {
				m[c] = charKey{keycode: keycode}
			}
		}
		if c, ok := mapping.Char(shifted); ok {
			if _, dup := m[c]; !dup {
				m[c] = charKey{keycode: keycode, shift: true}
			}
		}
	}
	// Carriage returns type as Enter.
	m['\r'] = charKey{keycode: KeyEnter}
	return m
}
