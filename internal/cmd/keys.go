package cmd

import (
	"fmt"

	"github.com/Alia5/KEYPER/keymap"
)

// Keys dumps the keycode table: every named keycode, its scan code set 2
// encoding and its character mappings.
type Keys struct{}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	none := keymap.Modifiers(false, false, false)
	shifted := keymap.Modifiers(true, false, false)
	for code := 0; code <= 0xFF; code++ {
		keycode := keymap.Keycode(code)
		name, ok := keymap.KeyName[keycode]
		if !ok {
			continue
		}

		wire := "-"
		if raw, extended, ok := keymap.MakeCode(keycode); ok {
			if extended {
				wire = fmt.Sprintf("E0 %02X", raw)
			} else {
				wire = fmt.Sprintf("%02X", raw)
			}
		}

		chars := ""
		if c, ok := keymap.CharFor(keycode, none); ok {
			chars = fmt.Sprintf("%q", c)
		}
		if c, ok := keymap.CharFor(keycode, shifted); ok {
			if chars == "" {
				chars = fmt.Sprintf("shift %q", c)
			} else if base, _ := keymap.CharFor(keycode, none); base != c {
				chars += fmt.Sprintf(" / shift %q", c)
			}
		}

		fmt.Printf("0x%02X  %-14s set2 %-6s %s\n", code, name, wire, chars)
	}
	return nil
}
