package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/KEYPER/keyboard"
	"github.com/Alia5/KEYPER/termport"
)

// Tty drives the pipeline interactively: the terminal is switched to raw
// mode, typed characters are synthesized into scancodes, and the resulting
// events are echoed back. Ctrl-C ends the session.
type Tty struct {
	Events bool `help:"Print full key events instead of echoing characters"`
}

// Run is called by Kong when the tty command is executed.
func (t *Tty) Run(logger *slog.Logger) error {
	port, err := termport.Open()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer port.Close()

	kbd := keyboard.NewPS2(port, logger)
	logger.Debug("kbd: tty session created")

	for {
		event, err := kbd.ReadEvent()
		if errors.Is(err, io.EOF) {
			// Raw mode leaves the cursor mid-line.
			fmt.Print("\r\n")
			return nil
		}
		if err != nil {
			return err
		}
		if event == nil {
			continue
		}
		if t.Events {
			fmt.Printf("%s\r\n", event)
			continue
		}
		if event.Type != keyboard.Break && event.HasChar() {
			if event.Char == '\n' {
				fmt.Print("\r\n")
			} else {
				fmt.Print(string(event.Char))
			}
		}
	}
}
