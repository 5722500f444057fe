package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/KEYPER/internal/log"
	"github.com/Alia5/KEYPER/keyboard"
	"github.com/Alia5/KEYPER/replay"
)

// Replay streams a scancode capture through the translation pipeline and
// prints the resulting key events.
type Replay struct {
	File  string `arg:"" optional:"" help:"Capture file of hex scancode bytes; reads stdin when omitted or '-'" type:"path"`
	Chars bool   `help:"Echo resolved characters only, like a terminal" env:"KEYPER_REPLAY_CHARS"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	var in io.Reader = os.Stdin
	if r.File != "" && r.File != "-" {
		f, err := os.Open(r.File)
		if err != nil {
			return fmt.Errorf("opening capture: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := replay.ParseCapture(in)
	if err != nil {
		return err
	}
	rawLogger.Log(true, raw)

	port := replay.NewFromBytes(raw)
	kbd := keyboard.NewPS2(port, logger)
	logger.Debug("kbd: replay session created", "scancodes", port.Remaining())

	for {
		event, err := kbd.ReadEvent()
		if err != nil {
			return err
		}
		if event == nil {
			if port.Remaining() == 0 {
				break
			}
			continue
		}
		if r.Chars {
			if event.Type != keyboard.Break && event.HasChar() {
				fmt.Print(string(event.Char))
			}
			continue
		}
		fmt.Println(event)
	}
	if r.Chars {
		fmt.Println()
	}

	if port.Dirty() {
		logger.Warn("kbd: capture contained unrecognized scancodes, port marked dirty")
	}
	logger.Debug("kbd: replay finished",
		"num", kbd.NumLock(), "scroll", kbd.ScrollLock(),
		"caps", kbd.CapsLock(), "function", kbd.FunctionLock())
	return nil
}
