package ps2

// AttachListener is notified synchronously whenever the keyboard behind a
// port becomes available or changes identity. The port surfaces a non-nil
// return to whoever triggered the re-detection.
type AttachListener func(port KeyboardPort) error

// KeyboardPort is the seam between the translation pipeline and whatever
// manages the physical (or simulated) device. Implementations own all
// register-level I/O, command/ack handshakes and device detection; the
// keyboard session only ever calls these four methods.
//
// Implementations are not required to be safe for concurrent use; the
// session assumes exactly one caller drives the port at a time.
type KeyboardPort interface {
	// ReadScancode polls for the next raw scancode. A nil scancode with a
	// nil error is the normal "nothing pending" steady state.
	ReadScancode() (*Scancode, error)

	// SetPortDirty asks the port to re-validate the attached device before
	// the next read. The session calls this when a scancode fails to
	// translate, which usually means the device identity or mode changed.
	SetPortDirty(dirty bool)

	// SetScanset requests a scancode dialect from the device. The session
	// requires ScansetTwo and re-issues it on every attach notification.
	SetScanset(set Scanset) error

	// Subscribe registers the attach listener. A port holds at most one
	// listener; registering replaces the previous one. Ports whose device is
	// already attached invoke the listener before returning and pass its
	// error back to the subscriber.
	Subscribe(l AttachListener) error
}
