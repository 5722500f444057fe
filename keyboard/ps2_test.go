package keyboard_test

import (
	"errors"
	"testing"

	"github.com/Alia5/KEYPER/keyboard"
	"github.com/Alia5/KEYPER/keymap"
	"github.com/Alia5/KEYPER/ps2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePort is an in-memory ps2.KeyboardPort for driving a session in tests.
type fakePort struct {
	queue    []ps2.Scancode
	err      error
	dirty    bool
	scanset  ps2.Scanset
	listener ps2.AttachListener
}

func (p *fakePort) ReadScancode() (*ps2.Scancode, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.queue) == 0 {
		return nil, nil
	}
	scancode := p.queue[0]
	p.queue = p.queue[1:]
	return &scancode, nil
}

func (p *fakePort) SetPortDirty(dirty bool) { p.dirty = dirty }

func (p *fakePort) SetScanset(set ps2.Scanset) error {
	p.scanset = set
	return nil
}

func (p *fakePort) Subscribe(l ps2.AttachListener) error {
	p.listener = l
	return nil
}

func (p *fakePort) attach(t *testing.T) {
	t.Helper()
	require.NotNil(t, p.listener)
	require.NoError(t, p.listener(p))
}

// failingAttachPort fires the attach listener during Subscribe and refuses
// the scanset request, like a device vanishing between detection and setup.
type failingAttachPort struct {
	fakePort
	scansetErr error
}

func (p *failingAttachPort) SetScanset(ps2.Scanset) error { return p.scansetErr }

func (p *failingAttachPort) Subscribe(l ps2.AttachListener) error {
	p.listener = l
	return l(p)
}

func makeCode(code byte) ps2.Scancode  { return ps2.Scancode{Code: code, Make: true} }
func breakCode(code byte) ps2.Scancode { return ps2.Scancode{Code: code, Make: false} }

func newSession(t *testing.T) (*keyboard.PS2Keyboard, *fakePort) {
	t.Helper()
	port := &fakePort{}
	return keyboard.NewPS2(port, nil), port
}

func TestAttachRequestsScansetTwo(t *testing.T) {
	kbd, port := newSession(t)
	_ = kbd

	port.attach(t)
	assert.Equal(t, ps2.ScansetTwo, port.scanset)

	// A device identity change re-issues the request.
	port.scanset = 0
	port.attach(t)
	assert.Equal(t, ps2.ScansetTwo, port.scanset)
}

func TestFailedInitialAttachKeepsSessionUsable(t *testing.T) {
	port := &failingAttachPort{scansetErr: errors.New("setup rejected")}
	port.queue = []ps2.Scancode{makeCode(0x15)}

	kbd := keyboard.NewPS2(port, nil)
	require.NotNil(t, kbd)

	event, err := kbd.ReadEvent()
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, keymap.KeyQ, event.Keycode)
}

func TestMakeRepeatBreak(t *testing.T) {
	kbd, _ := newSession(t)

	// Two makes before any break, then the break: [Make, Repeat, Break].
	first := kbd.Consume(makeCode(0x15))
	second := kbd.Consume(makeCode(0x15))
	third := kbd.Consume(breakCode(0x15))

	require.NotNil(t, first)
	require.NotNil(t, second)
	require.NotNil(t, third)

	assert.Equal(t, keyboard.Make, first.Type)
	assert.Equal(t, keyboard.Repeat, second.Type)
	assert.Equal(t, keyboard.Break, third.Type)

	assert.Equal(t, keymap.KeyQ, first.Keycode)
	assert.Equal(t, 'q', first.Char)
	assert.Equal(t, 'q', second.Char)
	// The character is resolved before classification, so breaks carry it too.
	assert.Equal(t, 'q', third.Char)

	assert.False(t, kbd.Pressed(keymap.KeyQ))
}

func TestPressedConsistency(t *testing.T) {
	kbd, _ := newSession(t)

	kbd.Consume(makeCode(0x1C))  // A down
	kbd.Consume(makeCode(0x15))  // Q down
	kbd.Consume(breakCode(0x1C)) // A up

	assert.True(t, kbd.Pressed(keymap.KeyQ))
	assert.False(t, kbd.Pressed(keymap.KeyA))

	// Break again while already released stays released.
	kbd.Consume(breakCode(0x1C))
	assert.False(t, kbd.Pressed(keymap.KeyA))
}

func TestPressedOutOfRange(t *testing.T) {
	kbd, _ := newSession(t)
	assert.False(t, kbd.Pressed(keymap.Keycode(0xFF)))
	assert.False(t, kbd.Pressed(keymap.Keycode(0xFE)))
}

func TestCapsLockToggling(t *testing.T) {
	kbd, _ := newSession(t)

	event := kbd.Consume(makeCode(0x58))
	require.Equal(t, keyboard.Make, event.Type)
	assert.True(t, kbd.CapsLock())

	// Typematic repeat while held must not toggle.
	event = kbd.Consume(makeCode(0x58))
	require.Equal(t, keyboard.Repeat, event.Type)
	assert.True(t, kbd.CapsLock())

	// Neither must the break.
	event = kbd.Consume(breakCode(0x58))
	require.Equal(t, keyboard.Break, event.Type)
	assert.True(t, kbd.CapsLock())

	// A fresh make toggles back.
	kbd.Consume(makeCode(0x58))
	assert.False(t, kbd.CapsLock())
}

func TestNumAndScrollLockToggling(t *testing.T) {
	kbd, _ := newSession(t)

	kbd.Consume(makeCode(0x77))
	kbd.Consume(breakCode(0x77))
	kbd.Consume(makeCode(0x7E))
	kbd.Consume(breakCode(0x7E))

	assert.True(t, kbd.NumLock())
	assert.True(t, kbd.ScrollLock())
	assert.False(t, kbd.CapsLock())
	assert.False(t, kbd.FunctionLock())
}

func TestFunctionLock(t *testing.T) {
	kbd, _ := newSession(t)

	// Escape alone does not touch function lock.
	kbd.Consume(makeCode(0x76))
	kbd.Consume(breakCode(0x76))
	assert.False(t, kbd.FunctionLock())

	// Escape while Function is held toggles it.
	kbd.Consume(ps2.Scancode{Code: 0x63, Extended: true, Make: true})
	kbd.Consume(makeCode(0x76))
	assert.True(t, kbd.FunctionLock())

	kbd.Consume(breakCode(0x76))
	kbd.Consume(ps2.Scancode{Code: 0x63, Extended: true, Make: false})
	assert.True(t, kbd.FunctionLock())
}

func TestShiftModifier(t *testing.T) {
	kbd, _ := newSession(t)

	// The shift key's own make still sees the pre-press snapshot.
	event := kbd.Consume(makeCode(0x12))
	assert.False(t, event.Modifiers.Shift())

	event = kbd.Consume(makeCode(0x15))
	require.NotNil(t, event)
	assert.True(t, event.Modifiers.Shift())
	assert.Equal(t, 'Q', event.Char)

	kbd.Consume(breakCode(0x12))
	event = kbd.Consume(makeCode(0x15))
	assert.Equal(t, 'q', event.Char)
	assert.Equal(t, keyboard.Repeat, event.Type)
}

func TestRightShiftCounts(t *testing.T) {
	kbd, _ := newSession(t)

	kbd.Consume(makeCode(0x59))
	event := kbd.Consume(makeCode(0x1C))
	require.NotNil(t, event)
	assert.Equal(t, 'A', event.Char)
}

func TestCapsShiftCancellation(t *testing.T) {
	kbd, _ := newSession(t)

	kbd.Consume(makeCode(0x58))
	kbd.Consume(breakCode(0x58))

	event := kbd.Consume(makeCode(0x15))
	assert.Equal(t, 'Q', event.Char)
	kbd.Consume(breakCode(0x15))

	kbd.Consume(makeCode(0x12))
	event = kbd.Consume(makeCode(0x15))
	assert.Equal(t, 'q', event.Char)
}

func TestNumLockGatesKeypad(t *testing.T) {
	kbd, _ := newSession(t)

	event := kbd.Consume(makeCode(0x6C))
	require.NotNil(t, event)
	assert.Equal(t, '7', event.Char)
	kbd.Consume(breakCode(0x6C))

	kbd.Consume(makeCode(0x77))
	kbd.Consume(breakCode(0x77))

	event = kbd.Consume(makeCode(0x6C))
	require.NotNil(t, event)
	assert.False(t, event.HasChar())
	assert.Equal(t, keymap.KeyKp7, event.Keycode)
}

func TestUnknownScancodeContainment(t *testing.T) {
	kbd, port := newSession(t)

	kbd.Consume(makeCode(0x15))
	require.True(t, kbd.Pressed(keymap.KeyQ))
	kbd.Consume(makeCode(0x77))
	kbd.Consume(breakCode(0x77))
	require.True(t, kbd.NumLock())

	// 0x02 is absent from both tables.
	event := kbd.Consume(makeCode(0x02))
	assert.Nil(t, event)
	assert.True(t, port.dirty)

	event = kbd.Consume(ps2.Scancode{Code: 0x02, Extended: true, Make: true})
	assert.Nil(t, event)

	// Prior state is untouched.
	assert.True(t, kbd.Pressed(keymap.KeyQ))
	assert.True(t, kbd.NumLock())
	assert.False(t, kbd.CapsLock())
}

func TestReadEvent(t *testing.T) {
	port := &fakePort{}
	kbd := keyboard.NewPS2(port, nil)

	// Absence of input is the normal steady state, not an error.
	event, err := kbd.ReadEvent()
	require.NoError(t, err)
	assert.Nil(t, event)

	port.queue = []ps2.Scancode{makeCode(0x15), breakCode(0x15)}

	event, err = kbd.ReadEvent()
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, keyboard.Make, event.Type)
	assert.Equal(t, 'q', event.Char)

	event, err = kbd.ReadEvent()
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, keyboard.Break, event.Type)
}

func TestReadEventPropagatesTransportErrors(t *testing.T) {
	port := &fakePort{err: ps2.NewError(ps2.ErrDeviceUnavailable, nil)}
	kbd := keyboard.NewPS2(port, nil)

	event, err := kbd.ReadEvent()
	assert.Nil(t, event)
	require.Error(t, err)

	var perr *ps2.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ps2.ErrDeviceUnavailable, perr.Kind)
}

func TestEventString(t *testing.T) {
	kbd, _ := newSession(t)

	event := kbd.Consume(makeCode(0x15))
	assert.Equal(t, `make Q 'q' (none)`, event.String())

	event = kbd.Consume(breakCode(0x15))
	assert.Equal(t, `break Q 'q' (none)`, event.String())

	event = kbd.Consume(ps2.Scancode{Code: 0x75, Extended: true, Make: true})
	assert.Equal(t, "make Up (none)", event.String())
}
