package ps2_test

import (
	"errors"
	"testing"

	"github.com/Alia5/KEYPER/ps2"
	"github.com/stretchr/testify/assert"
)

func TestCommandValues(t *testing.T) {
	// Spot checks against the i8042 command set.
	assert.Equal(t, byte(0x20), byte(ps2.CmdReadConfig))
	assert.Equal(t, byte(0x60), byte(ps2.CmdWriteConfig))
	assert.Equal(t, byte(0xAA), byte(ps2.CmdTestController))
	assert.Equal(t, byte(0xD4), byte(ps2.CmdWriteCommandPort2))

	assert.Equal(t, byte(0xF2), byte(ps2.DevCmdIdentifyDevice))
	assert.Equal(t, byte(0xFF), byte(ps2.DevCmdReset))

	assert.Equal(t, byte(0xED), byte(ps2.KbdCmdSetLeds))
	assert.Equal(t, byte(0xF0), byte(ps2.KbdCmdSetGetScancode))
	assert.Equal(t, byte(0xF3), byte(ps2.KbdCmdSetTypematicOptions))

	assert.Equal(t, byte(0xEA), byte(ps2.MouseCmdSetStreamMode))
	assert.Equal(t, byte(0xF3), byte(ps2.MouseCmdSetSampleRate))

	assert.Equal(t, byte(0xFA), ps2.RespAck)
	assert.Equal(t, byte(0xFE), ps2.RespResend)
}

func TestScancodeString(t *testing.T) {
	assert.Equal(t, "plain make 0x15", ps2.Scancode{Code: 0x15, Make: true}.String())
	assert.Equal(t, "extended break 0x75", ps2.Scancode{Code: 0x75, Extended: true}.String())
}

func TestErrorKinds(t *testing.T) {
	err := ps2.NewError(ps2.ErrRetriesExceeded, nil)
	assert.Equal(t, "ps2: retries exceeded", err.Error())
	assert.True(t, errors.Is(err, &ps2.Error{Kind: ps2.ErrRetriesExceeded}))
	assert.False(t, errors.Is(err, &ps2.Error{Kind: ps2.ErrNoData}))

	unexpected := &ps2.Error{Kind: ps2.ErrUnexpectedResponse, Response: 0xEE}
	assert.Equal(t, "ps2: unexpected response (0xEE)", unexpected.Error())

	wrapped := ps2.NewError(ps2.ErrWriteFailed, errors.New("bus stuck"))
	assert.Equal(t, "ps2: write failed: bus stuck", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "bus stuck")
}
