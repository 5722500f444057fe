package ps2

// ControllerCommand is a command sent to the PS/2 controller itself.
type ControllerCommand byte

const (
	CmdReadConfig        ControllerCommand = 0x20 // Returns the config byte
	CmdDisablePort2      ControllerCommand = 0xA7
	CmdEnablePort2       ControllerCommand = 0xA8
	CmdTestPort2         ControllerCommand = 0xA9 // Returns a port test result
	CmdTestController    ControllerCommand = 0xAA // Returns a self-test result
	CmdTestPort1         ControllerCommand = 0xAB // Returns a port test result
	CmdDisablePort1      ControllerCommand = 0xAD
	CmdEnablePort1       ControllerCommand = 0xAE
	CmdWriteCommandPort2 ControllerCommand = 0xD4
)

// ControllerDataCommand is a controller command followed by one data byte.
type ControllerDataCommand byte

const (
	CmdWriteConfig ControllerDataCommand = 0x60
)

// DeviceCommand is a command understood by any PS/2 device.
type DeviceCommand byte

const (
	DevCmdEcho           DeviceCommand = 0xEE // Returns an echo byte
	DevCmdResetEcho      DeviceCommand = 0xEC
	DevCmdIdentifyDevice DeviceCommand = 0xF2 // Returns the identity bytes
	DevCmdSetDefaults    DeviceCommand = 0xF6
	DevCmdReset          DeviceCommand = 0xFF
)

// KeyboardCommand is a keyboard command with no trailing data byte.
// The event-mode family applies to scan set 3 only.
type KeyboardCommand byte

const (
	KbdCmdSendRepeatEvents      KeyboardCommand = 0xF7
	KbdCmdSendMakeReleaseEvents KeyboardCommand = 0xF8
	KbdCmdSendMakeEvents        KeyboardCommand = 0xF9
	KbdCmdSendAllEvents         KeyboardCommand = 0xFA
)

// KeyboardDataCommand is a keyboard command followed by one data byte.
type KeyboardDataCommand byte

const (
	KbdCmdSetLeds             KeyboardDataCommand = 0xED
	KbdCmdSetGetScancode      KeyboardDataCommand = 0xF0
	KbdCmdSetTypematicOptions KeyboardDataCommand = 0xF3
	// Per-key variants of the event-mode family, scan set 3 only.
	KbdCmdKeySendRepeatEvents      KeyboardDataCommand = 0xFB
	KbdCmdKeySendMakeReleaseEvents KeyboardDataCommand = 0xFC
	KbdCmdKeySendMakeEvents        KeyboardDataCommand = 0xFD
)

// MouseCommand is a mouse command with no trailing data byte. Reserved for a
// future mouse driver; nothing in this module issues them yet.
type MouseCommand byte

const (
	MouseCmdSetStreamMode       MouseCommand = 0xEA
	MouseCmdStatusRequest       MouseCommand = 0xE9
	MouseCmdRequestSinglePacket MouseCommand = 0xEB
	MouseCmdSetWrapMode         MouseCommand = 0xEE
	MouseCmdSetRemoteMode       MouseCommand = 0xF0
)

// MouseDataCommand is a mouse command followed by one data byte.
type MouseDataCommand byte

const (
	MouseCmdSetResolution MouseDataCommand = 0xE8
	MouseCmdSetSampleRate MouseDataCommand = 0xF3
)

// Device response bytes.
const (
	RespSelfTestPass byte = 0xAA
	RespEcho         byte = 0xEE
	RespAck          byte = 0xFA
	RespError        byte = 0xFC
	RespResend       byte = 0xFE
)
