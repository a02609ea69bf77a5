// Package proto defines the single-byte command protocol spoken on the
// serial link between the instrument board and this display board.
package proto

// Cmd is one command byte. Values reuse ASCII control codes where the
// meaning lines up.
type Cmd uint8

const (
	CmdUnmute             Cmd = 0x02 // STX
	CmdMute               Cmd = 0x04 // EOT
	CmdCalibrationSuccess Cmd = 0x06 // ACK
	CmdButtonShortPress   Cmd = 0x07 // BEL
	CmdButtonLongPress    Cmd = 0x08 // BS
	CmdCalibrationError   Cmd = 0x15 // NAK
	CmdCalibration        Cmd = 0x16 // SYN
)

// Register (playing octave) feedback range.
const (
	CmdRegisterLow  Cmd = 0x10 // DC1
	CmdRegisterMid  Cmd = 0x11 // DC2
	CmdRegisterHigh Cmd = 0x12 // DC3
)

// Waveform (timbre) feedback: base plus the wavetable index 0..9.
const (
	CmdWaveformBase Cmd = 0x80
	CmdWaveformLast Cmd = CmdWaveformBase + 0x9
)

// SerialBaud is the link speed on the hardware UART.
const SerialBaud = 38400

// IsRegister reports whether c is a register feedback byte.
func (c Cmd) IsRegister() bool { return c >= CmdRegisterLow && c <= CmdRegisterHigh }

// IsWaveform reports whether c is a waveform feedback byte.
func (c Cmd) IsWaveform() bool { return c >= CmdWaveformBase && c <= CmdWaveformLast }

func (c Cmd) String() string {
	switch c {
	case CmdMute:
		return "mute"
	case CmdUnmute:
		return "unmute"
	case CmdCalibration:
		return "calibration"
	case CmdCalibrationSuccess:
		return "calibration_success"
	case CmdCalibrationError:
		return "calibration_error"
	case CmdButtonShortPress:
		return "button_short"
	case CmdButtonLongPress:
		return "button_long"
	default:
		switch {
		case c.IsRegister():
			return "register"
		case c.IsWaveform():
			return "waveform"
		}
		return "unknown"
	}
}
