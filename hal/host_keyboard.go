//go:build !tinygo && cgo

package hal

import (
	"math"

	"tuner/proto"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings for the simulator window:
//
//	Up/Down     simulated signal up/down one semitone
//	Left/Right  simulated signal down/up one hertz
//	S           toggle the simulated signal on/off
//	Space       button short press
//	Enter       button long press
//	M / U       mute / unmute from the main board
//	C / K / E   calibration start / success / error
//	1 2 3       register low / mid / high
//	W           cycle waveform number
var semitoneRatio = math.Pow(2, 1.0/12)

var waveformCycle byte

func pollKeys(h *hostHAL) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.capture.SetFrequency(h.capture.Frequency() * semitoneRatio)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.capture.SetFrequency(h.capture.Frequency() / semitoneRatio)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		h.capture.SetFrequency(h.capture.Frequency() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		h.capture.SetFrequency(h.capture.Frequency() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		h.capture.SetEnabled(!h.capture.Enabled())
	}

	inject := func(key ebiten.Key, c proto.Cmd) {
		if inpututil.IsKeyJustPressed(key) {
			h.serial.inject(byte(c))
		}
	}
	inject(ebiten.KeySpace, proto.CmdButtonShortPress)
	inject(ebiten.KeyEnter, proto.CmdButtonLongPress)
	inject(ebiten.KeyM, proto.CmdMute)
	inject(ebiten.KeyU, proto.CmdUnmute)
	inject(ebiten.KeyC, proto.CmdCalibration)
	inject(ebiten.KeyK, proto.CmdCalibrationSuccess)
	inject(ebiten.KeyE, proto.CmdCalibrationError)
	inject(ebiten.Key1, proto.CmdRegisterLow)
	inject(ebiten.Key2, proto.CmdRegisterMid)
	inject(ebiten.Key3, proto.CmdRegisterHigh)

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		h.serial.inject(byte(proto.CmdWaveformBase) + waveformCycle)
		waveformCycle = (waveformCycle + 1) % 10
	}
}
