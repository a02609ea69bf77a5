package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"tuner/fonts/font6x8"
	"tuner/ht1635"
	"tuner/proto"
	"tuner/render"
)

// UI timing.
const (
	tunerRefreshMS = 100
	paramHoldMS    = 1800
)

// MinValidFreq is the floor below which the tuner shows the placeholder.
const MinValidFreq = 10.0

// page is the display state machine: the tuner view, the menu items cycled
// by short presses and confirmed by long presses, and the temporary
// parameter feedback view.
type page uint8

const (
	pageTuner page = iota
	pageMenuCal
	pageMenuNumeric
	pageMenuBar
	pageMenuPiano
	pageMenuA440
	pageMenuA445
	pageMenuA430
	pageMenuA432
	pageParamEnter
	pageParamWait
)

// paramKind tags what the temporary feedback view is showing.
type paramKind uint8

const (
	paramNone paramKind = iota
	paramOctave
	paramTimbre
	paramStatus
	paramMenu // persists until the user leaves the menu
)

// instrumentState mirrors the instrument board's play state.
type instrumentState uint8

const (
	stateMuted instrumentState = iota
	statePlaying
	stateCalibrating
)

var textColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func (a *App) showText(kind paramKind, txt string) {
	a.paramKind = kind
	if kind != paramMenu {
		a.page = pageParamEnter
	}
	fb := a.rend.Framebuffer()
	fb.Clear()
	tinyfont.WriteLine(fb, font6x8.Font, 0, render.Height-1, txt, textColor)
	if err := fb.Display(); err != nil {
		a.logError("display", err)
	}
}

// restoreTunerView returns to the main tuner page and repaints its base.
func (a *App) restoreTunerView() {
	a.page = pageTuner
	a.paramKind = paramNone
	if err := a.rend.Redraw(); err != nil {
		a.logError("display", err)
	}
}

// showMenu draws the given menu page. The current selection is marked with a
// trailing '<'.
func (a *App) showMenu(p page) {
	a.page = p
	marker := func(selected bool, txt string) string {
		if selected {
			return txt + "<"
		}
		return txt + "?"
	}
	mode := a.settings.ViewMode
	switch p {
	case pageMenuCal:
		a.showText(paramMenu, "CAL? ")
	case pageMenuNumeric:
		a.showText(paramMenu, marker(mode == render.ModeNumeric, "NUM "))
	case pageMenuBar:
		a.showText(paramMenu, marker(mode == render.ModeBarGraph, "BAR "))
	case pageMenuPiano:
		a.showText(paramMenu, marker(mode == render.ModePiano, "PNO "))
	case pageMenuA440:
		a.showText(paramMenu, marker(a.refIs(440), "A440"))
	case pageMenuA445:
		a.showText(paramMenu, marker(a.refIs(445), "A445"))
	case pageMenuA430:
		a.showText(paramMenu, marker(a.refIs(430), "A430"))
	case pageMenuA432:
		a.showText(paramMenu, marker(a.refIs(432), "A432"))
	}
}

func (a *App) refIs(hz float32) bool {
	d := a.settings.ReferenceA4 - hz
	return d > -0.01 && d < 0.01
}

// handleUserAction reacts to a short or long button press forwarded from the
// instrument board. Short press steps, long press confirms.
func (a *App) handleUserAction(short bool) {
	restore := false
	switch a.page {
	case pageTuner:
		if short {
			if a.instrState == stateMuted {
				a.sendCmd(proto.CmdUnmute)
			} else if a.instrState == statePlaying {
				a.sendCmd(proto.CmdMute)
			}
		} else {
			a.showMenu(pageMenuCal)
		}

	case pageMenuCal:
		if short {
			a.showMenu(pageMenuNumeric)
		} else {
			a.sendCmd(proto.CmdCalibration)
		}

	case pageMenuNumeric:
		if short {
			a.showMenu(pageMenuBar)
		} else {
			restore = a.applyViewMode(render.ModeNumeric)
		}
	case pageMenuBar:
		if short {
			a.showMenu(pageMenuPiano)
		} else {
			restore = a.applyViewMode(render.ModeBarGraph)
		}
	case pageMenuPiano:
		if short {
			a.showMenu(pageMenuA440)
		} else {
			restore = a.applyViewMode(render.ModePiano)
		}

	case pageMenuA440:
		if short {
			a.showMenu(pageMenuA445)
		} else {
			restore = a.applyReference(440)
		}
	case pageMenuA445:
		if short {
			a.showMenu(pageMenuA430)
		} else {
			restore = a.applyReference(445)
		}
	case pageMenuA430:
		if short {
			a.showMenu(pageMenuA432)
		} else {
			restore = a.applyReference(430)
		}
	case pageMenuA432:
		if short {
			restore = true
		} else {
			restore = a.applyReference(432)
		}
	}
	if restore {
		a.restoreTunerView()
	}
}

func (a *App) applyViewMode(m render.Mode) bool {
	a.settings.ViewMode = m
	if err := SaveSettings(a.flash, a.settings); err != nil {
		a.logError("settings", err)
	}
	if err := a.rend.SetMode(m); err != nil {
		a.logError("display", err)
	}
	return true
}

func (a *App) applyReference(hz float32) bool {
	a.settings.ReferenceA4 = hz
	if err := SaveSettings(a.flash, a.settings); err != nil {
		a.logError("settings", err)
	}
	return true
}

// handleCommand dispatches one command byte from the instrument board.
func (a *App) handleCommand(c proto.Cmd) {
	switch c {
	case proto.CmdMute:
		a.instrState = stateMuted
		a.showText(paramStatus, "MUTED")

	case proto.CmdUnmute:
		a.instrState = statePlaying
		a.showText(paramStatus, "PLAY!")

	case proto.CmdCalibration:
		a.instrState = stateCalibrating
		a.showText(paramStatus, "-CAL-")
		if err := a.dev.SetBlink(ht1635.Blink1Hz); err != nil {
			a.logError("display", err)
		}

	case proto.CmdCalibrationSuccess:
		a.instrState = statePlaying
		if err := a.dev.SetBlink(ht1635.BlinkOff); err != nil {
			a.logError("display", err)
		}
		a.showText(paramStatus, "CALOK")

	case proto.CmdCalibrationError:
		a.instrState = stateMuted
		if err := a.dev.SetBlink(ht1635.BlinkOff); err != nil {
			a.logError("display", err)
		}
		a.showText(paramStatus, "CALER")
		a.page = pageMenuCal
		a.paramKind = paramMenu

	case proto.CmdButtonShortPress:
		a.handleUserAction(true)
	case proto.CmdButtonLongPress:
		a.handleUserAction(false)

	default:
		switch {
		case c.IsRegister():
			a.page = pageParamEnter
			a.paramKind = paramOctave
			a.paramValue = uint8(c)
		case c.IsWaveform():
			a.page = pageParamEnter
			a.paramKind = paramTimbre
			a.paramValue = uint8(c - proto.CmdWaveformBase)
		}
		// Anything else is noise on the link; drop it.
	}
}

// stepUI advances the display state machine for one foreground poll.
func (a *App) stepUI(now uint32, hz float32) {
	switch a.page {
	case pageTuner:
		if now-a.tunerTickMS > tunerRefreshMS {
			a.tunerTickMS = now
			if err := a.rend.Render(hz, a.settings.ReferenceA4, MinValidFreq); err != nil {
				a.logError("display", err)
			}
		}

	case pageParamEnter:
		a.paramTickMS = now
		switch a.paramKind {
		case paramOctave:
			txt := "OCT+1"
			switch proto.Cmd(a.paramValue) {
			case proto.CmdRegisterLow:
				txt = "OCT-1"
			case proto.CmdRegisterMid:
				txt = "OCT 0"
			}
			a.showText(paramOctave, txt)
		case paramTimbre:
			a.showText(paramTimbre, "WAV "+string(rune('0'+a.paramValue%10)))
		}
		a.page = pageParamWait

	case pageParamWait:
		if a.paramKind == paramMenu || a.instrState == stateCalibrating {
			// Menu pages persist until the user acts; calibration persists
			// until the instrument reports success or failure.
			return
		}
		if now-a.paramTickMS > paramHoldMS {
			a.restoreTunerView()
		}
	}
}
