// Package app wires the acquisition engine, pitch renderer and display
// driver into the display-board firmware.
package app

import (
	"time"

	"tuner/fonts/bitmaps"
	"tuner/freq"
	"tuner/hal"
	"tuner/ht1635"
	"tuner/proto"
	"tuner/render"
)

// App is the firmware application state.
type App struct {
	h     hal.HAL
	log   hal.Logger
	clock hal.Clock
	flash hal.Flash

	dev  *ht1635.Device
	rend *render.Renderer
	eng  *freq.Engine

	settings Settings

	page       page
	paramKind  paramKind
	paramValue uint8
	instrState instrumentState

	tunerTickMS uint32
	paramTickMS uint32
	ledTickMS   uint32
	ledOn       bool

	rxBuf [16]byte
}

// New initializes the hardware and returns the foreground step function.
func New(h hal.HAL) func() error {
	a := newApp(h)
	return a.step
}

// Run starts the firmware and loops forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("app: " + err.Error())
		}
		time.Sleep(time.Millisecond)
	}
}

func newApp(h hal.HAL) *App {
	a := &App{
		h:          h,
		log:        h.Logger(),
		clock:      h.Clock(),
		flash:      h.Flash(),
		instrState: stateMuted,
	}

	a.settings = LoadSettings(a.flash)

	a.dev = ht1635.New(h.DisplayBus(), ht1635.DefaultAddress)
	if err := a.dev.Configure(ht1635.Config{
		ComOption: ht1635.ComPMOS,
		Cascade:   ht1635.CascadeRCMaster0,
	}); err != nil {
		a.logError("display", err)
	}

	a.rend = render.New(a.dev)
	a.bootLogo()
	if err := a.rend.SetMode(a.settings.ViewMode); err != nil {
		a.logError("display", err)
	}

	a.eng = freq.New(freq.Config{TickRate: h.Capture().TickRate()}, a.clock)
	if err := h.Capture().Start(a.eng); err != nil {
		a.logError("capture", err)
	}

	a.log.WriteLineString("tuner: ready, mode " + a.settings.ViewMode.String())
	return a
}

// bootLogo fades the boot image in through the PWM duty range.
func (a *App) bootLogo() {
	if err := a.dev.SetBrightness(0); err != nil {
		a.logError("display", err)
	}
	fb := a.rend.Framebuffer()
	fb.Load(&bitmaps.Logo)
	if err := fb.Flush(); err != nil {
		a.logError("display", err)
	}
	for level := uint8(0); level < 16; level++ {
		if err := a.dev.SetBrightness(level); err != nil {
			a.logError("display", err)
		}
		time.Sleep(60 * time.Millisecond)
	}
}

// step runs one foreground poll: consume serial commands, read the engine,
// advance the UI.
func (a *App) step() error {
	now := a.clock.Millis()

	if s := a.h.Serial(); s != nil {
		n, _ := s.Read(a.rxBuf[:])
		for i := 0; i < n; i++ {
			a.handleCommand(proto.Cmd(a.rxBuf[i]))
		}
	}

	hz, ok := a.eng.Read()
	if !ok {
		hz = 0
	}

	a.stepUI(now, hz)
	a.heartbeat(now)
	return nil
}

// heartbeat blinks the board LED so a hung foreground loop is visible.
func (a *App) heartbeat(now uint32) {
	if now-a.ledTickMS < 500 {
		return
	}
	a.ledTickMS = now
	a.ledOn = !a.ledOn
	if led := a.h.LED(); led != nil {
		if a.ledOn {
			led.High()
		} else {
			led.Low()
		}
	}
}

func (a *App) sendCmd(c proto.Cmd) {
	if s := a.h.Serial(); s != nil {
		if _, err := s.Write([]byte{byte(c)}); err != nil {
			a.logError("serial", err)
		}
	}
}

func (a *App) logError(what string, err error) {
	a.log.WriteLineString("tuner: " + what + ": " + err.Error())
}
