//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"tinygo.org/x/drivers"
)

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	clock   *hostClock
	capture *hostCapture
	bus     *hostDisplayBus
	serial  *hostSerial
	flash   *hostFlash
}

// New returns a host HAL implementation with a simulated capture timer and
// display controller.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	clock := newHostClock()
	return &hostHAL{
		logger:  logger,
		led:     &hostLED{},
		clock:   clock,
		capture: newHostCapture(clock),
		bus:     newHostDisplayBus(logger),
		serial:  newHostSerial(logger),
		flash:   newHostFlash(),
	}
}

func (h *hostHAL) Logger() Logger          { return h.logger }
func (h *hostHAL) LED() LED                { return h.led }
func (h *hostHAL) Clock() Clock            { return h.clock }
func (h *hostHAL) Capture() CaptureSource  { return h.capture }
func (h *hostHAL) DisplayBus() drivers.I2C { return h.bus }
func (h *hostHAL) Serial() Serial          { return h.serial }
func (h *hostHAL) Flash() Flash            { return h.flash }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	l.on = true
	l.mu.Unlock()
}

func (l *hostLED) Low() {
	l.mu.Lock()
	l.on = false
	l.mu.Unlock()
}

func (l *hostLED) lit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
