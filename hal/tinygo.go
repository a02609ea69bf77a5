//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"

	"tuner/proto"
)

type tinyGoHAL struct {
	logger  *usbLogger
	led     *pinLED
	clock   *tinyGoClock
	capture *pinCapture
	bus     *machine.I2C
	serial  *uartSerial
	flash   Flash
}

// New returns a Pico (RP2040) HAL implementation.
//
// Main-board link: UART0 on GP0 (TX) / GP1 (RX), 38400 8N1.
// Display bus: I2C0 on GP4 (SDA) / GP5 (SCL), 100 kHz.
// Pitch signal: GP2, rising edges.
// Logging goes to the USB serial console.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: proto.SerialBaud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	bus := machine.I2C0
	bus.Configure(machine.I2CConfig{
		Frequency: 100_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	clock := newTinyGoClock()
	return &tinyGoHAL{
		logger:  &usbLogger{},
		led:     &pinLED{pin: ledPin},
		clock:   clock,
		capture: &pinCapture{pin: machine.GP2},
		bus:     bus,
		serial:  &uartSerial{uart: uart},
		flash:   newRP2Flash(),
	}
}

func (h *tinyGoHAL) Logger() Logger          { return h.logger }
func (h *tinyGoHAL) LED() LED                { return h.led }
func (h *tinyGoHAL) Clock() Clock            { return h.clock }
func (h *tinyGoHAL) Capture() CaptureSource  { return h.capture }
func (h *tinyGoHAL) DisplayBus() drivers.I2C { return h.bus }
func (h *tinyGoHAL) Serial() Serial          { return h.serial }
func (h *tinyGoHAL) Flash() Flash            { return h.flash }

type tinyGoClock struct {
	start time.Time
}

func newTinyGoClock() *tinyGoClock {
	return &tinyGoClock{start: time.Now()}
}

func (c *tinyGoClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

type usbLogger struct{}

func (l *usbLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *usbLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	if s.uart.Buffered() == 0 {
		return 0, nil
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}

// pinCapture timestamps rising edges on the signal pin. The RP2040 has no
// 16-bit capture timer, so edges are stamped from the microsecond system
// timer and handed to the handler as already-extended tick counts.
type pinCapture struct {
	pin     machine.Pin
	handler CaptureHandler
	start   time.Time
}

func (c *pinCapture) TickRate() uint32 { return 2_000_000 }

func (c *pinCapture) Start(h CaptureHandler) error {
	c.handler = h
	c.start = time.Now()
	c.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	return c.pin.SetInterrupt(machine.PinRising, func(machine.Pin) {
		// 2 MHz ticks from the nanosecond clock.
		ticks := uint64(time.Since(c.start)) / 500
		c.handler.CaptureExtended(ticks)
	})
}
