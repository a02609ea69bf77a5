package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction (heartbeat indicator).
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Clock provides monotonic wall-clock milliseconds.
//
// The value wraps at 32 bits; consumers must compare with unsigned
// subtraction, never with ordering.
type Clock interface {
	Millis() uint32
}

// CaptureHandler receives edge-capture events from a CaptureSource.
//
// All three methods are called from interrupt context on hardware. They must
// not block, allocate, or touch the display bus.
type CaptureHandler interface {
	// Capture delivers the raw 16-bit timer value latched at a rising edge.
	// wrapPending reports that a timer overflow has occurred but its
	// Overflow call has not been delivered yet, so the handler can attribute
	// the edge to the correct epoch.
	Capture(raw uint16, wrapPending bool)

	// Overflow signals one full wrap of the 16-bit capture timer.
	Overflow()

	// CaptureExtended delivers an already-extended timestamp for sources
	// backed by a wide hardware timer with no observable wraps.
	CaptureExtended(ticks uint64)
}

// CaptureSource owns the hardware edge-capture timer.
type CaptureSource interface {
	// TickRate returns the capture timer frequency in ticks per second.
	TickRate() uint32

	// Start arms the capture unit and begins delivering events to h.
	Start(h CaptureHandler) error
}

// Serial is the byte link to the instrument board.
//
// Read never blocks: it returns whatever is buffered, possibly nothing.
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	LED() LED
	Clock() Clock
	Capture() CaptureSource
	DisplayBus() drivers.I2C
	Serial() Serial
	Flash() Flash
}
