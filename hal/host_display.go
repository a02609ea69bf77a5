//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

// hostDisplayBus emulates the HT1635 LED controller on the I2C bus: it
// decodes the command stream into a register and RAM model the host window
// draws from.
type hostDisplayBus struct {
	logger *hostLogger

	mu         sync.Mutex
	ram        [40]byte
	power      uint8
	blink      uint8
	brightness uint8
}

func newHostDisplayBus(logger *hostLogger) *hostDisplayBus {
	return &hostDisplayBus{logger: logger}
}

func (b *hostDisplayBus) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return ErrNotImplemented
	}
	if len(w) < 2 {
		return fmt.Errorf("display bus: short write (%d bytes)", len(w))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	switch w[0] {
	case 0x80: // data input, nibble-addressed RAM
		idx := int(w[1]) / 2
		for _, v := range w[2:] {
			if idx >= len(b.ram) {
				return fmt.Errorf("display bus: RAM write past end (byte %d)", idx)
			}
			b.ram[idx] = v
			idx++
		}
	case 0x82:
		b.power = w[1]
	case 0x84:
		b.blink = w[1]
	case 0x88, 0xA0:
		// COM option and cascade mode have no visible effect in the model.
	case 0xC0:
		b.brightness = w[1] & 0x0F
	default:
		return fmt.Errorf("display bus: unknown opcode 0x%02X", w[0])
	}
	return nil
}

// snapshot copies the RAM model and register state for drawing.
func (b *hostDisplayBus) snapshot(dst *[40]byte) (power, blink, brightness uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	*dst = b.ram
	return b.power, b.blink, b.brightness
}
