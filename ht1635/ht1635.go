// Package ht1635 drives a Holtek HT1635 LED matrix controller over I2C.
//
// The controller addresses display RAM in 4-bit nibbles while this board
// wires one byte per module row, so every byte index maps to two consecutive
// RAM addresses. Transactions carry at most 30 data bytes and need a short
// settle delay before the next one.
package ht1635

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// DefaultAddress is the controller's 7-bit I2C address.
const DefaultAddress = 0x68

// Command opcodes.
const (
	cmdDataInput uint8 = 0x80
	cmdSystem    uint8 = 0x82
	cmdBlink     uint8 = 0x84
	cmdComOption uint8 = 0x88
	cmdCascade   uint8 = 0xA0
	cmdPWMDuty   uint8 = 0xC0
)

// Power states for SetPower.
const (
	PowerOff     uint8 = 0x00
	PowerStandby uint8 = 0x02
	PowerOn      uint8 = 0x03
)

// Blink rates for SetBlink.
const (
	BlinkOff    uint8 = 0x00
	Blink2Hz    uint8 = 0x01
	Blink1Hz    uint8 = 0x02
	BlinkHalfHz uint8 = 0x03
)

// COM output configurations.
const (
	ComNMOS uint8 = 0x00
	ComPMOS uint8 = 0x01
)

// Cascade / clock source modes.
const (
	CascadeSlave      uint8 = 0x0
	CascadeRCMaster0  uint8 = 0x4
	CascadeRCMaster1  uint8 = 0x5
	CascadeExtMaster0 uint8 = 0x6
	CascadeExtMaster1 uint8 = 0x7
)

// RAMBytes is the usable display RAM in byte-per-row terms (five 8-byte
// modules; the controller's last eight nibbles are unconnected on this
// board).
const RAMBytes = 40

const (
	maxChunk    = 30
	settleDelay = time.Millisecond
)

var ErrOutOfRange = errors.New("ht1635: address out of range")

// Device is an HT1635 on an I2C bus.
type Device struct {
	bus  drivers.I2C
	addr uint16
	tx   [2 + maxChunk]byte
}

// Config adjusts initial register state.
type Config struct {
	Brightness uint8 // PWM duty 0..15
	Blink      uint8
	ComOption  uint8
	Cascade    uint8
}

// New returns a device handle for the bus. The bus must already be
// configured.
func New(bus drivers.I2C, addr uint16) *Device {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &Device{bus: bus, addr: addr}
}

// Configure initializes registers and clears the display RAM, leaving the
// controller powered on.
func (d *Device) Configure(cfg Config) error {
	if err := d.SetPower(PowerStandby); err != nil {
		return err
	}
	if err := d.SetBlink(cfg.Blink); err != nil {
		return err
	}
	if err := d.command(cmdComOption, cfg.ComOption); err != nil {
		return err
	}
	if err := d.command(cmdCascade, cfg.Cascade); err != nil {
		return err
	}
	if err := d.SetBrightness(cfg.Brightness); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	return d.SetPower(PowerOn)
}

// Write sends p to display RAM starting at byte index start, splitting into
// bus-sized transactions as needed.
func (d *Device) Write(start uint8, p []byte) error {
	if int(start)+len(p) > RAMBytes {
		return ErrOutOfRange
	}
	for len(p) > 0 {
		n := len(p)
		if n > maxChunk {
			n = maxChunk
		}
		d.tx[0] = cmdDataInput
		d.tx[1] = start * 2 // two RAM nibbles per byte
		copy(d.tx[2:], p[:n])
		if err := d.bus.Tx(d.addr, d.tx[:2+n], nil); err != nil {
			return err
		}
		time.Sleep(settleDelay)
		start += uint8(n)
		p = p[n:]
	}
	return nil
}

// WriteByte sends a single byte to display RAM at byte index addr.
func (d *Device) WriteByte(addr uint8, v byte) error {
	if addr >= RAMBytes {
		return ErrOutOfRange
	}
	d.tx[0] = cmdDataInput
	d.tx[1] = addr * 2
	d.tx[2] = v
	if err := d.bus.Tx(d.addr, d.tx[:3], nil); err != nil {
		return err
	}
	time.Sleep(settleDelay)
	return nil
}

// Clear zeroes the display RAM.
func (d *Device) Clear() error {
	var zero [RAMBytes]byte
	return d.Write(0, zero[:])
}

// SetBrightness sets the PWM duty, clamped to 0..15.
func (d *Device) SetBrightness(level uint8) error {
	if level > 15 {
		level = 15
	}
	return d.command(cmdPWMDuty, level)
}

// SetBlink sets the blink rate.
func (d *Device) SetBlink(rate uint8) error {
	return d.command(cmdBlink, rate)
}

// SetPower sets the system mode.
func (d *Device) SetPower(mode uint8) error {
	return d.command(cmdSystem, mode)
}

func (d *Device) command(opcode, mode uint8) error {
	d.tx[0] = opcode
	d.tx[1] = mode
	if err := d.bus.Tx(d.addr, d.tx[:2], nil); err != nil {
		return err
	}
	time.Sleep(settleDelay)
	return nil
}
