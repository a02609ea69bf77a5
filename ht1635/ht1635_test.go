package ht1635

import (
	"bytes"
	"testing"
)

// fakeI2C records the write side of every transaction.
type fakeI2C struct {
	addrs []uint16
	txs   [][]byte
	err   error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	cp := make([]byte, len(w))
	copy(cp, w)
	f.addrs = append(f.addrs, addr)
	f.txs = append(f.txs, cp)
	return nil
}

func TestNewDefaultsAddress(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, 0)
	if err := d.SetPower(PowerOn); err != nil {
		t.Fatalf("SetPower: %v", err)
	}
	if bus.addrs[0] != DefaultAddress {
		t.Fatalf("addr=%#x, want %#x", bus.addrs[0], DefaultAddress)
	}
}

func TestWriteNibbleAddressing(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	if err := d.Write(10, []byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(bus.txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(bus.txs))
	}
	want := []byte{0x80, 20, 0xAA, 0xBB}
	if !bytes.Equal(bus.txs[0], want) {
		t.Fatalf("tx=% x, want % x", bus.txs[0], want)
	}
}

func TestWriteChunksLongTransfers(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	var frame [RAMBytes]byte
	for i := range frame {
		frame[i] = byte(i)
	}
	if err := d.Write(0, frame[:]); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// 40 bytes split into a 30-byte and a 10-byte transaction.
	if len(bus.txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(bus.txs))
	}
	first, second := bus.txs[0], bus.txs[1]
	if len(first) != 2+30 || first[0] != 0x80 || first[1] != 0 {
		t.Fatalf("first tx: % x", first[:2])
	}
	if len(second) != 2+10 || second[0] != 0x80 || second[1] != 60 {
		t.Fatalf("second tx: % x", second[:2])
	}
	if first[2] != 0 || second[2] != 30 {
		t.Fatalf("chunk payload misaligned: %d %d", first[2], second[2])
	}
}

func TestWriteByte(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	if err := d.WriteByte(22, 0x42); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	want := []byte{0x80, 44, 0x42}
	if !bytes.Equal(bus.txs[0], want) {
		t.Fatalf("tx=% x, want % x", bus.txs[0], want)
	}
}

func TestOutOfRangeRejected(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	if err := d.WriteByte(RAMBytes, 0); err != ErrOutOfRange {
		t.Fatalf("WriteByte past end: err=%v", err)
	}
	if err := d.Write(38, []byte{1, 2, 3}); err != ErrOutOfRange {
		t.Fatalf("Write past end: err=%v", err)
	}
	if len(bus.txs) != 0 {
		t.Fatalf("rejected writes must not touch the bus")
	}
}

func TestConfigureSequence(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	err := d.Configure(Config{Brightness: 8, ComOption: ComPMOS, Cascade: CascadeRCMaster0})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}

	// standby, blink, com, cascade, pwm, RAM clear (two chunks), power on.
	wantOps := [][2]byte{
		{0x82, PowerStandby},
		{0x84, BlinkOff},
		{0x88, ComPMOS},
		{0xA0, CascadeRCMaster0},
		{0xC0, 8},
	}
	if len(bus.txs) != len(wantOps)+3 {
		t.Fatalf("got %d transactions, want %d", len(bus.txs), len(wantOps)+3)
	}
	for i, op := range wantOps {
		if bus.txs[i][0] != op[0] || bus.txs[i][1] != op[1] {
			t.Fatalf("op %d: % x, want % x", i, bus.txs[i][:2], op)
		}
	}
	last := bus.txs[len(bus.txs)-1]
	if last[0] != 0x82 || last[1] != PowerOn {
		t.Fatalf("final op: % x, want power on", last[:2])
	}
}

func TestBrightnessClamped(t *testing.T) {
	bus := &fakeI2C{}
	d := New(bus, DefaultAddress)

	if err := d.SetBrightness(200); err != nil {
		t.Fatalf("SetBrightness: %v", err)
	}
	if bus.txs[0][0] != 0xC0 || bus.txs[0][1] != 15 {
		t.Fatalf("tx=% x, want pwm 15", bus.txs[0])
	}
}
