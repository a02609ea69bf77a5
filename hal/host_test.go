//go:build !tinygo

package hal

import "testing"

func TestHostDisplayBusDecodesRAMWrites(t *testing.T) {
	b := newHostDisplayBus(nil)

	// Byte index 10 addresses nibble 20.
	if err := b.Tx(0x68, []byte{0x80, 20, 0xAA, 0xBB}, nil); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	var ram [40]byte
	b.snapshot(&ram)
	if ram[10] != 0xAA || ram[11] != 0xBB {
		t.Fatalf("ram[10..11]=% x", ram[10:12])
	}

	if err := b.Tx(0x68, []byte{0x80, 79, 0x01, 0x02}, nil); err == nil {
		t.Fatalf("write past RAM end must fail")
	}
}

func TestHostDisplayBusDecodesCommands(t *testing.T) {
	b := newHostDisplayBus(nil)

	if err := b.Tx(0x68, []byte{0x82, 0x03}, nil); err != nil {
		t.Fatalf("power: %v", err)
	}
	if err := b.Tx(0x68, []byte{0xC0, 0x0A}, nil); err != nil {
		t.Fatalf("pwm: %v", err)
	}
	if err := b.Tx(0x68, []byte{0x84, 0x02}, nil); err != nil {
		t.Fatalf("blink: %v", err)
	}
	var ram [40]byte
	power, blink, brightness := b.snapshot(&ram)
	if power != 0x03 || blink != 0x02 || brightness != 0x0A {
		t.Fatalf("power=%#x blink=%#x brightness=%#x", power, blink, brightness)
	}

	if err := b.Tx(0x68, []byte{0x55, 0x00}, nil); err == nil {
		t.Fatalf("unknown opcode must fail")
	}
}

func TestHostSerialInjectAndRead(t *testing.T) {
	s := newHostSerial(&hostLogger{})

	var buf [4]byte
	if n, err := s.Read(buf[:]); err != nil || n != 0 {
		t.Fatalf("empty read: n=%d err=%v", n, err)
	}

	s.inject(0x07, 0x08)
	n, err := s.Read(buf[:])
	if err != nil || n != 2 || buf[0] != 0x07 || buf[1] != 0x08 {
		t.Fatalf("n=%d err=%v buf=% x", n, err, buf[:n])
	}
	if n, _ := s.Read(buf[:]); n != 0 {
		t.Fatalf("queue must drain, got %d", n)
	}
}
