package render

import (
	"testing"

	"tuner/fonts/bitmaps"
	"tuner/fonts/nibbledigits"
	"tuner/pitch"
)

// recordBus records every device write for assertion.
type recordBus struct {
	writes []busWrite
}

type busWrite struct {
	single bool
	start  uint8
	data   []byte
}

func (b *recordBus) Write(start uint8, p []byte) error {
	cp := make([]byte, len(p))
	copy(cp, p)
	b.writes = append(b.writes, busWrite{start: start, data: cp})
	return nil
}

func (b *recordBus) WriteByte(addr uint8, v byte) error {
	b.writes = append(b.writes, busWrite{single: true, start: addr, data: []byte{v}})
	return nil
}

func (b *recordBus) clear() { b.writes = nil }

const minValid = 10.0

func newTestRenderer(t *testing.T, m Mode) (*Renderer, *recordBus) {
	t.Helper()
	bus := &recordBus{}
	r := New(bus)
	if err := r.SetMode(m); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	bus.clear()
	return r, bus
}

func TestCursorByteMapping(t *testing.T) {
	cases := []struct {
		col  int
		idx  int
		mask byte
	}{
		{0, 6, 0x80},
		{7, 6, 0x01},
		{8, 14, 0x80},
		{22, 22, 0x02},
		{27, 30, 0x10},
	}
	for _, c := range cases {
		idx, mask := cursorByte(c.col)
		if idx != c.idx || mask != c.mask {
			t.Fatalf("col %d: got idx=%d mask=%#x, want idx=%d mask=%#x",
				c.col, idx, mask, c.idx, c.mask)
		}
	}
}

func TestFramebufferDirtyRange(t *testing.T) {
	bus := &recordBus{}
	fb := NewFramebuffer(bus)

	if err := fb.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("clean flush must not touch the bus")
	}

	fb.Set(5, 0xAA)
	fb.Set(9, 0x55)
	if err := fb.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(bus.writes))
	}
	w := bus.writes[0]
	if w.start != 5 || len(w.data) != 5 {
		t.Fatalf("got start=%d len=%d, want the contiguous 5..9 range", w.start, len(w.data))
	}
	if w.data[0] != 0xAA || w.data[4] != 0x55 {
		t.Fatalf("range content wrong: % x", w.data)
	}

	// Setting a byte to its current value must not dirty anything.
	bus.clear()
	fb.Set(5, 0xAA)
	if err := fb.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("no-op set must not flush")
	}
}

func TestFramebufferToggleByteBypassesFlush(t *testing.T) {
	bus := &recordBus{}
	fb := NewFramebuffer(bus)

	if err := fb.ToggleByte(22, 0x02); err != nil {
		t.Fatalf("ToggleByte: %v", err)
	}
	if len(bus.writes) != 1 || !bus.writes[0].single {
		t.Fatalf("expected one immediate byte write, got %+v", bus.writes)
	}
	if bus.writes[0].start != 22 || bus.writes[0].data[0] != 0x02 {
		t.Fatalf("got addr=%d v=%#x", bus.writes[0].start, bus.writes[0].data[0])
	}
	if fb.Byte(22) != 0x02 {
		t.Fatalf("mirror not updated")
	}

	// The toggled byte is not part of the dirty range.
	bus.clear()
	if err := fb.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("toggle must not dirty the flush range")
	}
}

func TestSetModePianoLoadsKeyboard(t *testing.T) {
	bus := &recordBus{}
	r := New(bus)
	if err := r.SetMode(ModePiano); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("got %d writes, want one full-frame write", len(bus.writes))
	}
	w := bus.writes[0]
	if w.start != 0 || len(w.data) != FrameBytes {
		t.Fatalf("got start=%d len=%d", w.start, len(w.data))
	}
	for i, v := range w.data {
		if v != bitmaps.Keyboard[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, v, bitmaps.Keyboard[i])
		}
	}
}

func TestInvalidModeFallsBackToPiano(t *testing.T) {
	r, _ := newTestRenderer(t, Mode(7))
	if r.Mode() != ModePiano {
		t.Fatalf("mode=%v, want piano", r.Mode())
	}
}

func TestPlaceholderOnceAndRestore(t *testing.T) {
	r, bus := newTestRenderer(t, ModePiano)

	if err := r.Render(0, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(bus.writes) != 1 {
		t.Fatalf("placeholder draw: got %d writes, want 1", len(bus.writes))
	}

	// Below-floor stays quiet once drawn.
	bus.clear()
	for _, hz := range []float32{0, 5, 9.99} {
		if err := r.Render(hz, 440, minValid); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if len(bus.writes) != 0 {
		t.Fatalf("repeated placeholder must not write, got %d", len(bus.writes))
	}

	// Coming back above the floor rebuilds the keyboard base.
	if err := r.Render(440, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(bus.writes) == 0 {
		t.Fatalf("expected a redraw after signal returns")
	}
	full := bus.writes[0]
	if full.start != 0 || len(full.data) != FrameBytes {
		t.Fatalf("first write after return must be the base image, got start=%d len=%d",
			full.start, len(full.data))
	}
}

func TestPianoCursorAndLabel(t *testing.T) {
	r, bus := newTestRenderer(t, ModePiano)

	// A4 at the reference: nine semitones above C4.
	if err := r.Render(440, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}

	col, octave := pianoColumn(440, 440)
	if col != 22 || octave != 4 {
		t.Fatalf("pianoColumn(440)=(%d,%d), want (22,4)", col, octave)
	}

	// One single-byte cursor write plus the label flush.
	if len(bus.writes) < 2 {
		t.Fatalf("got %d writes", len(bus.writes))
	}
	cur := bus.writes[0]
	if !cur.single || cur.start != 22 {
		t.Fatalf("cursor write: %+v", cur)
	}
	wantCursor := bitmaps.Keyboard[22] ^ 0x02
	if cur.data[0] != wantCursor {
		t.Fatalf("cursor byte=%#x want %#x", cur.data[0], wantCursor)
	}

	// Same frequency again: fully idempotent.
	bus.clear()
	if err := r.Render(440, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("steady frequency must not write, got %d", len(bus.writes))
	}
}

func TestPianoCursorMoveWritesTwoBytes(t *testing.T) {
	r, bus := newTestRenderer(t, ModePiano)

	if err := r.Render(440, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	bus.clear()

	// A#4: one semitone up, same letter region ends, cursor moves 22 -> 24.
	if err := r.Render(466.16, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var singles []busWrite
	for _, w := range bus.writes {
		if w.single {
			singles = append(singles, w)
		}
	}
	if len(singles) != 2 {
		t.Fatalf("cursor move: got %d single writes, want 2", len(singles))
	}
	if singles[0].start != 22 || singles[0].data[0] != bitmaps.Keyboard[22] {
		t.Fatalf("old cursor not restored: %+v", singles[0])
	}
	if singles[1].start != 30 || singles[1].data[0] != bitmaps.Keyboard[30]^0x80 {
		t.Fatalf("new cursor wrong: %+v", singles[1])
	}
}

func TestPianoColumnMonotonic(t *testing.T) {
	// Sweeping one octave upward must never move the cursor left.
	prev := -1
	for hz := float32(262); hz <= 522; hz += 0.5 {
		col, _ := pianoColumn(hz, 440)
		if col < prev {
			t.Fatalf("cursor moved left at %v Hz: %d after %d", hz, col, prev)
		}
		if col < 0 || col > Columns-1 {
			t.Fatalf("column %d out of range at %v Hz", col, hz)
		}
		prev = col
	}
}

func TestPianoColumnOctaveBoundary(t *testing.T) {
	// Just below C5 the octave label must still read 4.
	colB, octB := pianoColumn(523.0, 440)
	if octB != 4 {
		t.Fatalf("just under C5: octave=%d, want 4", octB)
	}
	// At C5 it flips.
	colC, octC := pianoColumn(523.26, 440)
	if octC != 5 {
		t.Fatalf("C5: octave=%d, want 5", octC)
	}
	// The cursor wraps from the right edge back to the low C anchor.
	if colB < Columns-4 || colC > 4 {
		t.Fatalf("columns around the boundary look wrong: %d then %d", colB, colC)
	}
}

func TestBarGraphMask(t *testing.T) {
	cases := []struct {
		cents float32
		mask  uint16
	}{
		{0, 0x0020},
		{4.9, 0x0020},
		{10, 0x0060},
		{25, 0x00E0},
		{49.99, 0x07E0},
		{-10, 0x0030},
		{-25, 0x0038},
		{-49.99, 0x003F},
	}
	for _, c := range cases {
		if got := barMask(c.cents); got != c.mask {
			t.Fatalf("barMask(%v)=%#x, want %#x", c.cents, got, c.mask)
		}
	}
}

func TestBarGraphRender(t *testing.T) {
	r, bus := newTestRenderer(t, ModeBarGraph)

	// 25 cents sharp of A4.
	hz := float32(446.4)
	if err := r.Render(hz, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}

	fb := r.Framebuffer()
	mask := r.st.barMask
	hi := barHiModule * ModuleBytes
	lo := barLoModule * ModuleBytes
	if fb.Byte(hi+3) != byte(mask>>8) || fb.Byte(hi+4) != byte(mask>>8) {
		t.Fatalf("hi bar rows wrong: %#x %#x mask=%#x", fb.Byte(hi+3), fb.Byte(hi+4), mask)
	}
	if fb.Byte(lo+3) != byte(mask) || fb.Byte(lo+4) != byte(mask) {
		t.Fatalf("lo bar rows wrong: %#x %#x mask=%#x", fb.Byte(lo+3), fb.Byte(lo+4), mask)
	}
	for _, row := range []int{0, 1, 2, 5, 6, 7} {
		if fb.Byte(lo+row) != barBorder {
			t.Fatalf("row %d: got %#x, want border %#x", row, fb.Byte(lo+row), barBorder)
		}
	}

	// Idempotent for an unchanged reading.
	bus.clear()
	if err := r.Render(hz, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("steady bar must not write, got %d", len(bus.writes))
	}
}

func TestNumericRender(t *testing.T) {
	r, bus := newTestRenderer(t, ModeNumeric)

	if err := r.Render(440, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}

	fb := r.Framebuffer()
	// Module 3 holds the sign glyph, module 4 the packed digits. A perfect A4
	// reads +00.
	plus := nibbledigits.Rows(nibbledigits.Plus)
	zero := nibbledigits.Rows(0)
	for row := 0; row < nibbledigits.Height; row++ {
		if got := fb.Byte(3*ModuleBytes + row); got != plus[row] {
			t.Fatalf("sign row %d: got %#x want %#x", row, got, plus[row])
		}
		want := zero[row]<<4 | zero[row]
		if got := fb.Byte(4*ModuleBytes + row); got != want {
			t.Fatalf("digit row %d: got %#x want %#x", row, got, want)
		}
	}

	// Idempotent while the rounded reading is stable.
	bus.clear()
	if err := r.Render(440.05, 440, minValid); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Fatalf("stable numeric reading must not write, got %d", len(bus.writes))
	}
}

func TestComposeName(t *testing.T) {
	var buf [4]byte
	cases := []struct {
		hz   float32
		want string
	}{
		{440, "A 4"},
		{466.16, "A#4"},
		{261.63, "C 4"},
		{8.1758 * 2, "C 0"},
	}
	for _, c := range cases {
		res := pitch.Map(c.hz, 440)
		n := composeName(res, &buf)
		if got := string(buf[:n]); got != c.want {
			t.Fatalf("hz=%v: got %q want %q", c.hz, got, c.want)
		}
	}
}
