package render

import "image/color"

// Display geometry: five 8x8 modules side by side, one byte per module row
// with bit 7 the leftmost pixel.
const (
	ModuleBytes = 8
	ModuleCount = 5
	FrameBytes  = ModuleBytes * ModuleCount

	Width  = 40
	Height = 8

	cursorRow = 6
)

// Bus is the byte-write contract of the display device. Implementations own
// chunking and bus pacing; callers only request contiguous ranges inside the
// framebuffer address space.
type Bus interface {
	Write(start uint8, p []byte) error
	WriteByte(addr uint8, v byte) error
}

// Framebuffer mirrors the on-device RAM and tracks a contiguous dirty range
// so a flush sends only the bytes that changed since the last one.
//
// It also implements drivers.Displayer over the module byte/bit layout, which
// lets tinyfont text render straight into the mirror.
type Framebuffer struct {
	bus Bus
	buf [FrameBytes]byte

	// dirtyLo > dirtyHi means clean.
	dirtyLo int
	dirtyHi int
}

func NewFramebuffer(bus Bus) *Framebuffer {
	return &Framebuffer{bus: bus, dirtyLo: FrameBytes, dirtyHi: -1}
}

// byteIndex maps a pixel column/row to its framebuffer byte.
func byteIndex(x, y int) int {
	return (x/ModuleBytes)*ModuleBytes + y
}

// pixelMask returns the bit for a pixel column within its module byte.
func pixelMask(x int) byte {
	return 0x80 >> (x % ModuleBytes)
}

// cursorByte maps a keyboard column 0..27 to the framebuffer byte and bit of
// the cursor row.
func cursorByte(col int) (idx int, mask byte) {
	return byteIndex(col, cursorRow), pixelMask(col)
}

// Byte returns the mirrored value at index i.
func (f *Framebuffer) Byte(i int) byte {
	return f.buf[i]
}

// Set stores v at index i, extending the dirty range only when the byte
// actually changes.
func (f *Framebuffer) Set(i int, v byte) {
	if f.buf[i] == v {
		return
	}
	f.buf[i] = v
	if i < f.dirtyLo {
		f.dirtyLo = i
	}
	if i > f.dirtyHi {
		f.dirtyHi = i
	}
}

// Load replaces the whole mirror with img and marks everything dirty.
func (f *Framebuffer) Load(img *[FrameBytes]byte) {
	f.buf = *img
	f.dirtyLo, f.dirtyHi = 0, FrameBytes-1
}

// Clear zeroes the mirror and marks everything dirty.
func (f *Framebuffer) Clear() {
	f.buf = [FrameBytes]byte{}
	f.dirtyLo, f.dirtyHi = 0, FrameBytes-1
}

// Flush writes the dirty range to the device and resets it.
func (f *Framebuffer) Flush() error {
	if f.dirtyLo > f.dirtyHi {
		return nil
	}
	lo, hi := f.dirtyLo, f.dirtyHi
	f.dirtyLo, f.dirtyHi = FrameBytes, -1
	return f.bus.Write(uint8(lo), f.buf[lo:hi+1])
}

// ToggleByte XORs mask into the byte at index i and writes that single byte
// to the device immediately, bypassing the dirty range.
func (f *Framebuffer) ToggleByte(i int, mask byte) error {
	f.buf[i] ^= mask
	return f.bus.WriteByte(uint8(i), f.buf[i])
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (int16, int16) { return Width, Height }

// SetPixel implements drivers.Displayer. Any non-black color lights the
// pixel; black clears it. Out-of-range coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	i := byteIndex(int(x), int(y))
	mask := pixelMask(int(x))
	if c.R|c.G|c.B != 0 {
		f.Set(i, f.buf[i]|mask)
	} else {
		f.Set(i, f.buf[i]&^mask)
	}
}

// Display implements drivers.Displayer.
func (f *Framebuffer) Display() error { return f.Flush() }
