// Package bitmaps holds full-screen 40-byte images for the 5-module LED
// matrix. Bytes are module rows, top to bottom, bit 7 the leftmost pixel.
package bitmaps

// Keyboard is the piano view base image: one octave of keys across columns
// 0..31 with black keys in the upper rows and a baseline in row 5. Row 6 is
// left clear for the tuning cursor, module 4 for the note label.
var Keyboard = [40]byte{
	// module 0: C, C# (left frame at column 0)
	0x88, 0x88, 0x88, 0x88, 0x80, 0xFF, 0x00, 0x00,
	// module 1: D, D#, E (E-F gap at column 12)
	0x88, 0x88, 0x88, 0x88, 0x08, 0xFF, 0x00, 0x00,
	// module 2: F, F#, G, G#
	0x88, 0x88, 0x88, 0x88, 0x00, 0xFF, 0x00, 0x00,
	// module 3: A, A#, B, high C (divider at column 28)
	0x88, 0x88, 0x88, 0x88, 0x08, 0xFE, 0x00, 0x00,
	// module 4: label area
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// Logo is the boot image: a waveform repeated across all five modules.
var Logo = [40]byte{
	0x00, 0x18, 0x24, 0x42, 0x81, 0x00, 0x00, 0x00,
	0x00, 0x18, 0x24, 0x42, 0x81, 0x00, 0x00, 0x00,
	0x00, 0x18, 0x24, 0x42, 0x81, 0x00, 0x00, 0x00,
	0x00, 0x18, 0x24, 0x42, 0x81, 0x00, 0x00, 0x00,
	0x00, 0x18, 0x24, 0x42, 0x81, 0x00, 0x00, 0x00,
}
