// Package font6x8 is the 6x8 bitmap font used for text on the LED matrix.
//
// Coverage is the ASCII range 0x20..0x5A (space through 'Z'); lowercase and
// unknown runes fall back to '?'. Each glyph is 8 rows of 6 pixels stored as
// 0b00xxxxxx with bit 5 the leftmost pixel.
package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width  = 6
	Height = 8

	firstChar = 0x20
	lastChar  = 0x5A
)

// Font implements tinyfont.Fonter so menu and status text can be drawn
// through tinyfont.WriteLine. Concurrent access is not safe due to internal
// glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * Height
	for row := 0; row < Height; row++ {
		b := glyphData[base+row]
		for col := 0; col < Width; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Height-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		// One display module per glyph, so text stays aligned to the
		// physical 8x8 blocks.
		XAdvance: 8,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Row returns one row of the glyph for ch, in the low 6 bits with bit 5 the
// leftmost pixel. Rows outside 0..7 are empty.
func Row(ch byte, row int) byte {
	if row < 0 || row >= Height {
		return 0
	}
	return glyphData[glyphIndex(rune(ch))*Height+row]
}

func glyphIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < firstChar || r > lastChar {
		r = '?'
	}
	return int(r) - firstChar
}

// glyphData holds 8 rows per glyph, top to bottom, 0x20..0x5A.
var glyphData = [...]byte{
	// 0x20 ' '
	0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000,
	// 0x21 '!'
	0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b000000, 0b001000, 0b000000,
	// 0x22 '"'
	0b010100, 0b010100, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000,
	// 0x23 '#'
	0b000000, 0b010100, 0b111110, 0b010100, 0b111110, 0b010100, 0b000000, 0b000000,
	// 0x24 '$'
	0b001000, 0b011110, 0b101000, 0b011100, 0b001010, 0b111100, 0b001000, 0b000000,
	// 0x25 '%'
	0b110010, 0b110100, 0b000100, 0b001000, 0b010000, 0b010110, 0b100110, 0b000000,
	// 0x26 '&'
	0b011000, 0b100100, 0b101000, 0b010000, 0b101010, 0b100100, 0b011010, 0b000000,
	// 0x27 '\''
	0b001000, 0b010000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b000000,
	// 0x28 '('
	0b000100, 0b001000, 0b010000, 0b010000, 0b010000, 0b001000, 0b000100, 0b000000,
	// 0x29 ')'
	0b010000, 0b001000, 0b000100, 0b000100, 0b000100, 0b001000, 0b010000, 0b000000,
	// 0x2A '*'
	0b000000, 0b001000, 0b101010, 0b011100, 0b101010, 0b001000, 0b000000, 0b000000,
	// 0x2B '+'
	0b000000, 0b001000, 0b001000, 0b111110, 0b001000, 0b001000, 0b000000, 0b000000,
	// 0x2C ','
	0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b001100, 0b000100, 0b001000,
	// 0x2D '-'
	0b000000, 0b000000, 0b000000, 0b111110, 0b000000, 0b000000, 0b000000, 0b000000,
	// 0x2E '.'
	0b000000, 0b000000, 0b000000, 0b000000, 0b000000, 0b001100, 0b001100, 0b000000,
	// 0x2F '/'
	0b000010, 0b000010, 0b000100, 0b001000, 0b010000, 0b100000, 0b100000, 0b000000,
	// 0x30 '0'
	0b011100, 0b100010, 0b100110, 0b101010, 0b110010, 0b100010, 0b011100, 0b000000,
	// 0x31 '1'
	0b001000, 0b011000, 0b001000, 0b001000, 0b001000, 0b001000, 0b011100, 0b000000,
	// 0x32 '2'
	0b011100, 0b100010, 0b000010, 0b001100, 0b010000, 0b100000, 0b111110, 0b000000,
	// 0x33 '3'
	0b111110, 0b000100, 0b001000, 0b000100, 0b000010, 0b100010, 0b011100, 0b000000,
	// 0x34 '4'
	0b000100, 0b001100, 0b010100, 0b100100, 0b111110, 0b000100, 0b000100, 0b000000,
	// 0x35 '5'
	0b111110, 0b100000, 0b111100, 0b000010, 0b000010, 0b100010, 0b011100, 0b000000,
	// 0x36 '6'
	0b001100, 0b010000, 0b100000, 0b111100, 0b100010, 0b100010, 0b011100, 0b000000,
	// 0x37 '7'
	0b111110, 0b000010, 0b000100, 0b001000, 0b010000, 0b010000, 0b010000, 0b000000,
	// 0x38 '8'
	0b011100, 0b100010, 0b100010, 0b011100, 0b100010, 0b100010, 0b011100, 0b000000,
	// 0x39 '9'
	0b011100, 0b100010, 0b100010, 0b011110, 0b000010, 0b000100, 0b011000, 0b000000,
	// 0x3A ':'
	0b000000, 0b001100, 0b001100, 0b000000, 0b001100, 0b001100, 0b000000, 0b000000,
	// 0x3B ';'
	0b000000, 0b001100, 0b001100, 0b000000, 0b001100, 0b000100, 0b001000, 0b000000,
	// 0x3C '<'
	0b000100, 0b001000, 0b010000, 0b100000, 0b010000, 0b001000, 0b000100, 0b000000,
	// 0x3D '='
	0b000000, 0b000000, 0b111110, 0b000000, 0b111110, 0b000000, 0b000000, 0b000000,
	// 0x3E '>'
	0b010000, 0b001000, 0b000100, 0b000010, 0b000100, 0b001000, 0b010000, 0b000000,
	// 0x3F '?'
	0b011100, 0b100010, 0b000010, 0b000100, 0b001000, 0b000000, 0b001000, 0b000000,
	// 0x40 '@'
	0b011100, 0b100010, 0b000010, 0b011010, 0b101010, 0b101010, 0b011100, 0b000000,
	// 0x41 'A'
	0b011100, 0b100010, 0b100010, 0b100010, 0b111110, 0b100010, 0b100010, 0b000000,
	// 0x42 'B'
	0b111100, 0b100010, 0b100010, 0b111100, 0b100010, 0b100010, 0b111100, 0b000000,
	// 0x43 'C'
	0b011100, 0b100010, 0b100000, 0b100000, 0b100000, 0b100010, 0b011100, 0b000000,
	// 0x44 'D'
	0b111000, 0b100100, 0b100010, 0b100010, 0b100010, 0b100100, 0b111000, 0b000000,
	// 0x45 'E'
	0b111110, 0b100000, 0b100000, 0b111100, 0b100000, 0b100000, 0b111110, 0b000000,
	// 0x46 'F'
	0b111110, 0b100000, 0b100000, 0b111100, 0b100000, 0b100000, 0b100000, 0b000000,
	// 0x47 'G'
	0b011100, 0b100010, 0b100000, 0b101110, 0b100010, 0b100010, 0b011110, 0b000000,
	// 0x48 'H'
	0b100010, 0b100010, 0b100010, 0b111110, 0b100010, 0b100010, 0b100010, 0b000000,
	// 0x49 'I'
	0b011100, 0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b011100, 0b000000,
	// 0x4A 'J'
	0b001110, 0b000100, 0b000100, 0b000100, 0b000100, 0b100100, 0b011000, 0b000000,
	// 0x4B 'K'
	0b100010, 0b100100, 0b101000, 0b110000, 0b101000, 0b100100, 0b100010, 0b000000,
	// 0x4C 'L'
	0b100000, 0b100000, 0b100000, 0b100000, 0b100000, 0b100000, 0b111110, 0b000000,
	// 0x4D 'M'
	0b100010, 0b110110, 0b101010, 0b101010, 0b100010, 0b100010, 0b100010, 0b000000,
	// 0x4E 'N'
	0b100010, 0b100010, 0b110010, 0b101010, 0b100110, 0b100010, 0b100010, 0b000000,
	// 0x4F 'O'
	0b011100, 0b100010, 0b100010, 0b100010, 0b100010, 0b100010, 0b011100, 0b000000,
	// 0x50 'P'
	0b111100, 0b100010, 0b100010, 0b111100, 0b100000, 0b100000, 0b100000, 0b000000,
	// 0x51 'Q'
	0b011100, 0b100010, 0b100010, 0b100010, 0b101010, 0b100100, 0b011010, 0b000000,
	// 0x52 'R'
	0b111100, 0b100010, 0b100010, 0b111100, 0b101000, 0b100100, 0b100010, 0b000000,
	// 0x53 'S'
	0b011110, 0b100000, 0b100000, 0b011100, 0b000010, 0b000010, 0b111100, 0b000000,
	// 0x54 'T'
	0b111110, 0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b000000,
	// 0x55 'U'
	0b100010, 0b100010, 0b100010, 0b100010, 0b100010, 0b100010, 0b011100, 0b000000,
	// 0x56 'V'
	0b100010, 0b100010, 0b100010, 0b100010, 0b100010, 0b010100, 0b001000, 0b000000,
	// 0x57 'W'
	0b100010, 0b100010, 0b100010, 0b101010, 0b101010, 0b101010, 0b010100, 0b000000,
	// 0x58 'X'
	0b100010, 0b100010, 0b010100, 0b001000, 0b010100, 0b100010, 0b100010, 0b000000,
	// 0x59 'Y'
	0b100010, 0b100010, 0b100010, 0b010100, 0b001000, 0b001000, 0b001000, 0b000000,
	// 0x5A 'Z'
	0b111110, 0b000010, 0b000100, 0b001000, 0b010000, 0b100000, 0b111110, 0b000000,
}
