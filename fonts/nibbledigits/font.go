// Package nibbledigits holds the compact digit and sign glyphs for the cents
// readout. Glyphs are 5 rows tall and occupy the low nibble of each row, so
// a tens digit shifted left by 4 and a units digit pack into one byte.
package nibbledigits

const (
	Height = 5

	// Sign glyph indices following the ten digits.
	Plus  = 10
	Minus = 11
)

// Rows returns the 5 glyph rows for index 0..11. Out-of-range indices return
// the empty glyph.
func Rows(idx int) [Height]byte {
	if idx < 0 || idx >= len(glyphs) {
		return [Height]byte{}
	}
	return glyphs[idx]
}

// Digits are 3 pixels wide in bits 2..0; bit 3 stays clear as the inter-digit
// gap once two glyphs share a byte.
var glyphs = [12][Height]byte{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
	{0b010, 0b111, 0b010, 0b000, 0b000}, // +
	{0b000, 0b000, 0b111, 0b000, 0b000}, // -
}
