// Package notetall holds the glyphs composed into the piano view's label
// column: 6-row note letters, 3-row alteration marks and 4-row micro octave
// digits. All glyphs are 3 pixels wide in the low 3 bits; the label renderer
// positions them with shifts and masks.
package notetall

// Note letters in diatonic order C D E F G A B.
const (
	NoteC = iota
	NoteD
	NoteE
	NoteF
	NoteG
	NoteA
	NoteB
)

// Notes holds the 6-row letter glyphs, rows top to bottom.
var Notes = [7][6]byte{
	{0b111, 0b100, 0b100, 0b100, 0b100, 0b111}, // C
	{0b110, 0b101, 0b101, 0b101, 0b101, 0b110}, // D
	{0b111, 0b100, 0b111, 0b100, 0b100, 0b111}, // E
	{0b111, 0b100, 0b111, 0b100, 0b100, 0b100}, // F
	{0b111, 0b100, 0b100, 0b101, 0b101, 0b111}, // G
	{0b010, 0b101, 0b111, 0b101, 0b101, 0b101}, // A
	{0b110, 0b101, 0b110, 0b101, 0b101, 0b110}, // B
}

// Alteration glyph indices.
const (
	AlterFlat = iota
	AlterSharp
)

// Alterations holds the 3-row flat and sharp marks.
var Alterations = [2][3]byte{
	{0b100, 0b110, 0b110}, // flat
	{0b101, 0b111, 0b101}, // sharp
}

// Micro holds the 4-row octave digits 0..9.
var Micro = [10][4]byte{
	{0b111, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b111}, // 1
	{0b110, 0b001, 0b010, 0b111}, // 2
	{0b111, 0b010, 0b001, 0b110}, // 3
	{0b101, 0b101, 0b111, 0b001}, // 4
	{0b111, 0b100, 0b011, 0b110}, // 5
	{0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010}, // 7
	{0b111, 0b010, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001}, // 9
}
