package render

import (
	"math"

	"tuner/fonts/bitmaps"
	"tuner/fonts/notetall"
)

var keyboardBase = bitmaps.Keyboard

// Columns is the width of the keyboard cursor track: one octave plus overlap.
const Columns = 28

// notePixelCenter holds the cursor anchor for each semitone C..B plus a 13th
// anchor for the virtual high C, spaced to match the key graphic (with the
// E-F gap).
var notePixelCenter = [13]uint8{2, 4, 6, 8, 10, 14, 16, 18, 20, 22, 24, 26, 30}

// colNoteIndex maps a cursor column to its diatonic letter (notetall index).
// Column 0 belongs to the B below the displayed octave.
var colNoteIndex = [Columns]uint8{
	6, 0, 0, 0,
	0, 1, 1, 1,
	1, 2, 2, 2,
	2, 3, 3, 3,
	3, 4, 4, 4,
	4, 5, 5, 5,
	5, 6, 6, 6,
}

// colAlteration maps a cursor column to -1 flat, 0 natural, +1 sharp on a
// repeating 4-column pattern per natural note.
var colAlteration = [Columns]int8{
	+1, -1, 0, +1,
	+1, -1, 0, +1,
	+1, -1, 0, +1,
	+1, -1, 0, +1,
	+1, -1, 0, +1,
	+1, -1, 0, +1,
	+1, -1, 0, +1,
}

// a4ToC4 is 2^(-9/12): C4 sits nine semitones below the reference A4.
const a4ToC4 = 0.5946035575013605

// pianoColumn maps a frequency to a cursor column and the octave label.
//
// The semitone offset from C4 is floored so the octave comes from the lower
// bin and does not increment early at the B/C boundary; the fractional part
// interpolates between the adjacent note anchors.
func pianoColumn(hz, refA4 float32) (col int, octave int) {
	st := 12 * math.Log2(float64(hz)/(float64(refA4)*a4ToC4))
	base := int(math.Floor(st))
	frac := st - float64(base)
	if frac < 0 {
		frac = 0
	}

	midiBase := 60 + base
	octave = floorDiv(midiBase, 12) - 1

	idx := ((base % 12) + 12) % 12
	colF := float64(notePixelCenter[idx])*(1-frac) + float64(notePixelCenter[idx+1])*frac

	col = int(colF + 0.5)
	if col < 0 {
		col = 0
	} else if col > Columns-1 {
		col = Columns - 1
	}
	return col, octave
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// renderPiano moves the tuning cursor and refreshes the label column.
//
// Cursor moves write exactly one byte to clear the old pixel and one to set
// the new; the label module is rewritten only when its note/alteration/octave
// triple changes.
func (r *Renderer) renderPiano(hz, refA4 float32) error {
	if !(hz > 0) {
		return nil
	}
	col, octave := pianoColumn(hz, refA4)

	if int8(col) != r.st.col {
		if r.st.col >= 0 && int(r.st.col) < Columns {
			idx, mask := cursorByte(int(r.st.col))
			if err := r.fb.ToggleByte(idx, mask); err != nil {
				return err
			}
		}
		idx, mask := cursorByte(col)
		if err := r.fb.ToggleByte(idx, mask); err != nil {
			return err
		}
		r.st.col = int8(col)
	}

	noteIdx := colNoteIndex[col]
	alter := colAlteration[col]
	if octave < 0 {
		octave = 0
	} else if octave > 9 {
		octave = 9
	}

	if noteIdx == r.st.noteIdx && alter == r.st.alter && int8(octave) == r.st.octave {
		return nil
	}
	r.st.noteIdx = noteIdx
	r.st.alter = alter
	r.st.octave = int8(octave)

	r.drawLabel(noteIdx, alter, octave)
	return r.fb.Flush()
}

// drawLabel composes the letter, alteration and micro octave digit into the
// label module (the last one). The letter occupies the left three columns,
// the alteration the top-right corner, the octave the bottom-right.
func (r *Renderer) drawLabel(noteIdx uint8, alter int8, octave int) {
	base := (ModuleCount - 1) * ModuleBytes
	for row := 0; row < ModuleBytes; row++ {
		var b byte
		if row > 0 && row < 7 {
			b = notetall.Notes[noteIdx][row-1] << 5
		}
		if row < 3 && alter != 0 {
			g := notetall.AlterFlat
			if alter > 0 {
				g = notetall.AlterSharp
			}
			b |= notetall.Alterations[g][row]
		}
		if row > 3 {
			b |= notetall.Micro[octave][row-4]
		}
		r.fb.Set(base+row, b)
	}
}
