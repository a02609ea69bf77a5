// Package pitch maps frequencies onto the twelve-tone equal temperament
// scale: note name, octave, MIDI number and cents deviation.
package pitch

import "math"

// DefaultReferenceA4 is the concert pitch substituted for invalid references.
const DefaultReferenceA4 = 440.0

var noteNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Result is the equal-tempered reading for one frequency.
//
// Cents lies in (-50, 50], clamped to +-49.99 to suppress boundary flicker.
type Result struct {
	NoteIndex int // 0..11, C=0
	Octave    int
	MIDI      int // 69 = A4 at the reference pitch
	Cents     float32
	Valid     bool
}

// Name returns the note name for the result, or "" when invalid.
func (r Result) Name() string {
	if !r.Valid {
		return ""
	}
	return noteNames[r.NoteIndex]
}

// NoteName returns the fixed name for a note index taken modulo 12.
func NoteName(index int) string {
	return noteNames[((index%12)+12)%12]
}

// Map converts a frequency to its closest equal-tempered note relative to
// refA4. Non-finite or sub-1Hz frequencies yield a zero, invalid Result; a
// non-finite or non-positive reference is replaced with 440 Hz.
func Map(hz, refA4 float32) Result {
	f := float64(hz)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1.0 {
		return Result{}
	}
	ref := float64(refA4)
	if math.IsNaN(ref) || math.IsInf(ref, 0) || ref <= 0 {
		ref = DefaultReferenceA4
	}

	midiF := 69.0 + 12.0*math.Log2(f/ref)
	midi := roundAwayFromZero(midiF)

	cents := float32((midiF - float64(midi)) * 100.0)
	if cents > 49.99 {
		cents = 49.99
	} else if cents < -49.99 {
		cents = -49.99
	}

	return Result{
		NoteIndex: ((midi % 12) + 12) % 12,
		Octave:    floorDiv(midi, 12) - 1,
		MIDI:      midi,
		Cents:     cents,
		Valid:     true,
	}
}

// roundAwayFromZero rounds to the nearest integer, ties away from zero.
func roundAwayFromZero(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// floorDiv divides rounding toward negative infinity, so octave labels stay
// consistent below MIDI 0 (midi -1 is B-2, not B-1).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
