package pitch

import (
	"math"
	"testing"
)

func TestMapReferenceA4(t *testing.T) {
	r := Map(440, 440)
	if !r.Valid {
		t.Fatalf("440 Hz must be valid")
	}
	if r.MIDI != 69 || r.Name() != "A" || r.Octave != 4 {
		t.Fatalf("got midi=%d name=%q octave=%d", r.MIDI, r.Name(), r.Octave)
	}
	if math.Abs(float64(r.Cents)) > 0.001 {
		t.Fatalf("cents=%v, want 0", r.Cents)
	}
}

func TestMapMiddleC(t *testing.T) {
	r := Map(261.6256, 440)
	if r.MIDI != 60 || r.Name() != "C" || r.Octave != 4 {
		t.Fatalf("got midi=%d name=%q octave=%d", r.MIDI, r.Name(), r.Octave)
	}
	if math.Abs(float64(r.Cents)) > 0.01 {
		t.Fatalf("cents=%v, want ~0", r.Cents)
	}
}

func TestMapAlternateReference(t *testing.T) {
	// With A4 at 432 Hz, 432 Hz is a perfect A.
	r := Map(432, 432)
	if r.MIDI != 69 || math.Abs(float64(r.Cents)) > 0.001 {
		t.Fatalf("got midi=%d cents=%v", r.MIDI, r.Cents)
	}
	// And 440 Hz reads sharp of A by about 32 cents.
	r = Map(440, 432)
	if r.MIDI != 69 || r.Cents < 31 || r.Cents > 33 {
		t.Fatalf("got midi=%d cents=%v", r.MIDI, r.Cents)
	}
}

func TestMapCentsSweep(t *testing.T) {
	// Frequencies detuned from A4 by a known cent offset map back to the
	// same offset and stay on A until the 50-cent boundary.
	for _, cents := range []float64{-49, -25, -1, 0, 1, 25, 49} {
		hz := float32(440 * math.Pow(2, cents/1200))
		r := Map(hz, 440)
		if r.MIDI != 69 {
			t.Fatalf("%+.0f cents: midi=%d, want 69", cents, r.MIDI)
		}
		if math.Abs(float64(r.Cents)-cents) > 0.01 {
			t.Fatalf("%+.0f cents: got %v", cents, r.Cents)
		}
	}
}

func TestMapCentsClamp(t *testing.T) {
	// Just under +50 cents stays on the note; the readout clamps at 49.99.
	hz := float32(440 * math.Pow(2, 49.999/1200))
	r := Map(hz, 440)
	if r.MIDI != 69 || r.Cents != 49.99 {
		t.Fatalf("got midi=%d cents=%v", r.MIDI, r.Cents)
	}
}

func TestMapHalfwayRoundsUp(t *testing.T) {
	// Past +50 cents the reading flips to the next note, close to -50 from it.
	hz := float32(440 * math.Pow(2, 50.01/1200))
	r := Map(hz, 440)
	if r.MIDI != 70 || r.Name() != "A#" {
		t.Fatalf("got midi=%d name=%q", r.MIDI, r.Name())
	}
	if r.Cents > -49.9 {
		t.Fatalf("cents=%v, want close to -50", r.Cents)
	}
}

func TestMapLowOctaves(t *testing.T) {
	// MIDI 0 is C-1; floor division keeps octaves consistent below it.
	r := Map(8.1758, 440)
	if r.MIDI != 0 || r.Name() != "C" || r.Octave != -1 {
		t.Fatalf("got midi=%d name=%q octave=%d", r.MIDI, r.Name(), r.Octave)
	}

	// One semitone lower: B-2, not B-1.
	r = Map(7.7169, 440)
	if r.MIDI != -1 || r.Name() != "B" || r.Octave != -2 {
		t.Fatalf("got midi=%d name=%q octave=%d", r.MIDI, r.Name(), r.Octave)
	}
}

func TestMapInvalidInput(t *testing.T) {
	for _, hz := range []float32{0, 0.5, -100, float32(math.NaN()), float32(math.Inf(1))} {
		r := Map(hz, 440)
		if r.Valid {
			t.Fatalf("hz=%v must be invalid", hz)
		}
		if r != (Result{}) {
			t.Fatalf("hz=%v: non-zero result %+v", hz, r)
		}
	}
}

func TestMapBadReferenceFallsBack(t *testing.T) {
	for _, ref := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(-1))} {
		r := Map(440, ref)
		if !r.Valid || r.MIDI != 69 {
			t.Fatalf("ref=%v: got %+v, want A4 against 440", ref, r)
		}
	}
}

func TestNoteName(t *testing.T) {
	if got := NoteName(0); got != "C" {
		t.Fatalf("NoteName(0)=%q", got)
	}
	if got := NoteName(-1); got != "B" {
		t.Fatalf("NoteName(-1)=%q", got)
	}
	if got := NoteName(21); got != "A" {
		t.Fatalf("NoteName(21)=%q", got)
	}
}

func TestInvalidResultName(t *testing.T) {
	if got := (Result{}).Name(); got != "" {
		t.Fatalf("invalid result name=%q", got)
	}
}
