package render

import (
	"math"

	"tuner/fonts/nibbledigits"
	"tuner/pitch"
)

// renderNumeric shows the note name and a signed two-digit cents value.
//
// Layout: the name text ("A 4", "C#3", ...) from module 0, then one module
// with the sign glyph and one with the tens/units digits packed into nibbles.
// Modules past the fifth are dropped (only reachable for negative octaves).
func (r *Renderer) renderNumeric(hz, refA4 float32) error {
	res := pitch.Map(hz, refA4)
	if !res.Valid {
		return r.renderPlaceholder()
	}

	var name [4]byte
	n := composeName(res, &name)
	cents := int16(math.Round(float64(res.Cents)))

	if int8(n) == r.st.nameLen && name == r.st.name && cents == r.st.cents {
		return nil
	}
	r.st.name = name
	r.st.nameLen = int8(n)
	r.st.cents = cents

	r.fb.Clear()
	r.drawText(0, string(name[:n]))
	r.drawCents(n, cents)
	return r.fb.Flush()
}

// drawCents writes the sign and digit modules for a rounded cents value
// starting at the given module.
func (r *Renderer) drawCents(module int, cents int16) {
	sign := nibbledigits.Plus
	if cents < 0 {
		sign = nibbledigits.Minus
		cents = -cents
	}
	tens := int(cents/10) % 10
	units := int(cents % 10)

	writeGlyph := func(module int, rows [nibbledigits.Height]byte, shift uint, or [nibbledigits.Height]byte) {
		if module >= ModuleCount {
			return
		}
		base := module * ModuleBytes
		for row := 0; row < nibbledigits.Height; row++ {
			r.fb.Set(base+row, rows[row]<<shift|or[row])
		}
	}

	writeGlyph(module, nibbledigits.Rows(sign), 0, [nibbledigits.Height]byte{})
	writeGlyph(module+1, nibbledigits.Rows(tens), 4, nibbledigits.Rows(units))
}

// composeName fills buf with the note letter, optional sharp, and octave of
// res, returning the length. The octave covers -1..10 ("A 4", "C#-1").
func composeName(res pitch.Result, buf *[4]byte) int {
	name := res.Name()
	buf[0] = name[0]
	if len(name) > 1 {
		buf[1] = name[1]
	} else {
		buf[1] = ' '
	}

	n := 2
	o := res.Octave
	if o < 0 {
		buf[n] = '-'
		n++
		o = -o
	}
	if o >= 10 {
		if n < len(buf) {
			buf[n] = '1'
			n++
		}
		o -= 10
	}
	if n < len(buf) {
		buf[n] = byte('0' + o)
		n++
	}
	return n
}
