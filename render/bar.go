package render

import (
	"math"

	"tuner/pitch"
)

// Bar graph geometry: an 11-bit field with the center tick at bit 5, one bit
// per 10 cents. The high byte lands in module 3, the low byte in module 4,
// both doubled across rows 3 and 4, with fixed border ticks around the low
// half.
const (
	barCenterBit = 5
	barHiModule  = 3
	barLoModule  = 4
	barBorder    = 0x20
)

// barMask converts a cents deviation to the symmetric drift bar bit mask.
func barMask(cents float32) uint16 {
	d := int(math.Round(float64(cents))) / 10
	mask := uint16(1) << barCenterBit
	if d > 0 {
		mask |= ((1 << d) - 1) << (barCenterBit + 1)
	} else if d < 0 {
		mask |= ((1 << -d) - 1) << (barCenterBit + d)
	}
	return mask
}

// renderBarGraph shows the note name plus the drift bar.
func (r *Renderer) renderBarGraph(hz, refA4 float32) error {
	res := pitch.Map(hz, refA4)
	if !res.Valid {
		return r.renderPlaceholder()
	}

	var name [4]byte
	n := composeName(res, &name)
	mask := barMask(res.Cents)

	if int8(n) == r.st.nameLen && name == r.st.name && mask == r.st.barMask {
		return nil
	}
	r.st.name = name
	r.st.nameLen = int8(n)
	r.st.barMask = mask

	r.fb.Clear()
	if n > barHiModule {
		n = barHiModule
	}
	r.drawText(0, string(name[:n]))

	hi := barHiModule * ModuleBytes
	r.fb.Set(hi+3, byte(mask>>8))
	r.fb.Set(hi+4, byte(mask>>8))

	lo := barLoModule * ModuleBytes
	for row := 0; row < ModuleBytes; row++ {
		switch row {
		case 3, 4:
			r.fb.Set(lo+row, byte(mask))
		default:
			r.fb.Set(lo+row, barBorder)
		}
	}
	return r.fb.Flush()
}
