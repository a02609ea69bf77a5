// Package render drives the segmented LED matrix through the three tuner
// views, redrawing only what changed between polls to keep bus traffic down.
package render

import "tuner/fonts/font6x8"

// Mode selects the active tuner view.
type Mode uint8

const (
	ModeNumeric Mode = iota
	ModeBarGraph
	ModePiano

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeBarGraph:
		return "bar"
	case ModePiano:
		return "piano"
	default:
		return "invalid"
	}
}

// Valid reports whether m names one of the three views.
func (m Mode) Valid() bool { return m < modeCount }

// Unknown-value sentinels for the per-mode diff state. Any mode switch resets
// to these so the next draw is unconditional.
const (
	noCol     = -1
	noNote    = 0xFF
	noAlter   = 99
	noOctave  = 99
	noBarMask = 0xFFFF
	noCents   = 0x7FFF
)

type renderState struct {
	// piano
	col     int8
	noteIdx uint8
	alter   int8
	octave  int8
	// bar graph
	barMask uint16
	// numeric
	name    [4]byte
	nameLen int8
	cents   int16

	placeholder bool
}

func (s *renderState) reset() {
	s.col = noCol
	s.noteIdx = noNote
	s.alter = noAlter
	s.octave = noOctave
	s.barMask = noBarMask
	s.name = [4]byte{}
	s.nameLen = -1
	s.cents = noCents
	s.placeholder = false
}

// Renderer owns the framebuffer mirror and the per-mode diff state.
type Renderer struct {
	fb   *Framebuffer
	mode Mode
	st   renderState
}

// New returns a renderer in piano mode with an untouched framebuffer. Call
// SetMode (or Redraw) once the device is ready to establish the base image.
func New(bus Bus) *Renderer {
	r := &Renderer{fb: NewFramebuffer(bus), mode: ModePiano}
	r.st.reset()
	return r
}

// Framebuffer exposes the mirror for auxiliary text rendering (boot and menu
// screens). Callers must trigger a Redraw before tuner rendering resumes.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Mode returns the active view.
func (r *Renderer) Mode() Mode { return r.mode }

// SetMode switches the active view, forcing a full redraw and resetting all
// diff state.
func (r *Renderer) SetMode(m Mode) error {
	if !m.Valid() {
		m = ModePiano
	}
	r.mode = m
	return r.Redraw()
}

// Redraw repaints the active view's base image unconditionally.
func (r *Renderer) Redraw() error {
	r.st.reset()
	r.drawBase()
	return r.fb.Flush()
}

func (r *Renderer) drawBase() {
	if r.mode == ModePiano {
		r.fb.Load(&keyboardBase)
		return
	}
	r.fb.Clear()
}

// Render performs one complete pass for the active view. It is idempotent:
// unchanged inputs produce no bus writes (except immediately after a mode
// switch or redraw).
func (r *Renderer) Render(hz, refA4, minValid float32) error {
	// NaN compares false, so it lands on the placeholder path too.
	if !(hz >= minValid) {
		return r.renderPlaceholder()
	}
	if r.st.placeholder {
		// The placeholder overwrote the view; rebuild the base image.
		if err := r.Redraw(); err != nil {
			return err
		}
	}

	switch r.mode {
	case ModeBarGraph:
		return r.renderBarGraph(hz, refA4)
	case ModePiano:
		return r.renderPiano(hz, refA4)
	default:
		return r.renderNumeric(hz, refA4)
	}
}

// renderPlaceholder shows the fixed no-signal glyph sequence, drawn once per
// entry into the below-floor condition.
func (r *Renderer) renderPlaceholder() error {
	if r.st.placeholder {
		return nil
	}
	r.st.reset()
	r.st.placeholder = true
	r.fb.Clear()
	r.drawText(0, "-")
	return r.fb.Flush()
}

// drawText writes s into consecutive modules starting at the given module,
// one 6x8 glyph per module, left-aligned with a 2-pixel right gap.
func (r *Renderer) drawText(module int, s string) {
	for i := 0; i < len(s) && module+i < ModuleCount; i++ {
		base := (module + i) * ModuleBytes
		for row := 0; row < ModuleBytes; row++ {
			r.fb.Set(base+row, font6x8.Row(s[i], row)<<2)
		}
	}
}
