// Package freq measures the period of a pitch signal from a hardware
// edge-capture timer and turns it into a denoised frequency estimate.
package freq

import (
	"math"

	"tuner/hal"
)

// Firmware defaults: a 16 MHz core clock with a /8 prescaler gives a 2 MHz
// capture tick, accurate from roughly 30 Hz to 10 kHz.
const (
	DefaultTickRate  = 2_000_000
	DefaultMinHz     = 30.0
	DefaultMaxHz     = 10_000.0
	DefaultTimeoutMS = 120
	DefaultAlpha     = 0.25
)

// Config bounds the acquisition engine. Zero fields take the defaults above.
type Config struct {
	TickRate  uint32  // capture timer ticks per second
	MinHz     float32 // lower edge of the plausible signal band
	MaxHz     float32 // upper edge of the plausible signal band
	TimeoutMS uint32  // silence window before the no-signal sentinel
	Alpha     float32 // EMA smoothing coefficient in (0, 1]
}

func (c Config) withDefaults() Config {
	if c.TickRate == 0 {
		c.TickRate = DefaultTickRate
	}
	if c.MinHz <= 0 {
		c.MinHz = DefaultMinHz
	}
	if c.MaxHz <= 0 {
		c.MaxHz = DefaultMaxHz
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = DefaultTimeoutMS
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		c.Alpha = DefaultAlpha
	}
	return c
}

// Engine converts rising-edge timestamps into a glitch-rejecting, smoothed
// frequency estimate. It implements hal.CaptureHandler.
//
// Capture, Overflow and CaptureExtended run in interrupt context and share
// nothing with the foreground except the capture slot. Read and Reset belong
// to the single foreground loop.
type Engine struct {
	cfg     Config
	tickMin uint64
	tickMax uint64

	// Handler-side state. Both handlers run at the same interrupt priority,
	// so the epoch counter needs no further protection.
	epoch uint32
	slot  captureSlot

	// Foreground-side state.
	clock       hal.Clock
	prev        uint64
	havePrev    bool
	raw         float32
	smoothed    float32
	haveEMA     bool
	lastValidMS uint32
}

// New returns an engine primed at the current clock time.
func New(cfg Config, clock hal.Clock) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:     cfg,
		tickMin: uint64(float32(cfg.TickRate) / cfg.MaxHz),
		tickMax: uint64(float32(cfg.TickRate) / cfg.MinHz),
		clock:   clock,
	}
	e.lastValidMS = clock.Millis()
	return e
}

// TickRate returns the configured capture tick rate.
func (e *Engine) TickRate() uint32 { return e.cfg.TickRate }

// Capture latches a raw 16-bit timer value into an extended timestamp.
//
// If a wrap is pending but not yet serviced and the latched value lies in the
// lower half of the timer range, the edge happened after the wrap and is
// attributed to the next epoch.
func (e *Engine) Capture(raw uint16, wrapPending bool) {
	epoch := e.epoch
	if wrapPending && raw < 0x8000 {
		epoch++
	}
	e.slot.put(uint64(epoch)<<16 | uint64(raw))
}

// Overflow extends the 16-bit timer by counting wraps.
func (e *Engine) Overflow() {
	e.epoch++
}

// CaptureExtended stores an already-extended timestamp directly.
func (e *Engine) CaptureExtended(ticks uint64) {
	e.slot.put(ticks)
}

// Read consumes at most one pending capture and returns the smoothed
// frequency estimate. ok is false while no signal has been measured yet or
// after the configured silence window has elapsed.
func (e *Engine) Read() (hz float32, ok bool) {
	now := e.clock.Millis()

	if ts, have := e.slot.take(); have {
		if !e.havePrev {
			// First capture since reset: prime the baseline only.
			e.prev = ts
			e.havePrev = true
		} else {
			// Unsigned subtraction stays correct across timer wraps.
			delta := ts - e.prev
			e.prev = ts

			if delta >= e.tickMin && delta <= e.tickMax {
				f := float32(e.cfg.TickRate) / float32(delta)
				if !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f)) {
					e.raw = f
					if !e.haveEMA {
						// Start from the first valid reading to avoid
						// convergence lag.
						e.smoothed = f
						e.haveEMA = true
					} else {
						e.smoothed += (f - e.smoothed) * e.cfg.Alpha
					}
					e.lastValidMS = now
				}
			}
			// Out-of-band deltas are glitches; drop them silently.
		}
	}

	if now-e.lastValidMS > e.cfg.TimeoutMS {
		return 0, false
	}
	if !e.haveEMA {
		return 0, false
	}
	return e.smoothed, true
}

// RawHz returns the last accepted unsmoothed reading, for telemetry.
func (e *Engine) RawHz() float32 { return e.raw }

// Reset discards all acquisition state and re-arms the silence window.
func (e *Engine) Reset() {
	e.slot.clear()
	e.epoch = 0
	e.prev = 0
	e.havePrev = false
	e.raw = 0
	e.smoothed = 0
	e.haveEMA = false
	e.lastValidMS = e.clock.Millis()
}
