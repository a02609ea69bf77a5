//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

const hostCaptureTickRate = 2_000_000

// hostCapture simulates the edge-capture timer: a free-running counter at
// the capture tick rate, sampled once per period of the simulated signal.
// Counter overflows are reported to the handler just like the hardware
// overflow interrupt.
type hostCapture struct {
	clock *hostClock

	mu      sync.Mutex
	hz      float64
	enabled bool

	handler CaptureHandler
	started bool
}

func newHostCapture(clock *hostClock) *hostCapture {
	return &hostCapture{clock: clock, hz: 440, enabled: true}
}

func (c *hostCapture) TickRate() uint32 { return hostCaptureTickRate }

// SetFrequency changes the simulated signal. Values outside the audible
// capture band are still delivered so out-of-band rejection can be observed.
func (c *hostCapture) SetFrequency(hz float64) {
	c.mu.Lock()
	if hz < 1 {
		hz = 1
	}
	if hz > 100_000 {
		hz = 100_000
	}
	c.hz = hz
	c.mu.Unlock()
}

func (c *hostCapture) Frequency() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hz
}

// SetEnabled gates edge delivery. Disabled means no captures at all, which
// the engine reports as signal loss after its timeout.
func (c *hostCapture) SetEnabled(on bool) {
	c.mu.Lock()
	c.enabled = on
	c.mu.Unlock()
}

func (c *hostCapture) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *hostCapture) Start(h CaptureHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return ErrNotImplemented
	}
	c.handler = h
	c.started = true
	go c.run()
	return nil
}

func (c *hostCapture) run() {
	start := time.Now()
	var lastEpoch uint64
	for {
		c.mu.Lock()
		hz := c.hz
		enabled := c.enabled
		h := c.handler
		c.mu.Unlock()

		time.Sleep(time.Duration(float64(time.Second) / hz))

		ticks := uint64(time.Since(start)) * hostCaptureTickRate / uint64(time.Second)
		epoch := ticks >> 16
		if !enabled {
			lastEpoch = epoch
			continue
		}
		for lastEpoch < epoch {
			lastEpoch++
			h.Overflow()
		}
		h.Capture(uint16(ticks), false)
	}
}
