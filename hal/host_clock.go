//go:build !tinygo

package hal

import "time"

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}
