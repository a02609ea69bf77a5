//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

// hostSerial models the link to the instrument's main board. Bytes the
// window's keyboard injects appear on the read side; writes are logged since
// there is no main board to receive them.
type hostSerial struct {
	logger *hostLogger

	mu sync.Mutex
	rx []byte
}

func newHostSerial(logger *hostLogger) *hostSerial {
	return &hostSerial{logger: logger}
}

func (s *hostSerial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(p, s.rx)
	s.rx = s.rx[n:]
	return n, nil
}

func (s *hostSerial) Write(p []byte) (int, error) {
	for _, b := range p {
		s.logger.WriteLineString(fmt.Sprintf("serial tx: 0x%02X", b))
	}
	return len(p), nil
}

// inject queues bytes on the read side.
func (s *hostSerial) inject(p ...byte) {
	s.mu.Lock()
	s.rx = append(s.rx, p...)
	s.mu.Unlock()
}
