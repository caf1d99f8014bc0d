package game

import (
	"sync"
	"time"
)

// frameStats records the last N field render times into a ring buffer so
// the HUD can show a smoothed cost.
type frameStats struct {
	buffer    []time.Duration
	nextIndex int
	count     int
	mu        sync.RWMutex
}

func newFrameStats(ringSize int) *frameStats {
	return &frameStats{
		buffer: make([]time.Duration, ringSize),
	}
}

func (s *frameStats) record(d time.Duration) {
	s.mu.Lock()
	s.buffer[s.nextIndex] = d
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.count < len(s.buffer) {
		s.count++
	}
	s.mu.Unlock()
}

// snapshot returns up to the last n durations, most recent last.
func (s *frameStats) snapshot(n int) []time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n = min(n, s.count)
	if n <= 0 {
		return nil
	}
	size := len(s.buffer)
	start := (s.nextIndex - n + size) % size
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = s.buffer[(start+i)%size]
	}
	return out
}

func (s *frameStats) mean() time.Duration {
	all := s.snapshot(len(s.buffer))
	if len(all) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range all {
		sum += d
	}
	return sum / time.Duration(len(all))
}
