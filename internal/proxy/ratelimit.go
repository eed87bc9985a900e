package proxy

import (
	"sync"
	"time"
)

// slidingWindow is a per-client sliding-window rate limiter. Each Allow
// call prunes timestamps older than the window before counting.
type slidingWindow struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string][]time.Time
	now     func() time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		limit:   limit,
		window:  window,
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records a request for the client and reports whether it fits
// within the window.
func (s *slidingWindow) Allow(client string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	kept := s.clients[client][:0]
	for _, t := range s.clients[client] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= s.limit {
		s.clients[client] = kept
		return false
	}

	s.clients[client] = append(kept, now)
	return true
}
