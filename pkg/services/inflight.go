package services

import (
	"errors"
	"sync"
	"time"
)

var ErrSubmissionInFlight = errors.New("submission already in flight")

type pendingSubmission struct {
	token     uint64
	expiresAt time.Time
}

// InFlightGuard remembers which visitor forms have a submission underway so
// the same form cannot be sent again until the first send resolves.
type InFlightGuard struct {
	pending map[string]pendingSubmission
	mu      sync.Mutex
	timeout time.Duration
	next    uint64
	now     func() time.Time
}

func NewInFlightGuard(timeout time.Duration) *InFlightGuard {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InFlightGuard{
		pending: make(map[string]pendingSubmission),
		timeout: timeout,
		now:     time.Now,
	}
}

// Acquire marks key as in flight. The returned release is idempotent and
// only clears the marker it created. A marker older than the timeout is
// treated as abandoned and replaced.
func (g *InFlightGuard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if p, exists := g.pending[key]; exists && now.Before(p.expiresAt) {
		return nil, ErrSubmissionInFlight
	}

	g.next++
	token := g.next
	g.pending[key] = pendingSubmission{token: token, expiresAt: now.Add(g.timeout)}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			if p, ok := g.pending[key]; ok && p.token == token {
				delete(g.pending, key)
			}
			g.mu.Unlock()
		})
	}, nil
}

// InFlight reports whether key currently holds an unexpired marker.
func (g *InFlightGuard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, exists := g.pending[key]
	return exists && g.now().Before(p.expiresAt)
}
