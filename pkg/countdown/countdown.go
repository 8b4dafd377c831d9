// Package countdown breaks the time left until a fixed launch instant into
// days, hours, minutes and seconds.
package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// State is the remaining interval, floor-divided into calendar-free units.
type State struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TotalSeconds folds the state back into whole seconds.
func (s State) TotalSeconds() int64 {
	return int64(s.Days)*86400 + int64(s.Hours)*3600 + int64(s.Minutes)*60 + int64(s.Seconds)
}

// IsZero reports whether every field is zero.
func (s State) IsZero() bool {
	return s == State{}
}

// String renders DD:HH:MM:SS.
func (s State) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", s.Days, s.Hours, s.Minutes, s.Seconds)
}

// Compute returns the breakdown of target-now. Once now reaches target the
// state is zero and launched is true.
func Compute(target, now time.Time) (State, bool) {
	distance := target.Sub(now)
	if distance <= 0 {
		return State{}, true
	}

	total := int64(distance / time.Second)
	return State{
		Days:    int(total / 86400),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}, false
}

// Clock abstracts wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real wall clock.
var SystemClock Clock = systemClock{}

// Snapshot is one measurement taken by a Timer.
type Snapshot struct {
	State      State     `json:"state"`
	Display    string    `json:"display"`
	Launched   bool      `json:"launched"`
	Target     time.Time `json:"target"`
	MeasuredAt time.Time `json:"measured_at"`
}

// Timer is the countdown owned by a single view. Its launched flag only ever
// moves from false to true.
type Timer struct {
	target time.Time
	clock  Clock

	mu       sync.Mutex
	launched bool
}

func NewTimer(target time.Time, clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	return &Timer{target: target, clock: clock}
}

func (t *Timer) Target() time.Time {
	return t.target
}

// Launched reports whether any measurement so far reached the target.
func (t *Timer) Launched() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.launched
}

// Measure takes one measurement against the clock.
func (t *Timer) Measure() Snapshot {
	now := t.clock.Now()
	state, launched := Compute(t.target, now)

	t.mu.Lock()
	if launched {
		t.launched = true
	}
	launched = t.launched
	t.mu.Unlock()

	// a launched view stays launched even if the clock steps backwards
	if launched {
		state = State{}
	}

	return Snapshot{
		State:      state,
		Display:    state.String(),
		Launched:   launched,
		Target:     t.target,
		MeasuredAt: now,
	}
}

// Run measures immediately and then on every interval tick, handing each
// snapshot to fn, until ctx is done. fn is never called after Run returns.
func (t *Timer) Run(ctx context.Context, interval time.Duration, fn func(Snapshot)) {
	if interval <= 0 {
		interval = time.Second
	}
	if ctx.Err() != nil {
		return
	}
	fn(t.Measure())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fn(t.Measure())
		}
	}
}
