package services

import (
	"context"
	"sync"
)

// Task is one in-progress submission. Its result is set exactly once.
type Task struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) resolve(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done is closed when the submission resolves.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err is the submission result; only meaningful after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the task resolves or ctx ends. When ctx ends first the
// submission keeps going; only the caller stops waiting.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
