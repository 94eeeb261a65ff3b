package internal

import "time"

// Task is a handle to a scheduled callback. It exists so the simulated
// generation delay can later be replaced by a real asynchronous call
// without redesigning the engine's state machine.
type Task struct {
	timer *time.Timer
}

// Schedule runs fn once after d and returns a cancellable handle.
func Schedule(d time.Duration, fn func()) *Task {
	return &Task{timer: time.AfterFunc(d, fn)}
}

// Cancel stops the task if it has not fired yet and reports whether it
// was still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	return t.timer.Stop()
}
