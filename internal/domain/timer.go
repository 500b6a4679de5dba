package domain

import "fmt"

// Timer holds the countdown state for a single session. Elapsed is a
// tick counter, not a wall-clock measurement: the run loop advances it
// once per poll cycle.
type Timer struct {
	Duration int // total session length in seconds
	Elapsed  int // seconds counted so far
}

// NewTimer creates a timer for a session of the given length in seconds.
func NewTimer(duration int) *Timer {
	return &Timer{Duration: duration}
}

// Tick advances the timer by one second. There is no internal clamp;
// callers stop ticking once Done reports true.
func (t *Timer) Tick() {
	t.Elapsed++
}

// Done reports whether the session has run its full duration.
func (t *Timer) Done() bool {
	return t.Elapsed >= t.Duration
}

// Progress returns the completion percentage in [0, 100].
func (t *Timer) Progress() float64 {
	return float64(t.Elapsed) / float64(t.Duration) * 100
}

// FormatRemaining returns the remaining time as zero-padded MM:SS.
// Only meaningful while Elapsed <= Duration.
func (t *Timer) FormatRemaining() string {
	remaining := t.Duration - t.Elapsed
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
