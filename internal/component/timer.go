package component

// Timer is a repeating interval timer driven by accumulated frame time.
type Timer struct {
	Duration float64
	Elapsed  float64
	finished bool
}

// NewTimer returns a repeating timer of the given duration in seconds.
func NewTimer(duration float64) *Timer {
	return &Timer{Duration: duration}
}

// Tick advances the timer by dt. When the interval completes the timer
// wraps around and Finished reports true until the next Tick.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
	t.finished = false
	if t.Duration <= 0 {
		t.finished = true
		t.Elapsed = 0
		return
	}
	if t.Elapsed >= t.Duration {
		t.finished = true
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
	}
}

// Finished reports whether the last Tick completed an interval.
func (t *Timer) Finished() bool {
	return t.finished
}
