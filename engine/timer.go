package engine

import "time"

// RepeatingTimer runs fn every interval of accumulated update time
// With FireImmediately the first run happens on the first Advance, as a run-then-wait sequence does
type RepeatingTimer struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	primed   bool
	stopped  bool
}

// NewRepeatingTimer creates a timer; fireImmediately runs fn on the first Advance
func NewRepeatingTimer(interval time.Duration, fireImmediately bool, fn func()) *RepeatingTimer {
	return &RepeatingTimer{interval: interval, fn: fn, primed: fireImmediately}
}

// Advance adds dt and fires once per whole interval elapsed
// Non-positive intervals fire at most once per Advance
func (t *RepeatingTimer) Advance(dt time.Duration) {
	if t.stopped {
		return
	}
	fired := false
	if t.primed {
		// First run belongs to time zero, dt counts toward the next one
		t.primed = false
		t.fn()
		fired = true
	}
	if t.stopped {
		return
	}
	t.elapsed += dt

	if t.interval <= 0 {
		if !fired {
			t.fn()
		}
		return
	}
	for t.elapsed >= t.interval && !t.stopped {
		t.elapsed -= t.interval
		t.fn()
	}
}

// Stop prevents further runs, including ones pending in the current Advance
func (t *RepeatingTimer) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop was called
func (t *RepeatingTimer) Stopped() bool {
	return t.stopped
}
