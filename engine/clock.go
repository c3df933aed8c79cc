package engine

import "time"

// TimeProvider abstracts wall-clock reads so real-time pacing can be tested
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts successive wall-clock reads into bounded frame deltas
// A stalled frame (terminal suspended, debugger) advances at most MaxStep
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxStep  time.Duration
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(provider TimeProvider, maxStep time.Duration) *FrameClock {
	return &FrameClock{provider: provider, last: provider.Now(), maxStep: maxStep}
}

// Tick returns time since the previous Tick, clamped to [0, maxStep]
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Reset discards time accumulated since the last Tick, used when resuming from pause
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}

// Since returns elapsed wall time from t
func (c *FrameClock) Since(t time.Time) time.Duration {
	return c.provider.Now().Sub(t)
}

// Now returns the provider's current time
func (c *FrameClock) Now() time.Time {
	return c.provider.Now()
}
