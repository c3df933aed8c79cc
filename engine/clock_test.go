package engine

import (
	"testing"
	"time"
)

func TestFrameClockTick(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Tick = %v, want 16ms", dt)
	}

	// Nothing elapsed
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("second Tick = %v, want 0", dt)
	}

	// Stalls are clamped
	mock.Advance(5 * time.Second)
	if dt := clock.Tick(); dt != 100*time.Millisecond {
		t.Errorf("stalled Tick = %v, want clamp to 100ms", dt)
	}
}

func TestFrameClockReset(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 0)

	mock.Advance(2 * time.Second)
	clock.Reset()
	mock.Advance(10 * time.Millisecond)

	if dt := clock.Tick(); dt != 10*time.Millisecond {
		t.Errorf("Tick after Reset = %v, want 10ms", dt)
	}
}

func TestFrameClockUnboundedWhenMaxStepZero(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 0)

	mock.Advance(3 * time.Second)
	if dt := clock.Tick(); dt != 3*time.Second {
		t.Errorf("Tick = %v, want 3s", dt)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
