package components

import (
	"math"
	"testing"
)

func TestMotionComponentFirstRecordHasNoDisplacement(t *testing.T) {
	m := NewMotionComponent(4)
	m.Record(100, 50)

	if m.LastDX != 0 || m.LastDY != 0 {
		t.Errorf("first record should not move, got (%v, %v)", m.LastDX, m.LastDY)
	}
	if m.MeanSpeed() != 0 {
		t.Errorf("MeanSpeed = %v, want 0", m.MeanSpeed())
	}
}

func TestMotionComponentMeanSpeedWindow(t *testing.T) {
	m := NewMotionComponent(2)
	m.Record(0, 0)
	m.Record(3, 4) // 5
	if got := m.MeanSpeed(); got != 2.5 {
		t.Errorf("MeanSpeed = %v, want 2.5 (samples 0 and 5)", got)
	}

	m.Record(3, 5) // 1
	if got := m.MeanSpeed(); got != 3 {
		t.Errorf("MeanSpeed = %v, want 3 (samples 5 and 1)", got)
	}

	m.Record(3, 5) // 0
	if got := m.MeanSpeed(); got != 0.5 {
		t.Errorf("MeanSpeed = %v, want 0.5 (samples 1 and 0)", got)
	}

	if math.Abs(m.Distance-6) > 1e-9 {
		t.Errorf("Distance = %v, want 6", m.Distance)
	}
	if m.LastDX != 0 || m.LastDY != 0 {
		t.Errorf("last displacement = (%v, %v), want (0, 0)", m.LastDX, m.LastDY)
	}
}

func TestNewMotionComponentMinimumWindow(t *testing.T) {
	m := NewMotionComponent(0)
	if len(m.Samples) != 1 {
		t.Errorf("window should be clamped to 1, got %d", len(m.Samples))
	}
}

func TestMotionStateString(t *testing.T) {
	tests := map[MotionState]string{
		MotionIdle:     "idle",
		MotionWalk:     "walk",
		MotionFly:      "fly",
		MotionState(9): "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
