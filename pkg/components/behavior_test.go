package components

import "testing"

func TestMotionOverrideCycle(t *testing.T) {
	o := OverrideAuto
	want := []MotionOverride{OverrideIdle, OverrideWalk, OverrideFly, OverrideAuto}
	for i, w := range want {
		o = o.Next()
		if o != w {
			t.Fatalf("step %d: got %v, want %v", i, o, w)
		}
	}
}

func TestMotionOverrideState(t *testing.T) {
	if _, ok := OverrideAuto.State(); ok {
		t.Error("auto should not lock a state")
	}
	if state, ok := OverrideFly.State(); !ok || state != MotionFly {
		t.Errorf("OverrideFly.State() = (%v, %v)", state, ok)
	}
	if OverrideWalk.String() != "walk" || OverrideAuto.String() != "auto" {
		t.Error("unexpected override names")
	}
}

func TestBehaviorMode(t *testing.T) {
	tests := []struct {
		b    BehaviorComponent
		want string
	}{
		{BehaviorComponent{}, "follow"},
		{BehaviorComponent{Chasing: true}, "chase"},
		{BehaviorComponent{Wandering: true, Chasing: true}, "wander"},
		{BehaviorComponent{Wandering: true, Carrying: true}, "carry"},
	}
	for _, tt := range tests {
		if got := tt.b.Mode(); got != tt.want {
			t.Errorf("Mode() = %q, want %q", got, tt.want)
		}
	}
}

func TestTimerComponent(t *testing.T) {
	timer := &TimerComponent{Name: "wander", TargetTime: 1}
	if timer.Tick(0.6) {
		t.Error("timer should not be ready after 0.6s")
	}
	if !timer.Tick(0.4) {
		t.Error("timer should be ready after 1.0s")
	}
	timer.Reset()
	if timer.IsReady || timer.CurrentTime != 0 {
		t.Error("Reset should clear the timer")
	}
}

func TestPositionIsOrigin(t *testing.T) {
	if !(&PositionComponent{}).IsOrigin() {
		t.Error("zero position should be origin")
	}
	if (&PositionComponent{X: 1}).IsOrigin() {
		t.Error("(1, 0) is not origin")
	}
}
