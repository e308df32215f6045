package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestEaseInQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.25},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInQuad(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseInQuad(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 100, 0, 0},
		{0, 100, 1, 100},
		{0, 100, 0.25, 25},
		{-10, 10, 0.5, 0},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.4) != 0.4 {
		t.Error("Clamp01 should clamp into [0, 1]")
	}
}

func TestSmoothingFactor(t *testing.T) {
	if got := SmoothingFactor(0.02, 1); math.Abs(got-0.02) > epsilon {
		t.Errorf("one tick should equal perTick, got %v", got)
	}

	// 两帧各走 2% 等价于一次性走 1-(0.98)^2
	want := 1 - 0.98*0.98
	if got := SmoothingFactor(0.02, 2); math.Abs(got-want) > epsilon {
		t.Errorf("SmoothingFactor(0.02, 2) = %v, want %v", got, want)
	}

	if got := SmoothingFactor(1, 0.5); got != 1 {
		t.Errorf("perTick=1 should always arrive, got %v", got)
	}
}
