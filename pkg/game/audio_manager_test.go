package game

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeSqueak(t *testing.T) {
	pcm := SynthesizeSqueak(SampleRate)

	// 0.09 秒 × 48000 采样 × 2 声道 × 2 字节
	if want := 4320 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}

	peak := 0
	for i := 0; i+3 < len(pcm); i += 4 {
		left := int16(binary.LittleEndian.Uint16(pcm[i:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if left != right {
			t.Fatalf("sample %d: left %d != right %d", i/4, left, right)
		}
		v := int(left)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak < 8000 || peak > 16384 {
		t.Errorf("peak amplitude = %d, want within (8000, 16384]", peak)
	}

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Errorf("first sample = %d, want 0 (envelope starts silent)", first)
	}
}

func TestPlaySqueakWithoutContext(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.PlaySqueak() {
		t.Error("PlaySqueak should be a no-op without an audio context")
	}
}
