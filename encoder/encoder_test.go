package encoder

import (
	"testing"

	"assetgen/synth"
)

func TestToPCMScaling(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1.0, 32767},
		{-1.0, -32767},
		{0.5, 16384},
		{-0.5, -16384},
	}
	for _, tt := range tests {
		got := ToPCM([]float64{tt.in})
		if got[0] != tt.want {
			t.Errorf("ToPCM(%v) = %d, want %d", tt.in, got[0], tt.want)
		}
	}
}

func TestToPCMSaturates(t *testing.T) {
	// Overloud samples must clip, not wrap.
	got := ToPCM([]float64{1.5, -1.5, 100, -100})
	want := []int16{32767, -32767, 32767, -32767}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBytesLittleEndian(t *testing.T) {
	buf := Bytes([]int16{256, -2})
	if len(buf) != 4 {
		t.Fatalf("len = %d, want 4", len(buf))
	}
	// 256 = 0x0100, -2 = 0xfffe
	want := []byte{0x00, 0x01, 0xfe, 0xff}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d = %02x, want %02x", i, buf[i], want[i])
		}
	}
}

func TestSampleRateMatchesSynth(t *testing.T) {
	if SampleRate != synth.SampleRate {
		t.Fatalf("SampleRate = %d, synth = %d", SampleRate, synth.SampleRate)
	}
	if SampleRate != 48000 || Channels != 1 || BitsPerSample != 16 {
		t.Fatalf("stream constants changed: %d/%d/%d", SampleRate, Channels, BitsPerSample)
	}
}
