package tones

import (
	"encoding/binary"
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func TestChimeFrequency(t *testing.T) {
	tests := []struct {
		rooms int
		want  float64
	}{
		{-3, 220},
		{0, 220},
		{3, 220 * 1.4983070768766815}, // a fifth up
		{5, 440},
		{100, 880},
	}
	for _, tt := range tests {
		got := ChimeFrequency(tt.rooms)
		if got < tt.want-0.01 || got > tt.want+0.01 {
			t.Errorf("Expected %d rooms to give %.2f Hz, got %.2f", tt.rooms, tt.want, got)
		}
	}
}

func TestChimeLengthAndShape(t *testing.T) {
	s, err := Chime(4, testRate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	total := testRate.N(ChimeDuration)
	pcm := RenderPCM(s, total*2)

	if len(pcm) != total*4 {
		t.Fatalf("Expected %d bytes for %d frames, got %d", total*4, total, len(pcm))
	}

	sample := func(frame int) int {
		v := int16(binary.LittleEndian.Uint16(pcm[frame*4:]))
		if v < 0 {
			return -int(v)
		}
		return int(v)
	}
	if sample(0) != 0 {
		t.Errorf("Expected the attack to start from silence, got %d", sample(0))
	}

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			if v := sample(i); v > m {
				m = v
			}
		}
		return m
	}
	early := peak(total/20, total/5)
	late := peak(total*4/5, total)
	if early == 0 {
		t.Fatalf("Expected an audible chime")
	}
	if late >= early {
		t.Errorf("Expected the chime to decay, early peak %d, late peak %d", early, late)
	}
}

func TestRenderPCMClampsAndStops(t *testing.T) {
	loud := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{3, -3}
		}
		return len(samples), true
	})

	pcm := RenderPCM(loud, 10)
	if len(pcm) != 40 {
		t.Fatalf("Expected 40 bytes, got %d", len(pcm))
	}
	left := int16(binary.LittleEndian.Uint16(pcm[0:]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:]))
	if left != 32767 || right != -32767 {
		t.Errorf("Expected clamped samples 32767/-32767, got %d/%d", left, right)
	}

	if got := RenderPCM(beep.Silence(3), 10); len(got) != 12 {
		t.Errorf("Expected a drained stream to stop after 3 frames, got %d bytes", len(got))
	}
}
