package tones

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Chime timing
const (
	ChimeDuration = 350 * time.Millisecond
	chimeAttack   = 8 * time.Millisecond
	baseFrequency = 220.0
)

// Major pentatonic steps in semitones; more rooms climb the scale
var pentatonic = []int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21, 24}

// ChimeFrequency returns the root pitch announcing a cave with the given room count
func ChimeFrequency(rooms int) float64 {
	step := rooms
	if step < 0 {
		step = 0
	}
	if step >= len(pentatonic) {
		step = len(pentatonic) - 1
	}
	return baseFrequency * math.Pow(2, float64(pentatonic[step])/12)
}

// Chime builds a short bell: the root plus a softer fifth above, both decaying
func Chime(rooms int, rate beep.SampleRate) (beep.Streamer, error) {
	freq := ChimeFrequency(rooms)
	total := rate.N(ChimeDuration)

	root, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	fifth, err := generators.SineTone(rate, freq*1.5)
	if err != nil {
		return nil, err
	}

	attack := rate.N(chimeAttack)
	mixed := beep.Mix(
		volume(newDecay(beep.Take(total, root), total, attack), 0.6),
		volume(newDecay(beep.Take(total, fifth), total, attack), 0.25),
	)
	return beep.Take(total, mixed), nil
}

// decay ramps up over the attack and then falls off exponentially
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newDecay(s beep.Streamer, total, attack int) *decay {
	return &decay{streamer: s, attack: attack, total: total}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-5 * float64(d.position) / float64(d.total))
		if d.position < d.attack {
			gain *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// volume scales a stream linearly; 0 silences it
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// RenderPCM drains up to maxSamples frames of s into signed 16-bit
// little-endian stereo
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, maxSamples*4)
	buf := make([][2]float64, 512)
	for written := 0; written < maxSamples; {
		chunk := buf
		if remaining := maxSamples - written; remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			for _, v := range frame {
				sample := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = append(out, byte(sample), byte(uint16(sample)>>8))
			}
		}
		written += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
