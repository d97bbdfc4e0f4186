package sound

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-caves/ecs"
	"ebiten-caves/sound/tones"
	"ebiten-caves/systems"
)

const sampleRate = 44100

// AudioSystem plays a chime whenever a new cave is generated. The pitch climbs
// with the number of rooms.
type AudioSystem struct {
	audioContext *audio.Context
	player       *audio.Player
	volume       float64
	muted        bool
	pending      int // Room count of a cave waiting to be announced, -1 for none
}

// NewAudioSystem creates an audio system and subscribes it to generated caves
func NewAudioSystem(world *ecs.World) *AudioSystem {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	s := &AudioSystem{
		audioContext: ctx,
		volume:       0.5,
		pending:      -1,
	}
	world.Subscribe(systems.EventCaveGenerated, func(e ecs.Event) {
		if ev := e.(systems.CaveGeneratedEvent); ev.Cave != nil {
			s.pending = len(ev.Cave.Rooms)
		}
	})
	return s
}

// Update plays the chime for the latest cave, once per frame at most
func (s *AudioSystem) Update(world *ecs.World, dt float64) {
	if s.pending < 0 {
		return
	}
	rooms := s.pending
	s.pending = -1
	if s.muted {
		return
	}
	if err := s.play(rooms); err != nil {
		log.Printf("Chime failed: %v", err)
	}
}

func (s *AudioSystem) play(rooms int) error {
	rate := beep.SampleRate(sampleRate)
	chime, err := tones.Chime(rooms, rate)
	if err != nil {
		return err
	}
	pcm := tones.RenderPCM(chime, rate.N(tones.ChimeDuration))

	if s.player != nil {
		_ = s.player.Close()
	}
	s.player = s.audioContext.NewPlayerFromBytes(pcm)
	s.player.SetVolume(s.volume)
	s.player.Play()
	return nil
}

// ToggleMute silences or restores the chime and reports whether it is now muted
func (s *AudioSystem) ToggleMute() bool {
	s.muted = !s.muted
	if s.muted && s.player != nil {
		s.player.Pause()
	}
	return s.muted
}

// SetVolume sets the chime volume (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
	if s.player != nil {
		s.player.SetVolume(volume)
	}
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() {
	if s.player != nil {
		_ = s.player.Close()
		s.player = nil
	}
}
