package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays effects without blocking the game loop
type Player interface {
	Play(Effect)
	Close()
}

// Nop is the player used when sound is off
type Nop struct{}

func (Nop) Play(Effect) {}
func (Nop) Close()      {}

// Speaker plays effects on the default audio device
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(Streamer(e, sampleRate))
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
