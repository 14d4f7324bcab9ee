package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect names a game event that has a sound
type Effect int

const (
	EffectEat Effect = iota
	EffectStone
	EffectGameOver
)

func (e Effect) String() string {
	switch e {
	case EffectEat:
		return "eat"
	case EffectStone:
		return "stone"
	case EffectGameOver:
		return "game over"
	}
	return "unknown"
}

// tone is a square wave that fades out linearly over its length
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(duration),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}

		val := 0.5
		if t.phase >= 0.5 {
			val = -0.5
		}
		val *= 1 - float64(t.position)/float64(t.length)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer builds the sound for an effect
func Streamer(e Effect, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectEat:
		s = beep.Seq(
			newTone(880, 50*time.Millisecond, rate),
			newTone(1320, 70*time.Millisecond, rate),
		)
	case EffectStone:
		s = newTone(196, 150*time.Millisecond, rate)
	case EffectGameOver:
		s = beep.Seq(
			newTone(440, 150*time.Millisecond, rate),
			newTone(330, 150*time.Millisecond, rate),
			newTone(220, 300*time.Millisecond, rate),
		)
	default:
		return beep.Silence(0)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: -1}
}
