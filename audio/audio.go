// Package audio plays short feedback blips for map events. The engine
// runs fine without a speaker; Init failure just mutes everything.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundType identifies a feedback blip.
type SoundType int

const (
	SoundMapOpen  SoundType = iota // map view restored
	SoundMapClose                  // map view saved away
	SoundEdge                      // pan clamped at the level boundary
	SoundZoom                      // scale change applied
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker. The zero Player is muted.
type Player struct {
	ready bool
}

// Init opens the speaker with a 100ms buffer. Returns the error for
// logging; the Player stays usable (silent) on failure.
func (p *Player) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Play queues the blip without blocking the tick loop.
func (p *Player) Play(s SoundType) {
	if !p.ready {
		return
	}
	speaker.Play(effect(s))
}

// effect builds the streamer graph for one blip.
func effect(s SoundType) beep.Streamer {
	switch s {
	case SoundMapOpen:
		return chirp(660, 880, 90*time.Millisecond)
	case SoundMapClose:
		return chirp(880, 660, 90*time.Millisecond)
	case SoundEdge:
		return tone(110, 60*time.Millisecond, 0.5)
	case SoundZoom:
		return tone(1320, 40*time.Millisecond, 0.3)
	default:
		return nil
	}
}

// tone is a sine burst with a linear attack/release envelope.
func tone(freq float64, duration time.Duration, vol float64) beep.Streamer {
	n := sampleRate.N(duration)
	osc := &oscillator{freq: freq, total: n}
	return &effects.Volume{
		Streamer: osc,
		Base:     2,
		Volume:   math.Log2(vol),
	}
}

// chirp plays two short notes in sequence.
func chirp(f1, f2 float64, duration time.Duration) beep.Streamer {
	return beep.Seq(
		tone(f1, duration/2, 0.4),
		tone(f2, duration/2, 0.4),
	)
}

// oscillator streams an enveloped sine wave for a fixed sample count.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	total    int
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	const edge = 64 // attack/release length in samples

	for i := range samples {
		if o.position >= o.total {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)

		// Linear ramp at both ends to avoid clicks.
		if o.position < edge {
			val *= float64(o.position) / edge
		}
		if rem := o.total - o.position; rem < edge {
			val *= float64(rem) / edge
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
