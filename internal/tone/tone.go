// Package tone plays a short sine blip whose pitch follows elevation.
package tone

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	MinFrequency = 220.0
	MaxFrequency = 880.0
	BlipLength   = 120 * time.Millisecond

	attack = 5 * time.Millisecond
	volume = 0.25
)

// FrequencyFor maps elevation in [-1, 1] to [MinFrequency, MaxFrequency] on a
// log scale, so equal elevation steps sound like equal intervals.
func FrequencyFor(elevation float64) float64 {
	n := (math.Max(-1, math.Min(1, elevation)) + 1) / 2
	return MinFrequency * math.Pow(MaxFrequency/MinFrequency, n)
}

// Generator streams one blip and then reports exhaustion.
type Generator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
	attack int
}

// NewGenerator returns a blip of frequency freq lasting d.
func NewGenerator(sr beep.SampleRate, freq float64, d time.Duration) *Generator {
	return &Generator{
		sr:     sr,
		freq:   freq,
		length: sr.N(d),
		attack: sr.N(attack),
	}
}

func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		env := float64(g.length-g.pos) / float64(g.length)
		if g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}
		v := volume * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
		n++
	}
	return n, true
}

func (g *Generator) Err() error { return nil }

// Player owns the speaker. It is safe to call Play from the game loop while
// the speaker goroutine drains the mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer returns a player with the speaker not yet opened.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a blip for the given elevation. Without Init it does nothing.
func (p *Player) Play(elevation float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewGenerator(SampleRate, FrequencyFor(elevation), BlipLength))
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
