// Package audio plays short synthesized cues for engine events through beep
// Audio is optional: every method is safe before or without Initialize
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// Player implements engine.Observer, mapping each tick's events to cues
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	gain        float64
	initialized bool
	muted       atomic.Bool

	// sink receives rendered cues; nil until Initialize
	sink func(beep.Streamer)
	cues []Cue

	played atomic.Uint64
}

// NewPlayer creates an uninitialized player at the default volume
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		gain:  parameter.AudioMasterVolume,
		cues:  make([]Cue, 0, int(cueCount)),
	}
}

// Initialize opens the speaker; failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Close stops every playing cue
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.sink = nil
	p.initialized = false
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played returns the number of cues handed to the speaker
func (p *Player) Played() uint64 {
	return p.played.Load()
}

// TickCompleted implements engine.Observer
func (p *Player) TickCompleted(r *engine.Report) {
	if p.muted.Load() || len(r.Events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink == nil {
		return
	}

	p.cues = Select(r.Events, p.cues[:0])
	for _, c := range p.cues {
		if s := Streamer(c, p.rate, p.gain); s != nil {
			p.sink(s)
			p.played.Add(1)
		}
	}
}
