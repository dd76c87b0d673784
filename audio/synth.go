package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length mono tone on both channels
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a streamer of duration at freq
// Noise ignores freq and is seeded so a cue always renders the same samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
	if wave == WaveNoise {
		o.noise = rand.New(rand.NewSource(1))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration; sustain fills what attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= releaseStart && e.release > 0:
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is one enveloped oscillator note
type tone struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	return NewEnvelope(osc, t.duration, t.attack, t.release, rate)
}
