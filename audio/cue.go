package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
)

// Cue is a short sound mapped from one or more engine events
type Cue uint8

const (
	CueShot Cue = iota
	CueHit
	CueExplosion
	CuePlayerHit
	CueWaveStart
	CueWaveClear
	CueGameOver

	cueCount
)

var cueNames = [cueCount]string{"shot", "hit", "explosion", "player_hit", "wave_start", "wave_clear", "game_over"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps an event kind to its cue; EnemyEscaped is silent
func CueFor(k core.EventKind) (Cue, bool) {
	switch k {
	case core.EventShotFired:
		return CueShot, true
	case core.EventEnemyHit:
		return CueHit, true
	case core.EventEnemyDestroyed:
		return CueExplosion, true
	case core.EventPlayerHit:
		return CuePlayerHit, true
	case core.EventWaveStarted:
		return CueWaveStart, true
	case core.EventWaveCleared:
		return CueWaveClear, true
	case core.EventPlayerDestroyed:
		return CueGameOver, true
	}
	return 0, false
}

// Select appends the distinct cues of one tick's events to dst, each at most
// once, in cue order
// A burst of shots in one tick plays a single blip
func Select(events []core.Event, dst []Cue) []Cue {
	var seen [cueCount]bool
	for i := range events {
		if c, ok := CueFor(events[i].Kind); ok {
			seen[c] = true
		}
	}
	for c := Cue(0); c < cueCount; c++ {
		if seen[c] {
			dst = append(dst, c)
		}
	}
	return dst
}

// Streamer renders c at rate with linear gain
func Streamer(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	var vol float64

	switch c {
	case CueShot:
		s = tone{parameter.ShotCueFreq, WaveSquare, parameter.ShotCueDuration,
			parameter.ShotCueAttack, parameter.ShotCueRelease}.streamer(rate)
		vol = parameter.ShotCueVolume
	case CueHit:
		s = tone{parameter.HitCueFreq, WaveSaw, parameter.HitCueDuration,
			parameter.HitCueAttack, parameter.HitCueRelease}.streamer(rate)
		vol = parameter.HitCueVolume
	case CueExplosion:
		s = tone{0, WaveNoise, parameter.ExplosionCueDuration,
			parameter.ExplosionCueAttack, parameter.ExplosionCueRelease}.streamer(rate)
		vol = parameter.ExplosionCueVolume
	case CuePlayerHit:
		s = tone{parameter.PlayerHitCueFreq, WaveSaw, parameter.PlayerHitCueDuration,
			parameter.PlayerHitCueAttack, parameter.PlayerHitCueRelease}.streamer(rate)
		vol = parameter.PlayerHitCueVolume
	case CueWaveStart, CueWaveClear:
		lo := tone{parameter.WaveCueLowFreq, WaveSine, parameter.WaveCueNoteDuration,
			parameter.WaveCueAttack, parameter.WaveCueRelease}
		hi := lo
		hi.freq = parameter.WaveCueHighFreq
		if c == CueWaveClear {
			lo, hi = hi, lo
		}
		s = beep.Seq(lo.streamer(rate), hi.streamer(rate))
		vol = parameter.WaveCueVolume
	case CueGameOver:
		fund := tone{parameter.GameOverCueFreq, WaveSine, parameter.GameOverCueDuration,
			parameter.GameOverCueAttack, parameter.GameOverCueRelease}
		over := fund
		over.freq *= 2
		over.release /= 3
		s = beep.Mix(
			newVolume(fund.streamer(rate), 0.7),
			newVolume(over.streamer(rate), 0.3),
		)
		vol = parameter.GameOverCueVolume
	default:
		return nil
	}
	return newVolume(s, vol*gain)
}
