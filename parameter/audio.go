package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, sets cue latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default linear gain applied to every cue
	AudioMasterVolume = 0.6
)

// Shot cue, a short square blip
const (
	ShotCueFreq     = 1320.0
	ShotCueDuration = 40 * time.Millisecond
	ShotCueAttack   = 2 * time.Millisecond
	ShotCueRelease  = 30 * time.Millisecond
	ShotCueVolume   = 0.25
)

// Hit cue, a low saw thud on a damaged enemy
const (
	HitCueFreq     = 220.0
	HitCueDuration = 60 * time.Millisecond
	HitCueAttack   = 2 * time.Millisecond
	HitCueRelease  = 40 * time.Millisecond
	HitCueVolume   = 0.4
)

// Explosion cue, filtered noise burst
const (
	ExplosionCueDuration = 250 * time.Millisecond
	ExplosionCueAttack   = 5 * time.Millisecond
	ExplosionCueRelease  = 200 * time.Millisecond
	ExplosionCueVolume   = 0.6
)

// Player hit cue, harsh low buzz
const (
	PlayerHitCueFreq     = 110.0
	PlayerHitCueDuration = 120 * time.Millisecond
	PlayerHitCueAttack   = 5 * time.Millisecond
	PlayerHitCueRelease  = 60 * time.Millisecond
	PlayerHitCueVolume   = 0.7
)

// Wave cues, two-note chimes rising on start and falling on clear
const (
	WaveCueLowFreq      = 659.25  // E5
	WaveCueHighFreq     = 987.77  // B5
	WaveCueNoteDuration = 120 * time.Millisecond
	WaveCueAttack       = 5 * time.Millisecond
	WaveCueRelease      = 80 * time.Millisecond
	WaveCueVolume       = 0.5
)

// Game over cue, a long falling bell
const (
	GameOverCueFreq     = 440.0
	GameOverCueDuration = 800 * time.Millisecond
	GameOverCueAttack   = 5 * time.Millisecond
	GameOverCueRelease  = 700 * time.Millisecond
	GameOverCueVolume   = 0.7
)
