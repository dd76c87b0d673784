package parameter

// Wave pacing
const (
	// WaveIntermission is seconds in Idle before a wave starts spawning
	WaveIntermission = 3.0

	// WaveStagger is the default seconds between spawns in the default waves
	WaveStagger = 0.5

	// WaveLoopFrom is the wave index repeated after the last configured wave
	WaveLoopFrom = 1

	// WaveLoopHealthScale adds this fraction of base health per completed loop
	WaveLoopHealthScale = 0.25
)
