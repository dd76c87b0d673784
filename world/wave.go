package world

// Phase is the wave manager state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpawning
	PhaseWaitingForClear
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseWaitingForClear:
		return "waiting_for_clear"
	default:
		return "unknown"
	}
}

// Wave is the persistent wave manager state
// The remaining spawn queue is Rules.Wave(Index).Spawns[Next:]
type Wave struct {
	Index int
	Phase Phase

	// Timer counts down the intermission while Idle and counts up the
	// seconds since the wave started while Spawning
	Timer float64

	Next  int
	Cycle int

	// Alive is the number of enemies of this wave still alive after cleanup
	Alive int

	// Complete is set once the queue is drained and every spawned enemy is
	// dead, and stays set through the following intermission
	Complete bool
}
