package core

// Stats are cumulative session counters, reset only by restart
type Stats struct {
	Score int

	Fired          int
	DroppedFires   int
	DroppedSpawns  int
	DroppedEffects int
	DroppedEvents  int

	Spawned   int
	Kills     int
	Escaped   int
	Anomalies int

	WavesCleared int
	DamageTaken  float64
}

// Sub returns the per-field difference s - o, used for per-tick deltas
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		Score:          s.Score - o.Score,
		Fired:          s.Fired - o.Fired,
		DroppedFires:   s.DroppedFires - o.DroppedFires,
		DroppedSpawns:  s.DroppedSpawns - o.DroppedSpawns,
		DroppedEffects: s.DroppedEffects - o.DroppedEffects,
		DroppedEvents:  s.DroppedEvents - o.DroppedEvents,
		Spawned:        s.Spawned - o.Spawned,
		Kills:          s.Kills - o.Kills,
		Escaped:        s.Escaped - o.Escaped,
		Anomalies:      s.Anomalies - o.Anomalies,
		WavesCleared:   s.WavesCleared - o.WavesCleared,
		DamageTaken:    s.DamageTaken - o.DamageTaken,
	}
}
