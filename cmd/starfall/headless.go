package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// runHeadless flies the autopilot for up to ticks fixed steps, stopping early
// when the ship is destroyed, and writes a one-line summary to out
func runHeadless(e *engine.Engine, ticks int, out io.Writer) error {
	pilot := &engine.Autopilot{Deadband: parameter.AutopilotDeadband}
	step := e.Rules().Step

	for i := 0; i < ticks; i++ {
		s := e.Snapshot()
		if s.Over {
			break
		}
		pilot.Drive(e, s)
		if err := e.Tick(step); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
	}

	s := e.Snapshot()
	st := &s.Stats
	_, err := fmt.Fprintf(out,
		"ticks=%d time=%.1fs over=%t score=%d wave=%d cleared=%d kills=%d escaped=%d fired=%d hull=%.0f/%.0f dropped(fires=%d spawns=%d effects=%d events=%d) anomalies=%d\n",
		s.Tick, s.Time, s.Over, st.Score, s.Wave.Index+1, st.WavesCleared, st.Kills, st.Escaped, st.Fired,
		max(s.Player.Health, 0), s.Player.MaxHealth,
		st.DroppedFires, st.DroppedSpawns, st.DroppedEffects, st.DroppedEvents, st.Anomalies)
	return err
}
