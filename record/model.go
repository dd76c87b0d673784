package record

import (
	"time"

	"gorm.io/gorm"
)

// Models lists every table the recorder migrates
var Models = []interface{}{
	&Session{},
	&WaveSummary{},
}

// Session is one match, from start or restart until the player is destroyed
// or the process exits
type Session struct {
	gorm.Model
	StartedAt    time.Time `json:"startedAt"`
	EndedAt      time.Time `json:"endedAt"`
	Ticks        uint64    `json:"ticks"`
	SimSeconds   float64   `json:"simSeconds"`
	Score        int       `json:"score"`
	Kills        int       `json:"kills"`
	Escaped      int       `json:"escaped"`
	Fired        int       `json:"fired"`
	DroppedFires int       `json:"droppedFires"`
	WavesCleared int       `json:"wavesCleared"`
	DamageTaken  float64   `json:"damageTaken"`
	Destroyed    bool      `json:"destroyed"`

	Waves []WaveSummary `json:"waves" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (*Session) TableName() string {
	return "sessions"
}

// WaveSummary is the stat delta accumulated while one wave was active
type WaveSummary struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	SessionID   uint    `json:"sessionId" gorm:"index:idx_wave_summary_session_id"`
	Wave        int     `json:"wave"`
	StartedTick uint64  `json:"startedTick"`
	ClearedTick uint64  `json:"clearedTick"`
	Spawned     int     `json:"spawned"`
	Kills       int     `json:"kills"`
	Escaped     int     `json:"escaped"`
	Fired       int     `json:"fired"`
	Score       int     `json:"score"`
	DamageTaken float64 `json:"damageTaken"`
}

func (*WaveSummary) TableName() string {
	return "wave_summaries"
}
