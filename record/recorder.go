// Package record persists match sessions and per-wave summaries through gorm
// Writes run on a background goroutine fed by a bounded queue, so the tick
// path only copies values
package record

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
)

// op is one queued write, run in order on the writer goroutine
type op func(db *gorm.DB) error

// Recorder implements engine.Observer
// TickCompleted must not be called after Close
type Recorder struct {
	db    *gorm.DB
	owned bool
	log   zerolog.Logger

	ops     chan op
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64

	// Writer goroutine only
	session *Session

	// Tick goroutine only
	lastTick  uint64
	simTime   float64
	stats     core.Stats
	ended     bool
	waveStart core.Stats
	waveTick  uint64
}

// Open dials dsn and returns a recorder that closes the database on Close
// postgres:// URLs and key=value strings containing host= select postgres,
// anything else is a sqlite path (":memory:" included)
func Open(dsn string, log zerolog.Logger) (*Recorder, error) {
	db, err := dial(dsn)
	if err != nil {
		return nil, err
	}
	r, err := New(db, log)
	if err != nil {
		if sqlDB, e := db.DB(); e == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	r.owned = true
	return r, nil
}

func dial(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	if isPostgres(dsn) {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return db, nil
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing sql interface: %w", err)
	}
	// One connection keeps an in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// New migrates the schema on db, opens the first session and starts the writer
// The caller keeps ownership of db
func New(db *gorm.DB, log zerolog.Logger) (*Recorder, error) {
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("migrating record schema: %w", err)
	}
	rec := &Recorder{
		db:   db,
		log:  log,
		ops:  make(chan op, parameter.RecordQueueSize),
		done: make(chan struct{}),
	}
	core.Go(rec.run)
	rec.begin()
	return rec, nil
}

func (r *Recorder) run() {
	defer close(r.done)
	for o := range r.ops {
		if err := o(r.db); err != nil {
			r.log.Error().Err(err).Msg("record write failed")
		}
	}
}

func (r *Recorder) enqueue(o op) {
	select {
	case r.ops <- o:
	default:
		r.dropped.Add(1)
	}
}

// Dropped returns how many writes were discarded on a full queue
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// TickCompleted implements engine.Observer
// A tick counter that moves backwards means the engine restarted, which
// closes the current session and opens a new one
func (r *Recorder) TickCompleted(rep *engine.Report) {
	if !rep.Advanced {
		return
	}
	if rep.Tick <= r.lastTick {
		if !r.ended {
			r.finish(false)
		}
		r.begin()
	}
	r.lastTick = rep.Tick
	r.simTime += rep.Delta
	r.stats = rep.Stats

	for i := range rep.Events {
		ev := &rep.Events[i]
		switch ev.Kind {
		case core.EventWaveStarted:
			r.waveStart = rep.Stats.Sub(rep.Diff)
			r.waveTick = rep.Tick
		case core.EventWaveCleared:
			r.wave(ev.Wave, rep.Tick)
		case core.EventPlayerDestroyed:
			r.finish(true)
		}
	}
}

func (r *Recorder) begin() {
	r.lastTick = 0
	r.simTime = 0
	r.stats = core.Stats{}
	r.ended = false
	r.waveStart = core.Stats{}
	r.waveTick = 0

	at := time.Now()
	r.enqueue(func(db *gorm.DB) error {
		r.session = &Session{StartedAt: at}
		return db.Create(r.session).Error
	})
}

func (r *Recorder) wave(index int, tick uint64) {
	d := r.stats.Sub(r.waveStart)
	ws := WaveSummary{
		Wave:        index,
		StartedTick: r.waveTick,
		ClearedTick: tick,
		Spawned:     d.Spawned,
		Kills:       d.Kills,
		Escaped:     d.Escaped,
		Fired:       d.Fired,
		Score:       d.Score,
		DamageTaken: d.DamageTaken,
	}
	r.enqueue(func(db *gorm.DB) error {
		if r.session == nil || r.session.ID == 0 {
			return fmt.Errorf("wave %d summary without a session", index)
		}
		ws.SessionID = r.session.ID
		return db.Create(&ws).Error
	})
}

func (r *Recorder) finish(destroyed bool) {
	r.ended = true
	s := r.stats
	ticks := r.lastTick
	sim := r.simTime
	at := time.Now()
	r.enqueue(func(db *gorm.DB) error {
		if r.session == nil || r.session.ID == 0 {
			return fmt.Errorf("finishing without a session")
		}
		r.session.EndedAt = at
		r.session.Ticks = ticks
		r.session.SimSeconds = sim
		r.session.Score = s.Score
		r.session.Kills = s.Kills
		r.session.Escaped = s.Escaped
		r.session.Fired = s.Fired
		r.session.DroppedFires = s.DroppedFires
		r.session.WavesCleared = s.WavesCleared
		r.session.DamageTaken = s.DamageTaken
		r.session.Destroyed = destroyed
		return db.Save(r.session).Error
	})
}

// Close finishes the open session, drains the queue and stops the writer
func (r *Recorder) Close() error {
	var err error
	r.once.Do(func() {
		if !r.ended {
			r.finish(false)
		}
		close(r.ops)
		<-r.done

		if n := r.dropped.Load(); n > 0 {
			r.log.Warn().Int64("dropped", n).Msg("record writes dropped")
		}
		if !r.owned {
			return
		}
		sqlDB, e := r.db.DB()
		if e != nil {
			err = e
			return
		}
		err = sqlDB.Close()
	})
	return err
}
