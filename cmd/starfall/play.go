package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/input"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/render"
)

// session is one interactive run
type session struct {
	screen tcell.Screen
	eng    *engine.Engine
	term   *render.Terminal
	ctrl   *input.Controller
	audio  *audio.Player
	log    zerolog.Logger
}

// runTerminal opens the screen and plays until the quit key
func runTerminal(cfg *config.Config, rules *config.Rules, log zerolog.Logger, opts []engine.Option, withAudio bool) error {
	table := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		overrides, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return err
		}
		table.Merge(overrides)
	}

	player := audio.NewPlayer()
	if withAudio {
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Warn().Err(err).Msg("audio initialization failed")
		}
		defer player.Close()
	}
	opts = append(opts, engine.WithObserver(player))

	e, err := engine.New(rules, opts...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		screen.Fini()
		core.SetCrashFinalizer(nil)
	}()
	screen.HideCursor()

	s := &session{
		screen: screen,
		eng:    e,
		term:   render.New(screen, rules),
		ctrl:   input.NewController(table),
		audio:  player,
		log:    log,
	}
	return s.loop()
}

func (s *session) loop() error {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	s.draw()
	for {
		select {
		case ev := <-events:
			switch s.ctrl.Handle(ev, s.eng) {
			case input.IntentQuit:
				s.log.Info().Uint64("tick", s.eng.Snapshot().Tick).Msg("quit")
				return nil
			case input.IntentToggleMute:
				muted := s.audio.ToggleMute()
				s.log.Debug().Bool("muted", muted).Msg("audio toggled")
			case input.IntentResize:
				s.term.Resize()
				s.draw()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			s.ctrl.Frame(s.eng)
			if err := s.eng.Tick(dt); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			s.draw()
		}
	}
}

func (s *session) draw() {
	s.term.Draw(s.eng.Snapshot(), render.Indicators{
		Autofire: s.ctrl.Autofire(),
		Muted:    s.audio.Muted(),
	})
}
