// Command starfall runs the arcade space-combat simulation in a terminal,
// or headless under the autopilot
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/record"
	"github.com/lixenwraith/starfall/status"
	"github.com/lixenwraith/starfall/telemetry"
)

var (
	configFlag   = flag.String("config", "", "Configuration file (toml, yaml or json)")
	headlessFlag = flag.Bool("headless", false, "Fly the autopilot without a terminal and print a summary")
	ticksFlag    = flag.Int("ticks", parameter.HeadlessTicks, "Headless run length in ticks")
	recordFlag   = flag.String("record", "", "Match record DSN, sqlite path or postgres URL (overrides record.dsn)")
	profileFlag  = flag.String("profile", "", "Write a profile to the working directory: cpu, mem")
	levelFlag    = flag.String("log-level", "", "Log level (overrides log.level)")
	audioFlag    = flag.Bool("audio", true, "Play sound cues")
)

func main() {
	// Panic Recovery: ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileFlag)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *recordFlag != "" {
		cfg.Record.DSN = *recordFlag
	}
	if *levelFlag != "" {
		cfg.Log.Level = *levelFlag
	}

	log, closer, err := setupLogging(cfg.Log, *headlessFlag)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	rules, err := cfg.Compile()
	if err != nil {
		return err
	}
	log.Info().Stringer("rules", rules).Msg("configuration loaded")

	reg := status.NewRegistry()
	metrics, err := telemetry.New(telemetry.Meter(), reg)
	if err != nil {
		return err
	}
	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithStatus(reg),
		engine.WithObserver(metrics),
	}

	if cfg.Record.DSN != "" {
		rec, err := record.Open(cfg.Record.DSN, log)
		if err != nil {
			return fmt.Errorf("opening match record: %w", err)
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Error().Err(err).Msg("closing match record")
			}
		}()
		opts = append(opts, engine.WithObserver(rec))
	}

	if *headlessFlag {
		e, err := engine.New(rules, opts...)
		if err != nil {
			return err
		}
		return runHeadless(e, *ticksFlag, os.Stdout)
	}
	return runTerminal(cfg, rules, log, opts, *audioFlag)
}
