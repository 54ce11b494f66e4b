package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paintball/audio"
	"github.com/lixenwraith/paintball/config"
	"github.com/lixenwraith/paintball/engine"
	"github.com/lixenwraith/paintball/event"
	"github.com/lixenwraith/paintball/input"
	"github.com/lixenwraith/paintball/logging"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/render"
	"github.com/lixenwraith/paintball/vmath"
)

var (
	configDir = flag.String("config", ".", "Directory searched for paintball.{toml,json,yaml}")
	colorFlag = flag.String("color", "", "Color mode override: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	wins, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paintball: %v\n", err)
		os.Exit(1)
	}
	for id, n := range wins {
		fmt.Printf("agent %d: %d round wins\n", id, n)
	}
}

func run() ([]int, error) {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return nil, err
	}
	if *colorFlag != "" {
		cfg.ColorMode = *colorFlag
	}

	// The terminal owns stdout, so logs only go to the configured file
	logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile, nil)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPAINTBALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	humans := min(cfg.Humans, 1)
	if cfg.Humans > humans {
		logger.Warn("only one keyboard player supported", "requested", cfg.Humans)
	}

	keyboard := input.NewKeyboard(0, nil)
	queue := event.NewQueue()
	arena := engine.NewArena(engine.Options{
		Agents:             cfg.Agents,
		Humans:             humans,
		ProjectileCapacity: cfg.ProjectileCapacity,
		PendingCapacity:    cfg.PendingCapacity,
		WorldBound:         cfg.WorldBound,
		Logger:             logger,
		Rand:               vmath.NewFastRand(cfg.Seed),
		Input:              keyboard,
		Events:             queue,
	})
	match := engine.NewMatch(arena, cfg.Rounds, cfg.RoundEndDelay, logger)

	view := render.NewView(screen, render.ParseColorMode(cfg.ColorMode), parameter.ArenaBound)
	router := event.NewRouter(queue)
	router.Register(view, view.EventTypes()...)

	var player *audio.Player
	if cfg.Audio {
		player = audio.NewPlayer(0.6)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
			player = nil
		} else {
			defer player.Close()
			router.Register(player, audio.EventTypes()...)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var paused atomic.Bool
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch keyboard.HandleKey(ev).Type {
				case input.IntentQuit:
					cancel()
					return
				case input.IntentPause:
					paused.Store(!paused.Load())
				case input.IntentToggleMute:
					if player != nil {
						player.ToggleMute()
					}
				}
			}
		}
	}()

	sched := engine.NewScheduler(cfg.TickInterval(), logger)
	err = sched.Run(ctx, engine.Hooks{
		Tick: func(dt float64) {
			if paused.Load() {
				return
			}
			match.Step(dt)
			router.Dispatch()
			if match.Done() {
				cancel()
			}
		},
		Frame: func(alpha float64) {
			if paused.Load() {
				alpha = 1
			}
			view.Draw(arena, alpha)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}
	return match.Wins(), nil
}
