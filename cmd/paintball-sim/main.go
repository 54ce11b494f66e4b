package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"runtime"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/paintball/config"
	"github.com/lixenwraith/paintball/engine"
	"github.com/lixenwraith/paintball/logging"
	"github.com/lixenwraith/paintball/vmath"
)

// maxSimSeconds bounds a single match in simulated time
const maxSimSeconds = 20 * 60

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "paintball-sim: %v\n", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "paintball-sim"
	app.Usage = "Play seeded AI-only matches headless and log the outcomes"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: ".", Usage: "Directory searched for paintball.{toml,json,yaml}"},
		cli.IntFlag{Name: "matches", Value: 1, Usage: "Number of matches, seeds increase from the configured seed"},
		cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "Matches simulated in parallel"},
		cli.BoolFlag{Name: "verify", Usage: "Replay every match and fail if the outcome differs"},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile, os.Stdout)
		if err != nil {
			return err
		}
		defer closeLog()

		return simulate(context.Background(), cfg, logger, c.Int("matches"), c.Int("workers"), c.Bool("verify"))
	}
	return app
}

// MatchSummary is the deterministic outcome of one seeded match
type MatchSummary struct {
	Seed    uint64
	Ticks   uint64
	Wins    []int
	Results []engine.RoundResult
}

func simulate(ctx context.Context, cfg config.Config, logger *slog.Logger, matches, workers int, verify bool) error {
	if matches < 1 {
		matches = 1
	}
	summaries := make([]MatchSummary, matches)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i := range summaries {
		seed := cfg.Seed + uint64(i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := playMatch(cfg, seed, logger)
			if verify {
				replay := playMatch(cfg, seed, discardLogger())
				if !sameOutcome(s, replay) {
					return fmt.Errorf("seed %d: replay diverged", seed)
				}
			}
			summaries[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	totals := make([]int, cfg.Agents)
	for _, s := range summaries {
		for id, n := range s.Wins {
			totals[id] += n
		}
		logger.Info("match", "seed", s.Seed, "ticks", s.Ticks, "rounds", len(s.Results), "wins", s.Wins)
	}
	logger.Info("all matches finished", "matches", matches, "wins", totals, "verified", verify)
	return nil
}

// playMatch runs AI-only rounds until the match ends or the time cap is hit
func playMatch(cfg config.Config, seed uint64, logger *slog.Logger) MatchSummary {
	arena := engine.NewArena(engine.Options{
		Agents:             cfg.Agents,
		ProjectileCapacity: cfg.ProjectileCapacity,
		PendingCapacity:    cfg.PendingCapacity,
		WorldBound:         cfg.WorldBound,
		Logger:             logger.With("seed", seed),
		Rand:               vmath.NewFastRand(seed),
	})
	match := engine.NewMatch(arena, cfg.Rounds, cfg.RoundEndDelay, logger)

	dt := cfg.TickInterval().Seconds()
	limit := int(maxSimSeconds / dt)
	for i := 0; i < limit && !match.Done(); i++ {
		match.Step(dt)
		arena.Events().Consume(nil)
	}
	if !match.Done() {
		logger.Warn("match hit the simulated time cap", "seed", seed, "rounds", len(match.Results()))
	}

	return MatchSummary{Seed: seed, Ticks: arena.Tick(), Wins: match.Wins(), Results: match.Results()}
}

// sameOutcome compares everything except the random round ids
func sameOutcome(a, b MatchSummary) bool {
	if a.Ticks != b.Ticks || !reflect.DeepEqual(a.Wins, b.Wins) || len(a.Results) != len(b.Results) {
		return false
	}
	for i := range a.Results {
		ra, rb := a.Results[i], b.Results[i]
		if ra.Tick != rb.Tick || ra.Team != rb.Team || ra.Ambiguous != rb.Ambiguous || !reflect.DeepEqual(ra.Winners, rb.Winners) {
			return false
		}
	}
	return true
}

func discardLogger() *slog.Logger {
	return logging.New("error")
}
