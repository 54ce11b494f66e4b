package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/paintball/parameter"
)

// ErrAlreadyRunning is returned by Run while another Run is active
var ErrAlreadyRunning = errors.New("scheduler already running")

// Hooks are invoked from the scheduler goroutine
// Tick runs once per fixed step; Frame runs after the ticks of a frame with the
// leftover fraction of a step for interpolation
type Hooks struct {
	Tick  func(dt float64)
	Frame func(alpha float64)
}

// Scheduler drives fixed-step ticks from a frame ticker using an accumulator
// Ticks and frames share one goroutine, so a frame never observes a tick mid-flight
type Scheduler struct {
	log           *slog.Logger
	tickInterval  time.Duration
	frameInterval time.Duration
	maxCatchUp    int

	accumulator time.Duration
	running     atomic.Bool
	ticks       atomic.Uint64
}

func NewScheduler(tickInterval time.Duration, logger *slog.Logger) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = time.Second / parameter.TickRate
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		log:           logger,
		tickInterval:  tickInterval,
		frameInterval: parameter.FrameUpdateInterval,
		maxCatchUp:    4,
	}
}

// Run blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context, hooks Hooks) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	s.log.Info("scheduler started", "tick", s.tickInterval, "frame", s.frameInterval)
	defer s.log.Info("scheduler stopped", "ticks", s.ticks.Load())

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s.Advance(now.Sub(last), hooks)
			last = now
		}
	}
}

// Advance feeds elapsed wall time into the accumulator and runs the due ticks
// Backlog beyond maxCatchUp ticks is dropped instead of spiralling
func (s *Scheduler) Advance(elapsed time.Duration, hooks Hooks) int {
	s.accumulator += elapsed
	if limit := s.tickInterval * time.Duration(s.maxCatchUp); s.accumulator > limit {
		s.accumulator = limit
	}

	dt := s.tickInterval.Seconds()
	n := 0
	for s.accumulator >= s.tickInterval {
		if hooks.Tick != nil {
			hooks.Tick(dt)
		}
		s.accumulator -= s.tickInterval
		s.ticks.Add(1)
		n++
	}

	if hooks.Frame != nil {
		hooks.Frame(float64(s.accumulator) / float64(s.tickInterval))
	}
	return n
}

// Ticks returns the number of fixed steps run so far
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

func (s *Scheduler) TickInterval() time.Duration { return s.tickInterval }
