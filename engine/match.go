package engine

import (
	"log/slog"

	"github.com/lixenwraith/paintball/parameter"
)

// Match plays a fixed number of rounds on one arena
// Between rounds it idles RoundEndDelay seconds of simulated time
type Match struct {
	arena  *Arena
	log    *slog.Logger
	rounds int
	delay  float64

	waited  float64
	wins    []int
	results []RoundResult
}

func NewMatch(arena *Arena, rounds int, delay float64, logger *slog.Logger) *Match {
	if rounds <= 0 {
		rounds = parameter.RoundCount
	}
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Match{
		arena:  arena,
		log:    logger,
		rounds: rounds,
		delay:  delay,
		wins:   make([]int, len(arena.agents)),
	}
}

// Step advances the match by one fixed tick
func (m *Match) Step(dt float64) {
	if m.Done() {
		return
	}

	switch m.arena.State() {
	case StateIdle:
		m.arena.NewRound()
	case StateRunning:
		m.arena.FixedUpdate(dt)
		if m.arena.State() == StateFinished {
			m.record(m.arena.Result())
		}
	case StateFinished:
		m.waited += dt
		if m.waited >= m.delay {
			m.waited = 0
			m.arena.NewRound()
		}
	}
}

func (m *Match) record(res RoundResult) {
	m.results = append(m.results, res)
	for _, id := range res.Winners {
		if i := int(id); i >= 0 && i < len(m.wins) {
			m.wins[i]++
		}
	}
	if m.Done() {
		m.log.Info("match finished", "rounds", len(m.results), "wins", m.wins)
	}
}

// Done reports whether every round has finished
func (m *Match) Done() bool { return len(m.results) >= m.rounds }

// Wins returns the per-agent win tally, indexed by agent id
func (m *Match) Wins() []int { return m.wins }

func (m *Match) Results() []RoundResult { return m.results }

func (m *Match) Arena() *Arena { return m.arena }
