// Package engine sequences the per-tick combat simulation and the round lifecycle
package engine

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/paintball/collision"
	"github.com/lixenwraith/paintball/combat"
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/event"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/physics"
	"github.com/lixenwraith/paintball/projectile"
	"github.com/lixenwraith/paintball/steering"
	"github.com/lixenwraith/paintball/vmath"
)

// State is the round state of an Arena
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Command is one tick of intent for an agent, human or AI
type Command struct {
	Move vmath.Vec3F
	Fire component.Direction
}

// InputProvider supplies human commands
// ok false means the slot has no controller this tick and the agent falls back to AI
type InputProvider interface {
	Input(id component.AgentID) (cmd Command, ok bool)
}

// Options configures an Arena, zero values take parameter defaults
// Agents is capped at component.TeamCount
type Options struct {
	Agents             int
	Humans             int
	ProjectileCapacity int
	PendingCapacity    int
	WorldBound         float64
	ArenaBound         float64

	Logger *slog.Logger
	Rand   vmath.Rand
	Input  InputProvider
	Events *event.Queue
}

// RoundResult is the outcome of a finished round
// Winners are the agents not captured in the unifying tick; empty when Ambiguous
type RoundResult struct {
	Round     int
	ID        uuid.UUID
	Tick      uint64
	Team      component.Team
	Winners   []component.AgentID
	Ambiguous bool
}

// Arena owns agents and projectiles and advances them one fixed tick at a time
// Not safe for concurrent use; readers take a Snapshot between ticks
type Arena struct {
	log    *slog.Logger
	input  InputProvider
	events *event.Queue

	agentCount int
	humans     int
	arenaBound float64

	steer    *steering.Controller
	pool     *projectile.Pool
	sim      projectile.Simulator
	resolver collision.Resolver

	agents   []component.Agent
	intents  []Command
	captured []bool

	state   State
	round   int
	roundID uuid.UUID
	tick    uint64
	result  RoundResult
}

func NewArena(opts Options) *Arena {
	if opts.Agents <= 0 {
		opts.Agents = parameter.PlayerCount
	}
	// Every agent starts on its own team
	if opts.Agents > component.TeamCount {
		opts.Agents = component.TeamCount
	}
	if opts.ProjectileCapacity <= 0 {
		opts.ProjectileCapacity = parameter.ProjectileCapacity
	}
	if opts.PendingCapacity <= 0 {
		opts.PendingCapacity = parameter.PendingCapacity
	}
	if opts.ArenaBound <= 0 {
		opts.ArenaBound = parameter.ArenaBound
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Events == nil {
		opts.Events = event.NewQueue()
	}
	if opts.Input == nil {
		opts.Humans = 0
	}

	return &Arena{
		log:        opts.Logger,
		input:      opts.Input,
		events:     opts.Events,
		agentCount: opts.Agents,
		humans:     opts.Humans,
		arenaBound: opts.ArenaBound,
		steer:      steering.NewController(opts.Rand),
		pool:       projectile.NewPool(opts.ProjectileCapacity, opts.PendingCapacity),
		sim:        projectile.NewSimulator(opts.WorldBound),
		resolver:   collision.NewResolver(parameter.PlayerRadius, parameter.AIBulletRange),
		agents:     make([]component.Agent, opts.Agents),
		intents:    make([]Command, opts.Agents),
		captured:   make([]bool, opts.Agents),
	}
}

// SpawnPosition places agent i of n on a ring around the origin
// The first of four sits at -X, then -Z, +X, +Z
func SpawnPosition(i, n int) vmath.Vec3F {
	if n <= 0 {
		n = 1
	}
	theta := math.Pi + float64(i)*2*math.Pi/float64(n)
	return vmath.Vec3F{
		X: parameter.SpawnRadius * math.Cos(theta),
		Z: parameter.SpawnRadius * math.Sin(theta),
	}
}

// NewRound resets every agent to its spawn on its own team and clears projectiles
func (a *Arena) NewRound() {
	a.round++
	a.roundID = uuid.New()
	a.state = StateRunning
	a.result = RoundResult{}
	a.pool.Reset()

	for i := range a.agents {
		threats := a.agents[i].IncomingThreats[:0]
		a.agents[i] = component.NewAgent(component.AgentID(i), component.Team(i%component.TeamCount), SpawnPosition(i, a.agentCount))
		a.agents[i].IncomingThreats = threats
		if i < a.humans {
			a.agents[i].Controller = component.ControllerHuman
		}
		a.intents[i] = Command{}
	}

	a.emit(event.EventRoundStart, &event.RoundStartPayload{Round: a.round, ID: a.roundID, Agents: len(a.agents)})
	a.log.Info("round started", "round", a.round, "id", a.roundID, "agents", len(a.agents), "humans", a.humans)
}

// FixedUpdate advances the round by dt seconds; no-op unless the round is running
// Phases run in order: decision, movement, fire, projectiles and hits, threat flagging, round end
func (a *Arena) FixedUpdate(dt float64) {
	if a.state != StateRunning {
		return
	}
	a.tick++
	clear(a.captured)

	for i := range a.agents {
		ag := &a.agents[i]
		ag.PrevPosition = ag.Position
		combat.Cool(ag, dt)
		a.intents[i] = a.decide(ag, dt)
	}

	for i := range a.agents {
		ag := &a.agents[i]
		physics.Drive(ag, a.intents[i].Move, dt)
		physics.ClampBoundsXZ(&ag.Position, &ag.Velocity, a.arenaBound)
	}

	for i := range a.agents {
		if dir := a.intents[i].Fire; dir != component.DirNone {
			a.fire(&a.agents[i], dir)
		}
	}

	a.stepProjectiles(dt)
	a.resolver.FlagThreats(a.pool.Live(), a.agents)
	a.checkRoundEnd()
}

// decide produces the movement force and fire intent for one agent
func (a *Arena) decide(ag *component.Agent, dt float64) Command {
	if ag.IsHuman() {
		if cmd, ok := a.input.Input(ag.ID); ok {
			ag.IncomingThreats = ag.IncomingThreats[:0]
			return cmd
		}
	}
	return Command{
		Move: a.steer.Movement(ag, a.agents),
		Fire: a.steer.FireDirection(ag, dt, a.agents),
	}
}

// fire queues a shot from the agent's post-move position
func (a *Arena) fire(ag *component.Agent, dir component.Direction) {
	if !combat.CanFire(ag) {
		return
	}
	origin := vmath.Vec3F{X: ag.Position.X, Y: parameter.BulletHeight, Z: ag.Position.Z}
	ok := a.pool.Fire(projectile.FireRequest{
		Owner:    ag.ID,
		Team:     ag.Team,
		Position: origin,
		Velocity: vmath.V3FScale(dir.Vector(), parameter.BulletVelocity),
	})
	if !ok {
		return
	}
	combat.AddShotHeat(ag)
	a.emit(event.EventFire, &event.FirePayload{Agent: ag.ID, Team: ag.Team, Direction: dir, Position: origin})
}

// stepProjectiles spawns pending shots, advances every live projectile and resolves hits
// Retire swaps the last slot into i, so i only advances for survivors
func (a *Arena) stepProjectiles(dt float64) {
	a.pool.Spawn()

	for i := 0; i < a.pool.Len(); {
		p := a.pool.At(i)
		if !a.sim.Step(p, dt) {
			a.splash(p)
			a.pool.Retire(i)
			continue
		}

		if target := a.resolver.FindTarget(p, a.agents); target >= 0 {
			a.hit(p, target)
			a.pool.Retire(i)
			continue
		}
		i++
	}
}

func (a *Arena) hit(p *component.Projectile, target int) {
	victim := &a.agents[target]
	firer := a.agentByID(p.Owner)
	prevTeam := victim.Team

	outcome := combat.ApplyHit(victim, firer, p.Team)

	mark := &event.HitMarkPayload{Position: p.Position, Firer: p.Owner, Victim: victim.ID, Team: p.Team}
	a.emit(event.EventHitMark, mark)
	a.splash(p)

	switch outcome {
	case combat.OutcomeMarked:
		a.emit(event.EventMark, mark)
	case combat.OutcomeCaptured:
		a.captured[target] = true
		a.emit(event.EventCapture, &event.CapturePayload{Victim: victim.ID, Firer: p.Owner, Team: victim.Team, PrevTeam: prevTeam})
		a.log.Info("agent captured",
			"round", a.roundID, "victim", victim.ID, "firer", p.Owner,
			"from", prevTeam, "to", victim.Team)
	}
}

func (a *Arena) splash(p *component.Projectile) {
	a.emit(event.EventSplash, &event.SplashPayload{X: p.Position.X, Z: p.Position.Z, Team: p.Team})
}

// checkRoundEnd finishes the round the first tick every agent shares one team
func (a *Arena) checkRoundEnd() {
	if len(a.agents) == 0 {
		return
	}
	team := a.agents[0].Team
	for i := 1; i < len(a.agents); i++ {
		if a.agents[i].Team != team {
			return
		}
	}

	var winners []component.AgentID
	for i := range a.agents {
		if !a.captured[i] {
			winners = append(winners, a.agents[i].ID)
		}
	}
	ambiguous := len(winners) == 0 || len(winners) == len(a.agents)
	if ambiguous {
		winners = nil
	}

	a.state = StateFinished
	a.result = RoundResult{
		Round:     a.round,
		ID:        a.roundID,
		Tick:      a.tick,
		Team:      team,
		Winners:   winners,
		Ambiguous: ambiguous,
	}
	a.emit(event.EventRoundEnd, &event.RoundEndPayload{
		Round:     a.round,
		ID:        a.roundID,
		Team:      team,
		Winners:   winners,
		Ambiguous: ambiguous,
	})

	if ambiguous {
		a.log.Warn("round finished without a winner", "round", a.round, "id", a.roundID, "team", team, "tick", a.tick)
		return
	}
	a.log.Info("round finished", "round", a.round, "id", a.roundID, "team", team, "winners", winners, "tick", a.tick)
}

func (a *Arena) agentByID(id component.AgentID) *component.Agent {
	i := int(id)
	if i < 0 || i >= len(a.agents) || a.agents[i].ID != id {
		return nil
	}
	return &a.agents[i]
}

func (a *Arena) emit(t event.EventType, payload any) {
	a.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: a.tick})
}

func (a *Arena) State() State { return a.state }

func (a *Arena) Round() int { return a.round }

func (a *Arena) Tick() uint64 { return a.tick }

// Result is valid once State is StateFinished
func (a *Arena) Result() RoundResult { return a.result }

// Events returns the queue the arena publishes to
func (a *Arena) Events() *event.Queue { return a.events }

// Agents exposes the agent records for tests and tooling; callers must not mutate during a tick
func (a *Arena) Agents() []component.Agent { return a.agents }

// Projectiles returns the pool for inspection and direct fire requests
func (a *Arena) Projectiles() *projectile.Pool { return a.pool }
