package engine

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

// AgentView is the presentation copy of an agent
type AgentView struct {
	ID           component.AgentID
	Human        bool
	Position     vmath.Vec3F
	PrevPosition vmath.Vec3F
	Team         component.Team
	FirstHitTeam component.Team
	FragCount    uint32
	Temperature  float64
	AIState      component.AIState
}

// At interpolates between the last two tick positions, alpha in [0, 1]
func (v AgentView) At(alpha float64) vmath.Vec3F {
	return vmath.V3FLerp(v.PrevPosition, v.Position, alpha)
}

// ProjectileView is the presentation copy of a live projectile
type ProjectileView struct {
	ID           uint32
	Team         component.Team
	Position     vmath.Vec3F
	PrevPosition vmath.Vec3F
}

func (v ProjectileView) At(alpha float64) vmath.Vec3F {
	return vmath.V3FLerp(v.PrevPosition, v.Position, alpha)
}

// Snapshot is a read-only copy of arena state taken between ticks
type Snapshot struct {
	Tick        uint64
	Round       int
	State       State
	Agents      []AgentView
	Projectiles []ProjectileView
	Result      RoundResult
}

// Snapshot copies the current state into dst, reusing its slices
func (a *Arena) Snapshot(dst *Snapshot) {
	dst.Tick = a.tick
	dst.Round = a.round
	dst.State = a.state
	dst.Result = a.result

	dst.Agents = dst.Agents[:0]
	for i := range a.agents {
		ag := &a.agents[i]
		dst.Agents = append(dst.Agents, AgentView{
			ID:           ag.ID,
			Human:        ag.IsHuman(),
			Position:     ag.Position,
			PrevPosition: ag.PrevPosition,
			Team:         ag.Team,
			FirstHitTeam: ag.FirstHitTeam,
			FragCount:    ag.FragCount,
			Temperature:  ag.Temperature,
			AIState:      ag.AIState,
		})
	}

	dst.Projectiles = dst.Projectiles[:0]
	for _, p := range a.pool.Live() {
		dst.Projectiles = append(dst.Projectiles, ProjectileView{
			ID:           p.ID,
			Team:         p.Team,
			Position:     p.Position,
			PrevPosition: p.PrevPosition,
		})
	}
}
