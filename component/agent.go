package component

import "github.com/lixenwraith/paintball/vmath"

// AgentID is the stable index of an agent within a round
type AgentID int

// Controller selects the source of an agent's movement and fire intent
type Controller uint8

const (
	ControllerAI Controller = iota
	ControllerHuman
)

// Agent is a single combatant
// Exactly one Team is authoritative; FirstHitTeam only decides the outcome of the next hit
type Agent struct {
	ID         AgentID
	Controller Controller

	Position     vmath.Vec3F
	PrevPosition vmath.Vec3F // Interpolation source for presentation
	Velocity     vmath.Vec3F
	Acceleration vmath.Vec3F

	Team         Team
	FirstHitTeam Team
	FragCount    uint32

	// Temperature is the weapon heat accumulator, never negative
	Temperature float64

	// AI fields, ignored for human agents
	AIState     AIState
	MultiplierA float64
	MultiplierB float64
	ActionTimer float64

	// IncomingThreats holds projectiles flagged since the last steering pass
	IncomingThreats []Projectile
}

// NewAgent creates an agent at rest on its own team, FirstHitTeam equals Team
func NewAgent(id AgentID, team Team, pos vmath.Vec3F) Agent {
	return Agent{
		ID:           id,
		Position:     pos,
		PrevPosition: pos,
		Team:         team,
		FirstHitTeam: team,
		AIState:      AIAttack,
		MultiplierA:  1,
		MultiplierB:  1,
	}
}

func (a *Agent) IsHuman() bool {
	return a.Controller == ControllerHuman
}
