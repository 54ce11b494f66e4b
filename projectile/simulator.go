package projectile

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/physics"
)

// Simulator advances projectiles under constant gravity
type Simulator struct {
	Gravity float64 // Downward acceleration magnitude
	Bound   float64 // Horizontal half-extent of the world
	Ground  float64 // Height of the ground plane
}

func NewSimulator(bound float64) Simulator {
	if bound <= 0 {
		bound = parameter.WorldBound
	}
	return Simulator{
		Gravity: parameter.Gravity,
		Bound:   bound,
		Ground:  parameter.GroundLevel,
	}
}

// Step advances p by dt, returns false once p has expired
// An expired projectile must not be collision tested this tick
func (s Simulator) Step(p *component.Projectile, dt float64) bool {
	p.PrevPosition = p.Position
	physics.Ballistic(&p.Position, &p.Velocity, s.Gravity, dt)
	return !physics.OutOfBounds(p.Position, s.Bound, s.Ground)
}
