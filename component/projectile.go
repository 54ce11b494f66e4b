package component

import "github.com/lixenwraith/paintball/vmath"

// Projectile is a live paintball
// Team is copied from the firer at fire time and never changes
type Projectile struct {
	ID           uint32
	Owner        AgentID
	Team         Team
	Position     vmath.Vec3F
	PrevPosition vmath.Vec3F
	Velocity     vmath.Vec3F
}

// Live reports whether the projectile still moves, zero velocity marks a retired slot
func (p *Projectile) Live() bool {
	return !vmath.V3FIsZero(p.Velocity)
}
