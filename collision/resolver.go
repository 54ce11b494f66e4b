package collision

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

// Resolver hit-tests projectiles against agents on the horizontal plane
type Resolver struct {
	Radius        float64 // Agent collision radius
	ThreatRangeSq float64 // Squared distance within which a projectile is an incoming threat
}

func NewResolver(radius, threatRangeSq float64) Resolver {
	return Resolver{Radius: radius, ThreatRangeSq: threatRangeSq}
}

// FindTarget returns the index of the first agent in enumeration order hit by p, or -1
// The owner of p is never tested
func (r Resolver) FindTarget(p *component.Projectile, agents []component.Agent) int {
	r2 := r.Radius * r.Radius
	for i := range agents {
		if agents[i].ID == p.Owner {
			continue
		}
		if vmath.V3FDistSqXZ(agents[i].Position, p.Position) < r2 {
			return i
		}
	}
	return -1
}

// Threatens reports whether p is an enemy projectile closing on a within threat range
func (r Resolver) Threatens(p *component.Projectile, a *component.Agent) bool {
	if p.Owner == a.ID || p.Team == a.Team {
		return false
	}
	if vmath.V3FDistSqXZ(a.Position, p.Position) >= r.ThreatRangeSq {
		return false
	}
	toAgent := vmath.V3FFlat(vmath.V3FSub(a.Position, p.Position))
	return vmath.V3FDot(toAgent, vmath.V3FFlat(p.Velocity)) > 0
}

// FlagThreats appends every threatening projectile to the matching agents' queues
func (r Resolver) FlagThreats(projectiles []component.Projectile, agents []component.Agent) {
	for pi := range projectiles {
		p := &projectiles[pi]
		for ai := range agents {
			if r.Threatens(p, &agents[ai]) {
				agents[ai].IncomingThreats = append(agents[ai].IncomingThreats, *p)
			}
		}
	}
}
