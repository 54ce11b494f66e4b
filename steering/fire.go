package steering

import (
	"math"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
)

// FireDirection returns the shot self should take this tick, DirNone between decisions
// Decisions run once per AIActionRateSeconds; the first candidate matching a rule wins
func (c *Controller) FireDirection(self *component.Agent, dt float64, agents []component.Agent) component.Direction {
	self.ActionTimer += dt
	if self.ActionTimer < parameter.AIActionRateSeconds {
		return component.DirNone
	}
	self.ActionTimer = 0

	if self.Temperature > heatLimit(self.AIState) {
		return component.DirNone
	}

	for i := range agents {
		other := &agents[i]
		if other.ID == self.ID {
			continue
		}
		if other.Team == self.Team && other.FirstHitTeam == self.Team {
			continue
		}
		if dir := aim(self, other); dir != component.DirNone {
			return dir
		}
	}
	return component.DirNone
}

func heatLimit(state component.AIState) float64 {
	if state == component.AIAttack {
		return parameter.AIAttackHeatLimit
	}
	return parameter.AICautiousHeatLimit
}

// aim predicts a straight-line intercept of other, falling back to point-blank alignment
// A target reaching the firing line before the shot still counts as an intercept
func aim(self, other *component.Agent) component.Direction {
	dx := self.Position.X - other.Position.X
	dz := self.Position.Z - other.Position.Z
	tolerance := parameter.PlayerRadius / parameter.BulletVelocity

	// Enemy closing on X, shot travels along Z
	if other.Velocity.X != 0 {
		enemyTime := dx / other.Velocity.X
		bulletTime := math.Abs(dz / parameter.BulletVelocity)
		if enemyTime >= 0 && enemyTime-bulletTime < tolerance {
			return alongZ(dz)
		}
	}

	// Enemy closing on Z, shot travels along X
	if other.Velocity.Z != 0 {
		enemyTime := dz / other.Velocity.Z
		bulletTime := math.Abs(dx / parameter.BulletVelocity)
		if enemyTime >= 0 && enemyTime-bulletTime < tolerance {
			return alongX(dx)
		}
	}

	dist := math.Sqrt(dx*dx + dz*dz)
	if dist < parameter.AICloseRange {
		if math.Abs(dx) < parameter.PlayerRadius {
			return alongZ(dz)
		}
		if math.Abs(dz) < parameter.PlayerRadius {
			return alongX(dx)
		}
	}
	return component.DirNone
}

// alongZ fires toward a target at -dz relative to self
func alongZ(dz float64) component.Direction {
	if dz > 0 {
		return component.DirUp
	}
	return component.DirDown
}

func alongX(dx float64) component.Direction {
	if dx > 0 {
		return component.DirLeft
	}
	return component.DirRight
}
