package steering

import (
	"math"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

// Movement returns the steering force for self, magnitude ForceLimit or zero
// Runs the state transition, then sums evasion, center pull, random walk and
// flocking. self.IncomingThreats is drained
func (c *Controller) Movement(self *component.Agent, agents []component.Agent) vmath.Vec3F {
	c.Transition(self)
	w := WeightsFor(self)

	var force vmath.Vec3F
	force = vmath.V3FAdd(force, Evasion(self))
	self.IncomingThreats = self.IncomingThreats[:0]

	force = vmath.V3FAdd(force, CenterPull(self, w.Center))
	force = vmath.V3FAdd(force, RandomWalk(self, w.Random))
	force = vmath.V3FAdd(force, Flock(self, agents, w))

	force.Y = 0
	return vmath.V3FScale(vmath.V3FNormalize(force), parameter.ForceLimit)
}

// Evasion pushes self sideways off the line of every enemy threat
// A threat aimed dead center has no perpendicular, a 90 degree turn of its heading is used instead
func Evasion(self *component.Agent) vmath.Vec3F {
	var force vmath.Vec3F
	for i := range self.IncomingThreats {
		threat := &self.IncomingThreats[i]
		if threat.Team == self.Team {
			continue
		}

		diff := vmath.V3FFlat(vmath.V3FSub(self.Position, threat.Position))
		heading := vmath.V3FNormalize(vmath.V3FFlat(threat.Velocity))

		perp := vmath.V3FNormalize(vmath.V3FSub(diff, vmath.V3FProject(diff, heading)))
		if vmath.V3FIsZero(perp) {
			perp = vmath.V3FPerpXZ(heading)
		}
		force = vmath.V3FAdd(force, vmath.V3FScale(perp, parameter.AIEscapeWeight))
	}
	return force
}

// CenterPull is a unit pull toward the arena origin
func CenterPull(self *component.Agent, weight float64) vmath.Vec3F {
	toCenter := vmath.V3FNormalize(vmath.V3FFlat(vmath.V3FScale(self.Position, -1)))
	return vmath.V3FScale(toCenter, weight)
}

// RandomWalk derives a stable wander heading from the two state multipliers
func RandomWalk(self *component.Agent, weight float64) vmath.Vec3F {
	if weight <= 0 {
		return vmath.Vec3F{}
	}
	mid := 1 + parameter.AIRandomRange/2
	dir := vmath.Vec3F{X: self.MultiplierA - mid, Z: self.MultiplierB - mid}
	return vmath.V3FScale(vmath.V3FNormalize(dir), weight)
}

// Flock sums attraction beyond AIAttractRange, repulsion and axis alignment inside
// AICloseRange. Teammates contribute AITeammateFactor of the enemy magnitude
func Flock(self *component.Agent, agents []component.Agent, w Weights) vmath.Vec3F {
	var force vmath.Vec3F
	for i := range agents {
		other := &agents[i]
		if other.ID == self.ID {
			continue
		}

		diff := vmath.V3FFlat(vmath.V3FSub(self.Position, other.Position))
		dist := vmath.V3FMag(diff)
		social := 1.0
		if other.Team == self.Team {
			social = parameter.AITeammateFactor
		}

		if dist > parameter.AIAttractRange {
			scale := math.Min(parameter.AIRangeScaleCap, dist/parameter.AIAttractRange)
			force = vmath.V3FAdd(force, vmath.V3FScale(diff, -scale*w.Attraction*social))
		}

		if dist < parameter.AICloseRange {
			scale := parameter.AIRangeScaleCap
			if dist > 0 {
				scale = math.Min(scale, parameter.AICloseRange/dist)
			}
			force = vmath.V3FAdd(force, vmath.V3FScale(diff, scale*w.Repulsion*social))

			// Step along the minor axis so both agents end up sharing a firing line
			align := vmath.V3FNormalize(diff)
			if math.Abs(diff.X) < math.Abs(diff.Z) {
				align.Z = 0
			} else {
				align.X = 0
			}
			force = vmath.V3FAdd(force, vmath.V3FScale(align, -w.Alignment*social))
		}
	}
	return force
}
