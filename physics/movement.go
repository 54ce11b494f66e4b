package physics

import (
	"math"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

// Drive applies an analog force to a ground agent for one tick
// Force magnitude is capped at ForceLimit; under the dead zone the agent brakes
// against its own velocity and stops instead of reversing
// PrevPosition is the caller's responsibility
func Drive(a *component.Agent, force vmath.Vec3F, dt float64) {
	force.Y = 0
	strength := math.Min(vmath.V3FMag(force), parameter.ForceLimit)
	force = vmath.V3FScale(vmath.V3FNormalize(force), strength)

	if strength < parameter.ForceDeadZone {
		brake := vmath.V3FScale(vmath.V3FNormalize(a.Velocity), -parameter.ForceLimit)
		accel := vmath.V3FAdd(a.Acceleration, vmath.V3FScale(brake, parameter.PlayerInvMass))
		target := vmath.V3FAdd(a.Velocity, vmath.V3FScale(accel, dt))

		if vmath.V3FDot(target, a.Velocity) < 0 {
			a.Velocity = vmath.Vec3F{}
		} else {
			a.Velocity = target
		}
	} else {
		accel := vmath.V3FAdd(a.Acceleration, vmath.V3FScale(force, parameter.PlayerInvMass))
		target := vmath.V3FAdd(a.Velocity, vmath.V3FScale(accel, dt))

		speedLimit := strength * parameter.SpeedLimit / parameter.ForceLimit
		a.Velocity = vmath.V3FClampMagnitude(target, speedLimit)
	}

	a.Velocity.Y = 0
	a.Position = vmath.V3FAdd(a.Position, vmath.V3FScale(a.Velocity, dt))
	a.Acceleration = vmath.Vec3F{}
}
