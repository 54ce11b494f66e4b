package physics

import (
	"github.com/lixenwraith/paintball/vmath"
)

// Ballistic performs one gravity step: v.Y -= g*dt; p = p + v*dt
// Velocity is updated before position so the step is semi-implicit Euler
func Ballistic(pos, vel *vmath.Vec3F, gravity, dt float64) {
	vel.Y -= gravity * dt
	*pos = vmath.V3FAdd(*pos, vmath.V3FScale(*vel, dt))
}

// ClampBoundsXZ clamps the horizontal position to [-bound, bound] and zeroes
// the velocity component pushing past the edge, returns true if clamped
func ClampBoundsXZ(pos, vel *vmath.Vec3F, bound float64) bool {
	cx := clampAxis(&pos.X, &vel.X, bound)
	cz := clampAxis(&pos.Z, &vel.Z, bound)
	return cx || cz
}

func clampAxis(p, v *float64, bound float64) bool {
	if *p < -bound {
		*p = -bound
		if *v < 0 {
			*v = 0
		}
		return true
	}
	if *p > bound {
		*p = bound
		if *v > 0 {
			*v = 0
		}
		return true
	}
	return false
}

// OutOfBounds reports whether pos left the world box or fell below the ground plane
func OutOfBounds(pos vmath.Vec3F, bound, ground float64) bool {
	return pos.X > bound || pos.X < -bound ||
		pos.Z > bound || pos.Z < -bound ||
		pos.Y < ground
}
