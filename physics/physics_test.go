package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

func TestBallistic_FreeFall(t *testing.T) {
	const (
		dt = 1.0 / 30
		g  = 25.0
		n  = 20
	)
	pos := vmath.Vec3F{Y: 100}
	vel := vmath.Vec3F{}

	wantY := 100.0
	for i := 0; i < n; i++ {
		Ballistic(&pos, &vel, g, dt)
		wantY -= g * float64(i+1) * dt * dt
	}

	assert.InDelta(t, -g*n*dt, vel.Y, 1e-9)
	assert.InDelta(t, wantY, pos.Y, 1e-9)
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 0.0, pos.Z)
}

func TestOutOfBounds(t *testing.T) {
	assert.False(t, OutOfBounds(vmath.Vec3F{X: 10, Y: 1, Z: -10}, 100, 0))
	assert.True(t, OutOfBounds(vmath.Vec3F{X: 101, Y: 1}, 100, 0))
	assert.True(t, OutOfBounds(vmath.Vec3F{Z: -101, Y: 1}, 100, 0))
	assert.True(t, OutOfBounds(vmath.Vec3F{Y: -0.01}, 100, 0))
}

func TestClampBoundsXZ(t *testing.T) {
	pos := vmath.Vec3F{X: 120, Z: -5}
	vel := vmath.Vec3F{X: 10, Z: -3}

	assert.True(t, ClampBoundsXZ(&pos, &vel, 100))
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, -3.0, vel.Z)
}

func TestDrive_AcceleratesUpToSpeedLimit(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	force := vmath.Vec3F{X: 500}

	for i := 0; i < 300; i++ {
		Drive(&a, force, 1.0/30)
	}

	assert.InDelta(t, parameter.SpeedLimit, vmath.V3FMag(a.Velocity), 1e-9)
	assert.Greater(t, a.Position.X, 0.0)
	assert.Equal(t, 0.0, a.Position.Y)
	assert.Equal(t, vmath.Vec3F{}, a.Acceleration)
}

func TestDrive_PartialStickLimitsSpeed(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	force := vmath.Vec3F{Z: parameter.ForceLimit / 2}

	for i := 0; i < 300; i++ {
		Drive(&a, force, 1.0/30)
	}

	assert.InDelta(t, parameter.SpeedLimit/2, vmath.V3FMag(a.Velocity), 1e-9)
}

func TestDrive_BrakesToRestWithoutReversing(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	a.Velocity = vmath.Vec3F{X: 40}

	for i := 0; i < 120; i++ {
		Drive(&a, vmath.Vec3F{}, 1.0/30)
		assert.GreaterOrEqual(t, a.Velocity.X, 0.0)
	}
	assert.Equal(t, vmath.Vec3F{}, a.Velocity)
}
