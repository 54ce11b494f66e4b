package projectile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

func TestSimulator_VerticalDropMatchesKinematics(t *testing.T) {
	const (
		dt = 1.0 / 60
		h  = 50.0
		n  = 30
	)
	sim := Simulator{Gravity: 9.8, Bound: 1000}
	p := component.Projectile{Position: vmath.Vec3F{Y: h}, Velocity: vmath.Vec3F{Y: 0}}

	sum := 0.0
	for i := 1; i <= n; i++ {
		require.True(t, sim.Step(&p, dt), "expired at tick %d", i)
		sum += -sim.Gravity * float64(i) * dt * dt
	}

	assert.InDelta(t, -sim.Gravity*n*dt, p.Velocity.Y, 1e-9)
	assert.InDelta(t, h+sum, p.Position.Y, 1e-9)
}

func TestSimulator_StepIsBitReproducible(t *testing.T) {
	sim := NewSimulator(0)
	run := func() vmath.Vec3F {
		p := component.Projectile{Position: vmath.Vec3F{X: 1.5, Y: 25, Z: -3}, Velocity: vmath.Vec3F{X: 300, Z: 12.25}}
		for i := 0; i < 40; i++ {
			sim.Step(&p, 1.0/30)
		}
		return p.Position
	}

	assert.Equal(t, run(), run())
}

func TestSimulator_ExpiresBelowGroundAndOutOfBounds(t *testing.T) {
	sim := Simulator{Gravity: 25, Bound: 100}

	low := component.Projectile{Position: vmath.Vec3F{Y: 0.01}, Velocity: vmath.Vec3F{X: 1}}
	assert.False(t, sim.Step(&low, 0.1))

	far := component.Projectile{Position: vmath.Vec3F{X: 99, Y: 25}, Velocity: vmath.Vec3F{X: 300}}
	assert.False(t, sim.Step(&far, 0.1))
	assert.Equal(t, 99.0, far.PrevPosition.X)

	ok := component.Projectile{Position: vmath.Vec3F{Y: 25}, Velocity: vmath.Vec3F{X: 300}}
	assert.True(t, sim.Step(&ok, 0.1))
}
