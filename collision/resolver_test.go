package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

func testResolver() Resolver {
	return NewResolver(parameter.PlayerRadius, parameter.AIBulletRange)
}

func TestFindTarget_IgnoresHeight(t *testing.T) {
	agents := []component.Agent{component.NewAgent(0, component.TeamOne, vmath.Vec3F{X: 10})}
	p := component.Projectile{Owner: 5, Position: vmath.Vec3F{X: 12, Y: 25}}

	assert.Equal(t, 0, testResolver().FindTarget(&p, agents))
}

func TestFindTarget_FirstMatchWins(t *testing.T) {
	agents := []component.Agent{
		component.NewAgent(0, component.TeamOne, vmath.Vec3F{X: 100}),
		component.NewAgent(1, component.TeamTwo, vmath.Vec3F{X: 2}),
		component.NewAgent(2, component.TeamThree, vmath.Vec3F{X: -2}),
	}
	p := component.Projectile{Owner: 0, Position: vmath.Vec3F{Y: 20}}

	assert.Equal(t, 1, testResolver().FindTarget(&p, agents))
}

func TestFindTarget_EdgeIsExclusive(t *testing.T) {
	agents := []component.Agent{component.NewAgent(0, component.TeamOne, vmath.Vec3F{})}
	p := component.Projectile{Owner: 1, Position: vmath.Vec3F{X: parameter.PlayerRadius, Y: 10}}

	assert.Equal(t, -1, testResolver().FindTarget(&p, agents))
}

func TestFindTarget_NeverHitsOwner(t *testing.T) {
	r := testResolver()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "agents")
		owner := rapid.IntRange(0, n-1).Draw(t, "owner")

		agents := make([]component.Agent, n)
		for i := range agents {
			pos := vmath.Vec3F{
				X: rapid.Float64Range(-30, 30).Draw(t, "x"),
				Z: rapid.Float64Range(-30, 30).Draw(t, "z"),
			}
			agents[i] = component.NewAgent(component.AgentID(i), component.Team(i%component.TeamCount), pos)
		}
		p := component.Projectile{
			Owner:    component.AgentID(owner),
			Position: agents[owner].Position,
		}

		if idx := r.FindTarget(&p, agents); idx == owner {
			t.Fatalf("projectile hit its owner %d", owner)
		}
	})
}

func TestThreatens(t *testing.T) {
	r := testResolver()
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})

	incoming := component.Projectile{Owner: 1, Team: component.TeamTwo, Position: vmath.Vec3F{X: -50, Y: 25}, Velocity: vmath.Vec3F{X: 300}}
	assert.True(t, r.Threatens(&incoming, &a))

	leaving := incoming
	leaving.Velocity = vmath.Vec3F{X: -300}
	assert.False(t, r.Threatens(&leaving, &a))

	friendly := incoming
	friendly.Team = component.TeamOne
	assert.False(t, r.Threatens(&friendly, &a))

	far := incoming
	far.Position = vmath.Vec3F{X: -500, Y: 25}
	assert.False(t, r.Threatens(&far, &a))
}

func TestFlagThreats_Appends(t *testing.T) {
	agents := []component.Agent{
		component.NewAgent(0, component.TeamOne, vmath.Vec3F{}),
		component.NewAgent(1, component.TeamTwo, vmath.Vec3F{X: -60}),
	}
	projectiles := []component.Projectile{
		{Owner: 1, Team: component.TeamTwo, Position: vmath.Vec3F{X: -40, Y: 25}, Velocity: vmath.Vec3F{X: 300}},
	}

	testResolver().FlagThreats(projectiles, agents)

	assert.Len(t, agents[0].IncomingThreats, 1)
	assert.Empty(t, agents[1].IncomingThreats)
}
