package combat

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
)

// AddShotHeat raises temperature for one fired shot
func AddShotHeat(a *component.Agent) {
	a.Temperature += parameter.HeatPerShot
}

// Cool lowers temperature by elapsed seconds, floored at zero
func Cool(a *component.Agent, dt float64) {
	a.Temperature -= parameter.HeatCoolRate * dt
	if a.Temperature < 0 {
		a.Temperature = 0
	}
}

// CanFire gates fire on weapon heat
func CanFire(a *component.Agent) bool {
	return a.Temperature <= parameter.HeatFireLimit
}
