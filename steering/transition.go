package steering

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
)

// Transition runs the per-tick state machine for an AI agent
// A random jump and the state rules both pass through the stability gate
func (c *Controller) Transition(a *component.Agent) {
	if c.rng.Float64() < parameter.AITemperature {
		next := component.AIState(1 + c.rng.IntN(component.AIStateCount))
		c.tryChangeState(a, next)
	}

	flagged := a.FirstHitTeam == a.Team
	switch a.AIState {
	case component.AIAttack:
		if a.Temperature > parameter.AIOverheat || !flagged {
			c.tryChangeState(a, component.AIDefend)
		}
	case component.AIDefend:
		if a.Temperature < parameter.AIOverheat && flagged {
			c.tryChangeState(a, component.AIAttack)
		}
	}
}

// tryChangeState accepts a change only when a fresh draw clears AIStability
// Acceptance re-rolls both multipliers in [1, 1+AIRandomRange]
func (c *Controller) tryChangeState(a *component.Agent, next component.AIState) bool {
	if c.rng.Float64() < parameter.AIStability {
		return false
	}
	a.AIState = next
	a.MultiplierA = 1 + parameter.AIRandomRange*c.rng.Float64()
	a.MultiplierB = 1 + parameter.AIRandomRange*c.rng.Float64()
	return true
}
