package steering

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
)

// Weights is the per-state force blend
type Weights struct {
	Center     float64
	Attraction float64
	Repulsion  float64
	Alignment  float64
	Random     float64
}

// WeightsFor returns the blend for an agent's current state and multipliers
func WeightsFor(a *component.Agent) Weights {
	mA, mB := a.MultiplierA, a.MultiplierB
	switch a.AIState {
	case component.AIAttack:
		return Weights{
			Center:     parameter.AIAttackCenter,
			Attraction: parameter.AIAttackAttraction * mA,
			Repulsion:  parameter.AIAttackRepulsion * mB,
			Alignment:  parameter.AIAttackAlignment * mA,
			Random:     parameter.AIAttackRandom,
		}
	case component.AIDefend:
		return Weights{
			Center:     parameter.AIDefendCenter,
			Attraction: parameter.AIDefendAttraction * mB,
			Repulsion:  parameter.AIDefendRepulsion * mA,
			Alignment:  parameter.AIDefendAlignment * mA,
			Random:     parameter.AIDefendRandom,
		}
	case component.AIRun:
		return Weights{
			Center:     parameter.AIRunCenter,
			Attraction: parameter.AIRunAttraction * mB,
			Repulsion:  parameter.AIRunRepulsion * mA,
			Alignment:  parameter.AIRunAlignment,
			Random:     parameter.AIRunRandom,
		}
	default:
		return Weights{Random: parameter.AIAttackRandom}
	}
}
