package component

import "strconv"

// Team identifies the owning side of an agent or projectile
type Team uint8

const (
	TeamOne Team = iota
	TeamTwo
	TeamThree
	TeamFour
)

// TeamCount is the number of distinct teams
const TeamCount = 4

func (t Team) String() string {
	return "team" + strconv.Itoa(int(t)+1)
}

// AIState is the behaviour mode of an AI-controlled agent
type AIState uint8

const (
	AIIdle AIState = iota
	AIAttack
	AIDefend
	AIRun
)

// AIStateCount counts the non-idle states a random jump can pick from
const AIStateCount = 3

func (s AIState) String() string {
	switch s {
	case AIAttack:
		return "attack"
	case AIDefend:
		return "defend"
	case AIRun:
		return "run"
	default:
		return "idle"
	}
}
