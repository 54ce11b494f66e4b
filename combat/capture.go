package combat

import "github.com/lixenwraith/paintball/component"

// HitOutcome is the effect of a single projectile hit on its victim
type HitOutcome uint8

const (
	// OutcomeFriendly is a hit from the victim's own team, re-flags without damage
	OutcomeFriendly HitOutcome = iota
	// OutcomeMarked is a first enemy hit, sets FirstHitTeam only
	OutcomeMarked
	// OutcomeCaptured flips the victim to the hitting team
	OutcomeCaptured
)

func (o HitOutcome) String() string {
	switch o {
	case OutcomeFriendly:
		return "friendly"
	case OutcomeMarked:
		return "marked"
	case OutcomeCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// ResolveHit is the capture rule as a pure function of (team, firstHit, hitting)
// A team must land two marking hits in a row to flip ownership
func ResolveHit(team, firstHit, hitting component.Team) (newTeam, newFirstHit component.Team, outcome HitOutcome) {
	switch {
	case team == hitting:
		return team, hitting, OutcomeFriendly
	case firstHit == hitting:
		return hitting, hitting, OutcomeCaptured
	default:
		return team, hitting, OutcomeMarked
	}
}

// ApplyHit resolves a hit by team hitting on victim and updates frag counts
// firer may be nil when the owner is unknown
func ApplyHit(victim, firer *component.Agent, hitting component.Team) HitOutcome {
	team, firstHit, outcome := ResolveHit(victim.Team, victim.FirstHitTeam, hitting)
	victim.Team = team
	victim.FirstHitTeam = firstHit

	if outcome == OutcomeCaptured {
		victim.FragCount = 0
		if firer != nil {
			firer.FragCount++
		}
	}
	return outcome
}
