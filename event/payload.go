package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

// RoundStartPayload announces the round id and agent count
type RoundStartPayload struct {
	Round  int
	ID     uuid.UUID
	Agents int
}

// FirePayload describes an accepted shot
type FirePayload struct {
	Agent     component.AgentID
	Team      component.Team
	Direction component.Direction
	Position  vmath.Vec3F
}

// SplashPayload is a ground decal position in the XZ plane
type SplashPayload struct {
	X, Z float64
	Team component.Team
}

// HitMarkPayload records projectile-agent contact at the projectile position
type HitMarkPayload struct {
	Position vmath.Vec3F
	Firer    component.AgentID
	Victim   component.AgentID
	Team     component.Team
}

// CapturePayload describes a team conversion
type CapturePayload struct {
	Victim   component.AgentID
	Firer    component.AgentID
	Team     component.Team
	PrevTeam component.Team
}

// RoundEndPayload carries the unified team and the agents not captured in the final tick
// Ambiguous is set when no winner could be singled out
type RoundEndPayload struct {
	Round     int
	ID        uuid.UUID
	Team      component.Team
	Winners   []component.AgentID
	Ambiguous bool
}
