package event

// EventType represents the type of arena event
type EventType int

const (
	// EventRoundStart marks a freshly spawned round
	// Trigger: Arena.NewRound
	// Consumer: Render, Audio, match log | Payload: *RoundStartPayload
	EventRoundStart EventType = iota

	// EventFire is emitted for every accepted fire request
	// Trigger: fire phase of the tick
	// Consumer: Audio | Payload: *FirePayload
	EventFire

	// EventSplash marks where a projectile ended, by hit or by leaving the world
	// Trigger: projectile phase of the tick
	// Consumer: Render decal map | Payload: *SplashPayload
	EventSplash

	// EventHitMark records any projectile-agent contact, friendly included
	// Trigger: projectile phase of the tick
	// Consumer: Render hit marks | Payload: *HitMarkPayload
	EventHitMark

	// EventMark is emitted when a hit sets an agent's first-hit team
	// Trigger: projectile phase of the tick
	// Consumer: Audio | Payload: *HitMarkPayload
	EventMark

	// EventCapture is emitted when a second hit converts an agent
	// Trigger: projectile phase of the tick
	// Consumer: Audio, Render HUD | Payload: *CapturePayload
	EventCapture

	// EventRoundEnd is emitted exactly once per round when all agents share a team
	// Trigger: round-end check of the tick
	// Consumer: Match, Audio, Render HUD | Payload: *RoundEndPayload
	EventRoundEnd
)

var typeNames = [...]string{
	EventRoundStart: "round_start",
	EventFire:       "fire",
	EventSplash:     "splash",
	EventHitMark:    "hit_mark",
	EventMark:       "mark",
	EventCapture:    "capture",
	EventRoundEnd:   "round_end",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// GameEvent is a single arena event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
