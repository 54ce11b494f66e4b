package parameter

// Arena geometry
const (
	// PlayerCount is the default number of agents in a round
	PlayerCount = 4

	// PlayerRadius is the agent collision radius on the horizontal plane
	PlayerRadius = 13.0

	// SpawnRadius is the distance of initial spawns from the arena origin
	SpawnRadius = 100.0

	// ArenaBound is the half-extent agents are clamped to on both horizontal axes
	ArenaBound = 300.0

	// WorldBound is the half-extent past which projectiles expire
	WorldBound = 1000.0

	// GroundLevel is the height of the ground plane
	GroundLevel = 0.0
)

// Agent movement
const (
	// ForceLimit is the maximum analog force, same range as a controller stick
	ForceLimit = 60.0

	// ForceDeadZone is the stick magnitude under which the agent brakes
	ForceDeadZone = 10.0

	// SpeedLimit is the agent top speed at full force
	SpeedLimit = 80.0

	// PlayerInvMass is the inverse agent mass, a = F * invMass
	PlayerInvMass = 2.0
)

// Round lifecycle
const (
	// RoundCount is the number of rounds in a match
	RoundCount = 5

	// RoundEndDelaySeconds is the simulated time between round end and the next round
	RoundEndDelaySeconds = 3.0
)
