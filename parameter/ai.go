package parameter

// AI decision cadence and randomness
const (
	// AIActionRateSeconds is the minimum interval between fire decisions
	AIActionRateSeconds = 0.25

	// AIStability is the probability a requested state change is rejected
	AIStability = 0.9

	// AITemperature is the per-tick chance of a random state jump
	AITemperature = 0.005

	// AIRandomRange is the spread of the per-agent behaviour multipliers, rolled in [1, 1+range]
	AIRandomRange = 0.5
)

// AI heat thresholds
const (
	// AIAttackHeatLimit is the temperature above which an attacking agent holds fire
	AIAttackHeatLimit = 0.8

	// AICautiousHeatLimit is the temperature above which a non-attacking agent holds fire
	AICautiousHeatLimit = 0.1

	// AIOverheat is the temperature that pushes ATTACK to DEFEND and gates DEFEND to ATTACK
	AIOverheat = 1.0
)

// AI ranges
const (
	// AICloseRange is the separation under which repulsion, alignment and point-blank fire apply
	AICloseRange = 5 * PlayerRadius

	// AIAttractRange is the separation over which attraction applies
	AIAttractRange = 12 * PlayerRadius

	// AIBulletRange is the squared distance within which a projectile counts as incoming
	AIBulletRange = 64 * PlayerRadius * PlayerRadius
)

// AI force shaping
const (
	// AIEscapeWeight scales the sidestep away from an incoming projectile line
	AIEscapeWeight = 100.0

	// AIRangeScaleCap caps the distance-proportional scale of attraction and repulsion
	AIRangeScaleCap = 1.2

	// AITeammateFactor scales social forces toward agents of the same team
	AITeammateFactor = 0.5
)

// Per-state blend weights, attraction/repulsion/alignment are further scaled by the agent multipliers
const (
	AIAttackCenter     = 0.5
	AIAttackAttraction = 0.4
	AIAttackRepulsion  = 0.3
	AIAttackAlignment  = 0.1
	AIAttackRandom     = 0.1

	AIDefendCenter     = 0.8
	AIDefendAttraction = 0.2
	AIDefendRepulsion  = 0.5
	AIDefendAlignment  = -0.1
	AIDefendRandom     = 0.1

	AIRunCenter     = 0.2
	AIRunAttraction = 0.001
	AIRunRepulsion  = 0.001
	AIRunAlignment  = 0.0
	AIRunRandom     = 1.0
)
