package parameter

// Weapon heat
const (
	// HeatPerShot is the temperature added by each shot
	HeatPerShot = 0.25

	// HeatCoolRate is the temperature removed per second
	HeatCoolRate = 0.5

	// HeatFireLimit is the temperature above which human fire is refused
	HeatFireLimit = 1.0
)
