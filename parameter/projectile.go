package parameter

// Projectile ballistics
const (
	// BulletVelocity is the horizontal muzzle speed
	BulletVelocity = 300.0

	// BulletHeight is the launch height above the ground plane
	BulletHeight = 25.0

	// Gravity is the downward acceleration magnitude applied to projectiles
	Gravity = 25.0
)

// Projectile pool limits
const (
	// ProjectileCapacity is the number of simultaneously live projectiles
	ProjectileCapacity = 64

	// PendingCapacity is the number of fire requests that can wait for a free slot
	PendingCapacity = 16
)
