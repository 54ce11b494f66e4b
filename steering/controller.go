// Package steering computes movement force and fire intent for AI agents
// Output force is an analog stick equivalent consumed by physics.Drive
package steering

import (
	"github.com/lixenwraith/paintball/vmath"
)

// Controller holds the shared random stream used by every AI decision
// Not safe for concurrent use; the tick owns it
type Controller struct {
	rng vmath.Rand
}

func NewController(rng vmath.Rand) *Controller {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Controller{rng: rng}
}
