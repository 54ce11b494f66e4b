package projectile

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

// FireRequest is a queued shot waiting for a free projectile slot
type FireRequest struct {
	Owner    component.AgentID
	Team     component.Team
	Position vmath.Vec3F
	Velocity vmath.Vec3F
}

// Pool owns live projectiles and the pending fire queue
// Live slots are index-stable until Retire, which swaps the last slot in
// Pending requests are FIFO; a request arriving while the queue is full is dropped
type Pool struct {
	live     []component.Projectile
	capacity int

	pending    []FireRequest
	pendingCap int

	nextID  uint32
	dropped uint64
}

func NewPool(capacity, pendingCapacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	if pendingCapacity < 1 {
		pendingCapacity = 1
	}
	return &Pool{
		live:       make([]component.Projectile, 0, capacity),
		capacity:   capacity,
		pending:    make([]FireRequest, 0, pendingCapacity),
		pendingCap: pendingCapacity,
	}
}

// Fire queues a shot, returns false when the request was dropped
func (p *Pool) Fire(req FireRequest) bool {
	if len(p.pending) >= p.pendingCap || vmath.V3FIsZero(req.Velocity) {
		p.dropped++
		return false
	}
	p.pending = append(p.pending, req)
	return true
}

// Spawn moves pending requests into free slots oldest first, returns the number spawned
// Requests that find no free slot stay queued for the next tick
func (p *Pool) Spawn() int {
	n := 0
	for n < len(p.pending) && len(p.live) < p.capacity {
		req := p.pending[n]
		p.nextID++
		p.live = append(p.live, component.Projectile{
			ID:           p.nextID,
			Owner:        req.Owner,
			Team:         req.Team,
			Position:     req.Position,
			PrevPosition: req.Position,
			Velocity:     req.Velocity,
		})
		n++
	}
	if n > 0 {
		remaining := copy(p.pending, p.pending[n:])
		p.pending = p.pending[:remaining]
	}
	return n
}

// At returns a pointer to live slot i, valid until the next Retire or Spawn
func (p *Pool) At(i int) *component.Projectile {
	return &p.live[i]
}

// Retire removes live slot i by swapping in the last slot
// Callers iterating by index must not advance i after a Retire
func (p *Pool) Retire(i int) component.Projectile {
	last := len(p.live) - 1
	retired := p.live[i]
	p.live[i] = p.live[last]
	p.live[last] = component.Projectile{}
	p.live = p.live[:last]
	return retired
}

// Live returns the live projectiles, read-only
func (p *Pool) Live() []component.Projectile {
	return p.live
}

func (p *Pool) Len() int { return len(p.live) }

func (p *Pool) Pending() int { return len(p.pending) }

// Dropped returns the number of fire requests refused since creation
func (p *Pool) Dropped() uint64 { return p.dropped }

// Reset clears live and pending projectiles, ids keep increasing
func (p *Pool) Reset() {
	clear(p.live)
	p.live = p.live[:0]
	p.pending = p.pending[:0]
}
