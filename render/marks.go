package render

import (
	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/event"
	"github.com/lixenwraith/paintball/vmath"
)

// HitMark is a short-lived marker where a projectile struck an agent
type HitMark struct {
	Position vmath.Vec3F
	Firer    component.AgentID
	Team     component.Team
	TTL      int
}

// HitMarks keeps recent hits for a fixed number of frames
type HitMarks struct {
	lifetime int
	marks    []HitMark
}

func NewHitMarks(lifetime int) *HitMarks {
	return &HitMarks{lifetime: lifetime}
}

func (h *HitMarks) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventHitMark:
		if p, ok := ev.Payload.(*event.HitMarkPayload); ok {
			h.marks = append(h.marks, HitMark{Position: p.Position, Firer: p.Firer, Team: p.Team, TTL: h.lifetime})
		}
	case event.EventRoundStart:
		h.marks = h.marks[:0]
	}
}

// Age decrements every mark and drops the expired ones
func (h *HitMarks) Age() {
	kept := h.marks[:0]
	for _, m := range h.marks {
		m.TTL--
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	h.marks = kept
}

func (h *HitMarks) Marks() []HitMark { return h.marks }
