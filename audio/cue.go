// Package audio plays short synthesised cues for arena events through beep
package audio

import "github.com/lixenwraith/paintball/event"

// Cue identifies a sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CueFire
	CueMark
	CueCapture
	CueRoundEnd
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueMark:
		return "mark"
	case CueCapture:
		return "capture"
	case CueRoundEnd:
		return "round_end"
	default:
		return "none"
	}
}

// CueFor maps an arena event to its cue, CueNone for silent events
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventFire:
		return CueFire
	case event.EventMark:
		return CueMark
	case event.EventCapture:
		return CueCapture
	case event.EventRoundEnd:
		return CueRoundEnd
	default:
		return CueNone
	}
}

// EventTypes lists the events a Player should be registered for
func EventTypes() []event.EventType {
	return []event.EventType{event.EventFire, event.EventMark, event.EventCapture, event.EventRoundEnd}
}
