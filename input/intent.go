// Package input turns tcell key events into arena commands for one human agent
package input

import "github.com/lixenwraith/paintball/component"

// IntentType discriminates what a key press asks for
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // Esc, Ctrl+C, q
	IntentToggleMute // m
	IntentPause      // p

	// Arena
	IntentMove // WASD, arrows
	IntentFire // IJKL
	IntentStop // space
)

// Intent is a decoded key press
type Intent struct {
	Type      IntentType
	Direction component.Direction
}
