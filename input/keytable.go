package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paintball/component"
)

// KeyTable maps special keys and runes to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable moves with WASD or arrows and fires with IJKL
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyUp:     {IntentMove, component.DirUp},
			tcell.KeyDown:   {IntentMove, component.DirDown},
			tcell.KeyLeft:   {IntentMove, component.DirLeft},
			tcell.KeyRight:  {IntentMove, component.DirRight},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleMute},
			'p': {Type: IntentPause},
			' ': {Type: IntentStop},

			'w': {IntentMove, component.DirUp},
			's': {IntentMove, component.DirDown},
			'a': {IntentMove, component.DirLeft},
			'd': {IntentMove, component.DirRight},

			'i': {IntentFire, component.DirUp},
			'k': {IntentFire, component.DirDown},
			'j': {IntentFire, component.DirLeft},
			'l': {IntentFire, component.DirRight},
		},
	}
}

// Lookup decodes a key, r is only consulted for tcell.KeyRune
func (t *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if in, ok := t.Runes[r]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := t.SpecialKeys[key]; ok {
		return in
	}
	return Intent{}
}
