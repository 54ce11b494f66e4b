package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/engine"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

// HoldTicks is how long a movement key press keeps steering
// Terminals report no key release, so held keys are repeats that refresh it
const HoldTicks = 8

// Keyboard is the InputProvider for the single human agent
// HandleKey runs on the event goroutine, Input on the tick goroutine
type Keyboard struct {
	mu    sync.Mutex
	table *KeyTable
	agent component.AgentID

	move     vmath.Vec3F
	moveHold int
	fire     component.Direction
}

func NewKeyboard(agent component.AgentID, table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table, agent: agent}
}

// HandleKey decodes ev, applies arena intents and returns the intent for the caller
// System intents such as quit are left to the caller
func (k *Keyboard) HandleKey(ev *tcell.EventKey) Intent {
	return k.Apply(k.table.Lookup(ev.Key(), ev.Rune()))
}

// Apply records a decoded intent
func (k *Keyboard) Apply(in Intent) Intent {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch in.Type {
	case IntentMove:
		k.move = in.Direction.Vector()
		k.moveHold = HoldTicks
	case IntentStop:
		k.move = vmath.Vec3F{}
		k.moveHold = 0
	case IntentFire:
		k.fire = in.Direction
	}
	return in
}

// Input returns the pending command for the controlled agent
// Any other agent id is reported as uncontrolled
func (k *Keyboard) Input(id component.AgentID) (engine.Command, bool) {
	if id != k.agent {
		return engine.Command{}, false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	var cmd engine.Command
	if k.moveHold > 0 {
		cmd.Move = vmath.V3FScale(k.move, parameter.ForceLimit)
		k.moveHold--
	}
	cmd.Fire = k.fire
	k.fire = component.DirNone
	return cmd, true
}
