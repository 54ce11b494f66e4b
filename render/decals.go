package render

import (
	"math"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/event"
)

// Cell is a quantised ground position
type Cell struct {
	X, Z int
}

// Decals is the ground splash map fed by Splash events
// The newest splash owns a cell; beyond capacity the oldest cells fade first
type Decals struct {
	cellSize float64
	capacity int
	cells    map[Cell]component.Team
	order    []Cell
}

func NewDecals(cellSize float64, capacity int) *Decals {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Decals{
		cellSize: cellSize,
		capacity: capacity,
		cells:    make(map[Cell]component.Team, capacity),
		order:    make([]Cell, 0, capacity),
	}
}

func (d *Decals) cellOf(x, z float64) Cell {
	return Cell{X: int(math.Floor(x / d.cellSize)), Z: int(math.Floor(z / d.cellSize))}
}

// Splash paints the cell under (x, z) with team
func (d *Decals) Splash(x, z float64, team component.Team) {
	c := d.cellOf(x, z)
	if _, ok := d.cells[c]; !ok {
		if d.capacity > 0 && len(d.order) >= d.capacity {
			delete(d.cells, d.order[0])
			d.order = d.order[1:]
		}
		d.order = append(d.order, c)
	}
	d.cells[c] = team
}

// At returns the team painted under (x, z)
func (d *Decals) At(x, z float64) (component.Team, bool) {
	t, ok := d.cells[d.cellOf(x, z)]
	return t, ok
}

// Each visits painted cells as world-space cell centers
func (d *Decals) Each(fn func(x, z float64, team component.Team)) {
	for _, c := range d.order {
		fn((float64(c.X)+0.5)*d.cellSize, (float64(c.Z)+0.5)*d.cellSize, d.cells[c])
	}
}

func (d *Decals) Len() int { return len(d.cells) }

func (d *Decals) Clear() {
	clear(d.cells)
	d.order = d.order[:0]
}

// HandleEvent paints on Splash and wipes the map on RoundStart
func (d *Decals) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSplash:
		if p, ok := ev.Payload.(*event.SplashPayload); ok {
			d.Splash(p.X, p.Z, p.Team)
		}
	case event.EventRoundStart:
		d.Clear()
	}
}
