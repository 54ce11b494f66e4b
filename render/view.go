// Package render draws arena snapshots to a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/engine"
	"github.com/lixenwraith/paintball/event"
	"github.com/lixenwraith/paintball/parameter"
	"github.com/lixenwraith/paintball/vmath"
)

const (
	hudRows      = 2
	hitMarkTTL   = 12
	decalCell    = 8.0
	decalMaximum = 2048
)

var aiGlyph = [...]rune{
	component.AIIdle:   'o',
	component.AIAttack: 'A',
	component.AIDefend: 'D',
	component.AIRun:    'R',
}

// View renders the arena top-down: X to columns, Z to rows, HUD on the bottom rows
type View struct {
	screen  tcell.Screen
	palette Palette
	bound   float64

	Decals *Decals
	Marks  *HitMarks

	snap engine.Snapshot
}

func NewView(screen tcell.Screen, mode ColorMode, bound float64) *View {
	if bound <= 0 {
		bound = parameter.ArenaBound
	}
	return &View{
		screen:  screen,
		palette: NewPalette(mode),
		bound:   bound,
		Decals:  NewDecals(decalCell, decalMaximum),
		Marks:   NewHitMarks(hitMarkTTL),
	}
}

// EventTypes lists the events the view should be registered for
func (v *View) EventTypes() []event.EventType {
	return []event.EventType{event.EventSplash, event.EventHitMark, event.EventRoundStart}
}

func (v *View) HandleEvent(ev event.GameEvent) {
	v.Decals.HandleEvent(ev)
	v.Marks.HandleEvent(ev)
}

// Project maps a world position to a screen cell inside the field area
func (v *View) Project(p vmath.Vec3F, width, height int) (int, int, bool) {
	fieldH := height - hudRows
	if width <= 0 || fieldH <= 0 {
		return 0, 0, false
	}
	u := (p.X + v.bound) / (2 * v.bound)
	w := (p.Z + v.bound) / (2 * v.bound)
	if u < 0 || u > 1 || w < 0 || w > 1 {
		return 0, 0, false
	}
	col := int(math.Round(u * float64(width-1)))
	row := int(math.Round(w * float64(fieldH-1)))
	return col, row, true
}

// Draw captures a snapshot from arena and renders it at interpolation alpha
func (v *View) Draw(arena *engine.Arena, alpha float64) {
	arena.Snapshot(&v.snap)
	v.DrawSnapshot(&v.snap, alpha)
}

func (v *View) DrawSnapshot(snap *engine.Snapshot, alpha float64) {
	width, height := v.screen.Size()
	v.screen.Clear()

	v.Decals.Each(func(x, z float64, team component.Team) {
		if col, row, ok := v.Project(vmath.Vec3F{X: x, Z: z}, width, height); ok {
			v.screen.SetContent(col, row, '·', nil, tcell.StyleDefault.Foreground(v.palette.Decal(team)))
		}
	})

	for _, p := range snap.Projectiles {
		if col, row, ok := v.Project(p.At(alpha), width, height); ok {
			v.screen.SetContent(col, row, '•', nil, tcell.StyleDefault.Foreground(v.palette.Team(p.Team)))
		}
	}

	for _, a := range snap.Agents {
		col, row, ok := v.Project(a.At(alpha), width, height)
		if !ok {
			continue
		}
		glyph := '@'
		if !a.Human && int(a.AIState) < len(aiGlyph) {
			glyph = aiGlyph[a.AIState]
		}
		style := tcell.StyleDefault.Foreground(v.palette.Team(a.Team)).Bold(true)
		if a.FirstHitTeam != a.Team {
			style = style.Underline(true)
		}
		v.screen.SetContent(col, row, glyph, nil, style)
	}

	for _, m := range v.Marks.Marks() {
		if col, row, ok := v.Project(m.Position, width, height); ok {
			v.screen.SetContent(col, row, '*', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
		}
	}
	v.Marks.Age()

	v.drawHUD(snap, width, height)
	v.screen.Show()
}

func (v *View) drawHUD(snap *engine.Snapshot, width, height int) {
	status := fmt.Sprintf(" round %d  %s  tick %d", snap.Round, snap.State, snap.Tick)
	if snap.State == engine.StateFinished {
		if snap.Result.Ambiguous {
			status += fmt.Sprintf("  %s unified, no winner", snap.Result.Team)
		} else {
			status += fmt.Sprintf("  %s unified, winners %v", snap.Result.Team, snap.Result.Winners)
		}
	}
	v.drawText(0, height-2, width, status, tcell.StyleDefault)

	col := 1
	for _, a := range snap.Agents {
		label := fmt.Sprintf("%d:%s f%d h%.2f ", a.ID, a.Team, a.FragCount, a.Temperature)
		col = v.drawText(col, height-1, width, label, tcell.StyleDefault.Foreground(v.palette.Team(a.Team)))
	}
}

// drawText writes s from col and returns the column after it, clipped to width
func (v *View) drawText(col, row, width int, s string, style tcell.Style) int {
	if row < 0 {
		return col
	}
	for _, r := range s {
		if col >= width {
			break
		}
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}
