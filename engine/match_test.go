package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/event"
)

func TestMatch_PlaysAllRounds(t *testing.T) {
	a := NewArena(Options{Agents: 1, Logger: quietLog})
	m := NewMatch(a, 3, 0.1, quietLog)

	for i := 0; i < 100 && !m.Done(); i++ {
		m.Step(testDT)
	}

	require.True(t, m.Done())
	assert.Len(t, m.Results(), 3)
	assert.Equal(t, 3, a.Round())
	assert.Equal(t, []int{0}, m.Wins())

	evs := a.Events().Consume(nil)
	assert.Equal(t, 3, countEvents(evs, event.EventRoundStart))
	assert.Equal(t, 3, countEvents(evs, event.EventRoundEnd))

	a.FixedUpdate(testDT)
	m.Step(testDT)
	assert.Equal(t, 3, a.Round())
}

func TestMatch_WaitsBeforeNextRound(t *testing.T) {
	a := NewArena(Options{Agents: 1, Logger: quietLog})
	m := NewMatch(a, 2, 10*testDT, quietLog)

	m.Step(testDT) // start
	m.Step(testDT) // finish
	require.Equal(t, StateFinished, a.State())

	for i := 0; i < 8; i++ {
		m.Step(testDT)
	}
	assert.Equal(t, 1, a.Round())

	for i := 0; i < 4; i++ {
		m.Step(testDT)
	}
	assert.Equal(t, 2, a.Round())
}

func TestMatch_TalliesWinners(t *testing.T) {
	a, in := duel(t)
	m := NewMatch(a, 1, 0, quietLog)

	in.fire[1] = component.DirLeft
	for i := 0; i < 40; i++ {
		m.Step(testDT)
	}
	in.fire[1] = component.DirLeft
	for i := 0; i < 40 && !m.Done(); i++ {
		m.Step(testDT)
	}

	require.True(t, m.Done())
	assert.Equal(t, []int{0, 1}, m.Wins())
}
