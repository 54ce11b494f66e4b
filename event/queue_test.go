package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/paintball/parameter"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventFire, Tick: uint64(i)})
	}
	require.Equal(t, 5, q.Len())

	got := q.Consume(nil)
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, uint64(i), ev.Tick)
	}
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Consume(nil))
}

func TestQueue_OverwritesOldest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())

	got := q.Consume(nil)
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, uint64(10), got[0].Tick)
	assert.Equal(t, uint64(total-1), got[len(got)-1].Tick)
}

func TestQueue_ConsumeAppends(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventSplash})

	buf := []GameEvent{{Type: EventFire}}
	buf = q.Consume(buf)

	require.Len(t, buf, 2)
	assert.Equal(t, EventSplash, buf[1].Type)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventFire})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(nil), 400)
}

func TestRouter_DispatchByType(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	var fires, all []EventType
	r.Register(HandlerFunc(func(ev GameEvent) { fires = append(fires, ev.Type) }), EventFire)
	r.Register(HandlerFunc(func(ev GameEvent) { all = append(all, ev.Type) }), EventFire, EventCapture)

	q.Push(GameEvent{Type: EventFire})
	q.Push(GameEvent{Type: EventCapture})
	q.Push(GameEvent{Type: EventSplash})

	assert.Equal(t, 3, r.Dispatch())
	assert.Equal(t, []EventType{EventFire}, fires)
	assert.Equal(t, []EventType{EventFire, EventCapture}, all)
	assert.Equal(t, 2, r.HandlerCount(EventFire))
	assert.Equal(t, 0, r.Dispatch())
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "capture", EventCapture.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
