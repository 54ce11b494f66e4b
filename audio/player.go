package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/paintball/event"
)

// SampleRate is the speaker output rate
const SampleRate = beep.SampleRate(48000)

// maxVoices caps concurrently mixed cues
const maxVoices = 16

// Player mixes event cues into the system speaker
// Until Init succeeds every call is a no-op
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64
}

func NewPlayer(master float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		master: master,
	}
}

// Init opens the speaker with a 100ms buffer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// HandleEvent plays the cue for ev
func (p *Player) HandleEvent(ev event.GameEvent) {
	p.Play(CueFor(ev))
}

// Play queues a cue, dropping it when muted or saturated; reports whether it was queued
func (p *Player) Play(c Cue) bool {
	if c == CueNone || p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}

	s := Build(c, SampleRate, p.master)
	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return false
	}
	p.mixer.Add(s)
	p.played.Add(1)
	return true
}

// ToggleMute flips the mute state, returns true when sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// Played counts cues handed to the mixer
func (p *Player) Played() uint64 { return p.played.Load() }

// Close silences the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
