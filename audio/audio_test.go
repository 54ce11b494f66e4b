package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/paintball/event"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillator_Length(t *testing.T) {
	s := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n, peak := drain(s)

	assert.Equal(t, testRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.9)
}

func TestOscillator_NoiseInRange(t *testing.T) {
	_, peak := drain(NewOscillator(0, 50*time.Millisecond, WaveNoise, testRate))
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)
}

func TestEnvelope_StartsSilent(t *testing.T) {
	d := 50 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.Less(t, buf[1][0], 1.0)
}

func TestBuild_EveryCueTerminates(t *testing.T) {
	for _, c := range []Cue{CueFire, CueMark, CueCapture, CueRoundEnd} {
		t.Run(c.String(), func(t *testing.T) {
			s := Build(c, testRate, 0.5)
			require.NotNil(t, s)
			n, _ := drain(s)
			assert.Greater(t, n, 0)
		})
	}
	assert.Nil(t, Build(CueNone, testRate, 1))
}

func TestBuild_ZeroGainIsSilent(t *testing.T) {
	_, peak := drain(Build(CueCapture, testRate, 0))
	assert.Equal(t, 0.0, peak)
}

func TestCueFor(t *testing.T) {
	assert.Equal(t, CueFire, CueFor(event.GameEvent{Type: event.EventFire}))
	assert.Equal(t, CueCapture, CueFor(event.GameEvent{Type: event.EventCapture}))
	assert.Equal(t, CueRoundEnd, CueFor(event.GameEvent{Type: event.EventRoundEnd}))
	assert.Equal(t, CueNone, CueFor(event.GameEvent{Type: event.EventSplash}))

	for _, et := range EventTypes() {
		assert.NotEqual(t, CueNone, CueFor(event.GameEvent{Type: et}), et.String())
	}
}

func TestPlayer_UninitializedIsSilent(t *testing.T) {
	p := NewPlayer(1)
	assert.False(t, p.Play(CueFire))
	p.HandleEvent(event.GameEvent{Type: event.EventCapture})
	assert.Equal(t, uint64(0), p.Played())
	assert.NotPanics(t, p.Close)
}

func TestPlayer_ToggleMute(t *testing.T) {
	p := NewPlayer(1)
	assert.False(t, p.ToggleMute())
	assert.False(t, p.Play(CueFire))
	assert.True(t, p.ToggleMute())
}
