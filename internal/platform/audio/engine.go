// Package audio synthesizes the game's sound effects with beep.
// The simulation emits semantic events; this package turns them into
// square-wave arcade noises. Everything is generated, no sample assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-chomper/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and dispatches simulation events to generated
// sounds. A disabled engine swallows everything, so callers never need to
// branch on audio availability.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewEngine creates an audio engine. It does not touch the audio device
// until Initialize is called.
func NewEngine(enabled bool, volume float64) *Engine {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Engine{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Initialize opens the speaker. Safe to call more than once.
// A failure leaves the engine disabled rather than propagating: the game
// plays fine silent.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		e.enabled = false
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences and releases the mixer.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// Handle plays the sounds for one tick's worth of simulation events.
func (e *Engine) Handle(events []core.Event) {
	if len(events) == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	for _, ev := range events {
		if s := e.streamerFor(ev); s != nil {
			e.mixer.Add(s)
		}
	}
}

// streamerFor maps a simulation event to its generated sound.
func (e *Engine) streamerFor(ev core.Event) beep.Streamer {
	v := e.volume
	switch ev {
	case core.EventChompA:
		return newTone(waveSquare, 440, 40*time.Millisecond, 0.25*v)
	case core.EventChompB:
		return newTone(waveSquare, 349, 40*time.Millisecond, 0.25*v)
	case core.EventPowerActivated:
		return newSweep(waveSquare, 200, 620, 300*time.Millisecond, 0.3*v)
	case core.EventFruitAwarded:
		return newSweep(waveSine, 620, 980, 180*time.Millisecond, 0.35*v)
	case core.EventGhostEaten:
		return newSweep(waveSquare, 240, 1100, 260*time.Millisecond, 0.35*v)
	case core.EventPlayerDeath:
		return newSweep(waveSquare, 780, 90, 800*time.Millisecond, 0.35*v)
	case core.EventLevelComplete:
		return beep.Seq(
			newTone(waveSquare, 523, 120*time.Millisecond, 0.3*v),
			newTone(waveSquare, 659, 120*time.Millisecond, 0.3*v),
			newTone(waveSquare, 784, 200*time.Millisecond, 0.3*v),
		)
	case core.EventExtraLife:
		return newTone(waveSine, 1318, 400*time.Millisecond, 0.35*v)
	case core.EventReadyCue:
		return beep.Seq(
			newTone(waveSquare, 880, 100*time.Millisecond, 0.25*v),
			newTone(waveSquare, 1108, 160*time.Millisecond, 0.25*v),
		)
	case core.EventSiren:
		return newSweep(waveSine, 320, 520, 600*time.Millisecond, 0.2*v)
	case core.EventIntroBeep:
		return newTone(waveSquare, 660, 100*time.Millisecond, 0.25*v)
	case core.EventGhostRollBeep1:
		return newTone(waveSquare, 440, 150*time.Millisecond, 0.3*v)
	case core.EventGhostRollBeep2:
		return newTone(waveSquare, 554, 150*time.Millisecond, 0.3*v)
	case core.EventGhostRollBeep3:
		return newTone(waveSquare, 660, 150*time.Millisecond, 0.3*v)
	case core.EventGhostRollBeep4:
		return newTone(waveSquare, 784, 150*time.Millisecond, 0.3*v)
	case core.EventGlitch:
		return newNoise(80*time.Millisecond, 0.2*v)
	default:
		return nil
	}
}
