package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
)

// toneStreamer is a finite single-oscillator voice with a linear frequency
// sweep and a short attack/release envelope to avoid clicks.
type toneStreamer struct {
	wave      int
	startFreq float64
	endFreq   float64
	amplitude float64
	phase     float64
	pos       int
	total     int
	noise     bool
}

const edgeSamples = 240 // 5ms fade at 48kHz

func newVoice(wave int, startFreq, endFreq float64, dur time.Duration, amp float64, noise bool) *toneStreamer {
	total := sampleRate.N(dur)
	if total < 1 {
		total = 1
	}
	return &toneStreamer{
		wave:      wave,
		startFreq: startFreq,
		endFreq:   endFreq,
		amplitude: amp,
		total:     total,
		noise:     noise,
	}
}

// newTone generates a constant-pitch beep.
func newTone(wave int, freq float64, dur time.Duration, amp float64) beep.Streamer {
	return newVoice(wave, freq, freq, dur, amp, false)
}

// newSweep generates a tone gliding linearly from startFreq to endFreq.
func newSweep(wave int, startFreq, endFreq float64, dur time.Duration, amp float64) beep.Streamer {
	return newVoice(wave, startFreq, endFreq, dur, amp, false)
}

// newNoise generates a white-noise burst.
func newNoise(dur time.Duration, amp float64) beep.Streamer {
	return newVoice(waveSine, 0, 0, dur, amp, true)
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var sample float64
		if t.noise {
			sample = rand.Float64()*2 - 1
		} else {
			progress := float64(t.pos) / float64(t.total)
			freq := t.startFreq + (t.endFreq-t.startFreq)*progress

			switch t.wave {
			case waveSquare:
				if math.Mod(t.phase, 1.0) < 0.5 {
					sample = 1.0
				} else {
					sample = -1.0
				}
			default:
				sample = math.Sin(2 * math.Pi * t.phase)
			}

			t.phase += freq / float64(sampleRate)
			if t.phase >= 1.0 {
				t.phase -= 1.0
			}
		}

		sample *= t.amplitude * t.envelope()

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

// envelope ramps the first and last few milliseconds to zero.
func (t *toneStreamer) envelope() float64 {
	if t.pos < edgeSamples {
		return float64(t.pos) / float64(edgeSamples)
	}
	if remaining := t.total - t.pos; remaining < edgeSamples {
		return float64(remaining) / float64(edgeSamples)
	}
	return 1.0
}

func (t *toneStreamer) Err() error {
	return nil
}
