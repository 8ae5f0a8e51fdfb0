// Package audio plays footstep cues driven by the locomotion engine's
// motion flags. It consumes IsMoving/IsOnRoad; it never feeds back into
// the simulation.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Step cadence in seconds. Road steps come faster because road speed is
// double off-road speed.
const (
	roadStepInterval    = 0.3
	offRoadStepInterval = 0.6
)

// Options holds footstep audio settings.
type Options struct {
	MasterVolume   float64
	FootstepVolume float64
	Muted          bool
}

// Footsteps schedules footstep sounds from per-frame motion flags.
type Footsteps struct {
	mu sync.Mutex

	opts        Options
	initialized bool
	sampleRate  beep.SampleRate

	mixer  *beep.Mixer
	volume *effects.Volume

	step      *beep.Buffer // decoded step sample, nil until loaded
	stepTimer float64
	stepCount int
}

// NewFootsteps creates a footstep player. Call Init before Update to
// actually hear anything; without Init the player still tracks cadence,
// which keeps it usable in headless tests.
func NewFootsteps(opts Options) *Footsteps {
	mixer := &beep.Mixer{}
	return &Footsteps{
		opts:       opts,
		sampleRate: DefaultSampleRate,
		mixer:      mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volumeToLog2(opts.MasterVolume * opts.FootstepVolume),
			Silent:   opts.Muted || opts.MasterVolume*opts.FootstepVolume <= 0,
		},
	}
}

// Init opens the speaker and starts the mixer.
func (f *Footsteps) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(f.sampleRate, f.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(f.volume)

	f.initialized = true
	return nil
}

// Close shuts down playback.
func (f *Footsteps) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		speaker.Clear()
		f.initialized = false
	}
}

// LoadStep decodes a WAV step sample, resampling to the playback rate.
func (f *Footsteps) LoadStep(r io.ReadCloser) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  f.sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate != f.sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, f.sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}

	f.mu.Lock()
	f.step = buf
	f.mu.Unlock()
	return nil
}

// Update advances the cadence clock. While moving, a step is scheduled
// every interval; the interval is shorter on roads. Standing (or
// rotating in place) resets the clock so the next move leads with an
// immediate step.
func (f *Footsteps) Update(dt float64, moving, onRoad bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !moving {
		f.stepTimer = 0
		return
	}

	interval := offRoadStepInterval
	if onRoad {
		interval = roadStepInterval
	}

	f.stepTimer -= dt
	if f.stepTimer > 0 {
		return
	}
	f.stepTimer = interval
	f.stepCount++

	if f.initialized {
		speaker.Lock()
		f.mixer.Add(f.stepStreamer())
		speaker.Unlock()
	}
}

// StepCount returns the number of steps scheduled so far.
func (f *Footsteps) StepCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stepCount
}

// stepStreamer returns the loaded sample, or a synthesized click when
// no WAV was provided. Caller holds f.mu.
func (f *Footsteps) stepStreamer() beep.Streamer {
	if f.step != nil {
		return f.step.Streamer(0, f.step.Len())
	}
	return synthStep(f.sampleRate)
}

// synthStep generates a short decaying click, enough to stand in for a
// footstep without any assets.
func synthStep(sr beep.SampleRate) beep.Streamer {
	total := sr.N(60 * time.Millisecond)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			decay := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*90*float64(pos)/float64(sr)) * decay * decay * 0.4
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// volumeToLog2 converts a 0-1 volume to the base-2 log gain that
// effects.Volume applies (gain = Base^Volume).
func volumeToLog2(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}
