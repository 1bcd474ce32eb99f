package mindful

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100

	// The drone is two sine tones a few hertz apart; played together they
	// produce a slow theta-range beat.
	toneBaseHz = 100
	toneBeatHz = 6

	droneGain = 0.1

	fadeIn  = 2 * time.Second
	fadeOut = 1 * time.Second
)

// BinauralEngine plays the ambient two-tone drone through the system audio
// device. It implements AudioEngine.
type BinauralEngine struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *toneReader

	mu        sync.Mutex
	fadeTimer *time.Timer
}

// NewBinauralEngine opens the audio device. The returned engine holds the
// device until Close.
func NewBinauralEngine() (*BinauralEngine, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	tone := newToneReader(sampleRate, toneBaseHz, toneBaseHz+toneBeatHz)
	return &BinauralEngine{
		ctx:    ctx,
		player: ctx.NewPlayer(tone),
		tone:   tone,
	}, nil
}

// Start ramps the drone in over the attack window.
func (e *BinauralEngine) Start() error {
	e.mu.Lock()
	if e.fadeTimer != nil {
		e.fadeTimer.Stop()
		e.fadeTimer = nil
	}
	e.mu.Unlock()

	e.tone.rampTo(droneGain, fadeIn)
	if !e.player.IsPlaying() {
		e.player.Play()
	}
	return nil
}

// Stop ramps the drone out, then pauses the player once it is silent.
// Stopping a stopped engine is a no-op.
func (e *BinauralEngine) Stop() {
	e.tone.rampTo(0, fadeOut)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fadeTimer != nil {
		e.fadeTimer.Stop()
	}
	e.fadeTimer = time.AfterFunc(fadeOut, func() {
		if e.player.IsPlaying() {
			e.player.Pause()
		}
	})
}

// Close releases the player. The underlying device context has no close;
// it is reclaimed with the process.
func (e *BinauralEngine) Close() error {
	e.mu.Lock()
	if e.fadeTimer != nil {
		e.fadeTimer.Stop()
		e.fadeTimer = nil
	}
	e.mu.Unlock()
	return e.player.Close()
}

// toneReader synthesizes the two-tone drone as 16-bit little-endian mono
// PCM. Gain moves linearly toward a target so starts and stops never click.
type toneReader struct {
	sampleRate float64
	stepA      float64
	stepB      float64

	mu     sync.Mutex
	phaseA float64
	phaseB float64
	gain   float64
	target float64
	// delta is the per-sample gain change while ramping.
	delta float64
}

func newToneReader(rate int, freqA, freqB float64) *toneReader {
	return &toneReader{
		sampleRate: float64(rate),
		stepA:      2 * math.Pi * freqA / float64(rate),
		stepB:      2 * math.Pi * freqB / float64(rate),
	}
}

func (r *toneReader) rampTo(target float64, over time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
	samples := r.sampleRate * over.Seconds()
	if samples < 1 {
		samples = 1
	}
	r.delta = math.Abs(target-r.gain) / samples
}

func (r *toneReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p) / 2 * 2
	for i := 0; i < n; i += 2 {
		if r.gain < r.target {
			r.gain = math.Min(r.gain+r.delta, r.target)
		} else if r.gain > r.target {
			r.gain = math.Max(r.gain-r.delta, r.target)
		}

		v := (math.Sin(r.phaseA) + math.Sin(r.phaseB)) / 2 * r.gain
		r.phaseA += r.stepA
		r.phaseB += r.stepB

		s := int16(v * math.MaxInt16)
		p[i] = byte(s)
		p[i+1] = byte(s >> 8)
	}

	if r.phaseA > 2*math.Pi {
		r.phaseA = math.Mod(r.phaseA, 2*math.Pi)
	}
	if r.phaseB > 2*math.Pi {
		r.phaseB = math.Mod(r.phaseB, 2*math.Pi)
	}
	return n, nil
}
