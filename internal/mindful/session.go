// Package mindful implements the timed mindful-moment session: a countdown
// with three guided modes, a breathing phase cycle and an ambient audio
// drone. The session owns its goroutine schedules; the UI only reads state
// and calls the control methods.
package mindful

import (
	"context"
	"sync"
	"time"
)

// Mode is one of the guided exercises.
type Mode string

const (
	ModeBreathe Mode = "breathe"
	ModeListen  Mode = "listen"
	ModeObserve Mode = "observe"
)

// BreathPhase is the current segment of the box-breathing cycle.
type BreathPhase string

const (
	PhaseInhale BreathPhase = "inhale"
	PhaseHold   BreathPhase = "hold"
	PhaseExhale BreathPhase = "exhale"
)

// phaseUnits is how many countdown units each breath phase lasts.
const phaseUnits = 4

// ModeInfo describes one selectable exercise.
type ModeInfo struct {
	Mode     Mode
	Label    string
	Prompt   string
	Duration int
}

var modes = []ModeInfo{
	{
		Mode:     ModeBreathe,
		Label:    "Breathe",
		Prompt:   "Sync your breath with the circle. Inhale as it expands, exhale as it contracts.",
		Duration: 60,
	},
	{
		Mode:     ModeListen,
		Label:    "Listen",
		Prompt:   "Close your eyes. Focus on the furthest sound you can hear, then the closest.",
		Duration: 60,
	},
	{
		Mode:     ModeObserve,
		Label:    "Observe",
		Prompt:   "Find one small detail in your immediate vicinity. Stare at it until the timer ends.",
		Duration: 60,
	},
}

// seeds maps a completed mode to the observation opener it hands back.
var seeds = map[Mode]string{
	ModeBreathe: "I feel ",
	ModeListen:  "I heard ",
	ModeObserve: "I noticed ",
}

// Modes returns the selectable exercises in display order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modes))
	copy(out, modes)
	return out
}

func modeInfo(m Mode) ModeInfo {
	for _, mi := range modes {
		if mi.Mode == m {
			return mi
		}
	}
	return modes[0]
}

// AudioEngine is the ambient sound the session starts and stops in lockstep
// with the countdown. Implementations must tolerate redundant Stop calls.
type AudioEngine interface {
	Start() error
	Stop()
	Close() error
}

// Session is the mindful-moment controller. One session backs one run of the
// mindful screen; create a fresh one per opening.
//
// All exported methods are safe for concurrent use. The countdown and the
// breath cycle run as two goroutine schedules sharing one teardown: pausing,
// switching mode, reaching zero or closing cancels both.
type Session struct {
	audio AudioEngine
	// tick is the wall-clock length of one countdown unit, injected so tests
	// can run the session at speed.
	tick time.Duration

	mu       sync.Mutex
	mode     Mode
	timeLeft int
	playing  bool
	muted    bool
	phase    BreathPhase
	cancel   context.CancelFunc
	closed   bool
}

// NewSession creates a paused session in breathe mode with a full countdown.
func NewSession(audio AudioEngine, tick time.Duration) *Session {
	return &Session{
		audio:    audio,
		tick:     tick,
		mode:     ModeBreathe,
		timeLeft: modeInfo(ModeBreathe).Duration,
		phase:    PhaseInhale,
	}
}

// Mode returns the active exercise.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ModeInfo returns the active exercise's descriptor.
func (s *Session) ModeInfo() ModeInfo {
	return modeInfo(s.Mode())
}

// TimeLeft returns the remaining countdown units.
func (s *Session) TimeLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeLeft
}

// Playing reports whether the countdown is running.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Phase returns the current breath phase. Meaningful in breathe mode only.
func (s *Session) Phase() BreathPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Muted reports whether ambient audio is suppressed.
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// ToggleMute flips audio suppression. Muting while playing stops the drone;
// unmuting does not start it until the next Play.
func (s *Session) ToggleMute() {
	s.mu.Lock()
	s.muted = !s.muted
	muted := s.muted
	s.mu.Unlock()
	if muted {
		s.audio.Stop()
	}
}

// Toggle starts the countdown if paused and pauses it if running.
func (s *Session) Toggle() {
	if s.Playing() {
		s.Pause()
	} else {
		s.Play()
	}
}

// Play starts the countdown and, unless muted, the ambient drone. Starting
// an exhausted or already-running session is a no-op.
func (s *Session) Play() {
	s.mu.Lock()
	if s.closed || s.playing || s.timeLeft <= 0 {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.phase = PhaseInhale
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	mode := s.mode
	muted := s.muted
	s.mu.Unlock()

	if !muted {
		// Audio failure degrades to a silent session.
		_ = s.audio.Start()
	}

	go s.runCountdown(ctx)
	if mode == ModeBreathe {
		go s.runBreathCycle(ctx)
	}
}

// Pause stops the countdown, the breath cycle and the drone, keeping the
// remaining time.
func (s *Session) Pause() {
	s.mu.Lock()
	s.stopLocked()
	s.mu.Unlock()
	s.audio.Stop()
}

// stopLocked tears down both schedules. Callers hold s.mu.
func (s *Session) stopLocked() {
	s.playing = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// SetMode switches the exercise: everything stops and the countdown resets
// to the new mode's full duration, paused.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	s.stopLocked()
	s.mode = m
	s.timeLeft = modeInfo(m).Duration
	s.phase = PhaseInhale
	s.mu.Unlock()
	s.audio.Stop()
}

// Done reports whether the countdown has reached zero.
func (s *Session) Done() bool {
	return s.TimeLeft() == 0
}

// Complete finishes the session, returning the observation opener for the
// active mode. It succeeds only once the countdown has reached zero.
func (s *Session) Complete() (string, bool) {
	s.mu.Lock()
	if s.timeLeft > 0 {
		s.mu.Unlock()
		return "", false
	}
	s.stopLocked()
	mode := s.mode
	s.mu.Unlock()
	s.audio.Stop()
	return seeds[mode], true
}

// Close tears down the schedules and releases the audio engine. The session
// is unusable afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	s.stopLocked()
	s.closed = true
	s.mu.Unlock()
	s.audio.Stop()
	return s.audio.Close()
}

func (s *Session) runCountdown(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.playing {
				s.mu.Unlock()
				return
			}
			s.timeLeft--
			if s.timeLeft <= 0 {
				s.timeLeft = 0
				s.stopLocked()
				s.mu.Unlock()
				s.audio.Stop()
				return
			}
			s.mu.Unlock()
		}
	}
}

func (s *Session) runBreathCycle(ctx context.Context) {
	order := []BreathPhase{PhaseInhale, PhaseHold, PhaseExhale}
	next := 1
	ticker := time.NewTicker(time.Duration(phaseUnits) * s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.playing {
				s.mu.Unlock()
				return
			}
			s.phase = order[next%len(order)]
			next++
			s.mu.Unlock()
		}
	}
}
