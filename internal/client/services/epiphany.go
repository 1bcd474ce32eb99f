package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dailyepiphany/epiphany/internal/challenge"
	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/provider"
	"github.com/dailyepiphany/epiphany/internal/common"
	"github.com/dailyepiphany/epiphany/internal/logging"
)

// LoadingState is the orchestrator's UI-visible phase.
type LoadingState string

const (
	StateIdle            LoadingState = "idle"
	StateGeneratingText  LoadingState = "generating-text"
	StateGeneratingImage LoadingState = "generating-image"
	StateComplete        LoadingState = "complete"
)

// SubmitResult is what a successful generation hands back to the caller.
type SubmitResult struct {
	// Record is the newly created history record.
	Record models.Epiphany
	// History is the authoritative post-append collection.
	History []models.Epiphany
	// User is the updated identity when a challenge completion advanced the
	// streak; nil when nothing about the identity changed.
	User *models.User
}

// EpiphanyService runs the generation workflow: text, then image, then
// assembly, history append and the optional challenge side effect. The state
// machine never sticks in a loading state: any failure returns it to idle.
type EpiphanyService struct {
	provider provider.Provider
	history  HistoryService
	identity IdentityService
	log      logging.Logger

	// now is a test seam for the clock.
	now func() time.Time
	// onState, when set, observes every state transition.
	onState func(LoadingState)

	mu     sync.Mutex
	state  LoadingState
	lastID int64
}

// NewEpiphanyService wires the orchestrator to its collaborators.
func NewEpiphanyService(p provider.Provider, h HistoryService, id IdentityService, log logging.Logger) *EpiphanyService {
	return &EpiphanyService{
		provider: p,
		history:  h,
		identity: id,
		log:      log,
		now:      time.Now,
		state:    StateIdle,
	}
}

// OnStateChange registers an observer for state transitions, so the UI can
// show the two generation calls as distinct phases.
func (s *EpiphanyService) OnStateChange(fn func(LoadingState)) {
	s.onState = fn
}

// State returns the current phase.
func (s *EpiphanyService) State() LoadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *EpiphanyService) setState(st LoadingState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	if s.onState != nil {
		s.onState(st)
	}
}

// newRecordID issues a creation-ordered timestamp token, bumping past the
// previous one so rapid submissions stay unique.
func (s *EpiphanyService) newRecordID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := t.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

// Submit runs one generation attempt for the given identity.
//
// The active challenge, when non-nil, marks the resulting record and — for a
// signed-in user only — advances the streak. The caller is responsible for
// clearing its active challenge after every attempt, success or failure: a
// challenge is an offer consumed by the attempt, not a commitment.
//
// Failure semantics: empty input is rejected before any provider call and
// causes no state transition; a text-step failure aborts the attempt with
// common.ErrGenerationFailed; an image-step failure merely degrades the
// record to text-only.
func (s *EpiphanyService) Submit(ctx context.Context, input string, category models.Category, user *models.User, settings models.Settings, active *models.DailyChallenge) (*SubmitResult, error) {
	if strings.TrimSpace(input) == "" {
		return nil, common.ErrEmptyObservation
	}

	s.setState(StateGeneratingText)

	content, err := s.provider.GenerateText(ctx, input, category, settings.Style)
	if err != nil {
		// Provider detail stays in the log; the caller gets the generic
		// retry-eligible error.
		s.log.Error(ctx, "text generation failed", "error", err)
		s.setState(StateIdle)
		return nil, common.ErrGenerationFailed
	}

	s.setState(StateGeneratingImage)

	imageData, err := s.provider.GenerateImage(ctx, content.VisualPrompt)
	if err != nil {
		s.log.Debug(ctx, "image generation failed, continuing without image", "error", err)
		imageData = ""
	}

	now := s.now()
	record := models.Epiphany{
		ID:            s.newRecordID(now),
		Date:          now,
		OriginalInput: input,
		Category:      category,
		Content:       content,
		ImageData:     imageData,
		IsChallenge:   active != nil,
	}

	newHistory, err := s.history.Append(ctx, user, record)
	if err != nil {
		s.setState(StateIdle)
		return nil, err
	}

	result := &SubmitResult{Record: record, History: newHistory}

	// Streaks are a signed-in-only concept; a guest completing a challenge
	// records the attempt but advances nothing.
	if active != nil && user != nil {
		updated := challenge.CheckStreak(user, now)
		if err := s.identity.SaveSession(ctx, updated); err != nil {
			s.log.Warn(ctx, "failed to persist streak update", "error", err)
		} else {
			result.User = updated
		}
	}

	s.setState(StateComplete)
	return result, nil
}

// Regenerate runs a fresh attempt with an existing record's input and
// category, producing a brand-new record rather than updating in place.
func (s *EpiphanyService) Regenerate(ctx context.Context, record models.Epiphany, user *models.User, settings models.Settings) (*SubmitResult, error) {
	return s.Submit(ctx, record.OriginalInput, record.Category, user, settings, nil)
}

// Reset returns the state machine to idle, used when the UI leaves a result
// view.
func (s *EpiphanyService) Reset() {
	s.setState(StateIdle)
}
