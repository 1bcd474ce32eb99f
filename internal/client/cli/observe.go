package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/challenge"
	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/services"
	"github.com/dailyepiphany/epiphany/internal/common"
)

// getSimpleText and getSeededText are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSeededText = GetSeededText
var getChoice = GetChoice

// Observe collects an observation and runs the generation workflow. The seed,
// when non-empty, pre-fills the input (used by the mindful session).
//
// An accepted challenge is consumed by the attempt whatever its outcome; it
// never carries over to a second try.
func (a *App) Observe(ctx context.Context, seed string) error {
	if a.activeChallenge != nil {
		printlnFn(fmt.Sprintf("Today's challenge — %s: %s", a.activeChallenge.Theme, a.activeChallenge.Prompt))
	}

	input, err := getSeededText(a.reader, "What did you observe?", seed, a.out)
	if err != nil {
		return err
	}

	categories := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, string(c))
	}
	picked, err := getChoice(a.reader, "Category:", categories, string(models.CategoryOther), a.out)
	if err != nil {
		return err
	}

	active := a.activeChallenge
	a.activeChallenge = nil

	result, err := a.epiphany.Submit(ctx, input, models.ParseCategory(picked), a.user, a.activeSettings, active)
	if err != nil {
		a.epiphany.Reset()
		switch {
		case errors.Is(err, common.ErrEmptyObservation):
			printlnFn("Write at least a few words about what you observed.")
		case errors.Is(err, common.ErrGenerationFailed):
			printlnFn("The cosmos is silent right now. Try again in a moment.")
		default:
			return err
		}
		return nil
	}

	a.afterGeneration(result, active != nil)
	return nil
}

// Regen reruns generation for the most recent result, producing a new record.
func (a *App) Regen(ctx context.Context) error {
	if a.lastResult == nil {
		printlnFn("Nothing to regenerate yet. Try 'observe' first.")
		return nil
	}

	result, err := a.epiphany.Regenerate(ctx, *a.lastResult, a.user, a.activeSettings)
	if err != nil {
		a.epiphany.Reset()
		if errors.Is(err, common.ErrGenerationFailed) {
			printlnFn("The cosmos is silent right now. Try again in a moment.")
			return nil
		}
		return err
	}

	a.afterGeneration(result, false)
	return nil
}

// afterGeneration applies a successful submit to the session state and shows
// the result.
func (a *App) afterGeneration(result *services.SubmitResult, wasChallenge bool) {
	a.lastResult = &result.Record

	if result.User != nil {
		prevBadges := 0
		if a.user != nil {
			prevBadges = len(a.user.Badges)
		}
		a.user = result.User
		printlnFn(fmt.Sprintf("Challenge complete! Streak: %d day(s)", a.user.Streak))
		for _, b := range challenge.BadgesFor(a.user.Badges)[prevBadges:] {
			printlnFn(fmt.Sprintf("New badge unlocked: %s %s — %s", b.Icon, b.Name, b.Description))
		}
	} else if wasChallenge && a.user == nil {
		printlnFn("Challenge recorded. Sign in to start building a streak.")
	}

	printlnFn(renderRecord(result.Record))
	a.epiphany.Reset()
}
