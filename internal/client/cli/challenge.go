package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dailyepiphany/epiphany/internal/challenge"
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// Challenge shows today's challenge and manages acceptance:
//
//	challenge         — show today's theme and prompt
//	challenge start   — accept it; the next observe counts as the attempt
//	challenge cancel  — put the accepted challenge back
func (a *App) Challenge(ctx context.Context, sub string) error {
	today := challenge.GetDailyChallenge(nowFn())

	switch sub {
	case "":
		printlnFn(fmt.Sprintf("Today's challenge — %s: %s", today.Theme, today.Prompt))
		if a.user != nil && a.user.LastChallengeDate == today.Date {
			printlnFn("Already completed today. Come back tomorrow!")
		} else if a.activeChallenge != nil {
			printlnFn("Accepted. Your next 'observe' counts as the attempt.")
		} else {
			printlnFn("Type 'challenge start' to accept it.")
		}

	case "start":
		if a.user != nil && a.user.LastChallengeDate == today.Date {
			printlnFn("Already completed today. Come back tomorrow!")
			return nil
		}
		a.activeChallenge = &today
		printlnFn(fmt.Sprintf("Challenge accepted — %s: %s", today.Theme, today.Prompt))
		printlnFn("Your next 'observe' counts as the attempt.")

	case "cancel":
		a.activeChallenge = nil
		printlnFn("Challenge set aside.")

	default:
		printlnFn("Usage: challenge [start|cancel]")
	}
	return nil
}

// Streak prints the signed-in user's streak state.
func (a *App) Streak(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Streaks are tracked for signed-in users. Try 'login'.")
		return nil
	}
	printlnFn(fmt.Sprintf("Current streak: %d day(s)", a.user.Streak))
	if a.user.LastChallengeDate != "" {
		printlnFn("Last challenge:", a.user.LastChallengeDate)
	}
	return nil
}

// Badges prints the badge board: unlocked and still-locked badges.
func (a *App) Badges(ctx context.Context) error {
	var owned []string
	if a.user != nil {
		owned = a.user.Badges
	}

	for _, b := range challenge.AllBadges() {
		mark := " "
		for _, id := range owned {
			if id == b.ID {
				mark = b.Icon
				break
			}
		}
		printlnFn(fmt.Sprintf("[%s] %s — %s", mark, b.Name, b.Description))
	}
	if a.user == nil {
		printlnFn("Sign in to start collecting badges.")
	}
	return nil
}
