// Package challenge computes the deterministic daily challenge and advances
// the streak state machine. Both operations are pure: the caller supplies the
// date, so any day past or future is reproducible.
package challenge

import (
	"time"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

// DateFormat is the calendar-date form used throughout streak tracking.
const DateFormat = "2006-01-02"

// GetDailyChallenge selects the challenge for the given date. The same date
// always yields the same theme and prompt, across restarts.
func GetDailyChallenge(date time.Time) models.DailyChallenge {
	dateStr := date.Format(DateFormat)

	dayOfYear := date.YearDay() - 1
	theme := loaded.Themes[dayOfYear%len(loaded.Themes)]

	return models.DailyChallenge{
		ID:     "challenge-" + dateStr,
		Date:   dateStr,
		Theme:  theme.Theme,
		Prompt: theme.Prompt,
	}
}

// CheckStreak advances the user's consecutive-completion counter for a
// challenge completed on the given day and unlocks any newly earned badges.
// The input user is never mutated; the updated copy is returned.
//
// Rules:
//   - already completed today: no-op (idempotent);
//   - completed yesterday: streak += 1;
//   - any longer gap, or never completed: streak resets to 1.
//
// Badges are monotonic: once earned they are never removed, and an already
// held badge is not re-added.
func CheckStreak(user *models.User, today time.Time) *models.User {
	todayStr := today.Format(DateFormat)
	yesterdayStr := today.AddDate(0, 0, -1).Format(DateFormat)

	updated := user.Clone()

	if updated.LastChallengeDate == todayStr {
		return updated
	}

	if updated.LastChallengeDate == yesterdayStr {
		updated.Streak++
	} else {
		updated.Streak = 1
	}
	updated.LastChallengeDate = todayStr

	for _, rule := range loaded.Badges {
		if updated.Streak >= rule.Threshold && !updated.HasBadge(rule.ID) {
			updated.Badges = append(updated.Badges, rule.ID)
		}
	}

	return updated
}
