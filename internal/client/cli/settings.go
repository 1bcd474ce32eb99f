package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

// settingsKeys maps the settable keys to their allowed values; boolean keys
// have nil values and accept true/false.
var settingsKeys = map[string][]string{
	"style":            {"poetic", "scientific", "philosophical", "spiritual", "humorous"},
	"theme":            {"cosmic", "dark", "light"},
	"fontsize":         {"small", "medium", "large"},
	"language":         nil,
	"public":           nil,
	"notifications":    nil,
	"notificationtime": nil,
	"emailfrequency":   {"daily", "weekly", "none"},
	"emailcontent":     {"favorites", "random", "community"},
}

// Settings views and edits the active identity's preferences:
//
//	settings                — show the current values
//	settings set <key> <v>  — change one value (in memory)
//	settings save           — persist the current values
func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printSettings()
		return nil
	}

	switch args[0] {
	case "set":
		if len(args) < 3 {
			printlnFn("Usage: settings set <key> <value>")
			return nil
		}
		if err := a.applySetting(args[1], args[2]); err != nil {
			printlnFn(err.Error())
			return nil
		}
		printlnFn("Set. Use 'settings save' to persist.")

	case "save":
		if err := a.settings.Save(ctx, a.user, a.activeSettings); err != nil {
			return err
		}
		if a.user != nil {
			// The session record carries the settings too, so a restart
			// restores them without a second lookup.
			settings := a.activeSettings
			a.user.Settings = &settings
			if err := a.identity.SaveSession(ctx, a.user); err != nil {
				return err
			}
		}
		printlnFn("Settings saved successfully")

	default:
		printlnFn("Usage: settings [set <key> <value> | save]")
	}
	return nil
}

func (a *App) printSettings() {
	s := a.activeSettings
	printlnFn("style:            ", string(s.Style))
	printlnFn("theme:            ", string(s.Theme))
	printlnFn("fontsize:         ", string(s.FontSize))
	printlnFn("language:         ", s.Language)
	printlnFn("public:           ", strconv.FormatBool(s.IsPublic))
	printlnFn("notifications:    ", strconv.FormatBool(s.BrowserNotifications))
	printlnFn("notificationtime: ", s.NotificationTime)
	printlnFn("emailfrequency:   ", string(s.EmailFrequency))
	printlnFn("emailcontent:     ", string(s.EmailContent))
}

func (a *App) applySetting(key, value string) error {
	allowed, ok := settingsKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	if allowed != nil {
		valid := false
		for _, v := range allowed {
			if v == value {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%s must be one of %v", key, allowed)
		}
	}

	switch key {
	case "style":
		a.activeSettings.Style = models.EpiphanyStyle(value)
	case "theme":
		a.activeSettings.Theme = models.AppTheme(value)
	case "fontsize":
		a.activeSettings.FontSize = models.FontSize(value)
	case "language":
		a.activeSettings.Language = value
	case "public", "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		if key == "public" {
			a.activeSettings.IsPublic = b
		} else {
			a.activeSettings.BrowserNotifications = b
			if b {
				a.notifier.Remind(context.Background(),
					"Notifications Enabled", "You will be reminded to observe the world daily.")
			}
		}
	case "notificationtime":
		if _, err := parseClock(value); err != nil {
			return err
		}
		a.activeSettings.NotificationTime = value
	case "emailfrequency":
		a.activeSettings.EmailFrequency = models.EmailFrequency(value)
	case "emailcontent":
		a.activeSettings.EmailContent = models.EmailContent(value)
	}
	return nil
}

// parseClock validates an HH:MM wall-clock time.
func parseClock(s string) (struct{ h, m int }, error) {
	var t struct{ h, m int }
	if _, err := fmt.Sscanf(s, "%d:%d", &t.h, &t.m); err != nil ||
		t.h < 0 || t.h > 23 || t.m < 0 || t.m > 59 {
		return t, fmt.Errorf("notificationtime must be HH:MM, got %q", s)
	}
	return t, nil
}
