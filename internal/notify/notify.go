// Package notify simulates the outbound channels: the digest email and the
// desktop reminder. There is no mail server or desktop integration; both
// channels log what they would have sent, which is also what the tests hook.
package notify

import (
	"context"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/logging"
)

// guestEmail receives test digests when nobody is signed in.
const guestEmail = "guest@example.com"

// Notifier sends the simulated notifications.
type Notifier interface {
	// SendTestDigest sends one digest email to the identity's address,
	// returning a human-readable delivery confirmation.
	SendTestDigest(ctx context.Context, user *models.User, settings models.Settings) (string, error)

	// Remind emits a desktop-reminder analog. Fire-and-forget.
	Remind(ctx context.Context, title, body string)
}

type logNotifier struct {
	log logging.Logger
}

// NewLogNotifier returns a Notifier that delivers to the log.
func NewLogNotifier(log logging.Logger) Notifier {
	return &logNotifier{log: log}
}

// digestBody picks the digest text for the configured content kind.
func digestBody(content models.EmailContent) string {
	switch content {
	case models.EmailFavorites:
		return "Your top saved epiphanies..."
	case models.EmailRandom:
		return "A random cosmic thought..."
	default:
		return "Top community discovery of the day..."
	}
}

func (n *logNotifier) SendTestDigest(ctx context.Context, user *models.User, settings models.Settings) (string, error) {
	email := guestEmail
	if user != nil {
		email = user.Email
	}

	// "none" still gets a one-off test, sent as a daily.
	kind := settings.EmailFrequency
	if kind == models.EmailNone {
		kind = models.EmailDaily
	}

	body := digestBody(settings.EmailContent)
	n.log.Info(ctx, "sending digest email", "to", email, "kind", string(kind), "content", body)
	return fmt.Sprintf("Sent %s digest to %s", kind, email), nil
}

func (n *logNotifier) Remind(ctx context.Context, title, body string) {
	n.log.Info(ctx, "desktop reminder", "title", title, "body", body)
}
