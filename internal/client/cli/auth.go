package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

// Register creates a simulated account and signs it in. Accounts are local:
// the id derives from the email, so the same email always resumes the same
// history and settings.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		printlnFn("That doesn't look like an email address.")
		return nil
	}

	return a.signIn(ctx, models.NewUser(name, email))
}

// Login is register without the name prompt: the identity comes straight
// from the email.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		printlnFn("That doesn't look like an email address.")
		return nil
	}

	return a.signIn(ctx, models.NewUser("", email))
}

func (a *App) signIn(ctx context.Context, user *models.User) error {
	logged, err := a.identity.Login(ctx, user, a.activeSettings)
	if err != nil {
		return err
	}
	a.user = logged
	if logged.Settings != nil {
		a.activeSettings = *logged.Settings
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", logged.Name))
	if logged.Streak > 0 {
		printlnFn(fmt.Sprintf("Your streak: %d day(s)", logged.Streak))
	}
	return nil
}

// Logout returns to the guest identity. Guest history and settings resume
// exactly as they were before signing in.
func (a *App) Logout(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Not signed in.")
		return nil
	}
	if err := a.identity.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.activeSettings = a.settings.Load(ctx, nil)
	a.lastResult = nil
	printlnFn("Signed out. You are browsing as a guest.")
	return nil
}

// DeleteAccount erases the signed-in identity's history, settings and
// session after an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Not signed in.")
		return nil
	}

	confirm, err := getSimpleText(a.reader,
		fmt.Sprintf("This permanently erases all data for %s. Type 'delete' to confirm", a.user.Email), a.out)
	if err != nil {
		return err
	}
	if confirm != "delete" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.identity.DeleteAccount(ctx, a.user); err != nil {
		return err
	}
	a.user = nil
	a.activeSettings = a.settings.Load(ctx, nil)
	a.lastResult = nil
	printlnFn("Account deleted. You are browsing as a guest.")
	return nil
}
