package cli

import (
	"context"
	"fmt"
	"os"
)

// List prints the active identity's history, newest first.
func (a *App) List(ctx context.Context) error {
	records := a.history.Load(ctx, a.user)
	if len(records) == 0 {
		printlnFn("No epiphanies yet. Try 'observe'.")
		return nil
	}
	for _, r := range records {
		printlnFn(renderHistoryLine(r))
	}
	return nil
}

// Show prints one record as a full card.
func (a *App) Show(ctx context.Context, id string) error {
	for _, r := range a.history.Load(ctx, a.user) {
		if r.ID == id {
			a.lastResult = &r
			printlnFn(renderRecord(r))
			return nil
		}
	}
	printlnFn("No record with id", id)
	return nil
}

// Fav toggles a record's favorite flag.
func (a *App) Fav(ctx context.Context, id string) error {
	records, err := a.history.ToggleFavorite(ctx, a.user, id)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID == id {
			if r.IsFavorite {
				printlnFn("Marked as favorite:", r.Content.Title)
			} else {
				printlnFn("Removed favorite:", r.Content.Title)
			}
			return nil
		}
	}
	printlnFn("No record with id", id)
	return nil
}

// ExportForIdentity restores the persisted session and exports that
// identity's history. Used by the non-interactive export subcommand.
func (a *App) ExportForIdentity(ctx context.Context, path string) error {
	a.user = a.identity.RestoreSession(ctx)
	return a.Export(ctx, path)
}

// Export writes the history as JSON to path, or prints it when path is empty.
func (a *App) Export(ctx context.Context, path string) error {
	data, err := a.history.Export(ctx, a.user)
	if err != nil {
		return err
	}
	if path == "" {
		printlnFn(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	printlnFn("Exported history to", path)
	return nil
}
