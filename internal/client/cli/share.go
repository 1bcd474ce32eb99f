package cli

import (
	"context"

	"github.com/dailyepiphany/epiphany/internal/share"
)

// Share prints the shareable link for a history record.
func (a *App) Share(ctx context.Context, id string) error {
	for _, r := range a.history.Load(ctx, a.user) {
		if r.ID == id {
			printlnFn(share.Encode(r))
			return nil
		}
	}
	printlnFn("No record with id", id)
	return nil
}

// Open decodes a shared link and shows it as a read-only card. The shared
// record is never added to the history.
func (a *App) Open(ctx context.Context, rawURL string) error {
	record, err := share.Decode(rawURL)
	if err != nil {
		printlnFn("That link doesn't carry a shared epiphany.")
		return nil
	}
	printlnFn(renderRecord(record))
	return nil
}
