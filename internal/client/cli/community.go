package cli

import (
	"context"
	"fmt"
	"strings"
)

// Community prints the mock feed: trending observations, the popular board
// and a page of posts.
func (a *App) Community(ctx context.Context) error {
	trending, err := a.feed.Trending(ctx)
	if err != nil {
		return err
	}
	tags := make([]string, 0, len(trending))
	for _, obs := range trending {
		tags = append(tags, "#"+strings.ToLower(strings.ReplaceAll(obs, " ", "")))
	}
	printlnFn("Trending:", strings.Join(tags, " "))

	popular, err := a.feed.Popular(ctx)
	if err != nil {
		return err
	}
	printlnFn("Popular this week:")
	for i, p := range popular {
		printlnFn(fmt.Sprintf("  %d. %s (%d likes) — %q", i+1, p.Content.Title, p.Likes, p.OriginalInput))
	}

	posts, err := a.feed.FetchFeed(ctx, 15)
	if err != nil {
		return err
	}
	printlnFn("")
	for _, p := range posts {
		printlnFn(fmt.Sprintf("%s observed %q", p.AuthorName, p.OriginalInput))
		printlnFn(fmt.Sprintf("  %s — %s [%s, %d likes]", p.Content.Title, p.Content.Concept, p.Category, p.Likes))
		for _, c := range p.Comments {
			printlnFn(fmt.Sprintf("    %s: %s", c.AuthorName, c.Text))
		}
	}
	return nil
}

// TestEmail sends one simulated digest to the active identity.
func (a *App) TestEmail(ctx context.Context) error {
	msg, err := a.notifier.SendTestDigest(ctx, a.user, a.activeSettings)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}
