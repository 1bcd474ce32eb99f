// Package provider implements the external generation collaborators: a
// content provider that turns an observation into a reflective artifact and
// an image provider that illustrates it. Both are opaque HTTP services;
// failures carry no partial results.
package provider

import (
	"context"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

// Provider is the contract the orchestrator consumes.
//
// GenerateText returns the full text artifact or an opaque error.
// GenerateImage returns a base64-encoded image resource, or "" when the
// provider produced none; image failures are indistinguishable from "none"
// by design and must be treated as non-fatal by callers.
type Provider interface {
	GenerateText(ctx context.Context, input string, category models.Category, style models.EpiphanyStyle) (models.EpiphanyContent, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
