// Package share encodes epiphanies as shareable links and decodes them back
// into read-only records. A link carries only the text of the insight; the
// image, fact and category never travel.
package share

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

const (
	paramTitle       = "share_title"
	paramConcept     = "share_concept"
	paramExplanation = "share_expl"
	paramInput       = "share_input"
)

// sharedFact replaces the original fact, which is dropped to keep links short.
const sharedFact = "Shared from a friend."

// ErrNotShareLink means the URL carries no share parameters.
var ErrNotShareLink = errors.New("not a share link")

// BaseURL is the web origin shared links point at.
const BaseURL = "https://dailyepiphany.app/"

// Encode renders a record as a shareable URL.
func Encode(record models.Epiphany) string {
	v := url.Values{}
	v.Set(paramTitle, record.Content.Title)
	v.Set(paramConcept, record.Content.Concept)
	v.Set(paramExplanation, record.Content.Explanation)
	v.Set(paramInput, record.OriginalInput)
	return BaseURL + "?" + v.Encode()
}

// Decode parses a shared link into a display-only record. The result is
// never persisted: it gets a synthetic id, category Other and a placeholder
// fact.
func Decode(rawURL string) (models.Epiphany, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return models.Epiphany{}, err
	}
	v := u.Query()
	if !v.Has(paramTitle) {
		return models.Epiphany{}, ErrNotShareLink
	}

	return models.Epiphany{
		ID:            "shared-" + uuid.NewString(),
		Date:          time.Now(),
		OriginalInput: v.Get(paramInput),
		Category:      models.CategoryOther,
		Content: models.EpiphanyContent{
			Title:       v.Get(paramTitle),
			Concept:     v.Get(paramConcept),
			Explanation: v.Get(paramExplanation),
			Fact:        sharedFact,
		},
	}, nil
}
