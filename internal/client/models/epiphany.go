package models

import "time"

// Category classifies the original observation.
type Category string

const (
	CategoryNature   Category = "Nature"
	CategoryPeople   Category = "People"
	CategoryObjects  Category = "Objects"
	CategoryFeelings Category = "Feelings"
	CategoryUrban    Category = "Urban"
	CategoryDreams   Category = "Dreams"
	CategoryMemories Category = "Memories"
	CategoryOther    Category = "Other"
)

// Categories lists all valid values in display order.
func Categories() []Category {
	return []Category{
		CategoryNature, CategoryPeople, CategoryObjects, CategoryFeelings,
		CategoryUrban, CategoryDreams, CategoryMemories, CategoryOther,
	}
}

// ParseCategory maps free-form input to a Category, defaulting to Other.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// EpiphanyContent is the generated text artifact, all fields required.
type EpiphanyContent struct {
	Title        string `json:"title"`
	Concept      string `json:"concept"`
	Explanation  string `json:"explanation"`
	Fact         string `json:"fact"`
	VisualPrompt string `json:"visualPrompt"`
}

// Epiphany is one generated record tied to one user observation. Records are
// created once; afterwards only IsFavorite ever changes, and only bulk account
// deletion removes them.
type Epiphany struct {
	// ID is a creation-ordered timestamp-derived token, unique within its
	// identity's collection.
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	OriginalInput string          `json:"originalInput"`
	Category      Category        `json:"category"`
	Content       EpiphanyContent `json:"content"`
	// ImageData holds the inline image resource (base64 PNG), empty when the
	// image step was skipped or degraded.
	ImageData   string `json:"imageData,omitempty"`
	IsFavorite  bool   `json:"isFavorite"`
	IsChallenge bool   `json:"isChallenge"`
}
