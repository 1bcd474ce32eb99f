package models

// DailyChallenge is the date-derived themed prompt. It is never persisted;
// the engine recomputes it deterministically from the calendar date.
type DailyChallenge struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Theme  string `json:"theme"`
	Prompt string `json:"prompt"`
}

// Badge describes one entry of the static milestone catalog.
type Badge struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color"`
}
