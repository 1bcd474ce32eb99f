package models

// EpiphanyStyle selects the voice of generated passages.
type EpiphanyStyle string

const (
	StylePoetic        EpiphanyStyle = "poetic"
	StyleScientific    EpiphanyStyle = "scientific"
	StylePhilosophical EpiphanyStyle = "philosophical"
	StyleSpiritual     EpiphanyStyle = "spiritual"
	StyleHumorous      EpiphanyStyle = "humorous"
)

// AppTheme is the visual theme preference.
type AppTheme string

const (
	ThemeCosmic AppTheme = "cosmic"
	ThemeDark   AppTheme = "dark"
	ThemeLight  AppTheme = "light"
)

// FontSize is the text size preference.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// EmailFrequency controls the simulated digest cadence.
type EmailFrequency string

const (
	EmailDaily  EmailFrequency = "daily"
	EmailWeekly EmailFrequency = "weekly"
	EmailNone   EmailFrequency = "none"
)

// EmailContent selects what the simulated digest contains.
type EmailContent string

const (
	EmailFavorites EmailContent = "favorites"
	EmailRandom    EmailContent = "random"
	EmailCommunity EmailContent = "community"
)

// Settings is the full per-identity configuration record. It is written
// wholesale on save; no field is ever left unset thanks to WithDefaults.
type Settings struct {
	Style                EpiphanyStyle  `json:"style"`
	Theme                AppTheme       `json:"theme"`
	FontSize             FontSize       `json:"fontSize"`
	Language             string         `json:"language"`
	IsPublic             bool           `json:"isPublic"`
	BrowserNotifications bool           `json:"browserNotifications"`
	// NotificationTime is an HH:MM wall-clock time.
	NotificationTime string         `json:"notificationTime"`
	EmailFrequency   EmailFrequency `json:"emailFrequency"`
	EmailContent     EmailContent   `json:"emailContent"`
}

// DefaultSettings returns the record used before any identity has saved one.
func DefaultSettings() Settings {
	return Settings{
		Style:            StylePoetic,
		Theme:            ThemeCosmic,
		FontSize:         FontMedium,
		Language:         "English",
		IsPublic:         true,
		NotificationTime: "09:00",
		EmailFrequency:   EmailWeekly,
		EmailContent:     EmailCommunity,
	}
}

// WithDefaults fills every zero-valued field of s from the defaults, so a
// partially persisted record can never surface with undefined fields.
// Boolean fields keep their stored value; false is a valid choice.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.Style == "" {
		s.Style = d.Style
	}
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.FontSize == "" {
		s.FontSize = d.FontSize
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.NotificationTime == "" {
		s.NotificationTime = d.NotificationTime
	}
	if s.EmailFrequency == "" {
		s.EmailFrequency = d.EmailFrequency
	}
	if s.EmailContent == "" {
		s.EmailContent = d.EmailContent
	}
	return s
}
