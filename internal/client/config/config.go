package config

import "time"

// Config holds runtime settings for the Daily Epiphany CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite database (the system of record).
//   - ProviderBaseURL: base URL of the Gemini-compatible generation API.
//   - ProviderAPIKey: API key for the generation API; empty disables generation.
//   - TextModel / ImageModel: model names for the two generation steps.
//   - ProviderTimeout: per-request timeout for provider calls.
//   - MindfulTick: length of one mindful-session time unit. One second in
//     normal operation; tests shrink it.
type Config struct {
	DatabasePath    string
	ProviderBaseURL string
	ProviderAPIKey  string
	TextModel       string
	ImageModel      string
	ProviderTimeout time.Duration
	MindfulTick     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "epiphany.db"
	c.ProviderBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	c.TextModel = "gemini-2.5-flash"
	c.ImageModel = "gemini-2.5-flash-image"
	c.ProviderTimeout = 60 * time.Second
	c.MindfulTick = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
