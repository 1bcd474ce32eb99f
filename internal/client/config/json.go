package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dailyepiphany/epiphany/internal/flagx"
	"github.com/dailyepiphany/epiphany/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	ProviderBaseURL string         `json:"provider_base_url"`
	ProviderAPIKey  string         `json:"provider_api_key"`
	TextModel       string         `json:"text_model"`
	ImageModel      string         `json:"image_model"`
	ProviderTimeout timex.Duration `json:"provider_timeout"`
	MindfulTick     timex.Duration `json:"mindful_tick"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JsonConfigFlags(); when none is given, nothing is loaded. Zero-valued
// JSON fields leave the corresponding Config field untouched so the file may
// be partial. Panics on read or unmarshal errors (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ProviderBaseURL != "" {
		cfg.ProviderBaseURL = jc.ProviderBaseURL
	}
	if jc.ProviderAPIKey != "" {
		cfg.ProviderAPIKey = jc.ProviderAPIKey
	}
	if jc.TextModel != "" {
		cfg.TextModel = jc.TextModel
	}
	if jc.ImageModel != "" {
		cfg.ImageModel = jc.ImageModel
	}
	if jc.ProviderTimeout.Duration != 0 {
		cfg.ProviderTimeout = time.Duration(jc.ProviderTimeout.Duration)
	}
	if jc.MindfulTick.Duration != 0 {
		cfg.MindfulTick = time.Duration(jc.MindfulTick.Duration)
	}
}
