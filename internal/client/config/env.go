package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors the environment surface. Variables are prefixed with
// EPIPHANY_, e.g. EPIPHANY_PROVIDER_API_KEY, EPIPHANY_DATABASE_PATH.
type envConfig struct {
	DatabasePath    string        `envconfig:"DATABASE_PATH"`
	ProviderBaseURL string        `envconfig:"PROVIDER_BASE_URL"`
	ProviderAPIKey  string        `envconfig:"PROVIDER_API_KEY"`
	TextModel       string        `envconfig:"TEXT_MODEL"`
	ImageModel      string        `envconfig:"IMAGE_MODEL"`
	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT"`
}

// parseEnv overlays Config with values from the environment. Unset variables
// leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process("epiphany", &ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.ProviderBaseURL != "" {
		cfg.ProviderBaseURL = ec.ProviderBaseURL
	}
	if ec.ProviderAPIKey != "" {
		cfg.ProviderAPIKey = ec.ProviderAPIKey
	}
	if ec.TextModel != "" {
		cfg.TextModel = ec.TextModel
	}
	if ec.ImageModel != "" {
		cfg.ImageModel = ec.ImageModel
	}
	if ec.ProviderTimeout != 0 {
		cfg.ProviderTimeout = ec.ProviderTimeout
	}
}
