// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrMissingCredentials indicates the SSO application credentials are not
// configured. Commands that only hit public routes do not need them.
var ErrMissingCredentials = errors.New("EVE_CLIENT_ID and EVE_CLIENT_SECRET must be set")

// Config holds the process configuration, populated from EVE_* environment
// variables.
type Config struct {
	// ClientID and ClientSecret identify the registered SSO application.
	ClientID     string `env:"EVE_CLIENT_ID"`
	ClientSecret string `env:"EVE_CLIENT_SECRET"`

	// RedirectURI must match the callback registered for the application.
	RedirectURI string `env:"EVE_REDIRECT_URI" envDefault:"http://localhost:8000/callback"`

	// Scopes to request during authorization.
	Scopes []string `env:"EVE_SCOPES" envSeparator:","`

	// TokenFile is the JSON file the token store persists to.
	TokenFile string `env:"EVE_TOKEN_FILE" envDefault:"tokens.json"`

	// UserAgent is sent on every API request.
	UserAgent string `env:"EVE_USER_AGENT" envDefault:"eveutil/1.0.0"`

	// Datasource selects the game server ("tranquility" or "singularity").
	Datasource string `env:"EVE_DATASOURCE" envDefault:"tranquility"`

	// LogLevel filters log output: debug, info, warn, error.
	LogLevel string `env:"EVE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ValidateAuth checks that the settings required for the OAuth flow are
// present.
func (c *Config) ValidateAuth() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}
