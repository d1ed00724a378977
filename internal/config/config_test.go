package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/callback", cfg.RedirectURI)
	assert.Equal(t, "tokens.json", cfg.TokenFile)
	assert.Equal(t, "tranquility", cfg.Datasource)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EVE_CLIENT_ID", "client-id")
	t.Setenv("EVE_CLIENT_SECRET", "client-secret")
	t.Setenv("EVE_SCOPES", "esi-wallet.read_character_wallet.v1,esi-location.read_location.v1")
	t.Setenv("EVE_TOKEN_FILE", "/tmp/eve-tokens.json")
	t.Setenv("EVE_DATASOURCE", "singularity")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "client-id", cfg.ClientID)
	assert.Equal(t, "client-secret", cfg.ClientSecret)
	assert.Equal(t, []string{
		"esi-wallet.read_character_wallet.v1",
		"esi-location.read_location.v1",
	}, cfg.Scopes)
	assert.Equal(t, "/tmp/eve-tokens.json", cfg.TokenFile)
	assert.Equal(t, "singularity", cfg.Datasource)
}

func TestValidateAuth(t *testing.T) {
	cfg := &Config{ClientID: "id", ClientSecret: "secret"}
	assert.NoError(t, cfg.ValidateAuth())

	cfg = &Config{ClientID: "id"}
	assert.ErrorIs(t, cfg.ValidateAuth(), ErrMissingCredentials)

	cfg = &Config{}
	assert.ErrorIs(t, cfg.ValidateAuth(), ErrMissingCredentials)
}
