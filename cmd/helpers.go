package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"eveutil/internal/config"
	"eveutil/pkg/auth"
	"eveutil/pkg/esi"
	"eveutil/pkg/logging"
	"eveutil/pkg/tokenstore"
)

// app bundles the wired-up components commands operate on.
type app struct {
	Config        *config.Config
	Store         *tokenstore.Store
	Authenticator *auth.Authenticator
	Client        *esi.Client
}

// newApp loads configuration, initializes logging, and wires the token
// store, authenticator, and API client together.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	levelText := cfg.LogLevel
	if logLevelFlag != "" {
		levelText = logLevelFlag
	}
	level, err := logging.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}
	logging.Init(level, os.Stderr)

	store := tokenstore.New(tokenstore.Config{
		Path:   cfg.TokenFile,
		Logger: logging.Default(),
	})

	authenticator := auth.New(auth.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		Logger:       logging.Default(),
	}, store)

	client := esi.NewClient(esi.Config{
		UserAgent:  cfg.UserAgent,
		Datasource: cfg.Datasource,
		Tokens:     authenticator,
		Logger:     logging.Default(),
	})

	return &app{
		Config:        cfg,
		Store:         store,
		Authenticator: authenticator,
		Client:        client,
	}, nil
}

// printJSON writes an indented rendering of a JSON payload. Payloads that do
// not re-indent cleanly are written as-is.
func printJSON(w io.Writer, payload []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		fmt.Fprintln(w, string(payload))
		return
	}
	fmt.Fprintln(w, buf.String())
}
