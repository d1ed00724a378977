// Package logging provides structured logging built on Go's standard slog
// package, with level filtering and a subsystem attribute on every entry.
//
// Call Init once at startup, then log through the level helpers:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Auth", "stored token for character %s", characterID)
//	logging.Error("Client", err, "request failed")
//
// Library packages that take a *slog.Logger in their config can be handed
// logging.Default().
package logging
