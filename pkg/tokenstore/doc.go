// Package tokenstore persists OAuth tokens for EVE Online SSO characters.
//
// The store keeps an in-memory mapping from character ID to token record,
// optionally mirrored to a single JSON file (top-level keys are character
// IDs). Persistence is best-effort: the mapping keeps working even when the
// file mirror cannot be read or written.
package tokenstore
