// Package esi is a client for the EVE Online ESI API.
//
// The Client performs HTTP calls with bearer-token injection (through a
// TokenProvider, typically *auth.Authenticator), a default datasource query
// parameter, bounded retry with capped exponential backoff for transient
// failures, and classification of responses into a small typed error
// taxonomy (APIError, AuthenticationError, RateLimitError, ServerError).
//
// Resource groups (Character, Wallet, Fleet, Market, Universe, ...) hang off
// the client as fields and wrap the corresponding ESI routes as thin typed
// methods. Large payloads are passed through as json.RawMessage for the
// caller to decode.
package esi
