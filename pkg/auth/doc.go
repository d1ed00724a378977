// Package auth implements the OAuth2 authorization-code flow for EVE Online
// SSO and keeps stored tokens fresh.
//
// The Authenticator builds authorization URLs, completes the code exchange on
// callback (enforcing the anti-forgery state), resolves the character identity
// through the SSO verification endpoint, and refreshes expiring tokens on
// demand. Tokens are persisted through a tokenstore.Store; when no valid token
// can be obtained the typed ErrReauthorizationRequired signals that the caller
// must re-run the authorization flow.
package auth
