package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"eveutil/pkg/tokenstore"
)

// EVE Online SSO endpoints.
const (
	DefaultAuthorizeURL = "https://login.eveonline.com/v2/oauth/authorize"
	DefaultTokenURL     = "https://login.eveonline.com/v2/oauth/token"
	DefaultVerifyURL    = "https://esi.evetech.net/verify/"
)

// DefaultHTTPTimeout is the default timeout for SSO requests.
const DefaultHTTPTimeout = 30 * time.Second

// ErrReauthorizationRequired is returned when no usable token exists for a
// character and a new access token cannot be obtained by refreshing. The
// caller must re-run the authorization flow; this is a signal, not a crash.
var ErrReauthorizationRequired = errors.New("reauthorization required")

// ErrStateMismatch is returned when the state parameter in the authorization
// callback does not match the one the flow was started with.
var ErrStateMismatch = errors.New("state mismatch in authorization callback")

// Config configures an Authenticator. ClientID, ClientSecret and RedirectURI
// are required; everything else has defaults.
type Config struct {
	// ClientID is the EVE application client ID.
	ClientID string

	// ClientSecret is the EVE application client secret. When empty the flow
	// uses PKCE (S256), as required for applications registered without a
	// secret.
	ClientSecret string

	// RedirectURI is the OAuth2 callback URI registered for the application.
	RedirectURI string

	// Scopes are the ESI scopes to request.
	Scopes []string

	// AuthorizeURL overrides the SSO authorization endpoint. Used in tests.
	AuthorizeURL string

	// TokenURL overrides the SSO token endpoint. Used in tests.
	TokenURL string

	// VerifyURL overrides the SSO verification endpoint. Used in tests.
	VerifyURL string

	// HTTPClient is an optional custom HTTP client for SSO calls.
	HTTPClient *http.Client

	// Logger receives flow diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// VerifyResult is the identity returned by the SSO verification endpoint.
// Field names follow the provider's response keys.
type VerifyResult struct {
	CharacterID        int64  `json:"CharacterID"`
	CharacterName      string `json:"CharacterName"`
	CharacterOwnerHash string `json:"CharacterOwnerHash"`
	Scopes             string `json:"Scopes"`
	ExpiresOn          string `json:"ExpiresOn"`
}

// Authenticator drives the OAuth2 authorization-code flow for EVE Online SSO
// and keeps stored tokens fresh.
type Authenticator struct {
	oauth      oauth2.Config
	verifyURL  string
	store      *tokenstore.Store
	httpClient *http.Client
	logger     *slog.Logger

	// usePKCE is set for applications without a client secret; verifiers
	// holds the outstanding PKCE code verifier per state value.
	usePKCE   bool
	verifiers map[string]string

	// refreshMu serializes refreshes per character so concurrent expiring
	// calls do not perform redundant token exchanges.
	mu        sync.Mutex
	refreshMu map[string]*sync.Mutex
}

// New creates an Authenticator backed by the given token store.
func New(cfg Config, store *tokenstore.Store) *Authenticator {
	authorizeURL := cfg.AuthorizeURL
	if authorizeURL == "" {
		authorizeURL = DefaultAuthorizeURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Authenticator{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authorizeURL,
				TokenURL: tokenURL,
			},
		},
		verifyURL:  verifyURL,
		store:      store,
		httpClient: httpClient,
		logger:     logger,
		usePKCE:    cfg.ClientSecret == "",
		verifiers:  make(map[string]string),
		refreshMu:  make(map[string]*sync.Mutex),
	}
}

// Store returns the underlying token store.
func (a *Authenticator) Store() *tokenstore.Store {
	return a.store
}

// AuthorizationURL builds the SSO authorization URL the user should open in
// a browser. When state is empty a random anti-forgery value is generated.
// The returned state must be round-tripped by the caller and passed to
// CompleteAuthorization. No network call is made.
//
// For secret-less applications a PKCE verifier is generated and kept until
// the flow for this state completes.
func (a *Authenticator) AuthorizationURL(state string) (string, string, error) {
	if state == "" {
		generated, err := GenerateState()
		if err != nil {
			return "", "", fmt.Errorf("failed to generate state: %w", err)
		}
		state = generated
	}

	var opts []oauth2.AuthCodeOption
	if a.usePKCE {
		verifier := oauth2.GenerateVerifier()
		a.mu.Lock()
		a.verifiers[state] = verifier
		a.mu.Unlock()
		opts = append(opts, oauth2.S256ChallengeOption(verifier))
	}

	return a.oauth.AuthCodeURL(state, opts...), state, nil
}

// CompleteAuthorization finishes the authorization-code flow. It parses the
// code and state from the callback URL, verifies the state against
// expectedState, exchanges the code for tokens, resolves the character's
// identity via the verification endpoint, and stores the merged record keyed
// by character ID.
func (a *Authenticator) CompleteAuthorization(ctx context.Context, callbackURL, expectedState string) (*tokenstore.Token, error) {
	parsed, err := url.Parse(callbackURL)
	if err != nil {
		return nil, fmt.Errorf("invalid callback URL: %w", err)
	}

	query := parsed.Query()
	if got := query.Get("state"); got != expectedState {
		a.logger.Warn("authorization state mismatch",
			"expected_len", len(expectedState),
			"received_len", len(got),
		)
		return nil, ErrStateMismatch
	}

	code := query.Get("code")
	if code == "" {
		return nil, errors.New("no authorization code in callback URL")
	}

	oauthToken, err := a.exchange(ctx, code, expectedState)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	identity, err := a.Verify(ctx, oauthToken.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	characterID := strconv.FormatInt(identity.CharacterID, 10)
	token := &tokenstore.Token{
		AccessToken:        oauthToken.AccessToken,
		RefreshToken:       oauthToken.RefreshToken,
		ExpiresAt:          tokenExpiry(oauthToken),
		CharacterID:        characterID,
		CharacterName:      identity.CharacterName,
		CharacterOwnerHash: identity.CharacterOwnerHash,
	}
	a.store.Store(characterID, token)

	a.logger.Info("character authenticated",
		"character_id", characterID,
		"character_name", identity.CharacterName,
	)

	stored, _ := a.store.Get(characterID)
	return stored, nil
}

// exchange trades an authorization code for an access/refresh token pair,
// attaching the PKCE verifier recorded for the flow's state when present.
func (a *Authenticator) exchange(ctx context.Context, code, state string) (*oauth2.Token, error) {
	var opts []oauth2.AuthCodeOption
	if a.usePKCE {
		a.mu.Lock()
		verifier, ok := a.verifiers[state]
		delete(a.verifiers, state)
		a.mu.Unlock()
		if ok {
			opts = append(opts, oauth2.VerifierOption(verifier))
		}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	return a.oauth.Exchange(ctx, code, opts...)
}

// Verify resolves the identity behind an access token using the SSO
// verification endpoint.
func (a *Authenticator) Verify(ctx context.Context, accessToken string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.verifyURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verification request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verification failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result VerifyResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse verification response: %w", err)
	}

	return &result, nil
}

// Refresh exchanges the stored refresh token for a new access/refresh pair,
// preserving the character identity resolved at authorization time, and
// re-stores the record under the same character ID.
//
// A missing record, a record without a refresh token, or an exchange failure
// all yield ErrReauthorizationRequired: the caller should re-run the
// authorization flow rather than treat this as a crash.
func (a *Authenticator) Refresh(ctx context.Context, characterID string) (*tokenstore.Token, error) {
	current, ok := a.store.Get(characterID)
	if !ok || current.RefreshToken == "" {
		a.logger.Debug("no refresh token available", "character_id", characterID)
		return nil, ErrReauthorizationRequired
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	source := a.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: current.RefreshToken})

	refreshed, err := source.Token()
	if err != nil {
		a.logger.Warn("token refresh failed",
			"character_id", characterID,
			"error", err.Error(),
		)
		return nil, fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
	}

	refreshToken := refreshed.RefreshToken
	if refreshToken == "" {
		// Provider may omit the refresh token when it is still valid.
		refreshToken = current.RefreshToken
	}

	// Identity fields are immutable once resolved; carry them forward.
	token := &tokenstore.Token{
		AccessToken:        refreshed.AccessToken,
		RefreshToken:       refreshToken,
		ExpiresAt:          tokenExpiry(refreshed),
		CharacterID:        current.CharacterID,
		CharacterName:      current.CharacterName,
		CharacterOwnerHash: current.CharacterOwnerHash,
	}
	a.store.Store(characterID, token)

	a.logger.Debug("token refreshed", "character_id", characterID)

	stored, _ := a.store.Get(characterID)
	return stored, nil
}

// AccessToken returns a valid access token for a character, refreshing it
// when the stored one is expired or about to expire. Returns
// ErrReauthorizationRequired when no valid token can be obtained.
func (a *Authenticator) AccessToken(ctx context.Context, characterID string) (string, error) {
	token, ok := a.store.Get(characterID)
	if !ok {
		return "", ErrReauthorizationRequired
	}

	if !a.store.Expired(token) {
		return token.AccessToken, nil
	}

	mu := a.characterMu(characterID)
	mu.Lock()
	defer mu.Unlock()

	// Another call may have refreshed while we waited on the lock.
	if token, ok := a.store.Get(characterID); ok && !a.store.Expired(token) {
		return token.AccessToken, nil
	}

	refreshed, err := a.Refresh(ctx, characterID)
	if err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

// Revoke removes the local record for a character and reports whether one
// existed. EVE SSO offers no server-side revocation endpoint, so removal is
// local only.
func (a *Authenticator) Revoke(characterID string) bool {
	return a.store.Remove(characterID)
}

// characterMu returns the per-character refresh mutex, creating it on first use.
func (a *Authenticator) characterMu(characterID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	mu, ok := a.refreshMu[characterID]
	if !ok {
		mu = &sync.Mutex{}
		a.refreshMu[characterID] = mu
	}
	return mu
}

// tokenExpiry converts an oauth2 token expiry to a unix timestamp. A zero
// expiry maps to zero, which the store treats as already expired.
func tokenExpiry(token *oauth2.Token) int64 {
	if token.Expiry.IsZero() {
		return 0
	}
	return token.Expiry.Unix()
}
