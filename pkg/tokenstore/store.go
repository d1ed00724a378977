package tokenstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultExpiryBuffer is the margin applied when checking token expiry.
// A token expiring within this window is refreshed proactively rather than
// being rejected mid-flight by ESI.
const DefaultExpiryBuffer = 300 * time.Second

// Token is a stored OAuth2 credential for a single character, together with
// the identity resolved from the SSO verification endpoint.
type Token struct {
	// AccessToken is the bearer credential sent to ESI.
	AccessToken string `json:"access_token"`

	// RefreshToken is used to mint a new access token without re-running
	// the authorization flow.
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the unix timestamp when the access token expires.
	ExpiresAt int64 `json:"expires_at"`

	// CharacterID identifies the authenticated character. Kept as a string
	// to avoid precision loss on large IDs in persisted JSON.
	CharacterID string `json:"character_id"`

	// CharacterName is the character's display name at authorization time.
	CharacterName string `json:"character_name"`

	// CharacterOwnerHash changes when the character is transferred to a
	// different account.
	CharacterOwnerHash string `json:"character_owner_hash"`

	// StoredAt is the unix timestamp when the record was last written.
	StoredAt int64 `json:"stored_at"`
}

// Config configures a Store.
type Config struct {
	// Path is the JSON file the store mirrors itself to. Empty means
	// in-memory only.
	Path string

	// ExpiryBuffer overrides DefaultExpiryBuffer.
	ExpiryBuffer time.Duration

	// Logger receives persistence diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Store keeps OAuth tokens keyed by character ID, optionally mirrored to a
// single JSON file. The store exclusively owns its records: Get returns
// copies, and all mutation goes through Store/Remove.
//
// Persistence is best-effort. Load and save failures are logged, never
// returned, so the in-memory mapping keeps working without the file mirror.
type Store struct {
	mu     sync.RWMutex
	path   string
	buffer time.Duration
	tokens map[string]*Token
	logger *slog.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// New creates a token store. If cfg.Path exists it is loaded eagerly; a
// missing or unreadable file leaves the store empty.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	buffer := cfg.ExpiryBuffer
	if buffer == 0 {
		buffer = DefaultExpiryBuffer
	}

	s := &Store{
		path:   cfg.Path,
		buffer: buffer,
		tokens: make(map[string]*Token),
		logger: logger,
		now:    time.Now,
	}

	s.load()
	return s
}

// load reads the backing file into the in-memory mapping.
func (s *Store) load() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read token file",
				"path", s.path,
				"error", err.Error(),
			)
		}
		return
	}

	tokens := make(map[string]*Token)
	if err := json.Unmarshal(data, &tokens); err != nil {
		s.logger.Warn("failed to parse token file, starting empty",
			"path", s.path,
			"error", err.Error(),
		)
		return
	}

	s.tokens = tokens
	s.logger.Debug("loaded tokens", "path", s.path, "count", len(tokens))
}

// saveLocked writes the full mapping to the backing file.
// REQUIRES: s.mu must be held by the caller.
func (s *Store) saveLocked() {
	if s.path == "" {
		return
	}

	data, err := json.MarshalIndent(s.tokens, "", "  ")
	if err != nil {
		s.logger.Error("failed to marshal tokens", "error", err.Error())
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			s.logger.Error("failed to create token directory",
				"dir", dir,
				"error", err.Error(),
			)
			return
		}
	}

	// Tokens are credentials: owner read/write only.
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		s.logger.Error("failed to write token file",
			"path", s.path,
			"error", err.Error(),
		)
		return
	}

	s.logger.Debug("saved tokens", "path", s.path, "count", len(s.tokens))
}

// Store inserts or replaces the token for a character, stamping StoredAt and
// triggering a save of the file mirror.
func (s *Store) Store(characterID string, token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *token
	stored.StoredAt = s.now().Unix()
	s.tokens[characterID] = &stored
	s.saveLocked()

	s.logger.Debug("stored token", "character_id", characterID)
}

// Get returns a copy of the stored token for a character. The second return
// value reports whether a record exists.
func (s *Store) Get(characterID string) (*Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[characterID]
	if !ok {
		return nil, false
	}

	copied := *token
	return &copied, true
}

// Remove deletes the token for a character and reports whether one existed.
func (s *Store) Remove(characterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[characterID]; !ok {
		return false
	}

	delete(s.tokens, characterID)
	s.saveLocked()

	s.logger.Debug("removed token", "character_id", characterID)
	return true
}

// Expired reports whether the token is expired or will expire within the
// configured buffer. A token with no expiry is always considered expired.
func (s *Store) Expired(token *Token) bool {
	if token == nil || token.ExpiresAt == 0 {
		return true
	}
	return s.now().Add(s.buffer).Unix() >= token.ExpiresAt
}

// Characters returns the IDs of all characters with a stored token.
func (s *Store) Characters() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.tokens))
	for id := range s.tokens {
		ids = append(ids, id)
	}
	return ids
}
