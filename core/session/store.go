package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

const (
	defaultIdentityKey = "user"
	defaultTokensKey   = "tokens"
)

// Store is the single source of truth for the current session: who is logged
// in and with which credentials. State is held in memory and mirrored to a
// durable kv.Store under two independent slots so it survives restarts.
//
// Identity and tokens are always both present or both absent. Because the
// storage layer offers no cross-key transactionality, Restore treats partial
// presence as corruption and fails closed.
type Store struct {
	mu       sync.RWMutex
	identity *Identity
	tokens   *TokenPair

	storage     kv.Store
	log         *slog.Logger
	identityKey string
	tokensKey   string
}

// Option is a functional option for configuring the store.
type Option func(*Store)

// WithStorageKeys overrides the slot names used for persisted state.
func WithStorageKeys(identityKey, tokensKey string) Option {
	return func(s *Store) {
		s.identityKey = identityKey
		s.tokensKey = tokensKey
	}
}

// WithLogger sets the logger used to observe silent recovery paths.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a session store persisting to the given storage.
// The store starts absent; call Restore once at process start to pick up a
// previously persisted session.
func New(storage kv.Store, opts ...Option) *Store {
	s := &Store{
		storage:     storage,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		identityKey: defaultIdentityKey,
		tokensKey:   defaultTokensKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads persisted session state. If both slots are present and parse,
// they become the current session. If both are absent the session simply
// stays absent. If only one slot is present, or either is unparsable, both
// slots are purged and the session stays absent: a corrupted persisted
// session must never leave a half-restored state or crash startup.
//
// Restore never returns an error for corrupt state; recovery is silent apart
// from a warning log entry.
func (s *Store) Restore(ctx context.Context) error {
	identityRaw, identityErr := s.storage.Get(ctx, s.identityKey)
	tokensRaw, tokensErr := s.storage.Get(ctx, s.tokensKey)

	// Storage being unreachable is not corruption; leave persisted state alone.
	if unavailable(identityErr) || unavailable(tokensErr) {
		s.log.WarnContext(ctx, "session restore skipped, storage unavailable",
			logger.Component("session"),
			logger.Event("restore_skipped"),
			logger.Error(errors.Join(identityErr, tokensErr)),
		)
		return nil
	}

	// Both slots absent is a normal first launch, not corruption.
	if errors.Is(identityErr, kv.ErrNotFound) && errors.Is(tokensErr, kv.ErrNotFound) {
		return nil
	}

	var identity Identity
	var tokens TokenPair
	if identityErr == nil && tokensErr == nil {
		if json.Unmarshal(identityRaw, &identity) == nil && json.Unmarshal(tokensRaw, &tokens) == nil {
			s.mu.Lock()
			s.identity = &identity
			s.tokens = &tokens
			s.mu.Unlock()
			return nil
		}
	}

	// Missing or unparsable slot: fail closed, purge whatever remains.
	s.log.WarnContext(ctx, "discarding corrupt persisted session",
		logger.Component("session"),
		logger.Event("session_purged"),
	)
	if err := s.storage.Delete(ctx, s.identityKey); err != nil {
		s.log.WarnContext(ctx, "failed to purge identity slot", logger.Error(err))
	}
	if err := s.storage.Delete(ctx, s.tokensKey); err != nil {
		s.log.WarnContext(ctx, "failed to purge tokens slot", logger.Error(err))
	}
	return nil
}

// Login replaces the current session with the given identity and token pair
// and persists both slots. Input shape is the caller's responsibility; calling
// again simply replaces the previous session.
//
// The in-memory state is installed even if persistence fails; the returned
// error then wraps ErrSaveSession.
func (s *Store) Login(ctx context.Context, identity Identity, tokens TokenPair) error {
	s.mu.Lock()
	s.identity = &identity
	s.tokens = &tokens
	s.mu.Unlock()

	identityRaw, err := json.Marshal(identity)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	tokensRaw, err := json.Marshal(tokens)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	if err := s.storage.Set(ctx, s.identityKey, identityRaw); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	if err := s.storage.Set(ctx, s.tokensKey, tokensRaw); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	return nil
}

// Logout clears the current session and removes both persisted slots.
// Idempotent: logging out with no session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.tokens = nil
	s.mu.Unlock()

	identityErr := s.storage.Delete(ctx, s.identityKey)
	tokensErr := s.storage.Delete(ctx, s.tokensKey)
	if identityErr != nil || tokensErr != nil {
		return errors.Join(ErrClearSession, identityErr, tokensErr)
	}
	return nil
}

// Identity returns the current identity, if a session is present.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Tokens returns the current token pair, if a session is present.
func (s *Store) Tokens() (TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tokens == nil {
		return TokenPair{}, false
	}
	return *s.tokens, true
}

// AccessToken returns the current access token, if a session is present.
// Implements the token source contract expected by API clients.
func (s *Store) AccessToken() (string, bool) {
	tokens, ok := s.Tokens()
	if !ok {
		return "", false
	}
	return tokens.Access, true
}

// IsAuthenticated reports whether a session is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// unavailable reports whether err is a storage failure other than a missing key.
func unavailable(err error) bool {
	return err != nil && !errors.Is(err, kv.ErrNotFound)
}
