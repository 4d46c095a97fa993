package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pixelana/pixelana-go/internal/dependencies/clock"
	"github.com/pixelana/pixelana-go/internal/dependencies/random"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// IdentityAlphabet is the character set for generated identities,
// base58 so identities read like ledger public keys.
const IdentityAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IdentityLength is the length of generated identities
const IdentityLength = 44

// Session represents an authenticated session. The session identity is
// the authorizer for every operation performed with its token.
type Session struct {
	Token     string
	Identity  model.Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles wallet registration and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Register generates a fresh identity, creates a wallet for it
// protected by the given passphrase, and starts a session. The caller
// keeps the returned identity to log in later.
func (s *Service) Register(ctx context.Context, passphrase string) (*Session, error) {
	var identity model.Identity
	for {
		identity = model.Identity(s.random.String(IdentityLength, IdentityAlphabet))
		_, err := s.storage.GetWallet(ctx, identity)
		if errors.Is(err, model.ErrPlayerNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		// Collision: generate again.
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	wallet := &model.Wallet{
		Identity:       identity,
		PassphraseHash: string(hash),
		CreatedAt:      s.clock.Now(),
	}

	if err := s.storage.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}

	return s.createSession(identity), nil
}

// Login authenticates an identity's passphrase and creates a session
func (s *Service) Login(ctx context.Context, identity model.Identity, passphrase string) (*Session, error) {
	wallet, err := s.storage.GetWallet(ctx, identity)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(wallet.PassphraseHash), []byte(passphrase)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(identity), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// createSession creates a new session for an identity
func (s *Service) createSession(identity model.Identity) *Session {
	token := generateToken("sess_")
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random token with a prefix
func generateToken(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
