package auth

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultSessionTTL = 30 * 24 * time.Hour
	tokenBytes        = 32
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]{2,31}$`)

// Manager implements Service on top of an AccountStore. Sessions are
// held in memory regardless of the account backend.
type Manager struct {
	store      AccountStore
	sessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]sessionRecord
}

type sessionRecord struct {
	UserID    uint64
	Username  string
	ExpiresAt time.Time
}

// NewManager builds a Service over the given store. ttl <= 0 selects
// the default session lifetime.
func NewManager(store AccountStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Manager{
		store:      store,
		sessionTTL: ttl,
		sessions:   make(map[string]sessionRecord),
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validateUsername(username string) error {
	if !usernamePattern.MatchString(strings.TrimSpace(username)) {
		return ErrInvalidUsername
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 || len(password) > 72 {
		return ErrInvalidPassword
	}
	return nil
}

// Register creates a new account and returns an authenticated session.
func (m *Manager) Register(username, password string) (uint64, string, error) {
	if err := validateUsername(username); err != nil {
		return 0, "", err
	}
	if err := validatePassword(password); err != nil {
		return 0, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", err
	}

	normalized := normalizeUsername(username)
	userID, err := m.store.Create(normalized, hash)
	if err != nil {
		return 0, "", err
	}
	return userID, m.issueSession(userID, normalized), nil
}

// Login validates credentials and returns a fresh session.
func (m *Manager) Login(username, password string) (uint64, string, error) {
	normalized := normalizeUsername(username)
	if normalized == "" || password == "" {
		return 0, "", ErrInvalidCredentials
	}

	acct, err := m.store.Lookup(normalized)
	if err != nil {
		return 0, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return 0, "", ErrInvalidCredentials
	}
	if err := m.store.TouchLogin(acct.ID); err != nil {
		return 0, "", err
	}
	return acct.ID, m.issueSession(acct.ID, acct.Username), nil
}

// ResolveSession validates a token and refreshes its expiry.
func (m *Manager) ResolveSession(token string) (uint64, string, bool) {
	if token == "" {
		return 0, "", false
	}
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	rec, exists := m.sessions[token]
	if !exists {
		return 0, "", false
	}
	if !now.Before(rec.ExpiresAt) {
		delete(m.sessions, token)
		return 0, "", false
	}
	rec.ExpiresAt = now.Add(m.sessionTTL)
	m.sessions[token] = rec
	return rec.UserID, rec.Username, true
}

// Logout invalidates a session token.
func (m *Manager) Logout(token string) {
	if token == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

func (m *Manager) Close() error { return m.store.Close() }

func (m *Manager) issueSession(userID uint64, username string) string {
	token := mustToken()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = sessionRecord{
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.sessionTTL),
	}
	return token
}

func mustToken() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
