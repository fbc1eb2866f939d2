package auth

import (
	"errors"
	"sync"
)

var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is one stored storyteller account.
type Account struct {
	ID           uint64
	Username     string
	PasswordHash []byte
}

// AccountStore persists accounts. Sessions stay in the Manager; only
// credentials survive a restart.
type AccountStore interface {
	// Create stores a new account; ErrUsernameTaken when the
	// normalized username already exists.
	Create(username string, passwordHash []byte) (uint64, error)
	// Lookup fetches an account by normalized username.
	Lookup(username string) (*Account, error)
	// TouchLogin records a successful login.
	TouchLogin(userID uint64) error
	Close() error
}

// memoryStore keeps accounts in process memory, for single-binary
// deployments and tests.
type memoryStore struct {
	mu     sync.Mutex
	nextID uint64
	byName map[string]*Account
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID: 100000, // start from a readable non-trivial range
		byName: make(map[string]*Account),
	}
}

func (s *memoryStore) Create(username string, passwordHash []byte) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[username]; exists {
		return 0, ErrUsernameTaken
	}
	s.nextID++
	s.byName[username] = &Account{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	return s.nextID, nil
}

func (s *memoryStore) Lookup(username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.byName[username]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	copied := *acct
	return &copied, nil
}

func (s *memoryStore) TouchLogin(uint64) error { return nil }

func (s *memoryStore) Close() error { return nil }
