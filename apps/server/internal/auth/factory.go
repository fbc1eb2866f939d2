package auth

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthModeMemory = "memory"
	AuthModeSQLite = "sqlite"
	AuthModeDB     = "db"
)

func authModeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_MODE")))
	switch raw {
	case "", AuthModeSQLite, "local":
		return AuthModeSQLite
	case AuthModeDB, "postgres", "postgresql":
		return AuthModeDB
	case AuthModeMemory, "mem":
		return AuthModeMemory
	default:
		return raw
	}
}

func sessionTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("AUTH_SESSION_TTL_HOURS"))
	if raw == "" {
		return 0
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 0
	}
	return time.Duration(hours) * time.Hour
}

// NewServiceFromEnv selects the account backend from AUTH_MODE and
// wraps it in a session manager.
func NewServiceFromEnv() (Service, string, error) {
	mode := authModeFromEnv()
	ttl := sessionTTLFromEnv()

	var store AccountStore
	var err error
	switch mode {
	case AuthModeMemory:
		store = newMemoryStore()
	case AuthModeSQLite:
		store, err = newSQLiteStoreFromEnv()
	case AuthModeDB:
		store, err = newPostgresStoreFromEnv()
	default:
		return nil, mode, fmt.Errorf("invalid AUTH_MODE %q (supported: %s, %s, %s)",
			mode, AuthModeMemory, AuthModeSQLite, AuthModeDB)
	}
	if err != nil {
		return nil, mode, err
	}
	return NewManager(store, ttl), mode, nil
}
