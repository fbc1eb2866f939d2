package archive

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"clocktower-lite/record"
)

const defaultRecentLimit = 50

var ErrNotFound = errors.New("not found")

// Item is one row of a user's setup history listing.
type Item struct {
	ID        string    `json:"id"`
	Script    string    `json:"script"`
	Players   int       `json:"players"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// Service stores generated setups per user.
type Service interface {
	Close() error
	// Save stores one record and returns its archive ID.
	Save(ctx context.Context, userID uint64, rec *record.Record) (string, error)
	ListRecent(ctx context.Context, userID uint64, limit int) ([]Item, error)
	Get(ctx context.Context, userID uint64, id string) (*record.Record, error)
}

type noopService struct{}

func (n *noopService) Close() error { return nil }

func (n *noopService) Save(context.Context, uint64, *record.Record) (string, error) {
	return "", nil
}

func (n *noopService) ListRecent(context.Context, uint64, int) ([]Item, error) {
	return []Item{}, nil
}

func (n *noopService) Get(context.Context, uint64, string) (*record.Record, error) {
	return nil, ErrNotFound
}

// NewServiceFromEnv selects the archive backend from ARCHIVE_MODE:
// sqlite (default), db/postgres, or memory for a no-op archive.
func NewServiceFromEnv() (Service, string, error) {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("ARCHIVE_MODE")))
	switch mode {
	case "memory", "mem", "noop":
		return &noopService{}, "memory-noop", nil
	case "", "local", "sqlite":
		service, err := newSQLiteServiceFromEnv()
		if err != nil {
			return nil, "", err
		}
		return service, "sqlite", nil
	case "db", "postgres", "postgresql":
		service, err := newPostgresServiceFromEnv()
		if err != nil {
			return nil, "", err
		}
		return service, "postgres", nil
	}
	return nil, "", errors.New("invalid ARCHIVE_MODE " + strconv.Quote(mode))
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > defaultRecentLimit {
		return defaultRecentLimit
	}
	return limit
}
