package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"clocktower-lite/record"
)

const defaultLocalDBName = "clocktower_local.db"

type sqliteService struct {
	db *sql.DB
}

func newSQLiteServiceFromEnv() (*sqliteService, error) {
	dbPath := strings.TrimSpace(os.Getenv("ARCHIVE_SQLITE_PATH"))
	if dbPath == "" {
		dbPath = defaultLocalDBName
	}
	return newSQLiteService(dbPath)
}

func newSQLiteService(dbPath string) (*sqliteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS setup_archive (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL,
    script TEXT NOT NULL,
    players INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    record_json TEXT NOT NULL,
    created_at_ms INTEGER NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_setup_archive_user
ON setup_archive (user_id, created_at_ms DESC)
`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteService{db: db}, nil
}

func (s *sqliteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *sqliteService) Save(ctx context.Context, userID uint64, rec *record.Record) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("nil record")
	}
	data, err := record.Encode(rec)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO setup_archive (id, user_id, script, players, seed, record_json, created_at_ms)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, id, userID, rec.Script, rec.Players, rec.Seed, string(data), rec.CreatedAt.UnixMilli())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *sqliteService) ListRecent(ctx context.Context, userID uint64, limit int) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, script, players, seed, created_at_ms
FROM setup_archive
WHERE user_id = ?
ORDER BY created_at_ms DESC
LIMIT ?
`, userID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		var createdMs int64
		if err := rows.Scan(&item.ID, &item.Script, &item.Players, &item.Seed, &createdMs); err != nil {
			return nil, err
		}
		item.CreatedAt = time.UnixMilli(createdMs).UTC()
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *sqliteService) Get(ctx context.Context, userID uint64, id string) (*record.Record, error) {
	var blob string
	err := s.db.QueryRowContext(ctx, `
SELECT record_json FROM setup_archive WHERE user_id = ? AND id = ?
`, userID, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record.Decode([]byte(blob))
}
