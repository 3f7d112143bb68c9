// Package persist mirrors every list to a sqlite database, one row per list
// holding the full JSON record. Rows are overwritten in place on each
// mutation, there is no history.
package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/astromechza/handla/pkg/list"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init ensures the schema exists.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS lists (
		id text not null primary key,
		content text not null,
		updated_at integer not null
		)`,
	); err != nil {
		return fmt.Errorf("failed to create lists table: %w", err)
	}
	return nil
}

// LoadAll scans every durable record. A row that fails to decode is logged
// and skipped rather than aborting startup.
func (s *Store) LoadAll(ctx context.Context) (map[string]*list.List, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content FROM lists`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "err", err)
		}
	}()

	out := map[string]*list.List{}
	for rows.Next() {
		var id, content string
		if err := rows.Scan(&id, &content); err != nil {
			return nil, fmt.Errorf("failed to scan list row: %w", err)
		}
		l := new(list.List)
		if err := json.Unmarshal([]byte(content), l); err != nil {
			slog.Error("skipping unreadable list record", "list", id, "err", err)
			continue
		}
		out[id] = l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}
	slog.Info("loaded persisted lists", "count", len(out))
	return out, nil
}

// Save upserts the full record for one list.
func (s *Store) Save(ctx context.Context, l list.List) error {
	content, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode list %s: %w", l.ID, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO lists (id, content, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		l.ID, string(content), time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("failed to persist list %s: %w", l.ID, err)
	}
	return nil
}
