package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/astromechza/handla/pkg/list"
)

// Cache is the durable client-side mirror: one JSON file per list id, written
// on every change, read back at startup so the list stays viewable offline.
// Only applied state is cached, never the unsent queue.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) path(listID string) string {
	return filepath.Join(c.dir, listID+".json")
}

// Load reads the cached copy of a list, returning nil when none exists yet.
func (c *Cache) Load(listID string) (*list.List, error) {
	raw, err := os.ReadFile(c.path(listID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	l := new(list.List)
	if err := json.Unmarshal(raw, l); err != nil {
		return nil, fmt.Errorf("failed to decode cache file: %w", err)
	}
	return l, nil
}

// Save overwrites the cached copy.
func (c *Cache) Save(l list.List) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}
	if err := os.WriteFile(c.path(l.ID), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
