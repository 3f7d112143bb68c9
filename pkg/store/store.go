// Package store owns the authoritative in-memory copy of every list. All
// mutation funnels through Apply under a single lock, which is the entire
// concurrency story for server-side state: one writer at a time per process.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/astromechza/handla/pkg/list"
)

// Persister is the durable mirror written after every accepted mutation.
type Persister interface {
	Save(ctx context.Context, l list.List) error
}

type Store struct {
	mu        sync.Mutex
	lists     map[string]*list.List
	persister Persister

	// stubbed in tests
	now func() int64
}

func New(persister Persister) *Store {
	return &Store{
		lists:     map[string]*list.List{},
		persister: persister,
		now:       func() int64 { return time.Now().UnixMilli() },
	}
}

// Restore seeds the store with previously persisted state. Called once at
// startup before any connection is accepted.
func (s *Store) Restore(lists map[string]*list.List) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range lists {
		s.lists[id] = l
	}
}

// GetOrCreate returns a snapshot of the list, creating an empty one on first
// reference. Lists spring into existence implicitly and are never deleted.
func (s *Store) GetOrCreate(listID string) list.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(listID).Clone()
}

func (s *Store) getOrCreateLocked(listID string) *list.List {
	l, ok := s.lists[listID]
	if !ok {
		l = &list.List{ID: listID, Todos: []list.Todo{}, CreatedAt: s.now()}
		s.lists[listID] = l
	}
	return l
}

// Apply mutates the list and synchronously writes the durable mirror. A save
// failure is logged but does not roll back the in-memory mutation: the
// running process stays the source of truth.
func (s *Store) Apply(ctx context.Context, listID string, m list.Message) list.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.getOrCreateLocked(listID)
	list.Apply(l, m)
	snapshot := l.Clone()
	if err := s.persister.Save(ctx, snapshot); err != nil {
		slog.Error("failed to persist list", "list", listID, "err", err)
	}
	return snapshot
}

// Flush rewrites every list to the durable mirror, best effort. Used at
// teardown.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.lists {
		if err := s.persister.Save(ctx, l.Clone()); err != nil {
			slog.Error("failed to flush list", "list", id, "err", err)
		}
	}
}
