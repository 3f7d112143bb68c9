package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/astromechza/handla/pkg/list"
)

type recordingPersister struct {
	saves []list.List
	fail  bool
}

func (p *recordingPersister) Save(_ context.Context, l list.List) error {
	if p.fail {
		return fmt.Errorf("disk is gone")
	}
	p.saves = append(p.saves, l)
	return nil
}

func TestGetOrCreateSpringsIntoExistence(t *testing.T) {
	s := New(&recordingPersister{})
	s.now = func() int64 { return 42 }

	l := s.GetOrCreate("fresh")
	assert.Equal(t, "fresh", l.ID)
	assert.Equal(t, "", l.Name)
	assert.Equal(t, 0, len(l.Todos))
	assert.Equal(t, int64(42), l.CreatedAt)

	// created once, not per call
	s.now = func() int64 { return 99 }
	again := s.GetOrCreate("fresh")
	assert.Equal(t, int64(42), again.CreatedAt)
}

func TestApplyMutatesAndPersists(t *testing.T) {
	p := &recordingPersister{}
	s := New(p)

	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	out := s.Apply(context.Background(), "l1", list.Message{Type: list.TypeAdd, Todo: &todo})

	assert.Equal(t, 1, len(out.Todos))
	assert.Equal(t, 1, len(p.saves))
	// the persisted record is exactly the post-mutation list
	assert.Equal(t, out, p.saves[0])
}

func TestApplySurvivesPersistFailure(t *testing.T) {
	p := &recordingPersister{fail: true}
	s := New(p)

	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	out := s.Apply(context.Background(), "l1", list.Message{Type: list.TypeAdd, Todo: &todo})
	assert.Equal(t, 1, len(out.Todos))

	// in-memory state remains authoritative
	assert.Equal(t, 1, len(s.GetOrCreate("l1").Todos))
}

func TestRestoreSeedsState(t *testing.T) {
	s := New(&recordingPersister{})
	s.Restore(map[string]*list.List{
		"l1": {ID: "l1", Name: "Groceries", Todos: []list.Todo{{ID: "1", Text: "te", CreatedAt: 1}}, CreatedAt: 1},
	})
	l := s.GetOrCreate("l1")
	assert.Equal(t, "Groceries", l.Name)
	assert.Equal(t, 1, len(l.Todos))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New(&recordingPersister{})
	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	s.Apply(context.Background(), "l1", list.Message{Type: list.TypeAdd, Todo: &todo})

	snap := s.GetOrCreate("l1")
	snap.Todos[0].Text = "scribbled"
	assert.Equal(t, "mjölk", s.GetOrCreate("l1").Todos[0].Text)
}

func TestFlushWritesEverything(t *testing.T) {
	p := &recordingPersister{}
	s := New(p)
	s.GetOrCreate("a")
	s.GetOrCreate("b")
	p.saves = nil
	s.Flush(context.Background())
	assert.Equal(t, 2, len(p.saves))
}
