package agent

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/astromechza/handla/pkg/list"
)

type fakeConn struct {
	incoming  chan list.Message
	written   chan list.Message
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan list.Message, 16),
		written:  make(chan list.Message, 16),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) ReadJSON(v interface{}) error {
	select {
	case m := <-c.incoming:
		*(v.(*list.Message)) = m
		return nil
	case <-c.closed:
		return fmt.Errorf("connection closed")
	}
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	select {
	case c.written <- v.(list.Message):
		return nil
	case <-c.closed:
		return fmt.Errorf("connection closed")
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) nextWritten(t *testing.T) list.Message {
	t.Helper()
	select {
	case m := <-c.written:
		return m
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a written message")
		return list.Message{}
	}
}

// queuedDialer hands out prepared connections one per attempt and blocks
// when it has none left.
func queuedDialer(conns ...*fakeConn) (Dialer, *int32) {
	queue := make(chan *fakeConn, len(conns))
	for _, c := range conns {
		queue <- c
	}
	attempts := new(int32)
	return func(ctx context.Context) (Conn, error) {
		atomic.AddInt32(attempts, 1)
		select {
		case c := <-queue:
			return c, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}, attempts
}

func initMessage(todos ...list.Todo) list.Message {
	l := list.List{ID: "l1", Todos: todos, CreatedAt: 1}
	return list.Message{Type: list.TypeInit, List: &l}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func startAgent(t *testing.T, a *Agent) context.CancelFunc {
	t.Helper()
	a.delay = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Error("agent did not stop")
		}
	})
	return cancel
}

func TestOptimisticApplyWhileDisconnected(t *testing.T) {
	a := New("l1", nil, nil)

	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	a.Send(list.Message{Type: list.TypeAdd, Todo: &todo})

	snapshot, state := a.Snapshot()
	assert.Equal(t, 1, len(snapshot.Todos))
	assert.Equal(t, StateConnecting, state)
	assert.Equal(t, 1, a.PendingCount())
}

func TestQueueFlushedInOrderOnConnect(t *testing.T) {
	conn := newFakeConn()
	conn.incoming <- initMessage()
	dial, _ := queuedDialer(conn)
	a := New("l1", dial, nil)

	for _, id := range []string{"1", "2", "3"} {
		todo := list.Todo{ID: id, Text: "todo " + id, CreatedAt: 1000}
		a.Send(list.Message{Type: list.TypeAdd, Todo: &todo})
	}

	startAgent(t, a)

	assert.Equal(t, "1", conn.nextWritten(t).Todo.ID)
	assert.Equal(t, "2", conn.nextWritten(t).Todo.ID)
	assert.Equal(t, "3", conn.nextWritten(t).Todo.ID)
	waitFor(t, "queue drained", func() bool { return a.PendingCount() == 0 })
}

func TestInitReplacesLocalState(t *testing.T) {
	conn := newFakeConn()
	conn.incoming <- initMessage(list.Todo{ID: "srv", Text: "från servern", CreatedAt: 5})
	dial, _ := queuedDialer(conn)

	a := New("l1", dial, nil)
	stale := list.Todo{ID: "stale", Text: "gammal", CreatedAt: 1}
	list.Apply(&a.local, list.Message{Type: list.TypeAdd, Todo: &stale})

	startAgent(t, a)

	waitFor(t, "connected", func() bool { _, s := a.Snapshot(); return s == StateConnected })
	snapshot, _ := a.Snapshot()
	assert.Equal(t, 1, len(snapshot.Todos))
	assert.Equal(t, "srv", snapshot.Todos[0].ID)
}

func TestMalformedInitDropsConnection(t *testing.T) {
	bad, good := newFakeConn(), newFakeConn()
	// an init frame without its list payload must not take the agent down
	bad.incoming <- list.Message{Type: list.TypeInit}
	good.incoming <- initMessage(list.Todo{ID: "srv", Text: "från servern", CreatedAt: 5})
	dial, attempts := queuedDialer(bad, good)
	a := New("l1", dial, nil)
	startAgent(t, a)

	waitFor(t, "reconnect past the bad init", func() bool {
		snapshot, s := a.Snapshot()
		return s == StateConnected && len(snapshot.Todos) == 1
	})
	assert.Equal(t, true, atomic.LoadInt32(attempts) >= 2)
}

func TestOwnEchoIsReappliedHarmlessly(t *testing.T) {
	conn := newFakeConn()
	conn.incoming <- initMessage()
	dial, _ := queuedDialer(conn)
	a := New("l1", dial, nil)
	startAgent(t, a)
	waitFor(t, "connected", func() bool { _, s := a.Snapshot(); return s == StateConnected })

	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	a.Send(list.Message{Type: list.TypeAdd, Todo: &todo})
	echo := conn.nextWritten(t)

	// the server bounces our own frame back
	conn.incoming <- echo
	conn.incoming <- list.Message{Type: list.TypeUpdateName, Name: "Groceries"}
	waitFor(t, "name update", func() bool { s, _ := a.Snapshot(); return s.Name == "Groceries" })

	snapshot, _ := a.Snapshot()
	assert.Equal(t, 1, len(snapshot.Todos))
}

func TestReconnectsAfterDrop(t *testing.T) {
	first, second := newFakeConn(), newFakeConn()
	first.incoming <- initMessage()
	second.incoming <- initMessage(list.Todo{ID: "back", Text: "igen", CreatedAt: 2})
	dial, attempts := queuedDialer(first, second)
	a := New("l1", dial, nil)
	startAgent(t, a)

	waitFor(t, "first connect", func() bool { _, s := a.Snapshot(); return s == StateConnected })
	_ = first.Close()
	waitFor(t, "reconnect", func() bool {
		snapshot, s := a.Snapshot()
		return s == StateConnected && len(snapshot.Todos) == 1
	})
	assert.Equal(t, true, atomic.LoadInt32(attempts) >= 2)
}

func TestCacheRehydratesAndMirrors(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)

	a := New("l1", nil, cache)
	todo := list.Todo{ID: "1", Text: "mjölk", CreatedAt: 1000}
	a.Send(list.Message{Type: list.TypeAdd, Todo: &todo})

	// a new agent over the same cache dir sees the applied state, while the
	// unsent queue is gone
	b := New("l1", nil, NewCache(dir))
	snapshot, _ := b.Snapshot()
	assert.Equal(t, 1, len(snapshot.Todos))
	assert.Equal(t, "mjölk", snapshot.Todos[0].Text)
	assert.Equal(t, 0, b.PendingCount())
}

func TestCacheLoadMissingIsNil(t *testing.T) {
	c := NewCache(t.TempDir())
	l, err := c.Load("nope")
	assert.Equal(t, nil, err)
	if l != nil {
		t.Fatalf("expected nil list, got %+v", l)
	}
}
