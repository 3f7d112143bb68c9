// Package agent keeps one client's copy of a list in sync with the server.
// It applies local edits optimistically, queues them while offline, and
// reconnects forever on a fixed delay. Echoed broadcasts are reapplied
// through the same idempotent apply path the server uses, which is what
// reconciles the optimistic copy with the order edits actually landed in.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/astromechza/handla/pkg/list"
)

// ReconnectDelay is fixed: no growth, no retry cap.
const ReconnectDelay = 2 * time.Second

type State int

const (
	StateConnecting State = iota
	StateConnected
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	}
	return "unknown"
}

// Conn is the slice of *websocket.Conn the agent needs, kept narrow so the
// state machine can be driven by a fake in tests.
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// Dialer opens one connection attempt.
type Dialer func(ctx context.Context) (Conn, error)

// WebSocketDialer dials the server's sync endpoint for the given list.
func WebSocketDialer(wsURL string) Dialer {
	return func(ctx context.Context) (Conn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", wsURL, err)
		}
		return conn, nil
	}
}

type Agent struct {
	listID string
	dial   Dialer
	cache  *Cache
	delay  time.Duration

	mu      sync.Mutex
	state   State
	local   list.List
	pending []list.Message
	conn    Conn

	// serializes every outbound write so queued and live sends cannot
	// overtake each other
	writeMu sync.Mutex

	updates chan struct{}
}

// New builds an agent for one list. cache may be nil. The local copy is
// rehydrated from the cache so the list stays viewable before the first
// successful connect.
func New(listID string, dial Dialer, cache *Cache) *Agent {
	a := &Agent{
		listID:  listID,
		dial:    dial,
		cache:   cache,
		delay:   ReconnectDelay,
		state:   StateConnecting,
		local:   list.List{ID: listID, Todos: []list.Todo{}},
		updates: make(chan struct{}, 1),
	}
	if cache != nil {
		if l, err := cache.Load(listID); err != nil {
			slog.Error("failed to rehydrate cached list", "list", listID, "err", err)
		} else if l != nil {
			a.local = *l
		}
	}
	return a
}

// Run drives the connect cycle until ctx is cancelled. Only ever one dial
// and one connection in flight: a new attempt starts strictly after the
// previous socket has fully closed.
func (a *Agent) Run(ctx context.Context) {
	for {
		a.setState(StateConnecting)
		conn, err := a.dial(ctx)
		if err != nil {
			slog.Info("connect failed", "list", a.listID, "err", err)
		} else {
			a.serve(ctx, conn)
		}
		if ctx.Err() != nil {
			return
		}
		a.setState(StateDisconnected)
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return
		}
	}
}

// serve owns the connection from accept to close.
func (a *Agent) serve(ctx context.Context, conn Conn) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()
	defer conn.Close()

	// the server speaks first: a full snapshot that becomes the new baseline
	var init list.Message
	if err := conn.ReadJSON(&init); err != nil {
		slog.Info("connection lost before init", "list", a.listID, "err", err)
		return
	}
	if err := init.Validate(); err != nil {
		slog.Error("dropping connection with malformed init", "list", a.listID, "err", err)
		return
	}
	a.apply(init)

	a.mu.Lock()
	a.conn = conn
	a.state = StateConnected
	a.mu.Unlock()
	a.notify()
	defer func() {
		a.mu.Lock()
		a.conn = nil
		a.mu.Unlock()
	}()

	if err := a.drain(conn); err != nil {
		slog.Info("failed to flush pending messages", "list", a.listID, "err", err)
		return
	}

	for {
		var m list.Message
		if err := conn.ReadJSON(&m); err != nil {
			slog.Info("connection lost", "list", a.listID, "err", err)
			return
		}
		if err := m.Validate(); err != nil {
			slog.Error("dropping malformed broadcast", "list", a.listID, "err", err)
			continue
		}
		a.apply(m)
	}
}

// drain delivers queued mutations in the order they were made. A message is
// only dequeued once its write succeeded; anything unsent stays queued for
// the next connection.
func (a *Agent) drain(conn Conn) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	for {
		a.mu.Lock()
		if len(a.pending) == 0 || a.conn != conn {
			a.mu.Unlock()
			return nil
		}
		m := a.pending[0]
		a.mu.Unlock()

		if err := conn.WriteJSON(m); err != nil {
			return err
		}

		a.mu.Lock()
		a.pending = a.pending[1:]
		a.mu.Unlock()
	}
}

// Send applies a mutation optimistically, then delivers it right away when
// connected or leaves it queued for the reconnect flush.
func (a *Agent) Send(m list.Message) {
	a.mu.Lock()
	list.Apply(&a.local, m)
	a.writeCacheLocked()
	a.pending = append(a.pending, m)
	conn := a.conn
	a.mu.Unlock()
	a.notify()

	if conn != nil {
		if err := a.drain(conn); err != nil {
			slog.Info("send failed, keeping message queued", "list", a.listID, "err", err)
		}
	}
}

// apply folds a server message into the local copy.
func (a *Agent) apply(m list.Message) {
	a.mu.Lock()
	list.Apply(&a.local, m)
	a.writeCacheLocked()
	a.mu.Unlock()
	a.notify()
}

func (a *Agent) writeCacheLocked() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Save(a.local); err != nil {
		slog.Error("failed to cache list", "list", a.listID, "err", err)
	}
}

func (a *Agent) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
	a.notify()
}

// Snapshot returns a copy of the local list and the connection state.
func (a *Agent) Snapshot() (list.List, State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.local.Clone(), a.state
}

// PendingCount reports how many mutations await delivery.
func (a *Agent) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Updates signals (coalesced) whenever local state or connectivity changes.
func (a *Agent) Updates() <-chan struct{} {
	return a.updates
}

func (a *Agent) notify() {
	select {
	case a.updates <- struct{}{}:
	default:
	}
}

// NewTodo builds a todo for local creation: fresh id, current timestamp.
func NewTodo(text, amount, unit string) list.Todo {
	return list.Todo{
		ID:        ulid.Make().String(),
		Text:      text,
		Amount:    amount,
		Unit:      unit,
		CreatedAt: time.Now().UnixMilli(),
	}
}
