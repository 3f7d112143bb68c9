// Package hub tracks which live sessions are subscribed to which list and
// fans frames out to them. Membership is a first-class mapping from list id
// to session set; a session belongs to exactly one room for its lifetime.
package hub

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
)

// sendBuffer bounds how far a slow session can fall behind before frames are
// dropped on the floor. Delivery is best effort, there is no acknowledgement.
const sendBuffer = 64

// FrameWriter is the part of *websocket.Conn the write pump needs.
type FrameWriter interface {
	WriteMessage(messageType int, data []byte) error
}

type Session struct {
	ID     string
	ListID string

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// Send enqueues one frame for the session's write pump. It never blocks: a
// session that cannot keep up loses the frame, which must not hold up the
// rest of the room. Leave may race a broadcast, so the closed flag and the
// channel send share a lock.
func (s *Session) Send(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- frame:
		return true
	default:
		slog.Warn("dropping frame for slow session", "session", s.ID, "list", s.ListID)
		return false
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.send)
	}
}

// Run drains queued frames to the connection until the session is closed or
// a write fails. The single write pump per connection is what keeps gorilla's
// one-concurrent-writer rule intact.
func (s *Session) Run(w FrameWriter) error {
	for frame := range s.send {
		if err := w.WriteMessage(websocket.TextMessage, frame); err != nil {
			return err
		}
	}
	return nil
}

type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*Session]struct{}
}

func New() *Hub {
	return &Hub{rooms: map[string]map[*Session]struct{}{}}
}

// Join registers a new session in the room for listID.
func (h *Hub) Join(listID string) *Session {
	s := &Session{
		ID:     ulid.Make().String(),
		ListID: listID,
		send:   make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[listID]
	if !ok {
		room = map[*Session]struct{}{}
		h.rooms[listID] = room
	}
	room[s] = struct{}{}
	return s
}

// Leave removes the session from its room and stops its write pump.
func (h *Hub) Leave(s *Session) {
	h.mu.Lock()
	if room, ok := h.rooms[s.ListID]; ok {
		delete(room, s)
		if len(room) == 0 {
			delete(h.rooms, s.ListID)
		}
	}
	h.mu.Unlock()
	s.close()
}

// Broadcast attempts delivery of the frame to every session currently in the
// room, including whichever session originated it.
func (h *Hub) Broadcast(listID string, frame []byte) {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.rooms[listID]))
	for s := range h.rooms[listID] {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		s.Send(frame)
	}
}

// RoomSize reports how many sessions are subscribed to a list.
func (h *Hub) RoomSize(listID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[listID])
}
