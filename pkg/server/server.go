// Package server binds the wire protocol to the store and the hub: accept a
// connection scoped to one list, push the initial snapshot, then apply,
// persist and rebroadcast every mutation frame.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/astromechza/handla/pkg/hub"
	"github.com/astromechza/handla/pkg/list"
	"github.com/astromechza/handla/pkg/store"
	"github.com/astromechza/handla/pkg/suggest"
)

const defaultSuggestLimit = 5

type Handler struct {
	store    *store.Store
	hub      *hub.Hub
	index    *suggest.Index
	upgrader websocket.Upgrader
}

func New(st *store.Store, h *hub.Hub, index *suggest.Index) *Handler {
	return &Handler{
		store: st,
		hub:   h,
		index: index,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Sync is the synchronization channel. The listId query parameter names the
// room; without one the connection is closed with a policy violation.
func (h *Handler) Sync(writer http.ResponseWriter, request *http.Request) {
	listID := request.URL.Query().Get("listId")

	conn, err := h.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		slog.Error("failed to upgrade", "err", err)
		return
	}
	defer conn.Close()

	if listID == "" {
		slog.Warn("rejecting connection without listId")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "listId query parameter is required"))
		return
	}

	sess := h.hub.Join(listID)
	defer h.hub.Leave(sess)
	slog.Info("session joined", "session", sess.ID, "list", listID, "room", h.hub.RoomSize(listID))

	go func() {
		if err := sess.Run(conn); err != nil {
			slog.Info("write pump stopped", "session", sess.ID, "err", err)
		}
		_ = conn.Close()
	}()

	// the one unsolicited message a client ever receives: its baseline state
	snapshot := h.store.GetOrCreate(listID)
	initFrame, err := json.Marshal(list.Message{Type: list.TypeInit, List: &snapshot})
	if err != nil {
		slog.Error("failed to encode init", "list", listID, "err", err)
		return
	}
	sess.Send(initFrame)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			slog.Info("session left", "session", sess.ID, "list", listID, "err", err)
			return
		}
		m, err := list.Decode(raw)
		if err != nil {
			slog.Error("dropping malformed message", "session", sess.ID, "err", err)
			continue
		}
		if m.Type == list.TypeInit {
			// init flows server to client only
			slog.Error("dropping client-sent init", "session", sess.ID)
			continue
		}
		h.store.Apply(request.Context(), listID, m)
		// fan out the original frame, not a re-encoding of it
		h.hub.Broadcast(listID, raw)
	}
}

// GetList serves a point-in-time JSON snapshot of one list.
func (h *Handler) GetList(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	snapshot := h.store.GetOrCreate(vars["list"])
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(snapshot); err != nil {
		slog.Error("failed to write list", "list", vars["list"], "err", err)
	}
}

// Suggest serves ranked grocery-name completions for the entry field.
func (h *Handler) Suggest(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")
	limit := defaultSuggestLimit
	if rawLimit := request.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			writer.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(h.index.Search(query, limit)); err != nil {
		slog.Error("failed to write suggestions", "err", err)
	}
}
