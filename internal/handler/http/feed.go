package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/models"
	"github.com/gorilla/websocket"
)

const (
	defaultFeedLimit = 20
	feedWriteTimeout = 10 * time.Second
)

// feed upgrades the request to a websocket and streams notes as JSON text
// messages: the recent backlog oldest first, then every new note.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := h.feedLimit(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.feed").Msg("invalid limit")
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Err(err).Str("func", "*Handler.feed").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the client never sends; reading detects its close frame
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	err = h.services.NoteService.Feed(ctx, limit, func(note models.Note) error {
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		return conn.WriteJSON(note)
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.feed").Msg("feed stopped")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "feed stopped"),
			time.Now().Add(time.Second))
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

// feedLimit reads the limit query parameter: absent means 20, larger values
// are capped at the configured maximum.
func (h *Handler) feedLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return min(defaultFeedLimit, h.feedMaxLimit), nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, ErrInvalidFeedLimit
	}

	return min(limit, h.feedMaxLimit), nil
}
