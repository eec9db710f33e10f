package handler

import (
	"errors"
	"net/http"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/metrics"
	"github.com/Du7chy/Seedlings/internal/sse"
)

// HandleEvents streams game events to the acting player over SSE.
// The stream is scoped to the player and the room they are in at connect
// time; clients reconnect after switching rooms.
func HandleEvents(hub *sse.Hub, gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		flusher, canFlush := w.(http.Flusher)
		if !canFlush {
			log.Error("Response writer does not support streaming")
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		roomID := 0
		detail, err := gameService.GetCurrentRoom(r.Context(), playerID)
		switch {
		case err == nil:
			roomID = detail.Room.ID
		case errors.Is(err, domain.ErrNotInRoom):
			// Roomless players still get their own notifications.
		default:
			respondServiceError(w, r, "Open event stream", err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		client := hub.Register(playerID, roomID)
		defer hub.Unregister(client.ID)

		metrics.SSEClients.Inc()
		defer metrics.SSEClients.Dec()

		log.Info("SSE client connected", "player_id", playerID, "room_id", roomID)
		flusher.Flush()

		for {
			select {
			case event, open := <-client.EventChannel:
				if !open {
					return
				}
				msg, err := sse.FormatSSEMessage(event)
				if err != nil {
					log.Error("Failed to format SSE message", "error", err, "type", event.Type)
					continue
				}
				if _, err := w.Write(msg); err != nil {
					log.Debug("SSE client write failed, closing", "error", err)
					return
				}
				flusher.Flush()
			case <-r.Context().Done():
				log.Debug("SSE client disconnected", "player_id", playerID)
				return
			}
		}
	}
}
